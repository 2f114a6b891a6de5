package api

import "github.com/lifelink-inc/lifelink-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1000: "invalid signature",
		1001: "invalid authorization format",
		1002: "difference between the request time and the current time is too large",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: "account not found",

		1200: store.ErrRequestNotExist.Error(),
		1201: store.ErrMultipleRequestMade.Error(),
		1202: store.ErrRequestNotOpen.Error(),

		1210: store.ErrHandshakeExists.Error(),
		1211: store.ErrHandshakeNotExist.Error(),

		1220: store.ErrStockNotExist.Error(),

		1230: store.ErrCampNotExist.Error(),
		1231: store.ErrAlreadyRegistered.Error(),

		1240: store.ErrShopNotExist.Error(),

		1250: store.ErrArchiveNotExist.Error(),

		1300: "no place found for the given query",
		1301: "hospital lookup failed",
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidSignature           = errorJSON(1000)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorRequestTimeTooSkewed       = errorJSON(1002)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorAccountNotFound = errorJSON(1100)

	errorRequestNotExist     = errorJSON(1200)
	errorMultipleRequestMade = errorJSON(1201)
	errorRequestNotOpen      = errorJSON(1202)

	errorHandshakeExists   = errorJSON(1210)
	errorHandshakeNotExist = errorJSON(1211)

	errorStockNotExist = errorJSON(1220)

	errorCampNotExist      = errorJSON(1230)
	errorAlreadyRegistered = errorJSON(1231)

	errorShopNotExist = errorJSON(1240)

	errorArchiveNotExist = errorJSON(1250)

	errorPlaceNotFound  = errorJSON(1300)
	errorHospitalLookup = errorJSON(1301)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
