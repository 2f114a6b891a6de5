package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifelink-inc/lifelink-api/schema"
)

// accountRegister creates or refreshes the profile of the requester.
func (s *Server) accountRegister(c *gin.Context) {
	requester := c.GetString("requester")

	var params struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email"`
		Phone string `json:"phone"`
		Role  string `json:"role" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	switch params.Role {
	case schema.ROLE_DONOR, schema.ROLE_ORGANIZER, schema.ROLE_HOSPITAL:
	default:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	account, err := s.mongoStore.CreateAccount(&schema.Account{
		AccountNumber: requester,
		Name:          params.Name,
		Email:         params.Email,
		Phone:         params.Phone,
		Role:          params.Role,
	})
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": account})
}

func (s *Server) accountDetail(c *gin.Context) {
	account, ok := c.MustGet("account").(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": account})
}

func (s *Server) accountUpdate(c *gin.Context) {
	account, ok := c.MustGet("account").(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var params struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Name == "" {
		params.Name = account.Name
	}
	if params.Phone == "" {
		params.Phone = account.Phone
	}

	if err := s.mongoStore.UpdateAccount(account.AccountNumber, params.Name, params.Phone); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func (s *Server) accountDelete(c *gin.Context) {
	account, ok := c.MustGet("account").(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	if err := s.mongoStore.DeleteAccount(account.AccountNumber); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
