package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lifelink-inc/lifelink-api/api/mocks"
	"github.com/lifelink-inc/lifelink-api/schema"
	"github.com/lifelink-inc/lifelink-api/store"
)

func TestListNearbyCampsPerCampRadius(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockLifeLinkStore(ctl)
	s := &Server{mongoStore: m}

	// both camps sit ~24km from the origin; only the wide one has a
	// radius that reaches the caller
	m.EXPECT().ListActiveCamps().Return([]schema.DonationCamp{
		{Title: "Wide Camp", Status: schema.CAMP_ACTIVE, RadiusKm: 30, Location: schema.NewGeoJSONPoint(22.7674, 88.3683)},
		{Title: "Default Camp", Status: schema.CAMP_ACTIVE, Location: schema.NewGeoJSONPoint(22.7674, 88.3683)},
	}, nil).Times(1)

	router := testRouter(s, "acct-1", "GET", "/camps", s.listNearbyCamps)

	req := httptest.NewRequest("GET", "/camps?lat=22.5535&lng=88.3520", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Camps []struct {
			Title      string  `json:"title"`
			DistanceKm float64 `json:"distance_km"`
		} `json:"camps"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Len(t, resp.Camps, 1)
	assert.Equal(t, "Wide Camp", resp.Camps[0].Title)
	assert.InDelta(t, 23.8, resp.Camps[0].DistanceKm, 1.0)
}

func TestListNearbyCampsNoOrigin(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockLifeLinkStore(ctl)
	s := &Server{mongoStore: m}

	m.EXPECT().ListActiveCamps().Return([]schema.DonationCamp{
		{Title: "Far Camp", Status: schema.CAMP_ACTIVE, Location: schema.NewGeoJSONPoint(22.7674, 88.3683)},
	}, nil).Times(1)

	router := testRouter(s, "acct-1", "GET", "/camps", s.listNearbyCamps)

	req := httptest.NewRequest("GET", "/camps", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Far Camp")
}

func TestCreateCampRequiresOrganizer(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockLifeLinkStore(ctl)
	s := &Server{mongoStore: m}

	m.EXPECT().GetAccount("acct-1").Return(&schema.Account{
		AccountNumber: "acct-1",
		Role:          schema.ROLE_DONOR,
	}, nil).Times(1)

	router := testRouter(s, "acct-1", "POST", "/camps", s.createCamp)

	req := newJSONRequest(t, "POST", "/camps", map[string]interface{}{
		"title":         "Community Drive",
		"date":          "2026-09-15",
		"location_text": "Town Hall",
	})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRegisterForCampDuplicate(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockLifeLinkStore(ctl)
	s := &Server{mongoStore: m}

	id := primitive.NewObjectID()
	m.EXPECT().GetCamp(id).Return(&schema.DonationCamp{
		ID:     id,
		Status: schema.CAMP_ACTIVE,
	}, nil).Times(1)
	m.EXPECT().GetAccount("acct-1").Return(&schema.Account{
		AccountNumber: "acct-1",
		Name:          "Asha",
		Phone:         "+911234567890",
	}, nil).Times(1)
	m.EXPECT().RegisterForCamp(gomock.Any()).Return(nil, store.ErrAlreadyRegistered).Times(1)

	router := testRouter(s, "acct-1", "POST", "/camps/:campID/registrations", s.registerForCamp)

	req := newJSONRequest(t, "POST", "/camps/"+id.Hex()+"/registrations", map[string]interface{}{})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}
