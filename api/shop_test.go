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
)

func TestListNearbyShopsOrdering(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockLifeLinkStore(ctl)
	s := &Server{mongoStore: m}

	// origin is Esplanade, Kolkata; near shop at Park Street, far shop
	// in Howrah, and one outside the default radius in Barrackpore
	m.EXPECT().ListApprovedShops().Return([]schema.Shop{
		{Name: "Howrah Meds", Status: schema.SHOP_APPROVED, Location: schema.NewGeoJSONPoint(22.5958, 88.2636)},
		{Name: "Park Street Pharmacy", Status: schema.SHOP_APPROVED, Location: schema.NewGeoJSONPoint(22.5535, 88.3520)},
		{Name: "Barrackpore Chemist", Status: schema.SHOP_APPROVED, Location: schema.NewGeoJSONPoint(22.7674, 88.3683)},
	}, nil).Times(1)

	router := testRouter(s, "acct-1", "GET", "/shops", s.listNearbyShops)

	req := httptest.NewRequest("GET", "/shops?lat=22.5675&lng=88.3525&radius=15", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Shops []struct {
			Name       string  `json:"name"`
			DistanceKm float64 `json:"distance_km"`
		} `json:"shops"`
		Total int `json:"total"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, "Park Street Pharmacy", resp.Shops[0].Name)
	assert.Equal(t, "Howrah Meds", resp.Shops[1].Name)
	assert.True(t, resp.Shops[0].DistanceKm < resp.Shops[1].DistanceKm)
}

func TestListNearbyShopsNoOrigin(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockLifeLinkStore(ctl)
	s := &Server{mongoStore: m}

	router := testRouter(s, "acct-1", "GET", "/shops", s.listNearbyShops)

	req := httptest.NewRequest("GET", "/shops", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecordShopClick(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockLifeLinkStore(ctl)
	s := &Server{mongoStore: m}

	id := primitive.NewObjectID()
	m.EXPECT().GetShop(id).Return(&schema.Shop{ID: id, Status: schema.SHOP_APPROVED}, nil).Times(1)
	m.EXPECT().IncrementShopCounter(id, "direction_clicks").Return(nil).Times(1)

	router := testRouter(s, "acct-1", "POST", "/shops/:shopID/clicks", s.recordShopClick)

	req := newJSONRequest(t, "POST", "/shops/"+id.Hex()+"/clicks", map[string]interface{}{
		"type": "directions",
	})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRecordShopClickUnknownType(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockLifeLinkStore(ctl)
	s := &Server{mongoStore: m}

	id := primitive.NewObjectID()

	router := testRouter(s, "acct-1", "POST", "/shops/:shopID/clicks", s.recordShopClick)

	req := newJSONRequest(t, "POST", "/shops/"+id.Hex()+"/clicks", map[string]interface{}{
		"type": "teleport",
	})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestShopStatsOwnerOnly(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockLifeLinkStore(ctl)
	s := &Server{mongoStore: m}

	id := primitive.NewObjectID()
	m.EXPECT().GetShop(id).Return(&schema.Shop{ID: id, OwnerID: "someone-else"}, nil).Times(1)

	router := testRouter(s, "acct-1", "GET", "/shops/:shopID/stats", s.shopStats)

	req := httptest.NewRequest("GET", "/shops/"+id.Hex()+"/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
