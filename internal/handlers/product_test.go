// internal/handlers/product_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"github.com/heritage-goods/storefront-backend/internal/commerce"
	"github.com/heritage-goods/storefront-backend/internal/config"
	"github.com/heritage-goods/storefront-backend/internal/services"
	"github.com/heritage-goods/storefront-backend/internal/utils"
)

const collarJSON = `{
	"id": "p1",
	"handle": "heritage-collar",
	"title": "Heritage Collar",
	"options": [
		{"name": "Color", "values": ["Black", "Tan"]},
		{"name": "Size", "values": ["S", "M"]}
	],
	"variants": [
		{"id": "v1", "title": "Black / S", "selected_options": [{"name":"Color","value":"Black"},{"name":"Size","value":"S"}], "price": {"amount": 89, "currency": "USD"}, "available": false},
		{"id": "v2", "title": "Black / M", "selected_options": [{"name":"Color","value":"Black"},{"name":"Size","value":"M"}], "price": {"amount": 89, "currency": "USD"}, "available": true}
	]
}`

type ProductHandlerTestSuite struct {
	suite.Suite
	router  *gin.Engine
	backend *httptest.Server
}

func (s *ProductHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.backend = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/storefront/products":
			_, _ = w.Write([]byte(`{"products":[` + collarJSON + `]}`))
		case "/storefront/products/heritage-collar":
			_, _ = w.Write([]byte(`{"product":` + collarJSON + `}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	client := commerce.NewClient(config.CommerceConfig{
		BaseURL:        s.backend.URL,
		RequestTimeout: 5,
	})
	handler := NewProductHandler(services.NewCatalogService(client, 20))

	s.router = gin.New()
	v1 := s.router.Group("/v1")
	{
		v1.GET("/products", handler.GetProducts)
		v1.GET("/products/:handle", handler.GetProduct)
		v1.POST("/products/:handle/resolve", handler.ResolveVariant)
	}
}

func (s *ProductHandlerTestSuite) TearDownTest() {
	s.backend.Close()
}

func (s *ProductHandlerTestSuite) decode(w *httptest.ResponseRecorder) utils.APIResponse {
	var resp utils.APIResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func (s *ProductHandlerTestSuite) TestGetProducts() {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/products", nil))
	s.Require().Equal(http.StatusOK, w.Code)

	resp := s.decode(w)
	products := resp.Data.(map[string]interface{})["products"].([]interface{})
	s.Require().Len(products, 1)
	s.Equal("heritage-collar", products[0].(map[string]interface{})["handle"])
}

func (s *ProductHandlerTestSuite) TestGetProductNotFound() {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/products/missing", nil))
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("NOT_FOUND", s.decode(w).Error.Code)
}

func (s *ProductHandlerTestSuite) resolve(selection map[string]string) *httptest.ResponseRecorder {
	payload, err := json.Marshal(gin.H{"selection": selection})
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, "/v1/products/heritage-collar/resolve", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *ProductHandlerTestSuite) TestResolveFullSelection() {
	w := s.resolve(map[string]string{"Color": "Black", "Size": "S"})
	s.Require().Equal(http.StatusOK, w.Code)

	variant := s.decode(w).Data.(map[string]interface{})["variant"].(map[string]interface{})
	s.Equal("v1", variant["id"])
	s.Equal(false, variant["available"])
}

func (s *ProductHandlerTestSuite) TestResolvePartialSelectionPrefersAvailable() {
	w := s.resolve(map[string]string{"Color": "Black"})
	s.Require().Equal(http.StatusOK, w.Code)

	variant := s.decode(w).Data.(map[string]interface{})["variant"].(map[string]interface{})
	s.Equal("v2", variant["id"])
}

func (s *ProductHandlerTestSuite) TestResolveContradictorySelection() {
	w := s.resolve(map[string]string{"Color": "Purple"})
	s.Equal(http.StatusUnprocessableEntity, w.Code)
	s.Equal("NO_VARIANT", s.decode(w).Error.Code)
}

func TestProductHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}
