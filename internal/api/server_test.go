package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/profit-pilot-api/internal/config"
	"github.com/vfg2006/profit-pilot-api/internal/domain"
	schedulermocks "github.com/vfg2006/profit-pilot-api/internal/scheduler/mocks"
	catalogmocks "github.com/vfg2006/profit-pilot-api/internal/usecases/cataloging/mocks"
	insightmocks "github.com/vfg2006/profit-pilot-api/internal/usecases/insighting/mocks"
	"go.uber.org/mock/gomock"
)

func TestServer_CadeiaDeMiddlewares(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := catalogmocks.NewMockProductStore(ctrl)
	store.EXPECT().List().Return(domain.SeedProducts())

	cfg := &config.Config{
		App:    config.App{Currency: "INR"},
		Server: config.Server{Host: "localhost", Port: "0", AllowedOrigins: []string{"http://localhost:3000"}},
	}

	srv, err := New(cfg, store, insightmocks.NewMockInsighter(ctrl), schedulermocks.NewMockJob(ctrl))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
	assert.Contains(t, rec.Body.String(), "UI Kit Pro")
}

func TestServer_RotaDesconhecida(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := &config.Config{Server: config.Server{Host: "localhost", Port: "0"}}

	srv, err := New(cfg, catalogmocks.NewMockProductStore(ctrl), insightmocks.NewMockInsighter(ctrl), schedulermocks.NewMockJob(ctrl))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/accounts", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
