package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vfg2006/profit-pilot-api/internal/api/handler/router"
	schedulermocks "github.com/vfg2006/profit-pilot-api/internal/scheduler/mocks"
	catalogmocks "github.com/vfg2006/profit-pilot-api/internal/usecases/cataloging/mocks"
	insightmocks "github.com/vfg2006/profit-pilot-api/internal/usecases/insighting/mocks"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	store     *catalogmocks.MockProductStore
	insighter *insightmocks.MockInsighter
	job       *schedulermocks.MockJob
	router    http.Handler
}

func newTestRouter(t *testing.T) *testDeps {
	ctrl := gomock.NewController(t)

	deps := &testDeps{
		store:     catalogmocks.NewMockProductStore(ctrl),
		insighter: insightmocks.NewMockInsighter(ctrl),
		job:       schedulermocks.NewMockJob(ctrl),
	}

	deps.router = router.New(
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Products(deps.store)...),
		router.WithRoutes(DailyLogs(deps.store)...),
		router.WithRoutes(Metrics(deps.store)...),
		router.WithRoutes(Insights(deps.insighter)...),
		router.WithRoutes(Reports(deps.store, "INR")...),
		router.WithRoutes(CronJobs(CronJobServices{InsightRefreshService: deps.job})...),
	)

	return deps
}

func (d *testDeps) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	d.router.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}
