package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/profit-pilot-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestGetInsights(t *testing.T) {
	response := &domain.InsightsResponse{
		Insights:    []domain.AIInsight{domain.FallbackInsight()},
		GeneratedAt: time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC),
		Fallback:    true,
	}

	tests := []struct {
		name  string
		path  string
		setup func(deps *testDeps)
	}{
		{
			name: "Usa o cache",
			path: "/v1/insights",
			setup: func(deps *testDeps) {
				deps.insighter.EXPECT().Latest(gomock.Any()).Return(response)
			},
		},
		{
			name: "Força atualização",
			path: "/v1/insights?refresh=true",
			setup: func(deps *testDeps) {
				deps.insighter.EXPECT().Refresh(gomock.Any()).Return(response)
			},
		},
		{
			name: "Valor inválido de refresh usa o cache",
			path: "/v1/insights?refresh=talvez",
			setup: func(deps *testDeps) {
				deps.insighter.EXPECT().Latest(gomock.Any()).Return(response)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := newTestRouter(t)
			tt.setup(deps)

			rec := deps.do(t, http.MethodGet, tt.path, "")

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{
				"insights": [{
					"title": "Insight Analysis Failed",
					"recommendation": "Ensure you have enough daily log data for an accurate trend analysis.",
					"impact": "Low",
					"category": "Operations"
				}],
				"generated_at": "2024-03-15T10:00:00Z",
				"fallback": true
			}`, rec.Body.String())
		})
	}
}
