package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/profit-pilot-api/internal/domain"
)

func TestGetPortfolioReport(t *testing.T) {
	tests := []struct {
		name            string
		path            string
		wantStatus      int
		wantContentType string
		wantBody        []string
	}{
		{
			name:            "Markdown por padrão",
			path:            "/v1/reports/portfolio",
			wantStatus:      http.StatusOK,
			wantContentType: "text/markdown; charset=utf-8",
			wantBody:        []string{"# ProfitPilot Portfolio Report", "| Gross revenue | ₹119,979 |"},
		},
		{
			name:            "HTML renderizado",
			path:            "/v1/reports/portfolio?format=html",
			wantStatus:      http.StatusOK,
			wantContentType: "text/html; charset=utf-8",
			wantBody:        []string{"<h1>ProfitPilot Portfolio Report</h1>", "<table>", "<td>UI Kit Pro</td>"},
		},
		{
			name:            "Formato inválido",
			path:            "/v1/reports/portfolio?format=pdf",
			wantStatus:      http.StatusBadRequest,
			wantContentType: "application/json",
			wantBody:        []string{"VAL_003"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := newTestRouter(t)
			deps.store.EXPECT().Snapshot().Return(domain.SeedProducts())

			rec := deps.do(t, http.MethodGet, tt.path, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantContentType, rec.Header().Get("Content-Type"))
			for _, want := range tt.wantBody {
				assert.Contains(t, rec.Body.String(), want)
			}
		})
	}
}
