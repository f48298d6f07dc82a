package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/profit-pilot-api/internal/usecases/insighting"
)

// GetInsights devolve os insights em cache; refresh=true força uma nova geração
func GetInsights(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		refresh, _ := strconv.ParseBool(r.URL.Query().Get("refresh"))

		if refresh {
			writeJSON(w, r, http.StatusOK, service.Refresh(r.Context()))
			return
		}

		writeJSON(w, r, http.StatusOK, service.Latest(r.Context()))
	})
}
