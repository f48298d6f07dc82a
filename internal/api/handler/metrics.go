package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/profit-pilot-api/internal/usecases/cataloging"
	"github.com/vfg2006/profit-pilot-api/internal/usecases/projecting"
	"github.com/vfg2006/profit-pilot-api/pkg/apiErrors"
)

func GetProductMetrics(store cataloging.ProductStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		product, found := store.Get(id)
		if !found {
			apiErrors.WriteError(w, apiErrors.ErrProductNotFound, "Produto não encontrado", map[string]string{"id": id})
			return
		}

		writeJSON(w, r, http.StatusOK, roundProductView(projecting.ProductView(product)))
	})
}

func GetPortfolioMetrics(store cataloging.ProductStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, roundPortfolioView(projecting.PortfolioView(store.Snapshot())))
	})
}
