package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/profit-pilot-api/internal/usecases/cataloging"
	"github.com/vfg2006/profit-pilot-api/internal/usecases/projecting"
	"github.com/vfg2006/profit-pilot-api/pkg/apiErrors"
	"github.com/vfg2006/profit-pilot-api/pkg/utils"
)

type dailyLogRequest struct {
	Date         utils.FlexString `json:"date"`
	SalesCount   utils.FlexString `json:"salesCount"`
	AdSpend      utils.FlexString `json:"adSpend"`
	MiscExpenses utils.FlexString `json:"miscExpenses"`
}

func (req dailyLogRequest) toInput() cataloging.LogInput {
	return cataloging.LogInput{
		Date:         req.Date.String(),
		SalesCount:   req.SalesCount.String(),
		AdSpend:      req.AdSpend.String(),
		MiscExpenses: req.MiscExpenses.String(),
	}
}

// ListDailyLogs devolve os registros do produto em ordem cronológica, com as métricas de cada dia
func ListDailyLogs(store cataloging.ProductStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		product, found := store.Get(id)
		if !found {
			apiErrors.WriteError(w, apiErrors.ErrProductNotFound, "Produto não encontrado", map[string]string{"id": id})
			return
		}

		writeJSON(w, r, http.StatusOK, roundSeries(projecting.ChronologicalSeries(product)))
	})
}

func AddDailyLog(store cataloging.ProductStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req dailyLogRequest
		if !decodeBody(w, r, &req) {
			return
		}

		log, created := store.AddLog(id, req.toInput())
		if !created {
			writeJSON(w, r, http.StatusOK, map[string]bool{"created": false})
			return
		}

		writeJSON(w, r, http.StatusCreated, log)
	})
}

func UpdateDailyLog(store cataloging.ProductStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		var req dailyLogRequest
		if !decodeBody(w, r, &req) {
			return
		}

		log, updated := store.UpdateLog(params.ByName("id"), params.ByName("log_id"), req.toInput())
		if !updated {
			writeJSON(w, r, http.StatusOK, map[string]bool{"updated": false})
			return
		}

		writeJSON(w, r, http.StatusOK, log)
	})
}

func DeleteDailyLog(store cataloging.ProductStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		deleted := store.DeleteLog(params.ByName("id"), params.ByName("log_id"))

		writeJSON(w, r, http.StatusOK, map[string]bool{"deleted": deleted})
	})
}
