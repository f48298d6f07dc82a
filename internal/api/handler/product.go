package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/profit-pilot-api/internal/usecases/cataloging"
	"github.com/vfg2006/profit-pilot-api/pkg/apiErrors"
	"github.com/vfg2006/profit-pilot-api/pkg/log"
	"github.com/vfg2006/profit-pilot-api/pkg/utils"
)

// productRequest aceita números como texto ou como número JSON
type productRequest struct {
	Name     utils.FlexString `json:"name"`
	Category utils.FlexString `json:"category"`
	Price    utils.FlexString `json:"price"`
	Notes    utils.FlexString `json:"notes"`
}

func (req productRequest) toInput() cataloging.ProductInput {
	return cataloging.ProductInput{
		Name:     req.Name.String(),
		Category: req.Category.String(),
		Price:    req.Price.String(),
		Notes:    req.Notes.String(),
	}
}

func ListProducts(store cataloging.ProductStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, store.List())
	})
}

func GetProduct(store cataloging.ProductStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		product, found := store.Get(id)
		if !found {
			apiErrors.WriteError(w, apiErrors.ErrProductNotFound, "Produto não encontrado", map[string]string{"id": id})
			return
		}

		writeJSON(w, r, http.StatusOK, product)
	})
}

// CreateProduct responde 201 com o produto criado, ou 200 com created=false quando o nome está vazio
func CreateProduct(store cataloging.ProductStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req productRequest
		if !decodeBody(w, r, &req) {
			return
		}

		product, created := store.CreateProduct(req.toInput())
		if !created {
			log.ForContext(r.Context()).Info("Produto não criado: nome vazio")
			writeJSON(w, r, http.StatusOK, map[string]bool{"created": false})
			return
		}

		log.ForContext(r.Context()).WithField("product_id", product.ID).Info("Produto criado")
		writeJSON(w, r, http.StatusCreated, product)
	})
}

func UpdateProduct(store cataloging.ProductStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req productRequest
		if !decodeBody(w, r, &req) {
			return
		}

		product, updated := store.UpdateProduct(id, req.toInput())
		if !updated {
			writeJSON(w, r, http.StatusOK, map[string]bool{"updated": false})
			return
		}

		writeJSON(w, r, http.StatusOK, product)
	})
}

func DeleteProduct(store cataloging.ProductStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		deleted := store.DeleteProduct(id)
		log.ForContext(r.Context()).WithFields(log.Fields{
			"product_id": id,
			"deleted":    deleted,
		}).Info("Remoção de produto")

		writeJSON(w, r, http.StatusOK, map[string]bool{"deleted": deleted})
	})
}
