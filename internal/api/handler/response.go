package handler

import (
	"bytes"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/profit-pilot-api/pkg/apiErrors"
	"github.com/vfg2006/profit-pilot-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao codificar resposta")
	}
}

// decodeBody lê o corpo JSON da requisição. Corpo vazio não é erro.
// Em caso de JSON malformado a resposta 400 já foi escrita e retorna false.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Body == nil {
		return true
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao ler o corpo da requisição: "+err.Error(), nil)
		return false
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return true
	}

	if err := json.Unmarshal(data, dst); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
		return false
	}

	return true
}
