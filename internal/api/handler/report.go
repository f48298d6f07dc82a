package handler

import (
	"bytes"
	"html"
	"net/http"
	"time"

	"github.com/vfg2006/profit-pilot-api/internal/usecases/cataloging"
	"github.com/vfg2006/profit-pilot-api/internal/usecases/reporting"
	"github.com/vfg2006/profit-pilot-api/pkg/apiErrors"
	"github.com/vfg2006/profit-pilot-api/pkg/log"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const (
	reportFormatMarkdown = "markdown"
	reportFormatHTML     = "html"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// GetPortfolioReport devolve o relatório em markdown ou, com format=html, renderizado
func GetPortfolioReport(store cataloging.ProductStore, currency string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		format := r.URL.Query().Get("format")
		if format == "" {
			format = reportFormatMarkdown
		}

		report := reporting.Markdown(store.Snapshot(), currency, time.Now())

		switch format {
		case reportFormatMarkdown:
			w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
			_, _ = w.Write([]byte(report))

		case reportFormatHTML:
			var body bytes.Buffer
			if err := markdown.Convert([]byte(report), &body); err != nil {
				log.ForContext(r.Context()).WithError(err).Error("Erro ao renderizar relatório")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao renderizar relatório", nil)
				return
			}

			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte("<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"><title>" +
				html.EscapeString(reporting.Title) + "</title></head><body>\n"))
			_, _ = w.Write(body.Bytes())
			_, _ = w.Write([]byte("</body></html>\n"))

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de relatório inválido. Valores aceitos: markdown, html", nil)
		}
	})
}
