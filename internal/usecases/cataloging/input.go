package cataloging

import (
	"strings"

	"github.com/vfg2006/profit-pilot-api/internal/domain"
	"github.com/vfg2006/profit-pilot-api/pkg/utils"
)

// ProductInput carrega os campos de produto como chegam do formulário, em texto
type ProductInput struct {
	Name     string
	Category string
	Price    string
	Notes    string
}

// LogInput carrega os campos de um registro diário, em texto
type LogInput struct {
	Date         string
	SalesCount   string
	AdSpend      string
	MiscExpenses string
}

func (in ProductInput) name() string {
	return strings.TrimSpace(in.Name)
}

func (in ProductInput) apply(p *domain.Product) {
	p.Name = in.name()
	p.Category = domain.ParseProductCategory(in.Category)
	p.Price = utils.ParseAmount(in.Price)
	p.Notes = strings.TrimSpace(in.Notes)
}

// date converte a data informada; vazia ou inválida resulta em fallback
func (in LogInput) date(fallback domain.Date) domain.Date {
	value := strings.TrimSpace(in.Date)
	if value == "" {
		return fallback
	}

	parsed, err := domain.ParseDate(value)
	if err != nil {
		return fallback
	}

	return parsed
}

func (in LogInput) apply(l *domain.DailyLog, fallbackDate domain.Date) {
	l.Date = in.date(fallbackDate)
	l.SalesCount = utils.ParseCount(in.SalesCount)
	l.AdSpend = utils.ParseAmount(in.AdSpend)
	l.MiscExpenses = utils.ParseAmount(in.MiscExpenses)
}

// normalize aplica as mesmas regras de coerção a dados carregados do armazenamento
func normalize(products []*domain.Product) []*domain.Product {
	normalized := make([]*domain.Product, 0, len(products))
	for _, p := range products {
		if p == nil {
			continue
		}

		clone := p.Clone()
		if clone.ID == "" {
			clone.ID = utils.NewID()
		}
		if !clone.Category.IsValid() {
			clone.Category = domain.ParseProductCategory(string(clone.Category))
		}
		clone.Price = utils.CoerceAmount(clone.Price)

		for _, l := range clone.Logs {
			if l.ID == "" {
				l.ID = utils.NewID()
			}
			if l.SalesCount < 0 {
				l.SalesCount = 0
			}
			l.AdSpend = utils.CoerceAmount(l.AdSpend)
			l.MiscExpenses = utils.CoerceAmount(l.MiscExpenses)
		}

		normalized = append(normalized, clone)
	}

	return normalized
}
