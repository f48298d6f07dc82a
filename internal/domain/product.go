// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "strings"

type ProductCategory string

const (
	ProductCategorySaaS       ProductCategory = "SaaS"
	ProductCategoryEbook      ProductCategory = "E-book"
	ProductCategoryCourse     ProductCategory = "Course"
	ProductCategoryAsset      ProductCategory = "Asset"
	ProductCategoryNewsletter ProductCategory = "Newsletter"
)

// ProductCategories lista as categorias na ordem em que são exibidas
var ProductCategories = []ProductCategory{
	ProductCategorySaaS,
	ProductCategoryEbook,
	ProductCategoryCourse,
	ProductCategoryAsset,
	ProductCategoryNewsletter,
}

func (c ProductCategory) IsValid() bool {
	for _, category := range ProductCategories {
		if c == category {
			return true
		}
	}
	return false
}

// ParseProductCategory converte o texto recebido em uma categoria conhecida.
// Valores desconhecidos caem em SaaS, a categoria padrão do formulário de criação.
func ParseProductCategory(value string) ProductCategory {
	value = strings.TrimSpace(value)
	for _, category := range ProductCategories {
		if strings.EqualFold(value, string(category)) {
			return category
		}
	}
	return ProductCategorySaaS
}

type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category ProductCategory `json:"category"`
	Price    float64         `json:"price"`
	Notes    string          `json:"notes"`
	Logs     []*DailyLog     `json:"logs"`
}

// Clone retorna uma cópia profunda do produto, incluindo os logs
func (p *Product) Clone() *Product {
	if p == nil {
		return nil
	}

	clone := *p
	clone.Logs = make([]*DailyLog, 0, len(p.Logs))
	for _, log := range p.Logs {
		if log == nil {
			continue
		}
		l := *log
		clone.Logs = append(clone.Logs, &l)
	}

	return &clone
}

// FindLog retorna o índice do log com o ID informado, ou -1
func (p *Product) FindLog(logID string) int {
	for i, log := range p.Logs {
		if log != nil && log.ID == logID {
			return i
		}
	}
	return -1
}

func CloneProducts(products []*Product) []*Product {
	clones := make([]*Product, 0, len(products))
	for _, p := range products {
		if p == nil {
			continue
		}
		clones = append(clones, p.Clone())
	}
	return clones
}
