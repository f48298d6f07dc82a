// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"errors"

	"github.com/vfg2006/profit-pilot-api/internal/domain"
)

// StorageKey é a chave fixa sob a qual a coleção de produtos é persistida
const StorageKey = "profitpilot_products_v1"

// ErrNotFound indica que ainda não existe coleção persistida
var ErrNotFound = errors.New("nenhuma coleção de produtos persistida")

//go:generate mockgen -source=product.go -destination=mocks/product.go -package=mocks
type ProductRepository interface {
	// Load lê a coleção completa de produtos com seus logs
	Load() ([]*domain.Product, error)
	// Save substitui a coleção persistida pela coleção informada
	Save(products []*domain.Product) error
}
