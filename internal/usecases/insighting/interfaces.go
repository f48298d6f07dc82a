package insighting

import (
	"context"

	"github.com/vfg2006/profit-pilot-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/insighting.go -package=mocks

// Generator envia um prompt ao serviço de geração de texto e devolve a resposta bruta
type Generator interface {
	GenerateInsights(ctx context.Context, prompt string) (string, error)
}

// Insighter produz recomendações a partir da coleção de produtos
type Insighter interface {
	// Generate analisa os produtos informados. Nunca falha: erros viram o insight de fallback.
	Generate(ctx context.Context, products []*domain.Product) *domain.InsightsResponse

	// Latest devolve o último resultado enquanto o catálogo não mudar, gerando um novo se necessário
	Latest(ctx context.Context) *domain.InsightsResponse

	// Refresh ignora o cache e gera novamente a partir do catálogo atual
	Refresh(ctx context.Context) *domain.InsightsResponse

	Invalidate()
}
