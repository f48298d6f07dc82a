package insighting

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profit-pilot-api/internal/domain"
	"github.com/vfg2006/profit-pilot-api/internal/usecases/cataloging"
	"golang.org/x/sync/singleflight"
)

var ErrGeneratorUnavailable = errors.New("gerador de insights não configurado")

const refreshKey = "latest"

type Service struct {
	generator Generator
	store     cataloging.ProductStore
	currency  string
	now       func() time.Time

	group   singleflight.Group
	mu      sync.Mutex
	version uint64
	cached  *domain.InsightsResponse
	cachedV uint64
}

// NewService cria o serviço e registra a invalidação do cache a cada mutação do catálogo.
// generator pode ser nil quando não há chave configurada; nesse caso todo resultado é o fallback.
func NewService(generator Generator, store cataloging.ProductStore, currency string) Insighter {
	s := &Service{
		generator: generator,
		store:     store,
		currency:  currency,
		now:       time.Now,
	}

	if store != nil {
		store.Subscribe(func(cataloging.Event) {
			s.Invalidate()
		})
	}

	return s
}

func (s *Service) Generate(ctx context.Context, products []*domain.Product) *domain.InsightsResponse {
	insights, err := s.generate(ctx, products)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"products": len(products),
			"error":    err.Error(),
		}).Warn("Falha ao gerar insights, usando fallback")

		return &domain.InsightsResponse{
			Insights:    []domain.AIInsight{domain.FallbackInsight()},
			GeneratedAt: s.now(),
			Fallback:    true,
		}
	}

	return &domain.InsightsResponse{
		Insights:    insights,
		GeneratedAt: s.now(),
	}
}

func (s *Service) generate(ctx context.Context, products []*domain.Product) ([]domain.AIInsight, error) {
	if s.generator == nil {
		return nil, ErrGeneratorUnavailable
	}

	prompt, err := BuildPrompt(products, s.currency)
	if err != nil {
		return nil, err
	}

	text, err := s.generator.GenerateInsights(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return ParseInsights(strings.TrimSpace(text))
}

func (s *Service) Latest(ctx context.Context) *domain.InsightsResponse {
	s.mu.Lock()
	if s.cached != nil && s.cachedV == s.version {
		cached := s.cached
		s.mu.Unlock()
		return cached
	}
	s.mu.Unlock()

	return s.Refresh(ctx)
}

// Refresh compartilha uma única chamada entre requisições concorrentes.
// A geração não herda o cancelamento de quem chegou primeiro, pois o resultado serve a todos.
func (s *Service) Refresh(ctx context.Context) *domain.InsightsResponse {
	shared := context.WithoutCancel(ctx)

	result, _, _ := s.group.Do(refreshKey, func() (any, error) {
		s.mu.Lock()
		version := s.version
		s.mu.Unlock()

		var products []*domain.Product
		if s.store != nil {
			products = s.store.Snapshot()
		}

		response := s.Generate(shared, products)

		// Fallback nunca entra no cache; só guarda se o catálogo não mudou durante a geração
		s.mu.Lock()
		if !response.Fallback && version == s.version {
			s.cached = response
			s.cachedV = version
		}
		s.mu.Unlock()

		logrus.WithFields(logrus.Fields{
			"insights": len(response.Insights),
			"fallback": response.Fallback,
		}).Info("Insights atualizados")

		return response, nil
	})

	return result.(*domain.InsightsResponse)
}

func (s *Service) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.version++
	s.cached = nil
}
