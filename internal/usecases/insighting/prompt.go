package insighting

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/profit-pilot-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const promptTemplate = `Analyze the following digital products portfolio.
Each product has a fixed unit price and a history of daily logs containing salesCount (number of units sold), adSpend and miscExpenses (%[1]s).
The currency is %[2]s.

Products Data: %[3]s

Calculation Logic:
- Daily Revenue = salesCount * product.price
- Daily Profit = (salesCount * product.price) - adSpend - miscExpenses

Key Considerations for Analysis:
1. Historical Trends: Evaluate if salesCount is growing or declining.
2. Efficiency: ROAS analysis using (salesCount * price) / adSpend.
3. Pricing Strategy: Does the current unit price optimize for total volume (salesCount) vs net profit?
4. Growth Blueprint: Identify products with high sales counts but low ad spend as scale candidates.
5. Market Context: Provide advice relevant to the digital creator/SaaS landscape of the currency's market.

Return an array of insights, each with title, recommendation, impact (High, Medium or Low) and category (Pricing, Marketing or Operations).`

var currencyNames = map[string]string{
	"INR": "Indian Rupee (INR / ₹)",
	"USD": "US Dollar (USD / $)",
	"EUR": "Euro (EUR / €)",
	"BRL": "Brazilian Real (BRL / R$)",
}

// BuildPrompt serializa os produtos e os embute no texto enviado ao modelo
func BuildPrompt(products []*domain.Product, currency string) (string, error) {
	if products == nil {
		products = []*domain.Product{}
	}

	data, err := json.Marshal(products)
	if err != nil {
		return "", fmt.Errorf("erro ao serializar produtos: %w", err)
	}

	name, ok := currencyNames[currency]
	if !ok {
		name = currency
	}

	return fmt.Sprintf(promptTemplate, currency, name, data), nil
}

// ParseInsights converte a resposta do modelo. Texto vazio resulta em lista vazia
// e itens com impacto ou categoria desconhecidos são descartados.
func ParseInsights(text string) ([]domain.AIInsight, error) {
	if text == "" {
		return []domain.AIInsight{}, nil
	}

	var raw []domain.AIInsight
	if err := json.UnmarshalFromString(text, &raw); err != nil {
		return nil, fmt.Errorf("resposta de insights inválida: %w", err)
	}

	insights := make([]domain.AIInsight, 0, len(raw))
	for _, insight := range raw {
		if !insight.IsValid() {
			continue
		}
		insights = append(insights, insight)
	}

	return insights, nil
}
