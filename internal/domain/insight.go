package domain

import "time"

type InsightImpact string

const (
	InsightImpactHigh   InsightImpact = "High"
	InsightImpactMedium InsightImpact = "Medium"
	InsightImpactLow    InsightImpact = "Low"
)

type InsightCategory string

const (
	InsightCategoryPricing    InsightCategory = "Pricing"
	InsightCategoryMarketing  InsightCategory = "Marketing"
	InsightCategoryOperations InsightCategory = "Operations"
)

type AIInsight struct {
	Title          string          `json:"title"`
	Recommendation string          `json:"recommendation"`
	Impact         InsightImpact   `json:"impact"`
	Category       InsightCategory `json:"category"`
}

func (i AIInsight) IsValid() bool {
	switch i.Impact {
	case InsightImpactHigh, InsightImpactMedium, InsightImpactLow:
	default:
		return false
	}

	switch i.Category {
	case InsightCategoryPricing, InsightCategoryMarketing, InsightCategoryOperations:
	default:
		return false
	}

	return true
}

// FallbackInsight é devolvido quando a geração de insights falha
func FallbackInsight() AIInsight {
	return AIInsight{
		Title:          "Insight Analysis Failed",
		Recommendation: "Ensure you have enough daily log data for an accurate trend analysis.",
		Impact:         InsightImpactLow,
		Category:       InsightCategoryOperations,
	}
}

type InsightsResponse struct {
	Insights    []AIInsight `json:"insights"`
	GeneratedAt time.Time   `json:"generated_at"`
	Fallback    bool        `json:"fallback"`
}
