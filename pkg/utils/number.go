package utils

import (
	"math"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Prefixos numéricos aceitos: o texto após o número é ignorado ("12abc" vale 12)
var (
	amountPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	countPrefix  = regexp.MustCompile(`^[+-]?\d+`)
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// ParseAmount converte um valor monetário digitado pelo usuário a partir do prefixo numérico.
// Valores inválidos ou negativos viram zero, nunca um erro.
func ParseAmount(value string) float64 {
	d, err := decimal.NewFromString(amountPrefix.FindString(strings.TrimSpace(value)))
	if err != nil || d.IsNegative() {
		return 0
	}

	f, _ := d.Float64()
	return CoerceAmount(f)
}

// ParseCount converte uma quantidade digitada pelo usuário lendo só os dígitos iniciais,
// então "3.7" vale 3 e "1e3" vale 1
func ParseCount(value string) int {
	d, err := decimal.NewFromString(countPrefix.FindString(strings.TrimSpace(value)))
	if err != nil || d.IsNegative() {
		return 0
	}

	if d.GreaterThan(decimal.NewFromInt(math.MaxInt32)) {
		return 0
	}
	return CoerceCount(d.IntPart())
}

// CoerceAmount garante um valor monetário finito e não negativo
func CoerceAmount(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}

func CoerceCount(n int64) int {
	if n < 0 || n > math.MaxInt32 {
		return 0
	}
	return int(n)
}
