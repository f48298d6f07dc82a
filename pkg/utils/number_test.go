package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "inteiro", input: "2000", want: 2000},
		{name: "decimal", input: "1499.50", want: 1499.5},
		{name: "espaços", input: "  300 ", want: 300},
		{name: "texto não numérico", input: "abc", want: 0},
		{name: "vazio", input: "", want: 0},
		{name: "negativo", input: "-15", want: 0},
		{name: "NaN", input: "NaN", want: 0},
		{name: "prefixo numérico", input: "12abc", want: 12},
		{name: "prefixo decimal", input: "7.25 reais", want: 7.25},
		{name: "notação científica", input: "1e3", want: 1000},
		{name: "fração sem inteiro", input: ".5", want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAmount(tt.input))
		})
	}
}

func TestParseCount(t *testing.T) {
	assert.Equal(t, 4, ParseCount("4"))
	assert.Equal(t, 3, ParseCount("3.7"))
	assert.Equal(t, 0, ParseCount("-2"))
	assert.Equal(t, 0, ParseCount("muitos"))
	assert.Equal(t, 0, ParseCount("99999999999"))
	assert.Equal(t, 12, ParseCount("12abc"))
	assert.Equal(t, 1, ParseCount("1e3"))
	assert.Equal(t, 5, ParseCount(" 5 unidades"))
}

func TestCoerceAmount(t *testing.T) {
	assert.Equal(t, 0.0, CoerceAmount(math.NaN()))
	assert.Equal(t, 0.0, CoerceAmount(math.Inf(1)))
	assert.Equal(t, 0.0, CoerceAmount(-1))
	assert.Equal(t, 12.5, CoerceAmount(12.5))
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 616.24, RoundWithTwoDecimalPlace(41288.0/6700.0*100))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "₹47,988", FormatCurrency(47988, "INR"))
	assert.Equal(t, "₹47,988", FormatCurrency(47988, "XXX-desconhecida"))
	assert.Equal(t, "12.30%", FormatPercent(12.3))
}
