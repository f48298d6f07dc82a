package utils

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
)

const DefaultCurrency = money.INR

// FormatCurrency formata um valor na moeda informada, sem casas decimais
func FormatCurrency(value float64, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		cur = money.GetCurrency(DefaultCurrency)
	}

	formatter := money.NewFormatter(0, cur.Decimal, cur.Thousand, cur.Grapheme, cur.Template)
	return formatter.Format(int64(math.Round(value)))
}

func FormatPercent(value float64) string {
	return fmt.Sprintf("%.2f%%", RoundWithTwoDecimalPlace(value))
}
