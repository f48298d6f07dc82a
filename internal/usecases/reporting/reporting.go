// Package reporting monta o relatório do portfólio em markdown
package reporting

import (
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/profit-pilot-api/internal/domain"
	"github.com/vfg2006/profit-pilot-api/internal/usecases/aggregating"
	"github.com/vfg2006/profit-pilot-api/internal/usecases/projecting"
	"github.com/vfg2006/profit-pilot-api/pkg/utils"
)

const Title = "ProfitPilot Portfolio Report"

// Markdown gera o relatório com resumo, tabela por produto e tabela por categoria
func Markdown(products []*domain.Product, currency string, generatedAt time.Time) string {
	money := func(v float64) string { return utils.FormatCurrency(v, currency) }

	portfolio := aggregating.Portfolio(products)

	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", Title)
	fmt.Fprintf(&b, "_Generated at %s_\n\n", generatedAt.Format(time.RFC3339))

	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Value |\n|---|---:|\n")
	fmt.Fprintf(&b, "| Products | %d |\n", portfolio.ProductCount)
	fmt.Fprintf(&b, "| Units sold | %d |\n", portfolio.TotalSalesCount)
	fmt.Fprintf(&b, "| Gross revenue | %s |\n", money(portfolio.GrossRevenue))
	fmt.Fprintf(&b, "| Ad spend | %s |\n", money(portfolio.TotalAdSpend))
	fmt.Fprintf(&b, "| Misc expenses | %s |\n", money(portfolio.TotalMiscExpenses))
	fmt.Fprintf(&b, "| Total expenses | %s |\n", money(portfolio.TotalExpenses))
	fmt.Fprintf(&b, "| Net profit | %s |\n", money(portfolio.NetProfit))
	fmt.Fprintf(&b, "| Profit margin | %s |\n", utils.FormatPercent(portfolio.ProfitMargin))
	fmt.Fprintf(&b, "| ROI | %s |\n", utils.FormatPercent(portfolio.ROI))

	b.WriteString("\n## Products\n\n")
	if len(products) == 0 {
		b.WriteString("No products yet.\n")
	} else {
		b.WriteString("| Product | Category | Price | Sales | Revenue | Ad spend | Misc | Net profit | ROI |\n")
		b.WriteString("|---|---|---:|---:|---:|---:|---:|---:|---:|\n")
		for _, p := range products {
			if p == nil {
				continue
			}
			m := aggregating.Product(p)
			fmt.Fprintf(&b, "| %s | %s | %s | %d | %s | %s | %s | %s | %s |\n",
				escapeCell(p.Name),
				p.Category,
				money(p.Price),
				m.TotalSalesCount,
				money(m.TotalRevenue),
				money(m.TotalAdSpend),
				money(m.TotalMiscExpenses),
				money(m.NetProfit),
				utils.FormatPercent(m.TotalROI),
			)
		}
	}

	split := projecting.CategorySplit(products)
	if len(split) > 0 {
		b.WriteString("\n## Categories\n\n")
		b.WriteString("| Category | Products | Revenue | Net profit |\n|---|---:|---:|---:|\n")
		for _, row := range split {
			fmt.Fprintf(&b, "| %s | %d | %s | %s |\n",
				row.Category, row.ProductCount, money(row.TotalRevenue), money(row.NetProfit))
		}
	}

	return b.String()
}

func escapeCell(value string) string {
	return strings.ReplaceAll(value, "|", `\|`)
}
