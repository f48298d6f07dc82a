package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profit-pilot-api/infrastructure/repository"
	"github.com/vfg2006/profit-pilot-api/internal/config"
	"github.com/vfg2006/profit-pilot-api/internal/usecases/cataloging"
	"github.com/vfg2006/profit-pilot-api/internal/usecases/reporting"
)

// reportCmd imprime o relatório do portfólio no terminal
type reportCmd struct {
	cfg *config.Config
	out io.Writer

	raw      bool
	style    string
	width    int
	currency string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "imprime o relatório de lucratividade do portfólio" }
func (*reportCmd) Usage() string {
	return `profitpilot report [-raw] [-style <estilo>] [-width n] [-currency <moeda>]

  Lê o catálogo do armazenamento configurado e imprime o relatório em markdown.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "imprime o markdown sem formatação de terminal")
	f.StringVar(&c.style, "style", "dark", "estilo do glamour (dark, light, notty, ascii)")
	f.IntVar(&c.width, "width", 100, "largura máxima das linhas")
	f.StringVar(&c.currency, "currency", "", "moeda de exibição (padrão: CURRENCY)")
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	repo, closeRepo, err := repository.Open(ctx, c.cfg.Storage)
	if err != nil {
		logrus.WithError(err).Error("Erro ao abrir armazenamento de produtos")
		return subcommands.ExitFailure
	}
	defer closeRepo()

	currency := c.currency
	if currency == "" {
		currency = c.cfg.App.Currency
	}

	store := cataloging.NewStore(repo)
	md := reporting.Markdown(store.Snapshot(), currency, time.Now())

	if c.raw {
		fmt.Fprint(c.out, md)
		return subcommands.ExitSuccess
	}

	rendered, err := c.render(md)
	if err != nil {
		logrus.WithError(err).Error("Erro ao formatar relatório")
		return subcommands.ExitFailure
	}

	fmt.Fprint(c.out, rendered)
	return subcommands.ExitSuccess
}

func (c *reportCmd) render(md string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(c.style),
		glamour.WithWordWrap(c.width),
	)
	if err != nil {
		return "", err
	}

	return renderer.Render(md)
}
