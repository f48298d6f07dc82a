// Package cli reúne os subcomandos de linha de comando do ProfitPilot
package cli

import (
	"io"

	"github.com/google/subcommands"
	"github.com/vfg2006/profit-pilot-api/internal/config"
)

// Commands lista os subcomandos disponíveis, todos escrevendo em out
func Commands(cfg *config.Config, out io.Writer) []subcommands.Command {
	return []subcommands.Command{
		&reportCmd{cfg: cfg, out: out},
		&migrateCmd{cfg: cfg, out: out},
	}
}
