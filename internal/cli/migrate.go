package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profit-pilot-api/infrastructure/repository"
	"github.com/vfg2006/profit-pilot-api/internal/config"
)

// migrateCmd copia o catálogo entre drivers de armazenamento
type migrateCmd struct {
	cfg *config.Config
	out io.Writer

	fromDriver string
	fromPath   string
	toDriver   string
	toPath     string
	force      bool
}

func (*migrateCmd) Name() string     { return "migrate" }
func (*migrateCmd) Synopsis() string { return "copia os produtos de um armazenamento para outro" }
func (*migrateCmd) Usage() string {
	return `profitpilot migrate -to-driver <file|sqlite> -to-path <caminho> [-from-driver <driver>] [-from-path <caminho>] [-force]

  Copia a coleção completa de produtos e logs. A origem padrão é o armazenamento configurado.
  O destino só é sobrescrito quando já contém produtos se -force for informado.
`
}

func (c *migrateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.fromDriver, "from-driver", "", "driver de origem (padrão: STORAGE_DRIVER)")
	f.StringVar(&c.fromPath, "from-path", "", "caminho de origem (padrão: STORAGE_PATH)")
	f.StringVar(&c.toDriver, "to-driver", "", "driver de destino")
	f.StringVar(&c.toPath, "to-path", "", "caminho de destino")
	f.BoolVar(&c.force, "force", false, "sobrescreve um destino que já possui produtos")
}

func (c *migrateCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	from := config.Storage{Driver: c.cfg.Storage.Driver, Path: c.cfg.Storage.Path}
	if c.fromDriver != "" {
		from.Driver = c.fromDriver
	}
	if c.fromPath != "" {
		from.Path = c.fromPath
	}

	if c.toDriver == "" || c.toPath == "" {
		fmt.Fprintln(c.out, "Erro: -to-driver e -to-path são obrigatórios")
		return subcommands.ExitUsageError
	}
	to := config.Storage{Driver: c.toDriver, Path: c.toPath}

	if from == to {
		fmt.Fprintln(c.out, "Erro: origem e destino são o mesmo armazenamento")
		return subcommands.ExitUsageError
	}

	count, err := c.migrate(ctx, from, to)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"from": from.Driver,
			"to":   to.Driver,
		}).Error("Erro ao migrar produtos")
		fmt.Fprintf(c.out, "Erro: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(c.out, "%d produtos migrados de %s (%s) para %s (%s)\n", count, from.Driver, from.Path, to.Driver, to.Path)
	return subcommands.ExitSuccess
}

func (c *migrateCmd) migrate(ctx context.Context, from, to config.Storage) (int, error) {
	source, closeSource, err := repository.Open(ctx, from)
	if err != nil {
		return 0, err
	}
	defer closeSource()

	products, err := source.Load()
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, errors.New("origem não possui produtos persistidos")
		}
		return 0, err
	}

	target, closeTarget, err := repository.Open(ctx, to)
	if err != nil {
		return 0, err
	}
	defer closeTarget()

	existing, err := target.Load()
	switch {
	case errors.Is(err, repository.ErrNotFound):
	case err != nil:
		return 0, err
	case len(existing) > 0 && !c.force:
		return 0, fmt.Errorf("destino já possui %d produtos, use -force para sobrescrever", len(existing))
	}

	if err := target.Save(products); err != nil {
		return 0, err
	}

	return len(products), nil
}
