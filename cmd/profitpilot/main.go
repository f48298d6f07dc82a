package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profit-pilot-api/internal/cli"
	"github.com/vfg2006/profit-pilot-api/internal/config"
	"github.com/vfg2006/profit-pilot-api/pkg/log"
)

func main() {
	log.Setup(os.Getenv("LOG_LEVEL"))

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel)
	// a saída padrão fica reservada ao resultado dos comandos
	logrus.SetOutput(os.Stderr)

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	for _, c := range cli.Commands(cfg, os.Stdout) {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
