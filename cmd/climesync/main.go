package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/osuosl/climesync/internal/cli"
	"github.com/osuosl/climesync/internal/command"
	"github.com/osuosl/climesync/internal/config"
	"github.com/osuosl/climesync/internal/keyring"
	"github.com/osuosl/climesync/internal/prompt"
)

func main() {
	configPath := config.DefaultPath()
	cfg := config.Load(configPath)

	a := command.NewApp(
		cfg,
		configPath,
		prompt.New(os.Stdin, os.Stdout),
		os.Stdout,
		keyring.New(),
		zap.NewNop(),
	)
	cli.SetApp(a)

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
