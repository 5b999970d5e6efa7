package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/2beens/gymlog/internal"
	"github.com/2beens/gymlog/internal/config"
	"github.com/2beens/gymlog/internal/logging"

	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	jsonOut := flag.Bool("json", false, "print results as JSON")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	cfg, err := loadConfig(*env, *configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %s\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	secrets, err := config.LoadSecrets(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "secrets: %s\n", err)
		os.Exit(1)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        secrets.SentryDSN,
		SentryServerName: "gymlog-cli",
	})
	defer logging.Flush()

	log.Debugf("running in [%s] environment, data dir: %s", cfg.Environment, cfg.DataDir)

	app, err := internal.NewApp(ctx, internal.NewAppParams{
		Config:  cfg,
		Secrets: secrets,
	})
	if err != nil {
		log.Errorf("setup: %s", err)
		fmt.Fprintf(os.Stderr, "setup: %s\n", err)
		os.Exit(1)
	}

	runErr := run(ctx, app, newPrinter(os.Stdout, *jsonOut), flag.Args())
	if err := app.Close(); err != nil {
		log.Warnf("close app: %s", err)
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", runErr)
		os.Exit(1)
	}
}

// loadConfig falls back to the defaults when no config file exists at path.
func loadConfig(env, path string) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.Default(), nil
	}
	return config.Load(env, path)
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: gymlog [-env dev] [-config ./config.toml] [-json] <command> [flags]\n\ncommands:\n")
	for _, c := range commands {
		fmt.Fprintf(os.Stderr, "  %-15s %s\n", c.name, c.help)
	}
	fmt.Fprintln(os.Stderr)
	flag.PrintDefaults()
}
