package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/openfit/fitctl/internal/api"
	"github.com/openfit/fitctl/internal/cli"
	"github.com/openfit/fitctl/internal/coach"
	"github.com/openfit/fitctl/internal/session"
	"github.com/openfit/fitctl/internal/store"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A .env in the working directory overrides nothing already set.
	_ = godotenv.Load()

	apiCfg := api.LoadConfig()
	coachCfg := coach.LoadConfig()
	sessionCfg := session.LoadConfig()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)
	if apiCfg.Debug {
		log.SetLevel(logrus.DebugLevel)
	}

	var observer api.Observer = api.NoopObserver{}
	if apiCfg.Debug {
		observer = api.NewLogObserver(log)
	}

	sessions, err := session.NewStore(os.Getenv("FITCTL_CONFIG_DIR"))
	if err != nil {
		return fmt.Errorf("initializing session store: %w", err)
	}

	apiClient := api.NewClient(apiCfg, observer)

	app := &cli.App{
		Activities: store.New(apiClient),
		API:        apiClient,
		Coach:      coach.NewService(coach.NewClient(coachCfg, observer)),
		Sessions:   sessions,
		SessionCfg: sessionCfg,
	}

	// Forms and confirmations only run on a real terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
