// Package cli bootstraps the dashboard: flags, config, secrets, oracle
// client, then the interactive session.
package cli

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/JDCAG/me-and-you/internal/assistant"
	"github.com/JDCAG/me-and-you/internal/classify"
	"github.com/JDCAG/me-and-you/internal/config"
	"github.com/JDCAG/me-and-you/internal/dates"
	"github.com/JDCAG/me-and-you/internal/nudge"
	"github.com/JDCAG/me-and-you/internal/oracle"
	"github.com/JDCAG/me-and-you/internal/store"
	"github.com/JDCAG/me-and-you/internal/tui"
)

// GlobalFlags are the command-line options.
type GlobalFlags struct {
	ConfigPath string
	Model      string
	Classifier string
}

// Run is the program entry point. It returns the process exit code.
func Run(args []string) int {
	fs := flag.NewFlagSet("meyou", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var gf GlobalFlags
	fs.StringVar(&gf.ConfigPath, "config", config.DefaultPath(), "path to config.yaml")
	fs.StringVar(&gf.Model, "model", "", "override the oracle model")
	fs.StringVar(&gf.Classifier, "classifier", "", "override the classifier (keyword or oracle)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: meyou [flags]")
		fmt.Fprintln(os.Stderr, "\nA personal dashboard: tasks, mood, and an assistant. State lives in")
		fmt.Fprintln(os.Stderr, "memory and is gone when you quit.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "meyou: unexpected argument %q\n", fs.Arg(0))
		return 2
	}

	cfg, err := config.Load(gf.ConfigPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "meyou:", err)
		return 1
	}
	if gf.Model != "" {
		cfg.Model = gf.Model
	}
	if gf.Classifier != "" {
		cfg.Classifier = gf.Classifier
	}

	apiKey := config.LoadEnv()
	var client oracle.Client
	if apiKey != "" {
		client = oracle.NewOpenAIClient(apiKey, cfg.Model, oracle.WithTimeout(cfg.RequestTimeout()))
	} else {
		fmt.Fprintf(os.Stderr, "meyou: %s is not set; assistant features are disabled\n", config.EnvAPIKey)
	}

	var classifier classify.Classifier = classify.Keyword{}
	if cfg.Classifier == config.ClassifierOracle {
		if client == nil {
			fmt.Fprintln(os.Stderr, "meyou: oracle classifier needs an API key; using keyword rules")
		} else {
			classifier = classify.Oracle{Client: client}
		}
	}

	session := store.NewSession()
	a := assistant.New(client, classifier)
	engine := nudge.Engine{CompanyWindowDays: cfg.NudgeCompanyWindowDays}
	today := dates.Today(time.Now())

	m := tui.New(session, a, engine, cfg.RequestTimeout(), today)
	if err := tui.Run(m); err != nil {
		fmt.Fprintln(os.Stderr, "meyou:", err)
		return 1
	}
	return 0
}
