package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todoboard/internal/logging"
	"github.com/sandeepkv93/todoboard/internal/update"
)

var version = "dev"

type program interface {
	Run() (tea.Model, error)
}

var programFactory = func(m tea.Model) program {
	return tea.NewProgram(m, tea.WithAltScreen())
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "todoboard failed: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	if stdout == nil {
		stdout = io.Discard
	}

	fs := flag.NewFlagSet("todoboard", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var (
		configPath string
		theme      string
		category   string
		logFile    string
		logLevel   string
		empty      bool
		showVer    bool
	)
	fs.StringVar(&configPath, "config", "", "path to config TOML")
	fs.StringVar(&theme, "theme", "", "initial theme: light or dark")
	fs.StringVar(&category, "category", "", "initial draft category")
	fs.StringVar(&logFile, "log-file", "", "write logs to this file")
	fs.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.BoolVar(&empty, "empty", false, "start without the example tasks")
	fs.BoolVar(&showVer, "version", false, "show version")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.PrintDefaults()
			return nil
		}
		return err
	}

	if showVer {
		_, _ = fmt.Fprintf(stdout, "todoboard %s\n", version)
		return nil
	}

	if strings.TrimSpace(configPath) == "" {
		configPath = os.Getenv("TODOBOARD_CONFIG")
	}
	cfg, err := update.LoadRuntimeConfigFile(configPath, update.DefaultRuntimeConfig())
	if err != nil {
		return fmt.Errorf("load config %q: %w", configPath, err)
	}
	cfg = update.RuntimeConfigFromEnv(cfg)
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "theme":
			cfg.Theme = theme
		case "category":
			cfg.DraftCategory = category
		case "log-file":
			cfg.LogFile = logFile
		case "log-level":
			cfg.LogLevel = logLevel
		case "empty":
			cfg.Empty = empty
		}
	})
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := logging.New(logging.Config{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return fmt.Errorf("configure logger: %w", err)
	}
	defer func() {
		if closeErr := logger.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "warning: close log file: %v\n", closeErr)
		}
	}()
	logger.Info("starting board", "version", version, "theme", cfg.Theme, "draft_category", cfg.DraftCategory, "empty", cfg.Empty)

	if _, err := programFactory(update.NewModelWithConfig(cfg, logger)).Run(); err != nil {
		logger.Error("program exited with error", "err", err)
		return err
	}
	logger.Info("board closed")
	return nil
}
