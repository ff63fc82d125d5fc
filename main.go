package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"userdir/internal/config"
	"userdir/internal/directory"
	"userdir/internal/ui"
	"userdir/internal/ui/theme"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// options holds the command line; zero values mean "not given"
type options struct {
	apiURL      string
	configPath  string
	logFile     string
	logLevel    string
	timeout     time.Duration
	writeConfig bool
	showVersion bool
	showHelp    bool
}

func parseFlags(args []string, stderr io.Writer) (*options, *pflag.FlagSet, error) {
	opts := &options{}
	flagSet := pflag.NewFlagSet("userdir", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&opts.apiURL, "api-url", "", "directory API base URL (default "+directory.DefaultBaseURL+")")
	flagSet.StringVar(&opts.configPath, "config", "", "path to a TOML config file")
	flagSet.StringVar(&opts.logFile, "log-file", "", "write JSON log records to this file (default userdir.log)")
	flagSet.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flagSet.DurationVar(&opts.timeout, "timeout", 0, "request timeout for the directory fetch, 0 for none")
	flagSet.BoolVar(&opts.writeConfig, "write-config", false, "save the resolved settings to the config file and exit")
	flagSet.BoolVar(&opts.showVersion, "version", false, "print the version and exit")
	flagSet.BoolVarP(&opts.showHelp, "help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		return nil, flagSet, err
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return nil, flagSet, fmt.Errorf("unexpected argument: %s", rest[0])
	}
	if opts.timeout < 0 {
		return nil, flagSet, fmt.Errorf("--timeout must not be negative")
	}
	return opts, flagSet, nil
}

// loadConfig resolves defaults < file < env < flags
func loadConfig(opts *options, flagSet *pflag.FlagSet) (*config.Config, error) {
	svc := config.NewConfigService()

	var cfg *config.Config
	var err error
	if opts.configPath != "" {
		cfg, err = svc.LoadFromPath(opts.configPath)
	} else {
		cfg, err = svc.Load()
	}
	if opts.writeConfig && errors.Is(err, config.ErrNotFound) {
		// the file is about to be created
		cfg, err = config.DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}

	if flagSet.Changed("api-url") {
		cfg.API.BaseURL = opts.apiURL
	}
	if flagSet.Changed("timeout") {
		cfg.API.Timeout = config.Duration{Duration: opts.timeout}
	}
	if flagSet.Changed("log-file") {
		cfg.Log.File = opts.logFile
	}
	if flagSet.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// writeConfigFile saves cfg to the --config path, or the per-user file
// when none was given, and returns where it went
func writeConfigFile(svc config.ConfigService, opts *options, cfg *config.Config) (string, error) {
	if opts.configPath != "" {
		return opts.configPath, svc.SaveToPath(cfg, opts.configPath)
	}
	return svc.Path(), svc.Save(cfg)
}

// openLogger opens the JSON log file. A file that cannot be opened
// discards logs rather than writing over the TUI.
func openLogger(cfg *config.Config) (*slog.Logger, func()) {
	level, _ := cfg.SlogLevel()
	handlerOpts := &slog.HandlerOptions{Level: level}

	if cfg.Log.File == "" {
		return slog.New(slog.NewJSONHandler(io.Discard, handlerOpts)), func() {}
	}
	logFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return slog.New(slog.NewJSONHandler(io.Discard, handlerOpts)), func() {}
	}
	return slog.New(slog.NewJSONHandler(logFile, handlerOpts)), func() { _ = logFile.Close() }
}

func run(args []string) error {
	opts, flagSet, err := parseFlags(args, os.Stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	if opts.showHelp {
		printHelp(flagSet)
		return nil
	}
	if opts.showVersion {
		fmt.Printf("userdir %s\n", version)
		return nil
	}

	cfg, err := loadConfig(opts, flagSet)
	if err != nil {
		return err
	}
	if opts.writeConfig {
		path, err := writeConfigFile(config.NewConfigService(), opts, cfg)
		if err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
		return nil
	}

	logger, closeLog := openLogger(cfg)
	defer closeLog()
	slog.SetDefault(logger)

	// Cancelled only on shutdown; UI actions never abort the fetch
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := directory.NewClient(cfg.API.BaseURL,
		directory.WithTimeout(cfg.API.Timeout.Duration),
		directory.WithLogger(logger),
	)

	model := ui.NewModel(ctx, client, theme.New(), logger)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(program)

	logger.Info("starting", "version", version, "url", client.URL())
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		logger.Error("program failed", "error", err)
		return fmt.Errorf("running program: %w", err)
	}
	logger.Info("exited normally")
	return nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `userdir: browse the user directory in the terminal.

Fetches the user list once, then filters it live by name, username or
email. Press ? inside the app for key bindings.

Usage:
  userdir [flags]

Environment:
  USERDIR_API_URL, USERDIR_TIMEOUT, USERDIR_LOG_FILE, USERDIR_LOG_LEVEL
  override the config file; flags override the environment.

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
