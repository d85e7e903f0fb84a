package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"poemdeck/internal/clock"
	"poemdeck/internal/config"
	"poemdeck/internal/eventbus"
	"poemdeck/internal/loader"
	"poemdeck/internal/logic"
	"poemdeck/internal/ui"
)

var errUnknownPoem = errors.New("no poem with that id")

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:        "config",
		Aliases:     []string{"c"},
		Usage:       "Path to config file",
		DefaultText: config.DefaultPath(),
		Sources:     cli.EnvVars("POEMDECK_CONFIG"),
	}
}

func poemsFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "poems",
		Aliases: []string{"p"},
		Usage:   "TOML or YAML poem collection (default: built-in collection)",
		Sources: cli.EnvVars("POEMDECK_POEMS"),
	}
}

func tuiFlags() []cli.Flag {
	return []cli.Flag{
		configFlag(),
		poemsFlag(),
		&cli.IntFlag{
			Name:    "start",
			Aliases: []string{"s"},
			Usage:   "Id of the poem shown first",
		},
		&cli.BoolFlag{
			Name:  "no-animate",
			Usage: "Swap poems without the fade",
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd := &cli.Command{
		Name:   "poemdeck",
		Usage:  "Browse and search classical poems in the terminal",
		Action: runTUI,
		Flags:  tuiFlags(),
		Commands: []*cli.Command{
			{
				Name:   "tui",
				Usage:  "Open the poem viewer (default)",
				Action: runTUI,
				Flags:  tuiFlags(),
			},
			{
				Name:   "list",
				Usage:  "Print the collection in order",
				Action: runList,
				Flags:  []cli.Flag{configFlag(), poemsFlag()},
			},
			{
				Name:      "search",
				Usage:     "Print the poems matching a query",
				ArgsUsage: "QUERY",
				Action:    runSearch,
				Flags:     []cli.Flag{configFlag(), poemsFlag()},
			},
			{
				Name:      "init-config",
				Usage:     "Write the default config file",
				ArgsUsage: "[PATH]",
				Action:    runInitConfig,
			},
		},
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Bool("no-animate") {
		cfg.UI.Animate = false
	}
	if start := int(cmd.Int("start")); start != 0 {
		cfg.Poems.StartID = start
	}

	closeLog, err := setupLogging(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	bus := eventbus.New()
	bus.Subscribe(eventbus.EventCollectionLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.CollectionLoadedEvent); ok {
			slog.Info("collection loaded", slog.String("source", event.Source), slog.Int("count", event.Count))
		}
	})
	bus.Subscribe(eventbus.EventSearchExecuted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchExecutedEvent); ok {
			slog.Info("search", slog.String("query", event.Query), slog.Int("matches", event.Matches))
		}
	})

	store, err := loadStore(cmd, cfg)
	if err != nil {
		return err
	}
	if err := seekStart(store, cfg.Poems.StartID); err != nil {
		return err
	}
	bus.Publish(eventbus.CollectionLoadedEvent{Source: loader.SourceName(poemsPath(cmd, cfg)), Count: store.Count()})

	scheduler := ui.NewProgramScheduler(clock.Real{})
	model := ui.NewModel(bus, cfg, store, scheduler)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	scheduler.SetProgram(p)

	slog.Info("starting UI")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("failed to run program: %w", err)
	}
	slog.Info("UI exited normally")
	return nil
}

func runList(ctx context.Context, cmd *cli.Command) error {
	store, closeLog, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	_, err = fmt.Fprint(cmd.Root().Writer, formatList(store))
	return err
}

func runSearch(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() == 0 {
		return fmt.Errorf("search needs a QUERY argument")
	}
	store, closeLog, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	_, err = fmt.Fprint(cmd.Root().Writer, formatResults(store.Search(cmd.Args().First())))
	return err
}

// openStore loads config, logging and the collection for the print commands
func openStore(cmd *cli.Command) (*logic.MemoryCollection, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	closeLog, err := setupLogging(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	store, err := loadStore(cmd, cfg)
	if err != nil {
		closeLog()
		return nil, nil, err
	}
	return store, closeLog, nil
}

func runInitConfig(ctx context.Context, cmd *cli.Command) error {
	svc := config.NewConfigServiceAt(cmd.Args().First())
	if _, err := os.Stat(svc.Path()); err == nil {
		return fmt.Errorf("config already exists at %s", svc.Path())
	}
	if err := svc.Save(config.DefaultConfig()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(cmd.Root().Writer, "Wrote %s\n", svc.Path())
	return err
}

func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.NewConfigServiceAt(cmd.String("config")).Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// poemsPath prefers the flag/env value over the config file
func poemsPath(cmd *cli.Command, cfg *config.Config) string {
	if path := cmd.String("poems"); path != "" {
		return path
	}
	return cfg.Poems.File
}

func loadStore(cmd *cli.Command, cfg *config.Config) (*logic.MemoryCollection, error) {
	store, err := loader.LoadCollection(poemsPath(cmd, cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to load poems: %w", err)
	}
	return store, nil
}

// seekStart moves the cursor to the poem with id; 0 keeps the first poem
func seekStart(store logic.Collection, id int) error {
	if id == 0 {
		return nil
	}
	index, ok := store.IndexOfID(id)
	if !ok {
		return fmt.Errorf("%w: %d", errUnknownPoem, id)
	}
	store.SetCursor(index)
	return nil
}

// setupLogging sends slog output to the configured file; the TUI owns stdout
func setupLogging(settings config.LogSettings) (func(), error) {
	if settings.File == "" {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return func() {}, nil
	}

	logFile, err := os.OpenFile(settings.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	handler := slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: settings.SlogLevel()})
	slog.SetDefault(slog.New(handler))
	return func() { _ = logFile.Close() }, nil
}
