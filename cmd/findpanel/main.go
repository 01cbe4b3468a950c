package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"findpanel/internal/config"
	"findpanel/internal/discovery"
	"findpanel/internal/document"
	"findpanel/internal/eventbus"
	"findpanel/internal/ui"
	"findpanel/internal/workspace"
)

var (
	configPath string
	logPath    string
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "findpanel [paths...]",
		Short: "Terminal script editor with a search and replace panel",
		Long: `findpanel opens files in a terminal editor with a search and replace panel.
Directories are scanned for script files. Without paths an empty scratch
document is opened.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runEditor,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is the user config dir)")
	cmd.PersistentFlags().StringVar(&logPath, "log", "findpanel.log", "log file")

	cmd.AddCommand(newFindCommand())
	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging sends the standard logger to path. The returned func closes the file.
func setupLogging(path string) func() {
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
		return func() {}
	}
	log.SetOutput(logFile)
	return func() { _ = logFile.Close() }
}

// loadConfig reads the config file, using defaults when it cannot be read
func loadConfig(configSvc config.ConfigService) *config.Config {
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		return config.DefaultConfig()
	}
	return cfg
}

func runEditor(cmd *cobra.Command, args []string) error {
	closeLog := setupLogging(logPath)
	defer closeLog()

	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	bus := eventbus.New()
	configSvc := config.NewConfigService(configPath, bus)
	cfg := loadConfig(configSvc)

	files, err := discovery.Scan(ctx, args, cfg.Discovery)
	if err != nil {
		return err
	}

	ws := workspace.New(bus)
	uiModel := ui.NewModel(bus, cfg, configSvc, ws)
	defer uiModel.Close()

	if err := ws.Open(files); err != nil {
		return err
	}
	if len(files) == 0 {
		ws.Add(document.New("untitled", "", bus))
	}

	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run the terminal user interface: %w", err)
	}

	if uiModel.ForceQuit() {
		log.Printf("Force quit, unsaved documents discarded")
		return nil
	}
	if saved, err := ws.SaveAll(); err != nil {
		log.Printf("Failed to save documents: %v", err)
	} else if saved > 0 {
		log.Printf("Saved %d documents on exit", saved)
	}
	return nil
}
