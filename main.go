package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"nota/internal/cli"
	"nota/internal/config"
	"nota/internal/logs"
	"nota/internal/notes"
	"nota/internal/tui"
)

func main() {
	// Parse CLI flags
	previewLenFlag := flag.Int("preview-length", 0, "Characters of note text shown in list rows")
	noConfirmFlag := flag.Bool("no-confirm-delete", false, "Delete notes without a confirmation prompt")
	flag.Parse()

	cliFlags := config.CLIFlags{
		NoConfirmDelete: *noConfirmFlag,
		PreviewLength:   *previewLenFlag,
	}

	// Load configuration
	cfg, err := config.Load(cliFlags)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Ensure config file exists
	if err := config.EnsureConfigFile(); err != nil {
		log.Printf("Warning: could not create config file: %v", err)
	}

	// Reinitialize logger away from the working directory
	if dir, err := config.GetConfigDir(); err == nil {
		if err := logs.Initialize(dir); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Could not initialize logger: %v\n", err)
		}
	}
	defer logs.Close()

	// Check for CLI subcommands
	if args := flag.Args(); len(args) > 0 {
		os.Exit(cli.Run(args))
	}

	// The store lives for the process only; there is no persistence.
	store := notes.NewStore()
	if cfg.WelcomeNote {
		store.Create("Welcome to nota", "Press `n` to write a note, `enter` to open one, and `?` for help.")
	}

	// TUI mode
	logs.Logger.Info("starting app in TUI mode")
	appModel := tui.NewAppModel(cfg, store)
	p := tea.NewProgram(appModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error running program:", err)
		os.Exit(1)
	}
}
