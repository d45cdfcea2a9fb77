package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/dastanaron/quizcards/internal/bookmarks"
	"github.com/dastanaron/quizcards/internal/commands"
	"github.com/dastanaron/quizcards/internal/config"
	"github.com/dastanaron/quizcards/internal/deck"
	"github.com/dastanaron/quizcards/internal/logger"
	"github.com/dastanaron/quizcards/internal/storage"
	"github.com/dastanaron/quizcards/internal/theme"
	"github.com/dastanaron/quizcards/internal/ui"
)

func main() {
	importPath := flag.String("import", "", "Path to HTML quiz page to import as the deck")
	exportPath := flag.String("export", "", "Path to HTML file to export bookmarked cards to")
	deckPath := flag.String("deck", "", "Path to YAML deck file (default: ~/.quizcards/deck.yaml)")
	dataDir := flag.String("data", "", "Path to data directory (default: ~/.quizcards)")
	flag.Parse()

	// Optional .env for QUIZCARDS_* overrides
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *dataDir != "" {
		cfg.WithDataDir(*dataDir)
	}
	if *deckPath != "" {
		cfg.WithDeckPath(*deckPath)
	}

	// Ensure data directory exists
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	// Handle import command (needs no store)
	if *importPath != "" {
		importCmd := commands.NewImportCommand()
		if err := importCmd.Execute(*importPath, cfg.DeckPath); err != nil {
			log.Fatalf("Import failed: %v", err)
		}
		return
	}

	zlog, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	store, err := storage.NewFileStore(cfg.StorePath())
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer store.Close()

	bookmarkSvc := bookmarks.NewService(store, zlog)

	// Handle export command
	if *exportPath != "" {
		exportCmd := commands.NewExportCommand(bookmarkSvc)
		if err := exportCmd.Execute(*exportPath); err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		return
	}

	d, err := deck.Load(cfg.DeckPath)
	if err != nil {
		log.Fatalf("Failed to load deck %s (use -import or -deck): %v", cfg.DeckPath, err)
	}

	themeSvc := theme.NewService(store, zlog)

	// Run TUI application
	app := ui.NewApp(d, bookmarkSvc, themeSvc, zlog)
	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
