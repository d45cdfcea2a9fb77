package commands

import (
	"fmt"
	"os"

	"github.com/dastanaron/quizcards/internal/deck"
	"github.com/dastanaron/quizcards/internal/parser"
)

// ImportCommand converts an HTML quiz page into a YAML deck file
type ImportCommand struct {
	parser *parser.Parser
}

// NewImportCommand creates a new import command
func NewImportCommand() *ImportCommand {
	return &ImportCommand{parser: parser.NewParser()}
}

// Execute reads the HTML page at srcPath and writes the extracted cards
// as a deck file at destPath
func (c *ImportCommand) Execute(srcPath, destPath string) error {
	file, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("cannot open file: %w", err)
	}
	defer file.Close()

	cards, err := c.parser.ParseQuizHTML(file)
	if err != nil {
		return fmt.Errorf("failed to parse HTML: %w", err)
	}
	if len(cards) == 0 {
		return fmt.Errorf("no cards found in %s", srcPath)
	}

	// Validate before writing so a broken page never produces a deck
	// the application then refuses to load
	if _, err := deck.New(cards); err != nil {
		return fmt.Errorf("imported cards are invalid: %w", err)
	}

	if err := deck.Save(destPath, cards); err != nil {
		return err
	}

	fmt.Printf("Imported %d cards to %s\n", len(cards), destPath)
	return nil
}
