package parser

import (
	"io"
	"strings"

	"github.com/dastanaron/quizcards/internal/models"

	"golang.org/x/net/html"
)

// Parser extracts quiz cards from HTML pages
type Parser struct{}

// NewParser creates a new parser
func NewParser() *Parser {
	return &Parser{}
}

// ParseQuizHTML parses an HTML quiz page. Every element carrying a
// data-card attribute contributes one card: the id from the attribute,
// the question from its first .question descendant and the answer from
// its first .answer descendant. Elements without an id or question are
// skipped.
func (p *Parser) ParseQuizHTML(r io.Reader) ([]models.Card, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var cards []models.Card

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if id := attrValue(n, "data-card"); id != "" {
				card := models.Card{
					ID:       id,
					Question: strings.TrimSpace(textOfClass(n, "question")),
					Answer:   strings.TrimSpace(textOfClass(n, "answer")),
				}
				if card.Question != "" {
					cards = append(cards, card)
				}
				// A card element never nests other cards
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)
	return cards, nil
}

func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, field := range strings.Fields(attrValue(n, "class")) {
		if field == class {
			return true
		}
	}
	return false
}

// textOfClass returns the text content of the first descendant of n
// carrying the given class
func textOfClass(n *html.Node, class string) string {
	var found *html.Node

	var find func(*html.Node)
	find = func(node *html.Node) {
		if found != nil {
			return
		}
		if node != n && node.Type == html.ElementNode && hasClass(node, class) {
			found = node
			return
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			find(c)
		}
	}

	find(n)
	if found == nil {
		return ""
	}
	return collectText(found)
}

func collectText(n *html.Node) string {
	var sb strings.Builder

	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(n)
	return sb.String()
}
