// Package markdown formats markdown text for terminal output.
package markdown

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/muesli/reflow/wordwrap"
)

var (
	rendererMu sync.Mutex
	renderers  = map[int]*glamour.TermRenderer{}
)

// Render formats markdown for a terminal at the given width. When the
// renderer cannot be constructed, the text falls back to plain word
// wrapping.
func Render(width int, input string) string {
	if width < 1 {
		width = 1
	}
	value := normalizeNewlines(input)
	value = strings.TrimRight(value, "\n")
	if strings.TrimSpace(value) == "" {
		return ""
	}

	renderer := markdownRenderer(width)
	if renderer == nil {
		return wordwrap.String(value, width)
	}
	rendered, err := renderer.Render(value)
	if err != nil {
		return wordwrap.String(value, width)
	}
	return strings.TrimRight(rendered, "\n")
}

func markdownRenderer(width int) *glamour.TermRenderer {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	if cached, ok := renderers[width]; ok {
		return cached
	}
	style := styles.ASCIIStyleConfig
	style.Item.BlockPrefix = "- "
	created, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	renderers[width] = created
	return created
}

func normalizeNewlines(value string) string {
	value = strings.ReplaceAll(value, "\r\n", "\n")
	return strings.ReplaceAll(value, "\r", "\n")
}
