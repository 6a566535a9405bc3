// Package markdown renders itinerary markdown for the terminal.
package markdown

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
)

// Renderer renders markdown with syntax highlighting. Rendered transcript
// turns are cached by index since itineraries arrive complete.
type Renderer struct {
	glamour *glamour.TermRenderer
	width   int
	cache   map[int]string
}

// NewRenderer creates a renderer wrapping at the given width.
func NewRenderer(width int) (*Renderer, error) {
	gr, err := glamour.NewTermRenderer(
		glamour.WithStyles(customStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	return &Renderer{
		glamour: gr,
		width:   width,
		cache:   map[int]string{},
	}, nil
}

// Render renders markdown content. The index keys the cache; pass -1 to skip
// caching.
func (r *Renderer) Render(index int, content string) string {
	if rendered, ok := r.cache[index]; ok {
		return rendered
	}
	rendered, err := r.glamour.Render(content)
	if err != nil {
		return content
	}
	rendered = strings.Trim(rendered, "\n")
	if index >= 0 {
		r.cache[index] = rendered
	}
	return rendered
}

// Reset drops the render cache. Call when cached indices no longer identify
// the same content, e.g. after the transcript is rebuilt.
func (r *Renderer) Reset() {
	r.cache = map[int]string{}
}

// SetWidth rebuilds the renderer at a new wrap width, dropping the cache.
func (r *Renderer) SetWidth(width int) error {
	if r.width == width {
		return nil
	}
	newRenderer, err := NewRenderer(width)
	if err != nil {
		return err
	}
	*r = *newRenderer
	return nil
}

// customStyle trims the default Dracula style's margins for tighter output.
func customStyle() ansi.StyleConfig {
	style := styles.DraculaStyleConfig
	zero := uint(0)
	style.Document.Margin = &zero
	style.CodeBlock.Margin = &zero
	style.CodeBlock.Indent = &zero
	style.CodeBlock.Prefix = ""
	style.CodeBlock.BlockPrefix = ""
	style.Paragraph.BlockPrefix = ""
	style.Paragraph.BlockSuffix = ""
	return style
}
