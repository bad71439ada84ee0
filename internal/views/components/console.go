package components

import (
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Console is an append-only, colored text region for stdout/stderr output.
// It is safe to write from any goroutine; drawing happens on the UI thread.
type Console struct {
	widget.BaseWidget

	mu       sync.Mutex
	color    fyne.ThemeColorName
	segments []widget.RichTextSegment
	text     strings.Builder

	rich   *widget.RichText
	scroll *container.Scroll
}

// NewConsole creates an empty console
func NewConsole() *Console {
	c := &Console{
		color: theme.ColorNameForeground,
		rich:  widget.NewRichText(),
	}
	c.rich.Wrapping = fyne.TextWrapBreak
	c.scroll = container.NewVScroll(c.rich)
	c.ExtendBaseWidget(c)
	return c
}

// CreateRenderer creates the renderer for Console
func (c *Console) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.scroll)
}

// SetTextColor sets the color for subsequently inserted text
func (c *Console) SetTextColor(color fyne.ThemeColorName) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.color = color
}

// InsertText appends text in the current color
func (c *Console) InsertText(text string) {
	if text == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.text.WriteString(text)

	// segments already handed to the renderer are never mutated
	if n := len(c.segments); n > 0 {
		if last, ok := c.segments[n-1].(*widget.TextSegment); ok && last.Style.ColorName == c.color {
			c.segments[n-1] = newConsoleSegment(last.Text+text, c.color)
			return
		}
	}
	c.segments = append(c.segments, newConsoleSegment(text, c.color))
}

// Refresh pushes pending text to the screen and scrolls to the end
func (c *Console) Refresh() {
	c.mu.Lock()
	segments := append([]widget.RichTextSegment(nil), c.segments...)
	c.mu.Unlock()

	fyne.Do(func() {
		c.rich.Segments = segments
		c.rich.Refresh()
		c.scroll.ScrollToBottom()
	})
}

// Text returns everything written so far
func (c *Console) Text() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text.String()
}

// Segments returns the colored runs written so far
func (c *Console) Segments() []*widget.TextSegment {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]*widget.TextSegment, 0, len(c.segments))
	for _, s := range c.segments {
		if ts, ok := s.(*widget.TextSegment); ok {
			out = append(out, ts)
		}
	}
	return out
}

// Clear removes all text
func (c *Console) Clear() {
	c.mu.Lock()
	c.segments = nil
	c.text.Reset()
	c.mu.Unlock()
	c.Refresh()
}

func newConsoleSegment(text string, color fyne.ThemeColorName) *widget.TextSegment {
	return &widget.TextSegment{
		Text: text,
		Style: widget.RichTextStyle{
			ColorName: color,
			Inline:    true,
			SizeName:  theme.SizeNameText,
			TextStyle: fyne.TextStyle{Monospace: true},
		},
	}
}
