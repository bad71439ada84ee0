// Package console relays stdout/stderr style output into an on-screen text
// region.
package console

import (
	"io"
	"os"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Display is the text region a Relay writes into
type Display interface {
	// SetTextColor sets the color used for text inserted afterwards
	SetTextColor(color fyne.ThemeColorName)
	// InsertText appends text after the current content
	InsertText(text string)
	// Refresh redraws the region now
	Refresh()
}

// Relay is an io.Writer that appends every write to a Display and
// optionally forwards it to an underlying stream. Relays sharing a Display
// must share the lock as well, so color and text land together.
type Relay struct {
	mu          *sync.Mutex
	display     Display
	passthrough io.Writer
	color       fyne.ThemeColorName
}

// NewRelay creates a relay. An empty color leaves the display color as is
// and a nil passthrough disables forwarding.
func NewRelay(display Display, passthrough io.Writer, color fyne.ThemeColorName) *Relay {
	return newRelay(display, passthrough, color, &sync.Mutex{})
}

func newRelay(display Display, passthrough io.Writer, color fyne.ThemeColorName, mu *sync.Mutex) *Relay {
	return &Relay{
		mu:          mu,
		display:     display,
		passthrough: passthrough,
		color:       color,
	}
}

func (r *Relay) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.color != "" {
		r.display.SetTextColor(r.color)
	}
	r.display.InsertText(string(p))
	r.display.Refresh()

	if r.passthrough != nil {
		if _, err := r.passthrough.Write(p); err != nil {
			return len(p), err
		}
	}
	return len(p), nil
}

func (r *Relay) WriteString(s string) (int, error) {
	return r.Write([]byte(s))
}

// Flush flushes the passthrough stream when it supports it
func (r *Relay) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch w := r.passthrough.(type) {
	case interface{ Flush() error }:
		return w.Flush()
	case interface{ Sync() error }:
		// terminals and pipes reject fsync
		_ = w.Sync()
	}
	return nil
}

// Color returns the tag color
func (r *Relay) Color() fyne.ThemeColorName {
	return r.color
}

// Streams pairs the relays standing in for stdout and stderr
type Streams struct {
	Stdout *Relay
	Stderr *Relay
}

// NewStreams creates the stdout relay (foreground color, echoing to
// os.Stdout) and the stderr relay (error color) over one display and one
// lock. Packaged builds have no usable stderr so the stderr relay does not
// echo there.
func NewStreams(display Display, packaged bool) *Streams {
	var errOut io.Writer = os.Stderr
	if packaged {
		errOut = nil
	}
	mu := &sync.Mutex{}
	return &Streams{
		Stdout: newRelay(display, os.Stdout, theme.ColorNameForeground, mu),
		Stderr: newRelay(display, errOut, theme.ColorNameError, mu),
	}
}

// Flush flushes both relays
func (s *Streams) Flush() error {
	if err := s.Stdout.Flush(); err != nil {
		return err
	}
	return s.Stderr.Flush()
}
