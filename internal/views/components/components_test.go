package components

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsole_AppendsAndMergesRuns(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	c := NewConsole()
	c.InsertText("one ")
	c.InsertText("two\n")
	c.SetTextColor(theme.ColorNameError)
	c.InsertText("bad\n")
	c.SetTextColor(theme.ColorNameForeground)
	c.InsertText("")
	c.InsertText("three")
	c.Refresh()

	assert.Equal(t, "one two\nbad\nthree", c.Text())

	segments := c.Segments()
	require.Len(t, segments, 3)
	assert.Equal(t, "one two\n", segments[0].Text)
	assert.Equal(t, theme.ColorNameError, segments[1].Style.ColorName)
	assert.Equal(t, "three", segments[2].Text)
	assert.True(t, segments[2].Style.Inline)

	c.Clear()
	assert.Empty(t, c.Text())
	assert.Empty(t, c.Segments())
}

func TestDockPanel_NotifiesTransitionsOnly(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	p := NewDockPanel("filesWidget", "Files", widget.NewLabel("content"))
	var events []bool
	p.OnVisibilityChanged(func(name string, visible bool) {
		assert.Equal(t, "filesWidget", name)
		events = append(events, visible)
	})

	p.Show()
	p.SetVisible(false)
	p.Hide()
	p.SetVisible(true)
	p.Close()

	assert.Equal(t, []bool{false, true, false}, events)
	assert.False(t, p.Visible())
	assert.Equal(t, "Files", p.Title())
}

func TestDockPanel_MinSize(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	p := NewDockPanel("outputWidget", "Output", widget.NewLabel("x"))
	p.SetMinSize(fyne.NewSize(0, 180))

	assert.GreaterOrEqual(t, p.MinSize().Height, float32(180))
}

func TestFileList(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	fl := NewFileList()
	require.NoError(t, fl.Add("a.asc"))
	require.NoError(t, fl.Add("b.asc"))

	var selected []int
	fl.SetSelectedHandler(func(i int) { selected = append(selected, i) })
	fl.Select(1)

	assert.Equal(t, []string{"a.asc", "b.asc"}, fl.Names())
	assert.Equal(t, []int{1}, selected)
}

func TestRawPreview(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	rp := NewRawPreview()
	rp.SetContents("a\tb\r\n")
	assert.Equal(t, "a\tb\r\n", rp.Contents())
	rp.Clear()
	assert.Empty(t, rp.Contents())
}
