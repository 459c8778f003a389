package render

import (
	"fmt"

	"github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"

	"frontpanel/wire"
)

// View shows the rendered panel grid in a full-screen terminal viewer.
// It blocks until the user quits with q, Esc or Ctrl-C. Axis framing is
// forced off; the viewer's widget border replaces it.
func View(p wire.Panel, opts Options) error {
	opts.Axes = false
	grid, err := Grid(p, opts)
	if err != nil {
		return err
	}

	if err := termui.Init(); err != nil {
		return fmt.Errorf("termui init: %w", err)
	}
	defer termui.Close()

	lo, hi := p.Bounds()
	view := widgets.NewParagraph()
	view.Title = fmt.Sprintf("panel %s -> %s", lo, hi)
	view.Text = grid

	w, h := termui.TerminalDimensions()
	view.SetRect(0, 0, w, h)
	termui.Render(view)

	for e := range termui.PollEvents() {
		switch e.ID {
		case "q", "<Escape>", "<C-c>":
			return nil
		case "<Resize>":
			size := e.Payload.(termui.Resize)
			view.SetRect(0, 0, size.Width, size.Height)
			termui.Clear()
			termui.Render(view)
		}
	}
	return nil
}
