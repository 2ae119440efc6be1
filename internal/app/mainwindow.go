package app

import (
	"fmt"

	"github.com/IVSoftware/debug-slow-flow/internal/config"
	"github.com/IVSoftware/debug-slow-flow/internal/ui"
)

// logRows is how many click-log lines the form shows.
const logRows = 5

// mainForm is the demo form: a panel of person rows, a rolling click
// log, a status line and a quit button. Most of the labels carry text;
// the blank age cells and the panel backgrounds are exactly the
// widgets whose clicks fall back to name-derived labels.
type mainForm struct {
	win      *ui.Window
	panel    *ui.Panel
	names    []*ui.Label
	ages     []*ui.Label
	logPanel *ui.Panel
	logLines []*ui.Label
	logBuf   []string
	status   *ui.Label
	quit     *ui.Button
}

// buildMainForm populates the window from the configuration.
func buildMainForm(win *ui.Window, cfg *config.Config, theme *config.Theme) *mainForm {
	win.SetStyle(theme.Window)

	f := &mainForm{win: win}
	f.panel = ui.NewPanel(win, "pnlPeople")
	f.panel.SetStyle(theme.Panel)
	f.buildRows(cfg, theme)

	f.quit = ui.NewButton(win, "btnQuit", "Quit")
	f.quit.SetStyle(theme.Button)

	f.logPanel = ui.NewPanel(win, "pnlLog")
	f.logPanel.SetStyle(theme.Panel)
	for i := 0; i < logRows; i++ {
		line := ui.NewLabel(f.logPanel, fmt.Sprintf("lblLog%d", i+1), "")
		line.SetStyle(theme.Label)
		f.logLines = append(f.logLines, line)
	}

	f.status = ui.NewLabel(win, "lblStatus", "")
	f.status.SetStyle(theme.Accent)

	// Keyboard focus sits on the button; click resolution never
	// consults it.
	win.SetFocus(f.quit)
	return f
}

// buildRows creates one name and one age label per configured person.
// Names are 1-based to match how the rows read on screen.
func (f *mainForm) buildRows(cfg *config.Config, theme *config.Theme) {
	for i, name := range cfg.People.Names {
		lblName := ui.NewLabel(f.panel, fmt.Sprintf("lblName%d", i+1), name)
		lblName.SetStyle(theme.Label)
		f.names = append(f.names, lblName)

		lblAge := ui.NewLabel(f.panel, fmt.Sprintf("lblAge%d", i+1), cfg.People.Age(i))
		lblAge.SetStyle(theme.Label)
		f.ages = append(f.ages, lblAge)
	}
}

// Rebuild replaces the person rows after a configuration reload. The
// panel, button and status line survive; their handles stay valid.
func (f *mainForm) Rebuild(cfg *config.Config, theme *config.Theme) {
	for _, l := range f.names {
		l.Dispose()
	}
	for _, l := range f.ages {
		l.Dispose()
	}
	f.names = nil
	f.ages = nil

	f.win.SetStyle(theme.Window)
	f.panel.SetStyle(theme.Panel)
	f.quit.SetStyle(theme.Button)
	f.logPanel.SetStyle(theme.Panel)
	for _, line := range f.logLines {
		line.SetStyle(theme.Label)
	}
	f.status.SetStyle(theme.Accent)
	f.buildRows(cfg, theme)
}

// Layout positions everything inside the window bounds.
func (f *mainForm) Layout(b ui.Rect) {
	panelW := b.Width - 4
	if panelW > 44 {
		panelW = 44
	}
	if panelW < 12 {
		panelW = 12
	}
	panelH := len(f.names) + 2
	panel := ui.Rect{X: b.X + 2, Y: b.Y + 2, Width: panelW, Height: panelH}
	f.panel.SetBounds(panel)

	for i := range f.names {
		y := panel.Y + 1 + i
		f.names[i].SetBounds(ui.Rect{X: panel.X + 2, Y: y, Width: 20, Height: 1})
		f.ages[i].SetBounds(ui.Rect{X: panel.X + 24, Y: y, Width: 8, Height: 1})
	}

	f.quit.SetBounds(ui.Rect{X: b.X + 2, Y: panel.Bottom() + 1, Width: 10, Height: 1})

	logPanel := ui.Rect{X: b.X + 2, Y: panel.Bottom() + 3, Width: panelW + 16, Height: logRows + 2}
	if logPanel.Right() > b.Right()-2 {
		logPanel.Width = b.Right() - 2 - logPanel.X
	}
	f.logPanel.SetBounds(logPanel)
	for i, line := range f.logLines {
		line.SetBounds(ui.Rect{X: logPanel.X + 2, Y: logPanel.Y + 1 + i, Width: logPanel.Width - 4, Height: 1})
	}

	f.status.SetBounds(ui.Rect{X: b.X + 2, Y: b.Bottom() - 2, Width: b.Width - 4, Height: 1})
}

// SetStatus updates the status line.
func (f *mainForm) SetStatus(s string) {
	f.status.SetText(s)
}

// AppendLog pushes a line onto the rolling click log, dropping the
// oldest once the view is full.
func (f *mainForm) AppendLog(s string) {
	f.logBuf = append(f.logBuf, s)
	if len(f.logBuf) > logRows {
		f.logBuf = f.logBuf[len(f.logBuf)-logRows:]
	}
	for i, line := range f.logLines {
		if i < len(f.logBuf) {
			line.SetText(f.logBuf[i])
		} else {
			line.SetText("")
		}
	}
}
