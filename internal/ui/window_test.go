package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/IVSoftware/debug-slow-flow/internal/backend"
)

func TestWindowTextIsTitle(t *testing.T) {
	win, _, _, _, _ := buildPeopleForm(t)
	if got := win.Text(); got != "Slow Flow" {
		t.Errorf("Text() = %q, want %q", got, "Slow Flow")
	}

	var w Widget = win
	if _, ok := w.(Texter); !ok {
		t.Error("window does not implement Texter")
	}
}

func TestPanelHasNoText(t *testing.T) {
	_, pnl, _, _, _ := buildPeopleForm(t)
	var w Widget = pnl
	if _, ok := w.(Texter); ok {
		t.Error("panel implements Texter; its label must derive from its name")
	}
}

func TestHitTestIgnoresFocus(t *testing.T) {
	win, _, name, _, btn := buildPeopleForm(t)

	win.SetFocus(btn)
	if got := win.WidgetAt(Point{5, 3}); got != Widget(name) {
		t.Errorf("WidgetAt resolved %q while button had focus, want %q", got.Name(), name.Name())
	}
}

func TestFocusClearedOnDisposal(t *testing.T) {
	win, _, _, _, btn := buildPeopleForm(t)

	win.SetFocus(btn)
	btn.Dispose()
	if got := win.Focus(); got != nil {
		t.Errorf("Focus() = %v after owner disposal, want nil", got)
	}
}

func TestWindowForwardsKeysToFocus(t *testing.T) {
	win, _, _, _, btn := buildPeopleForm(t)

	clicks := 0
	btn.Clicked().Attach(func() { clicks++ })
	win.SetFocus(btn)

	win.HandleMessage(&Message{Kind: KindKeyDown, Key: backend.KeyEnter, Target: win.Handle()})
	if clicks != 1 {
		t.Errorf("focused button saw %d activations, want 1", clicks)
	}
}

func TestModalGrabsHitTest(t *testing.T) {
	win, _, name, _, _ := buildPeopleForm(t)

	win.ShowMessage("Notice", "Alice clicked")
	if !win.ModalVisible() {
		t.Fatal("ModalVisible() = false after ShowMessage")
	}

	if got := win.WidgetAt(Point{5, 3}); got != Widget(win) {
		t.Errorf("WidgetAt over %q resolved %q during modal, want the window", name.Name(), got.Name())
	}
	if got := win.WidgetAt(Point{70, 3}); got != nil {
		t.Errorf("WidgetAt outside window = %v during modal, want nil", got)
	}
}

func TestModalDismiss(t *testing.T) {
	tests := []struct {
		name string
		msg  Message
		want bool
	}{
		{"key dismisses", Message{Kind: KindKeyDown, Rune: 'x'}, false},
		{"primary press dismisses", Message{Kind: KindPrimaryButtonDown}, false},
		{"mouse move does not", Message{Kind: KindMouseMove}, true},
		{"secondary press does not", Message{Kind: KindSecondaryButtonDown}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			win, _, _, _, _ := buildPeopleForm(t)
			win.ShowMessage("Notice", "text")

			m := tt.msg
			m.Target = win.Handle()
			win.HandleMessage(&m)

			if got := win.ModalVisible(); got != tt.want {
				t.Errorf("ModalVisible() = %v after %v, want %v", got, tt.msg.Kind, tt.want)
			}
		})
	}
}

func TestShowMessageReplaces(t *testing.T) {
	win, _, _, _, _ := buildPeopleForm(t)
	win.ShowMessage("First", "one")
	win.ShowMessage("Second", "two")
	if win.modal.title != "Second" {
		t.Errorf("modal title = %q, want the replacement", win.modal.title)
	}
}

func TestPublishClickObserved(t *testing.T) {
	win, _, name, _, _ := buildPeopleForm(t)

	var got []ClickInfo
	win.ClickObserved().Attach(func(ci ClickInfo) { got = append(got, ci) })

	ci := ClickInfo{Target: name, Pos: Point{5, 3}, Time: time.Now()}
	win.PublishClickObserved(ci)

	if len(got) != 1 {
		t.Fatalf("subscriber saw %d clicks, want 1", len(got))
	}
	if got[0].Target != Widget(name) {
		t.Errorf("subscriber saw target %q, want %q", got[0].Target.Name(), name.Name())
	}
}

func TestWindowPaintsModalOnTop(t *testing.T) {
	win, _, _, _, _ := buildPeopleForm(t)
	nb := backend.NewNullBackend(60, 20)

	win.ShowMessage("Notice", "hello")
	win.Paint(nb)

	// The box is centered somewhere; its title row must carry the title.
	found := false
	for y := 0; y < 20; y++ {
		if strings.Contains(nb.Row(y), "Notice") {
			found = true
			break
		}
	}
	if !found {
		t.Error("modal title not painted")
	}
}
