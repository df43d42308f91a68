package statusbar

import (
	"strings"
	"testing"

	"github.com/GustavoCaso/apero/internal/ui/keys"
)

func TestStatusBarView(t *testing.T) {
	sb := New(keys.Keys)
	sb.SetWidth(120)

	got := sb.View()
	for _, want := range []string{"mnemonic", "hex", "quit"} {
		if !strings.Contains(got, want) {
			t.Errorf("View() = %q, should contain %q", got, want)
		}
	}
}

func TestStatusBarToggleFullView(t *testing.T) {
	sb := New(keys.Keys)
	sb.SetWidth(120)

	if sb.IsFullView() {
		t.Fatal("status bar should start in short view")
	}
	short := sb.View()

	sb.ToggleFullView()
	if !sb.IsFullView() {
		t.Fatal("ToggleFullView should switch to full view")
	}
	if !strings.Contains(sb.View(), "switch tab") {
		t.Errorf("full view should list the switch binding, got %q", sb.View())
	}
	if strings.Contains(short, "switch tab") {
		t.Errorf("short view should not list the switch binding")
	}
}
