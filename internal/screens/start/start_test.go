package start

import (
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/adaptiq/internal/api"
	"github.com/abhisek/adaptiq/internal/router"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestStartScreen_Title(t *testing.T) {
	s := New(nil, nil)
	if s.Title() != "Choose Mode" {
		t.Errorf("Title = %q, want %q", s.Title(), "Choose Mode")
	}
}

func TestStartScreen_MenuModes(t *testing.T) {
	s := New(nil, nil)
	if len(s.menu.Items) != 2 {
		t.Fatalf("menu items = %d, want 2", len(s.menu.Items))
	}
}

func TestStartScreen_Navigation(t *testing.T) {
	s := New(nil, nil)

	scr, _ := s.Update(keyPress('j'))
	ss := scr.(*StartScreen)
	if ss.menu.Selected != 1 {
		t.Errorf("Selected = %d, want 1", ss.menu.Selected)
	}

	scr, _ = ss.Update(keyPress('k'))
	ss = scr.(*StartScreen)
	if ss.menu.Selected != 0 {
		t.Errorf("Selected = %d, want 0", ss.menu.Selected)
	}
}

func TestStartScreen_StartFailure(t *testing.T) {
	s := New(nil, nil)

	scr, _ := s.Update(sessionStartedMsg{Mode: api.ModeBKT, Err: errors.New("connection refused")})
	ss := scr.(*StartScreen)

	if ss.errMsg == "" {
		t.Error("expected error message after failed start")
	}
	if ss.View(80, 24) == "" {
		t.Error("expected non-empty view with error")
	}
}

func TestStartScreen_StartSuccess(t *testing.T) {
	s := New(nil, nil)

	_, cmd := s.Update(sessionStartedMsg{Mode: api.ModeBKT})
	if cmd == nil {
		t.Fatal("expected a navigation command after successful start")
	}

	msg := cmd()
	if _, ok := msg.(router.ReplaceScreenMsg); !ok {
		t.Errorf("msg = %T, want router.ReplaceScreenMsg", msg)
	}
}

func TestStartScreen_KeysIgnoredWhileStarting(t *testing.T) {
	s := New(nil, nil)
	s.starting = true

	scr, cmd := s.Update(keyPress('j'))
	ss := scr.(*StartScreen)

	if cmd != nil {
		t.Error("expected no command while starting")
	}
	if ss.menu.Selected != 0 {
		t.Errorf("Selected = %d, want 0", ss.menu.Selected)
	}
}
