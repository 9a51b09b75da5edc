package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeText(m SetupModel, s string) SetupModel {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return next.(SetupModel)
}

func press(m SetupModel, k tea.KeyType) SetupModel {
	next, _ := m.Update(tea.KeyMsg{Type: k})
	return next.(SetupModel)
}

func TestSetupModelCollectsAnswers(t *testing.T) {
	m := NewSetupModel(NewConfig())
	m = typeText(m, "maze.txt")
	m = press(m, tea.KeyEnter)
	if m.Done() {
		t.Fatal("done after first answer")
	}
	m = typeText(m, "да")
	m = press(m, tea.KeyEnter)
	if !m.Done() {
		t.Fatal("not done after second answer")
	}

	cfg := NewConfig()
	m.Apply(cfg)
	if cfg.Level != "maze.txt" || !cfg.Cyclic {
		t.Fatalf("applied config %+v", cfg)
	}
}

func TestSetupModelRequiresLevel(t *testing.T) {
	m := NewSetupModel(NewConfig())
	m = press(m, tea.KeyEnter)
	if m.problem == "" {
		t.Fatal("expected a prompt for the missing level name")
	}
	m = typeText(m, "a.txt")
	m = press(m, tea.KeyEnter)
	m = press(m, tea.KeyEnter)
	if !m.Done() || m.Cyclic() {
		t.Fatalf("done=%v cyclic=%v, want done and bounded", m.Done(), m.Cyclic())
	}
}

func TestSetupModelAbort(t *testing.T) {
	m := press(NewSetupModel(NewConfig()), tea.KeyEsc)
	if !m.Aborted() {
		t.Fatal("esc should abort")
	}
}

func TestParseYes(t *testing.T) {
	for _, s := range []string{"yes", "Y", " ДА ", "д"} {
		if !ParseYes(s) {
			t.Fatalf("ParseYes(%q) = false", s)
		}
	}
	for _, s := range []string{"", "no", "нет", "yep"} {
		if ParseYes(s) {
			t.Fatalf("ParseYes(%q) = true", s)
		}
	}
}

func TestRunSetupSkipsWhenLevelGiven(t *testing.T) {
	cfg := NewConfig()
	cfg.Level = "given.txt"
	cfg.Cyclic = true
	if err := RunSetup(cfg); err != nil {
		t.Fatalf("run setup: %v", err)
	}
	if cfg.Level != "given.txt" || !cfg.Cyclic {
		t.Fatalf("config changed: %+v", cfg)
	}
}
