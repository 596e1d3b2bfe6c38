package cli

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/vosi/pkg/dal"
	"github.com/matzehuels/vosi/pkg/errors"
	"github.com/matzehuels/vosi/pkg/vosi"
)

func browserTables() *dal.Tables {
	set := &vosi.TableSet{Tables: []vosi.Table{
		{Name: "a", Columns: []vosi.Column{{Name: "x"}}},
		{Name: "b", Columns: []vosi.Column{{Name: "y"}}},
		{Name: "c", Columns: []vosi.Column{{Name: "z"}}},
	}}
	return dal.NewTables(set, "http://example.org/tables", nil)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m TableBrowserModel, keys ...string) (TableBrowserModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(key(k))
		m = next.(TableBrowserModel)
	}
	return m, cmd
}

func TestBrowserNavigation(t *testing.T) {
	m := NewTableBrowserModel(context.Background(), browserTables())

	m, _ = press(t, m, "down", "down", "down")
	if m.Cursor != 2 {
		t.Errorf("Cursor = %d, want 2 (clamped)", m.Cursor)
	}
	m, _ = press(t, m, "up", "k")
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0", m.Cursor)
	}
	if !strings.Contains(m.View(), "[1/3]") {
		t.Errorf("view missing position:\n%s", m.View())
	}
}

func TestBrowserDescribe(t *testing.T) {
	tables := browserTables()
	m := NewTableBrowserModel(context.Background(), tables)

	m, cmd := press(t, m, "j", "enter")
	if m.Loading != "b" || cmd == nil {
		t.Fatalf("Loading = %q, cmd = %v", m.Loading, cmd)
	}

	next, _ := m.Update(cmd())
	m = next.(TableBrowserModel)
	if m.Detail == nil || m.Detail.Name != "b" {
		t.Fatalf("Detail = %+v", m.Detail)
	}
	if !strings.Contains(m.View(), "y") {
		t.Errorf("detail view missing column:\n%s", m.View())
	}
	if !tables.Loaded("b") {
		t.Error("table b should be cached after describe")
	}

	m, cmd = press(t, m, "esc")
	if m.Detail != nil || cmd != nil {
		t.Error("esc should return to the list")
	}
	if !strings.Contains(m.View(), "b ✓") {
		t.Errorf("list should mark loaded table:\n%s", m.View())
	}
	if !strings.Contains(m.View(), "1 described") {
		t.Errorf("status line should count described tables:\n%s", m.View())
	}
}

func TestBrowserIgnoresStaleResult(t *testing.T) {
	m := NewTableBrowserModel(context.Background(), browserTables())
	next, _ := m.Update(tableLoadedMsg{name: "a", table: &vosi.Table{Name: "a"}})
	if next.(TableBrowserModel).Detail != nil {
		t.Error("result for a table not being loaded should be ignored")
	}
}

func TestBrowserShowsError(t *testing.T) {
	m := NewTableBrowserModel(context.Background(), browserTables())
	m.Loading = "a"
	next, _ := m.Update(tableLoadedMsg{name: "a", err: errors.New(errors.ErrCodeService, "request to http://example.org/tables/a failed")})
	m = next.(TableBrowserModel)
	if !strings.Contains(m.View(), "request to http://example.org/tables/a failed") {
		t.Errorf("view missing error:\n%s", m.View())
	}
}

func TestBrowserQuit(t *testing.T) {
	m := NewTableBrowserModel(context.Background(), browserTables())
	_, cmd := press(t, m, "q")
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should produce tea.QuitMsg")
	}
}

func TestBrowserWindowSize(t *testing.T) {
	m := NewTableBrowserModel(context.Background(), browserTables())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 8})
	if h := next.(TableBrowserModel).Height; h != 5 {
		t.Errorf("Height = %d, want minimum 5", h)
	}
}
