package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/vosi/pkg/dal"
	"github.com/matzehuels/vosi/pkg/errors"
	"github.com/matzehuels/vosi/pkg/vosi"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// browseCommand creates the interactive table browser.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse <baseurl>",
		Short: "Browse a service's tables interactively",
		Long: `Open an interactive list of the declared tables. Selecting a table shows
its columns, fetching them from the service if needed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, done, err := c.newService(ctx, args[0])
			if err != nil {
				return err
			}
			defer done()

			tables, err := withSpinner(ctx, c.errOut, "Fetching tables...", func() (*dal.Tables, error) {
				return svc.Tables(ctx)
			})
			if err != nil {
				return err
			}
			if tables.Len() == 0 {
				printWarning("%s declares no tables", svc.BaseURL())
				return nil
			}

			p := tea.NewProgram(NewTableBrowserModel(ctx, tables), tea.WithContext(ctx), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
}

// =============================================================================
// TableBrowserModel - Interactive table selection
// =============================================================================

// tableLoadedMsg carries the result of a table lookup.
type tableLoadedMsg struct {
	name  string
	table *vosi.Table
	err   error
}

// TableBrowserModel is the bubbletea model for browsing declared tables.
type TableBrowserModel struct {
	ctx    context.Context
	tables *dal.Tables
	names  []string

	Cursor int
	Offset int
	Height int

	// Detail is the table being shown; nil while the list is shown.
	Detail  *vosi.Table
	Loading string
	Err     error
}

// NewTableBrowserModel creates a browser over tables.
func NewTableBrowserModel(ctx context.Context, tables *dal.Tables) TableBrowserModel {
	var names []string
	for n := range tables.Keys() {
		names = append(names, n)
	}
	return TableBrowserModel{
		ctx:    ctx,
		tables: tables,
		names:  names,
		Height: 15,
	}
}

func (m TableBrowserModel) Init() tea.Cmd {
	return nil
}

func (m TableBrowserModel) lookup(name string) tea.Cmd {
	return func() tea.Msg {
		t, err := m.tables.Lookup(m.ctx, name)
		return tableLoadedMsg{name: name, table: t, err: err}
	}
}

func (m TableBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tableLoadedMsg:
		if msg.name != m.Loading {
			return m, nil
		}
		m.Loading = ""
		m.Err = msg.err
		m.Detail = msg.table
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc", "backspace", "left", "h":
			if m.Detail != nil || m.Err != nil {
				m.Detail, m.Err = nil, nil
				return m, nil
			}
			if msg.String() == "esc" {
				return m, tea.Quit
			}
		case "up", "k":
			if m.Detail == nil && m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Detail == nil && m.Cursor < len(m.names)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter", "right", "l":
			if m.Detail == nil && m.Loading == "" && len(m.names) > 0 {
				m.Err = nil
				m.Loading = m.names[m.Cursor]
				return m, m.lookup(m.Loading)
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m TableBrowserModel) View() string {
	var b strings.Builder

	switch {
	case m.Detail != nil:
		b.WriteString(formatTable(m.Detail))
		b.WriteString("\n")
		b.WriteString(listDimStyle.Render("esc back  q quit"))
		return b.String()
	case m.Err != nil:
		b.WriteString(StyleError.Render(errors.UserMessage(m.Err)))
		b.WriteString("\n\n")
		b.WriteString(listDimStyle.Render("esc back  q quit"))
		return b.String()
	}

	b.WriteString(StyleTitle.Render("Tables"))
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  %s", m.tables.EndpointURL())))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ describe  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.names))
	for i := m.Offset; i < end; i++ {
		name := m.names[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := cursor + name
		if m.tables.Loaded(name) {
			line += listDimStyle.Render(" ✓")
		}
		if name == m.Loading {
			line += listDimStyle.Render(" loading...")
		}
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d] · %d described", m.Cursor+1, len(m.names), m.tables.LoadedCount())))
	return b.String()
}
