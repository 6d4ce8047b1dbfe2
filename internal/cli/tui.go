package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/lablist/pkg/integrations/gitlab"
)

// List styles
var (
	listDimStyle     = lipgloss.NewStyle().Foreground(colorDim)
	tableHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// headerRow is the row index lipgloss tables pass to StyleFunc for headers.
const headerRow = -1

// =============================================================================
// ProjectListModel - Interactive project selection
// =============================================================================

// ProjectListModel is the bubbletea model for interactive project selection.
type ProjectListModel struct {
	Projects []gitlab.Project
	Cursor   int
	Selected *gitlab.Project
	Height   int
	Offset   int
}

// NewProjectListModel creates a new project list model.
func NewProjectListModel(list []gitlab.Project) ProjectListModel {
	return ProjectListModel{
		Projects: list,
		Height:   15,
	}
}

func (m ProjectListModel) Init() tea.Cmd {
	return nil
}

func (m ProjectListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Projects)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		case "end", "G":
			if n := len(m.Projects); n > 0 {
				m.Cursor = n - 1
				m.Offset = max(n-m.Height, 0)
			}
		case "enter":
			if len(m.Projects) == 0 {
				return m, nil
			}
			p := m.Projects[m.Cursor]
			m.Selected = &p
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
	}
	return m, nil
}

func (m ProjectListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Project"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Projects))
	rows := make([][]string, 0, end-m.Offset)
	for i := m.Offset; i < end; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, append([]string{cursor}, projectRow(m.Projects[i], time.Now())...))
	}

	t := projectTable(rows, true).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == headerRow {
				return tableHeaderStyle
			}
			p := m.Projects[m.Offset+row]
			style := lipgloss.NewStyle()
			switch {
			case m.Offset+row == m.Cursor:
				style = style.Foreground(colorCyan).Bold(true)
			case p.Archived:
				style = style.Foreground(colorDim)
			case col == 4 || col == 5:
				style = style.Foreground(colorGray)
			}
			return style
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", min(m.Cursor+1, len(m.Projects)), len(m.Projects))))

	return b.String()
}

// =============================================================================
// Table rendering
// =============================================================================

var projectHeaders = []string{"Project", "Visibility", "Stars", "Activity"}

// projectTable builds a bordered table of project rows. withCursor adds an
// empty leading header for the selection marker column.
func projectTable(rows [][]string, withCursor bool) *table.Table {
	headers := projectHeaders
	if withCursor {
		headers = append([]string{""}, projectHeaders...)
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...)
}

// renderProjects renders list as a static table.
func renderProjects(list []gitlab.Project, now time.Time) string {
	rows := make([][]string, len(list))
	for i, p := range list {
		rows[i] = projectRow(p, now)
	}
	return projectTable(rows, false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == headerRow {
				return tableHeaderStyle
			}
			if list[row].Archived {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle()
		}).
		Render()
}

func projectRow(p gitlab.Project, now time.Time) []string {
	name := p.PathWithNamespace
	if name == "" {
		name = p.Name
	}
	if p.Archived {
		name += " (archived)"
	}
	visibility := p.Visibility
	if visibility == "" {
		visibility = "—"
	}
	return []string{name, visibility, fmt.Sprintf("%d", p.StarCount), formatRelativeTime(p.LastActivityAt, now)}
}

// =============================================================================
// Helpers
// =============================================================================

func formatRelativeTime(t *time.Time, now time.Time) string {
	if t == nil || t.IsZero() {
		return "—"
	}

	diff := now.Sub(*t)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
