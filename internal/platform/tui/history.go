package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/quiz-breakout/internal/storage"
)

// History screen palette (ANSI 256).
var (
	colorAccent    = lipgloss.Color("229")
	colorHighlight = lipgloss.Color("57")
	colorBorder    = lipgloss.Color("240")
	colorMuted     = lipgloss.Color("241")
	colorSummary   = lipgloss.Color("245")
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	tabStyle       = lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1)
	activeTabStyle = tabStyle.Bold(true).Foreground(colorAccent).Background(colorHighlight)
	summaryStyle   = lipgloss.NewStyle().Foreground(colorSummary)
	frameStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder).Padding(0, 1)
	noticeStyle    = lipgloss.NewStyle().Foreground(colorMuted).Italic(true).Padding(2, 4)
	helpStyle      = lipgloss.NewStyle().Foreground(colorMuted)
)

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	NextCatalog key.Binding
	PrevCatalog key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextCatalog, k.PrevCatalog, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextCatalog, k.PrevCatalog, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextCatalog: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next catalog"),
		),
		PrevCatalog: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev catalog"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel shows per-topic quiz accuracy, one catalog at a time.
type HistoryModel struct {
	catalogs []string
	cursor   int
	store    *storage.Store
	stats    []storage.TopicStat
	totals   storage.Totals
	err      error
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
}

// NewHistoryModel creates a history model over the given catalog names.
func NewHistoryModel(store *storage.Store, catalogs []string, width, height int) HistoryModel {
	h := help.New()
	h.Width = width

	m := HistoryModel{
		catalogs: catalogs,
		store:    store,
		keys:     DefaultHistoryKeyMap(),
		help:     h,
		width:    width,
		height:   height,
	}
	m.table = m.createTable()
	if len(m.catalogs) > 0 {
		m.load()
	}
	return m
}

// createTable creates a new table with columns fitted to the width.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Topic", Width: 10},
		{Title: "Answer", Width: 26},
		{Title: "Tries", Width: 6},
		{Title: "Right", Width: 6},
		{Title: "Acc", Width: 5},
		{Title: "Last played", Width: 13},
	}
	if m.width < 80 {
		columns[1].Width = max(m.width-52, 8)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)), // Leave room for header, totals and help
	)

	st := table.DefaultStyles()
	st.Header = st.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(colorBorder)
	st.Selected = st.Selected.Bold(false).Foreground(colorAccent).Background(colorHighlight)
	t.SetStyles(st)
	return t
}

// load reads the statistics of the selected catalog.
func (m *HistoryModel) load() {
	m.stats, m.totals, m.err = nil, storage.Totals{}, nil
	if m.store != nil {
		catalog := m.catalogs[m.cursor]
		m.stats, m.err = m.store.TopicStats(catalog)
		if m.err == nil {
			m.totals, m.err = m.store.Totals(catalog)
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current statistics.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.stats))
	for i, st := range m.stats {
		last := ""
		if !st.LastPlayed.IsZero() {
			last = st.LastPlayed.Format("Jan 02 15:04")
		}
		rows[i] = table.Row{
			st.TopicID,
			st.Answer,
			fmt.Sprintf("%d", st.Attempts),
			fmt.Sprintf("%d", st.Correct),
			fmt.Sprintf("%.0f%%", st.Accuracy()*100),
			last,
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextCatalog):
			if len(m.catalogs) > 0 {
				m.cursor = (m.cursor + 1) % len(m.catalogs)
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevCatalog):
			if len(m.catalogs) > 0 {
				m.cursor = (m.cursor - 1 + len(m.catalogs)) % len(m.catalogs)
				m.load()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Catalog returns the selected catalog name, or "" without catalogs.
func (m HistoryModel) Catalog() string {
	if len(m.catalogs) == 0 {
		return ""
	}
	return m.catalogs[m.cursor]
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	title := "QUIZ HISTORY"
	if c := m.Catalog(); c != "" {
		title = fmt.Sprintf("QUIZ HISTORY - %s", strings.ToUpper(c))
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n")

	summary := fmt.Sprintf("%d rounds, %d answered, %d correct, %d game overs",
		m.totals.Rounds, m.totals.Answered, m.totals.Correct, m.totals.GameOvers)
	b.WriteString(summaryStyle.Render(centerText(summary, m.width)))
	b.WriteString("\n\n")
	b.WriteString(frameStyle.Render(m.renderTableContent()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderTabs renders the catalog names with the selected one highlighted.
func (m HistoryModel) renderTabs() string {
	tabs := make([]string, len(m.catalogs))
	for i, c := range m.catalogs {
		style := tabStyle
		if i == m.cursor {
			style = activeTabStyle
		}
		tabs[i] = style.Render(c)
	}
	return strings.Join(tabs, " ")
}

// renderTableContent renders the table or an empty/error message.
func (m HistoryModel) renderTableContent() string {
	switch {
	case m.store == nil:
		return noticeStyle.Render("History is unavailable.")
	case m.err != nil:
		return noticeStyle.Render("Cannot read history: " + m.err.Error())
	case len(m.stats) == 0:
		return noticeStyle.Render("No answers recorded yet.\nPlay a round to start your history!")
	}
	return m.table.View()
}

// centerText pads s so it is centered in width columns.
func centerText(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", (width-w)/2) + s
}

// RunHistory runs the history screen.
func RunHistory(store *storage.Store, catalogs []string, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(store, catalogs, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
