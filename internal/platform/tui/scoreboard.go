package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-frogger/internal/storage"
)

const (
	minWidthForSidebar = 80
	sidebarWidth       = 22
	maxRuns            = 100
)

// boardView selects which runs the scoreboard lists.
type boardView int

const (
	viewBest boardView = iota
	viewRecent
)

func (v boardView) heading() string {
	if v == viewRecent {
		return "RECENT RUNS"
	}
	return "HIGH SCORES"
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1)
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
)

// ScoreboardKeyMap holds the scoreboard key bindings.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Switch key.Binding
	Quit   key.Binding
}

func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Quit}
}

func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Switch, k.Quit},
	}
}

func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		Top:    key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom: key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Switch: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "best/recent")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel browses the run ledger of one game.
type ScoreboardModel struct {
	gameID string
	title  string
	store  *storage.Store
	view   boardView

	runs    []storage.Run
	stats   *storage.Stats
	loadErr error

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap

	width, height int
	quitting      bool
}

func NewScoreboardModel(store *storage.Store, gameID, title string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		gameID: gameID,
		title:  title,
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
	}
	m.resize(width, height)
	m.load()
	return m
}

func (m ScoreboardModel) showSidebar() bool {
	return m.width >= minWidthForSidebar
}

// resize rebuilds the table for a new terminal size; the Player column
// takes whatever room is left.
func (m *ScoreboardModel) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width

	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 7},
		{Title: "Home", Width: 5},
		{Title: "Deaths", Width: 7},
		{Title: "Player", Width: 10},
		{Title: "Date", Width: 12},
	}
	room := width - 6
	if m.showSidebar() {
		room -= sidebarWidth + 4
	}
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if extra := room - used + columns[4].Width; extra > columns[4].Width {
		columns[4].Width = min(extra, 24)
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)

	// Title, help line and borders take eight rows.
	m.table = table.New(
		table.WithColumns(columns),
		table.WithRows(runRows(m.runs)),
		table.WithFocused(true),
		table.WithHeight(max(height-8, 3)),
		table.WithStyles(styles),
	)
}

// load reads the runs for the current view and the aggregate stats.
func (m *ScoreboardModel) load() {
	m.runs, m.stats, m.loadErr = nil, nil, nil
	if m.store != nil {
		query := m.store.TopRuns
		if m.view == viewRecent {
			query = m.store.RecentRuns
		}
		m.runs, m.loadErr = query(m.gameID, maxRuns)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.GameStats(m.gameID)
		}
	}
	m.table.SetRows(runRows(m.runs))
	m.table.GotoTop()
}

// runRows formats runs as table rows in the given order.
func runRows(runs []storage.Run) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{
			"#" + strconv.Itoa(i+1),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Crossings),
			strconv.Itoa(r.Deaths),
			player,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Switch):
			m.view = (m.view + 1) % 2
			m.load()
			return m, nil
		case key.Matches(msg, m.keys.Top):
			m.table.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.Bottom):
			m.table.GotoBottom()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(boardTitleStyle.Render(centerText(m.view.heading()+" - "+m.title, m.width)))
	b.WriteString("\n\n")

	body := boardFrameStyle.Render(m.tableContent())
	if m.showSidebar() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar(), "  ", body)
	} else {
		body = centerText(body, m.width)
	}
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) sidebar() string {
	style := boardFrameStyle.Width(sidebarWidth)

	var sb strings.Builder
	sb.WriteString("Stats\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")

	st := m.stats
	if st == nil || st.Runs == 0 {
		sb.WriteString("No runs yet")
		return style.Render(sb.String())
	}

	fmt.Fprintf(&sb, "Runs:    %d\n", st.Runs)
	fmt.Fprintf(&sb, "Best:    %d\n", st.HighScore)
	fmt.Fprintf(&sb, "Average: %.0f\n", st.AvgScore)
	fmt.Fprintf(&sb, "Homes:   %d\n", st.TotalCrossings)
	fmt.Fprintf(&sb, "Deaths:  %d", st.TotalDeaths)
	if !st.LastPlayed.IsZero() {
		fmt.Fprintf(&sb, "\nLast:    %s", st.LastPlayed.Format("Jan 02"))
	}
	return style.Render(sb.String())
}

func (m ScoreboardModel) tableContent() string {
	switch {
	case m.store == nil:
		return boardEmptyStyle.Render("Score storage is unavailable.")
	case m.loadErr != nil:
		return boardEmptyStyle.Render("Could not load scores:\n" + m.loadErr.Error())
	case len(m.runs) == 0:
		return boardEmptyStyle.Render("No runs recorded yet.\nFill a goal slot to set a high score!")
	}
	return m.table.View()
}

// centerText pads text on the left to centre it in width columns.
func centerText(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	return strings.Repeat(" ", (width-textWidth)/2) + text
}

// RunScoreboard shows the scoreboard until the user quits.
func RunScoreboard(store *storage.Store, gameID, title string, width, height int) error {
	_, err := tea.NewProgram(
		NewScoreboardModel(store, gameID, title, width, height),
		tea.WithAltScreen(),
	).Run()
	return err
}
