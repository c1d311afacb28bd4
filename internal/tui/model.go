package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"procctl/internal/app"
)

// Controller defines the subset of app.App behaviour the TUI needs.
type Controller interface {
	Status() (app.DaemonStatus, error)
	StartDaemon() (*app.DaemonHandle, error)
	List(context.Context, app.ListParams) ([]app.Process, error)
	Kill(context.Context, app.KillParams) (app.KillResult, error)
	Restart(context.Context, app.RestartParams) (app.RestartResult, error)
	Stats(context.Context, app.StatsParams) ([]app.ProcessStats, error)
}

const rpcTimeout = 4 * time.Second

// Model represents the Bubble Tea state.
type Model struct {
	controller Controller

	list      list.Model
	spinner   spinner.Model
	processes []app.Process
	selected  map[uint64]bool
	stats     map[uint64]app.ProcessStats

	daemonStatus app.DaemonStatus
	statusMsg    string

	err     error
	loading bool

	width  int
	height int

	filters app.ListFilters

	lastUpdated time.Time
}

// New constructs a TUI model with default styles.
func New(ctrl Controller) *Model {
	delegate := list.NewDefaultDelegate()
	lst := list.New([]list.Item{}, delegate, 0, 0)
	lst.Title = "Processes"
	lst.SetShowHelp(false)
	lst.SetFilteringEnabled(false)
	lst.DisableQuitKeybindings()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return &Model{
		controller: ctrl,
		list:       lst,
		spinner:    spin,
		stats:      make(map[uint64]app.ProcessStats),
		filters:    app.ListFilters{},
		statusMsg:  "Checking daemon status…",
		loading:    true,
		selected:   make(map[uint64]bool),
	}
}

// Run spins up the Bubble Tea program with sensible defaults.
func Run(ctrl Controller) error {
	m := New(ctrl)
	prog := tea.NewProgram(m, tea.WithAltScreen())
	_, err := prog.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, checkDaemonStatusCmd(m.controller), loadProcessesCmd(m.controller, m.filters))
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.height > 4 {
			m.list.SetSize(msg.Width, msg.Height-4)
		}

	case daemonStatusMsg:
		m.daemonStatus = msg.status
		if msg.status.Running {
			if msg.status.PID > 0 {
				m.statusMsg = fmt.Sprintf("Daemon running (pid %d). Press r to refresh, q to quit.", msg.status.PID)
			} else {
				m.statusMsg = "Daemon running. Press r to refresh, q to quit."
			}
		} else {
			m.statusMsg = "Daemon is not running. Press s to start it."
			m.processes = nil
			m.list.SetItems(nil)
		}

	case processesLoadedMsg:
		m.loading = false
		m.err = nil
		m.processes = msg.processes
		newSelected := make(map[uint64]bool)
		items := make([]list.Item, 0, len(msg.processes))
		for _, proc := range msg.processes {
			selected := m.selected[proc.ID]
			if selected {
				newSelected[proc.ID] = true
			}
			items = append(items, processItem{Process: proc, Selected: selected})
		}
		m.selected = newSelected
		m.list.SetItems(items)
		m.lastUpdated = time.Now()

	case daemonStartedMsg:
		m.statusMsg = "Daemon started."
		return m, tea.Batch(checkDaemonStatusCmd(m.controller), loadProcessesCmd(m.controller, m.filters))

	case actionDoneMsg:
		m.loading = true
		m.statusMsg = msg.text
		return m, loadProcessesCmd(m.controller, m.filters)

	case statsLoadedMsg:
		for _, st := range msg.stats {
			m.stats[st.ID] = st
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case errMsg:
		m.loading = false
		m.err = msg.err

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			return m, loadProcessesCmd(m.controller, m.filters)
		case "s":
			if !m.daemonStatus.Running {
				m.statusMsg = "Starting daemon…"
				return m, startDaemonCmd(m.controller)
			}
		case " ":
			m.toggleCurrentSelection()
		case "c":
			if len(m.selected) > 0 {
				m.clearSelection()
			}
		case "x":
			if ids := m.targetIDs(); len(ids) > 0 {
				m.statusMsg = fmt.Sprintf("Terminating %d process(es)…", len(ids))
				m.clearSelection()
				return m, killCmd(m.controller, ids)
			}
		case "R":
			if current := m.currentProcess(); current != nil {
				m.statusMsg = fmt.Sprintf("Restarting id=%d…", current.ID)
				return m, restartCmd(m.controller, current.ID)
			}
		case "t":
			if ids := m.targetIDs(); len(ids) > 0 {
				return m, statsCmd(m.controller, ids)
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	statusStyle := lipgloss.NewStyle().Bold(true)
	if !m.daemonStatus.Running {
		statusStyle = statusStyle.Foreground(lipgloss.Color("203"))
	} else {
		statusStyle = statusStyle.Foreground(lipgloss.Color("42"))
	}
	b.WriteString(statusStyle.Render(m.statusMsg))
	b.WriteByte('\n')

	if m.loading {
		b.WriteString(m.spinner.View() + " Loading processes…\n")
	} else if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
		b.WriteString(errStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteByte('\n')
	}

	if len(m.list.Items()) == 0 && !m.loading && m.err == nil && m.daemonStatus.Running {
		b.WriteString("No processes found.\n")
	} else {
		b.WriteString(m.list.View())
		b.WriteByte('\n')
	}

	if current := m.currentProcess(); current != nil {
		detail := fmt.Sprintf(
			"id=%d identity=%s alive=%t started=%s\nname=%s\ncmd=%s\ncwd=%s\ntags=[%s]\ngroups=[%s]",
			current.ID,
			current.Identity,
			current.Alive,
			current.Started().Format(time.DateTime),
			valueOrDash(current.Name),
			current.Cmd,
			valueOrDash(current.Cwd),
			strings.Join(current.Tags, ","),
			strings.Join(current.Groups, ","),
		)
		if st, ok := m.stats[current.ID]; ok {
			detail += "\n" + formatStats(st)
		}
		detailStyle := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).MarginBottom(1)
		b.WriteString(detailStyle.Render(detail))
		b.WriteByte('\n')
	}

	help := "Commands: q quit • r reload • s start daemon • space select • c clear selection • x terminate • R restart • t stats"
	if count := len(m.selected); count > 0 {
		help += fmt.Sprintf(" • selected=%d", count)
	}
	if !m.lastUpdated.IsZero() {
		help += fmt.Sprintf(" • last update %s", m.lastUpdated.Format(time.Kitchen))
	}
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	b.WriteString(helpStyle.Render(help))

	return b.String()
}

// processItem adapts app.Process to the bubbles list item interface.
type processItem struct {
	Process  app.Process
	Selected bool
}

func (p processItem) Title() string {
	name := p.Process.Name
	if name == "" {
		name = "-"
	}
	alive := "dead"
	if p.Process.Alive {
		alive = "alive"
	}
	mark := " "
	if p.Selected {
		mark = "✓"
	}
	return fmt.Sprintf("[%s] [id=%d %s] %s (%s)", mark, p.Process.ID, p.Process.Identity, name, alive)
}

func (p processItem) Description() string {
	tags := strings.Join(p.Process.Tags, ",")
	groups := strings.Join(p.Process.Groups, ",")
	return fmt.Sprintf("cmd=%s | tags=[%s] groups=[%s]", p.Process.Cmd, tags, groups)
}

func (p processItem) FilterValue() string {
	return fmt.Sprintf("%d %s %s %s %s", p.Process.ID, p.Process.Identity, p.Process.Name, strings.Join(p.Process.Tags, " "), strings.Join(p.Process.Groups, " "))
}

func (m *Model) toggleCurrentSelection() {
	if len(m.processes) == 0 {
		return
	}
	idx := m.list.Index()
	if idx < 0 || idx >= len(m.processes) {
		return
	}
	item, ok := m.list.Items()[idx].(processItem)
	if !ok {
		return
	}
	if item.Selected {
		delete(m.selected, item.Process.ID)
	} else {
		m.selected[item.Process.ID] = true
	}
	item.Selected = !item.Selected
	m.list.SetItem(idx, item)
}

func (m *Model) clearSelection() {
	m.selected = make(map[uint64]bool)
	items := m.list.Items()
	for i, it := range items {
		if pi, ok := it.(processItem); ok && pi.Selected {
			pi.Selected = false
			m.list.SetItem(i, pi)
		}
	}
}

func (m *Model) currentProcess() *app.Process {
	if len(m.processes) == 0 {
		return nil
	}
	idx := m.list.Index()
	if idx < 0 || idx >= len(m.processes) {
		return nil
	}
	return &m.processes[idx]
}

// targetIDs returns the selected entries, or the highlighted one when
// nothing is selected.
func (m *Model) targetIDs() []uint64 {
	if len(m.selected) > 0 {
		ids := make([]uint64, 0, len(m.selected))
		for _, p := range m.processes {
			if m.selected[p.ID] {
				ids = append(ids, p.ID)
			}
		}
		return ids
	}
	if current := m.currentProcess(); current != nil {
		return []uint64{current.ID}
	}
	return nil
}

func formatStats(st app.ProcessStats) string {
	cpu, mem := "n/a", "n/a"
	if st.CPUKnown {
		cpu = fmt.Sprintf("%.2f%%", st.CPUPercent)
	}
	if st.MemoryKnown {
		mem = fmt.Sprintf("%.2f MB", st.MemoryMB)
	}
	if !st.Running {
		return fmt.Sprintf("cpu=%s mem=%s (not running)", cpu, mem)
	}
	return fmt.Sprintf("cpu=%s mem=%s runtime=%s", cpu, mem, st.Runtime.Truncate(time.Second))
}

func toIntIDs(ids []uint64) []int {
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = int(id)
	}
	return out
}

func valueOrDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

type daemonStatusMsg struct {
	status app.DaemonStatus
}

type processesLoadedMsg struct {
	processes []app.Process
}

type daemonStartedMsg struct{}

type actionDoneMsg struct{ text string }

type statsLoadedMsg struct {
	stats []app.ProcessStats
}

type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func checkDaemonStatusCmd(ctrl Controller) tea.Cmd {
	return func() tea.Msg {
		status, err := ctrl.Status()
		if err != nil {
			return errMsg{err}
		}
		return daemonStatusMsg{status: status}
	}
}

func loadProcessesCmd(ctrl Controller, filters app.ListFilters) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
		defer cancel()
		procs, err := ctrl.List(ctx, app.ListParams{
			Filters: filters,
			Timeout: rpcTimeout,
		})
		if err != nil {
			return errMsg{err}
		}
		return processesLoadedMsg{processes: procs}
	}
}

func startDaemonCmd(ctrl Controller) tea.Cmd {
	return func() tea.Msg {
		if _, err := ctrl.StartDaemon(); err != nil {
			return errMsg{err}
		}
		// Give the daemon a moment to bind the socket.
		time.Sleep(300 * time.Millisecond)
		return daemonStartedMsg{}
	}
}

func killCmd(ctrl Controller, ids []uint64) tea.Cmd {
	return func() tea.Msg {
		// Termination waits up to the daemon's grace period per process.
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		res, err := ctrl.Kill(ctx, app.KillParams{
			Filters:  app.ListFilters{IDs: toIntIDs(ids)},
			AllowAll: true,
			Timeout:  30 * time.Second,
		})
		if err != nil {
			return errMsg{err}
		}
		if res.Message != "" {
			return actionDoneMsg{text: res.Message}
		}
		return actionDoneMsg{text: fmt.Sprintf("Terminated %d process(es).", res.Successes)}
	}
}

func restartCmd(ctrl Controller, id uint64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		res, err := ctrl.Restart(ctx, app.RestartParams{
			Filters: app.ListFilters{IDs: []int{int(id)}},
			Timeout: 30 * time.Second,
		})
		if err != nil {
			return errMsg{err}
		}
		return actionDoneMsg{text: fmt.Sprintf("Restarted id=%d: %s -> %s.", id, res.Before.Identity, res.After.Identity)}
	}
}

func statsCmd(ctrl Controller, ids []uint64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
		defer cancel()
		stats, err := ctrl.Stats(ctx, app.StatsParams{
			Filters: app.ListFilters{IDs: toIntIDs(ids)},
			Timeout: rpcTimeout,
		})
		if err != nil {
			return errMsg{err}
		}
		return statsLoadedMsg{stats: stats}
	}
}
