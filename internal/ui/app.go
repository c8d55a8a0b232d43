package ui

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/ratlog/internal/logtail"
	"github.com/five82/ratlog/internal/prefs"
)

// Focus selects which pane receives keys.
type Focus int

const (
	FocusList Focus = iota
	FocusFilter
)

// Options configures the UI.
type Options struct {
	Session   *logtail.Session
	Logger    *slog.Logger
	Prefs     prefs.Prefs
	PrefsPath string
	PollTick  time.Duration
	// Follow starts in live mode when the session can follow.
	Follow bool
	// Clipboard overrides the system clipboard writer.
	Clipboard func(string) error
	// MemUsage overrides the memory figure shown in the status bar.
	MemUsage func() uint64
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	session   *logtail.Session
	logger    *slog.Logger
	prefsPath string
	pollTick  time.Duration
	keys      keyMap
	clipboard func(string) error
	memUsage  func() uint64

	// Appearance
	prefs prefs.Prefs
	theme Theme

	// Layout
	width  int
	height int
	ready  bool

	// Log list
	focus    Focus
	filter   textinput.Model
	view     []logtail.Match
	selected int
	list     viewport.Model
	live     bool

	// Overlays
	help         help.Model
	showHelp     bool
	showSettings bool
	settingsRow  int

	notice string
	mem    uint64
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	session := opts.Session
	if session == nil {
		session = logtail.NewSample()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = DefaultPollTick
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	copyFn := opts.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	memUsage := opts.MemUsage
	if memUsage == nil {
		memUsage = processMemory
	}

	p := opts.Prefs.Normalize()

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "type to filter (case-insensitive)"
	ti.CharLimit = FilterCharLimit

	m := Model{
		session:   session,
		logger:    logger,
		prefsPath: prefsPath,
		pollTick:  pollTick,
		keys:      DefaultKeyMap(),
		clipboard: copyFn,
		memUsage:  memUsage,
		prefs:     p,
		theme:     GetTheme(p.Theme),
		filter:    ti,
		list:      viewport.New(0, 0),
		live:      opts.Follow && session.CanFollow(),
		help:      help.New(),
	}
	m.mem = m.memUsage()
	m.refreshView()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.pollTick)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case FileChangedMsg:
		if m.live {
			m.poll()
		}
		return m, nil
	}

	// Cursor blink and other textinput internals.
	if m.focus == FocusFilter {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.showSettings {
		return m.renderSettings()
	}
	return m.renderMain()
}

// handleKey routes a key to the active overlay or pane.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}
	m.notice = ""

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}
	if m.showSettings {
		return m.handleSettingsKey(msg)
	}
	if m.focus == FocusFilter {
		return m.handleFilterKey(msg)
	}
	return m.handleListKey(msg)
}

// handleTick polls the file when live and schedules the next tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.live {
		m.poll()
	}
	m.mem = m.memUsage()
	return m, tickCmd(m.pollTick)
}

// poll appends new lines from the session. Failures are skipped; the next
// tick retries from the same cursor.
func (m *Model) poll() {
	res, err := m.session.Poll()
	if err != nil {
		m.logger.Debug("poll skipped", "path", m.session.Path(), "error", err)
		return
	}
	if res.Appended == 0 && !res.Replaced {
		return
	}
	m.logger.Debug("poll",
		"appended", res.Appended,
		"replaced", res.Replaced,
		"evicted", res.Evicted,
		"consumed", res.Consumed,
		"offset", m.session.Cursor().Offset,
	)
	m.refreshView()
	m.selected = max(len(m.view)-1, 0)
	m.syncList()
}

// refreshView recomputes the filtered view and clamps the selection.
func (m *Model) refreshView() {
	m.view = m.session.Buffer().Filter(m.filter.Value())
	switch {
	case len(m.view) == 0:
		m.selected = 0
	case m.selected >= len(m.view):
		m.selected = len(m.view) - 1
	}
}

func (m *Model) toggleLive() {
	if !m.session.CanFollow() {
		m.notice = "live mode needs a file"
		return
	}
	m.live = !m.live
	m.logger.Info("live mode", "on", m.live, "path", m.session.Path())
}

func (m *Model) copySelected() {
	if len(m.view) == 0 {
		m.notice = "nothing to copy"
		return
	}
	match := m.view[m.selected]
	if err := m.clipboard(match.Text); err != nil {
		m.logger.Warn("copy to clipboard failed", "error", err)
		m.notice = "copy failed"
		return
	}
	m.notice = "copied line " + formatCount(m.session.Buffer().LineNumber(match.Index))
}

func (m *Model) cycleTheme() {
	m.prefs.Theme = NextTheme(m.theme.Name)
	m.theme = GetTheme(m.prefs.Theme)
	m.savePrefs()
	m.syncList()
}

func (m *Model) savePrefs() {
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.logger.Warn("save prefs failed", "path", m.prefsPath, "error", err)
	}
}

// renderMain renders the filter box, log list, status bar and hints.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderFilter())
	b.WriteString("\n")
	b.WriteString(m.renderList())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.renderHints())
	return b.String()
}

// Messages

type tickMsg time.Time

// FileChangedMsg tells the model that the followed file was written.
type FileChangedMsg struct{}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func processMemory() uint64 {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return ms.Sys
}

// NewProgram builds the Bubble Tea program for opts.
func NewProgram(ctx context.Context, opts Options) *tea.Program {
	return tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
}

// Run starts the program and blocks until the user quits or ctx ends.
func Run(ctx context.Context, p *tea.Program) error {
	_, err := p.Run()
	if err != nil && ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
