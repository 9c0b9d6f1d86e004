// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jeranaias/swapwatch/internal/activity"
	"github.com/jeranaias/swapwatch/internal/i18n"
	"github.com/jeranaias/swapwatch/internal/lifecycle"
	"github.com/jeranaias/swapwatch/internal/session"
	"github.com/jeranaias/swapwatch/internal/signal"
	"github.com/jeranaias/swapwatch/internal/store"
	"github.com/jeranaias/swapwatch/internal/ui/components"
	"github.com/jeranaias/swapwatch/internal/ui/styles"
)

// Translator renders localized UI strings.
type Translator interface {
	T(key string, params map[string]string) string
}

// Options configures a Model. Every field except Logger is required.
type Options struct {
	Executor     *Executor
	Orchestrator *lifecycle.Orchestrator
	Store        *store.Store
	Hub          *activity.Hub
	Bus          signal.Bus
	Translator   Translator
	Logger       zerolog.Logger
}

// Model is the root bubbletea model.
type Model struct {
	exec *Executor
	orch *lifecycle.Orchestrator
	st   *store.Store
	hub  *activity.Hub
	bus  signal.Bus
	tr   Translator
	log  zerolog.Logger

	unwatch func()

	keys   KeyMap
	help   help.Model
	theme  *styles.Theme
	notice *components.NoticeOverlay
	status *components.StatusBar

	width  int
	height int
}

// New creates the root model.
func New(opts Options) *Model {
	theme := styles.NewTheme(opts.Store.Theme())
	m := &Model{
		exec:   opts.Executor,
		orch:   opts.Orchestrator,
		st:     opts.Store,
		hub:    opts.Hub,
		bus:    opts.Bus,
		tr:     opts.Translator,
		log:    opts.Logger,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		theme:  theme,
		notice: components.NewNoticeOverlay(theme),
		status: components.NewStatusBar(theme),
	}
	// Store changes from other goroutines wake Update with an empty func so
	// the view is redrawn.
	m.unwatch = m.st.Watch(func(store.Change) {
		m.exec.Post(func() {})
	})
	return m
}

// Close detaches the store watcher.
func (m *Model) Close() {
	if m.unwatch != nil {
		m.unwatch()
		m.unwatch = nil
	}
}

// Init starts draining the executor and reports the initial load.
func (m *Model) Init() tea.Cmd {
	m.exec.Post(func() { m.hub.Emit(activity.KindLoad) })
	return m.exec.Next()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if k, ok := activityFor(msg); ok {
		m.hub.Emit(k)
	}

	switch msg := msg.(type) {
	case runMsg:
		m.exec.run(msg.fn)
		cmd = m.exec.Next()

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	}

	m.syncTheme()
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit

	case m.st.NoticeOpen():
		if key.Matches(msg, m.keys.Dismiss) {
			m.st.CloseNotice()
		}

	case key.Matches(msg, m.keys.Theme):
		if m.bus != nil {
			m.bus.Publish(signal.TopicSwitchTheme, nil)
		} else {
			m.orch.ToggleTheme()
		}

	case key.Matches(msg, m.keys.Language):
		m.orch.SetActiveLanguage(NextLanguage(m.st.Locale().Codes(), m.st.Language()))

	case key.Matches(msg, m.keys.SignIn):
		if !m.st.HasAccount() {
			if err := m.st.SignIn(session.Account{Address: DemoAddress(), Wallet: "demo"}); err != nil {
				m.log.Warn().Err(err).Msg("demo sign-in failed")
			}
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return nil
}

// syncTheme rebuilds styles when the stored theme changed.
func (m *Model) syncTheme() {
	if t := m.st.Theme(); t != m.theme.Name {
		m.theme = styles.NewTheme(t)
		m.notice.SetTheme(m.theme)
		m.status.SetTheme(m.theme)
	}
	m.theme.SetSize(m.width, m.height)
}

// View implements tea.Model.
func (m *Model) View() string {
	status := m.statusView()
	helpView := m.help.View(m.keys)
	header := m.headerView()

	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(status) - lipgloss.Height(helpView)
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	var body string
	if n := m.st.Notice(); n.Open {
		m.notice.SetNotice(n)
		m.notice.SetHint(m.tr.T("layout.notice_dismiss", nil))
		m.notice.SetSize(m.width, bodyHeight)
		body = m.notice.View()
	} else {
		body = lipgloss.NewStyle().Height(bodyHeight).Render(m.bodyView())
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, status, helpView)
}

// PresentationClass is the class string shown in the header.
func (m *Model) PresentationClass() string {
	return m.orch.PresentationClass()
}

func (m *Model) headerView() string {
	title := m.theme.HeaderTitle.Render(m.tr.T("layout.title", nil))
	class := m.theme.HeaderClass.Render(m.PresentationClass())
	return m.theme.Header.Render(title + "  " + class)
}

func (m *Model) bodyView() string {
	snap := m.orch.Watchdog().Snapshot()
	seen, last := m.orch.Listener().Seen()
	passed, suppressed := m.orch.Listener().Gate().Stats()

	lines := []string{
		m.sessionLabel(),
		fmt.Sprintf("%s  (%s)", m.tr.T("layout.idle", map[string]string{
			"idle":      strconv.Itoa(snap.Idle),
			"threshold": strconv.Itoa(snap.Threshold),
		}), snap.State),
		m.theme.Muted.Render(fmt.Sprintf("activity: %d signals, last %s, %d passed, %d coalesced",
			seen, last, passed, suppressed)),
		m.theme.Muted.Render(fmt.Sprintf("expirations: %d", snap.Expirations)),
		m.connectionLabel(),
		i18n.DisplayName(m.st.Language()),
	}
	if m.st.Restricted() {
		lines = append(lines, m.theme.IdleWarn.Render(m.tr.T("layout.mobile_only", nil)))
	}
	return m.theme.Body.Render(strings.Join(lines, "\n"))
}

func (m *Model) statusView() string {
	snap := m.orch.Watchdog().Snapshot()
	conn := m.st.Connection()

	m.status.SetWidth(m.width)
	m.status.SessionLabel = m.sessionLabel()
	m.status.SignedIn = m.st.HasAccount()
	m.status.Idle, m.status.Threshold = snap.Idle, snap.Threshold
	m.status.IdleLabel = m.tr.T("layout.idle", map[string]string{
		"idle":      strconv.Itoa(snap.Idle),
		"threshold": strconv.Itoa(snap.Threshold),
	})
	m.status.ConnLabel = m.connectionLabel()
	m.status.Live = conn.Live
	m.status.Language = m.st.Language()
	m.status.Restricted = ""
	if m.st.Restricted() {
		m.status.Restricted = m.tr.T("layout.mobile_only", nil)
	}
	return m.status.View()
}

func (m *Model) sessionLabel() string {
	acc, ok := m.st.Session().Current()
	if !ok {
		return m.tr.T("layout.signed_out", nil)
	}
	return m.tr.T("layout.signed_in", map[string]string{"address": acc.Short()})
}

func (m *Model) connectionLabel() string {
	conn := m.st.Connection()
	if !conn.Live {
		return m.tr.T("layout.connection_offline", nil)
	}
	return m.tr.T("layout.connection_live", map[string]string{"network": conn.NetworkVersion})
}

// NextLanguage returns the code after current, wrapping around.
func NextLanguage(codes []string, current string) string {
	if len(codes) == 0 {
		return current
	}
	for i, c := range codes {
		if c == current {
			return codes[(i+1)%len(codes)]
		}
	}
	return codes[0]
}

// DemoAddress returns a random 20-byte hex address.
func DemoAddress() string {
	a, b := uuid.New(), uuid.New()
	return fmt.Sprintf("0x%x%x", a[:], b[:4])
}
