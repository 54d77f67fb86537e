// Package tui provides the Bubble Tea shell: the auth gate, the sidebar over the
// learning views, the dashboard and the focus timer.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/verte-zerg/aetheris/internal/app"
	"github.com/verte-zerg/aetheris/internal/i18n"
	"github.com/verte-zerg/aetheris/internal/logging"
	"github.com/verte-zerg/aetheris/internal/model"
	"github.com/verte-zerg/aetheris/internal/timer"
	"github.com/verte-zerg/aetheris/internal/view"
)

type mode int

const (
	modeAuth mode = iota
	modeShell
	modeLanguage
	modeConfirm
)

type confirmKind int

const (
	confirmLogout confirmKind = iota
	confirmGuestSignUp
)

const (
	sidebarWidth = 28
	tickInterval = time.Second
)

var (
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	activeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	sectionStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C7AE6")).Bold(true)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	runningStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0A526")).Bold(true)
	sidebarStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, true, false, false).BorderForeground(lipgloss.Color("#4A4A4A"))
	cardStyle      = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder(), true).BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	modalStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder(), true).BorderForeground(lipgloss.Color("#C89A3A")).Padding(1, 2)
)

type tickMsg struct {
	gen int
}

// Model implements the Bubble Tea shell.
type Model struct {
	app    *app.App
	logger *zap.Logger

	mode    mode
	confirm confirmKind
	width   int
	height  int

	auth     authForm
	current  view.View
	content  viewport.Model
	langList table.Model

	timer    *timer.Timer
	timerGen int

	status string
}

// NewModel constructs the shell. A restored session skips the auth gate.
func NewModel(a *app.App, cfg model.Config, logger *zap.Logger) *Model {
	m := &Model{
		app:      a,
		logger:   logging.OrNop(logger).Named("tui"),
		auth:     newAuthForm(),
		current:  view.Dashboard,
		content:  viewport.New(0, 0),
		langList: newLanguageTable(),
		timer:    timer.New(cfg.TimerMinutes * 60),
	}
	if _, ok := a.User(); ok {
		m.mode = modeShell
	} else {
		m.auth.setFocus(0)
	}
	m.refreshContent()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.mode == modeAuth {
		return textinput.Blink
	}
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case loginResultMsg:
		return m.handleLoginResult(msg)
	case tickMsg:
		return m, m.handleTick(msg)
	case tea.KeyMsg:
		switch m.mode {
		case modeAuth:
			return m.updateAuth(msg)
		case modeLanguage:
			return m.updateLanguage(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		default:
			return m.updateShell(msg)
		}
	}
	if m.mode == modeAuth {
		var cmd tea.Cmd
		m.auth.inputs[m.auth.focus], cmd = m.auth.inputs[m.auth.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	switch m.mode {
	case modeAuth:
		return m.renderAuth()
	case modeLanguage:
		return m.renderLanguageModal()
	case modeConfirm:
		return m.renderConfirm()
	}
	if m.width == 0 || m.height == 0 {
		return m.renderSidebar(0) + "\n" + m.content.View()
	}
	bodyHeight := maxInt(1, m.height-1)
	sidebar := sidebarStyle.Render(fitLines(m.renderSidebar(bodyHeight), sidebarWidth, bodyHeight))
	main := fitLines(m.content.View(), m.contentWidth(), bodyHeight)
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", main)
	return body + "\n" + fitLines(m.renderFooter(), m.width, 1)
}

func (m *Model) updateShell(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	order := view.Order()
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		m.selectView(order[(indexOf(order, m.current)+len(order)-1)%len(order)])
		return m, nil
	case "down", "j":
		m.selectView(order[(indexOf(order, m.current)+1)%len(order)])
		return m, nil
	case "f":
		return m, m.toggleTimer()
	case "L":
		m.mode = modeLanguage
		m.syncLanguageCursor()
		return m, nil
	case "o":
		m.mode = modeConfirm
		m.confirm = confirmLogout
		if u, ok := m.app.User(); ok && u.IsGuest {
			m.confirm = confirmGuestSignUp
		}
		return m, nil
	case "pgup", "pgdown", "home", "end":
		var cmd tea.Cmd
		m.content, cmd = m.content.Update(msg)
		return m, cmd
	}
	ctx := m.app.ViewContext()
	if view.ModuleFor(m.current).HandleKey(msg.String(), ctx) {
		m.refreshContent()
	}
	return m, nil
}

func (m *Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "y", "Y", "enter":
		guestSignUp := m.confirm == confirmGuestSignUp
		m.app.Logout(context.Background())
		m.pauseTimer()
		m.auth.reset()
		m.auth.signUp = guestSignUp
		m.mode = modeAuth
		m.current = view.Dashboard
		m.refreshContent()
		return m, m.auth.setFocus(0)
	case "n", "N", "esc":
		m.mode = modeShell
	}
	return m, nil
}

func (m *Model) enterShell() tea.Cmd {
	m.mode = modeShell
	m.auth.reset()
	m.current = view.Dashboard
	m.refreshContent()
	if u, ok := m.app.User(); ok {
		m.status = i18n.T(m.app.Language(), i18n.KeyWelcome) + ", " + u.Name
	}
	return nil
}

func (m *Model) selectView(v view.View) {
	m.current = v
	m.content.GotoTop()
	m.refreshContent()
}

func (m *Model) toggleTimer() tea.Cmd {
	if !m.timer.Toggle() {
		m.timerGen++
		return nil
	}
	m.timerGen++
	return tickCmd(m.timerGen)
}

// pauseTimer stops ticking but keeps the remaining time; the countdown only
// resets when the program restarts.
func (m *Model) pauseTimer() {
	m.timer.Pause()
	m.timerGen++
}

func tickCmd(gen int) tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// handleTick drops ticks from an earlier run so pausing never double-counts.
func (m *Model) handleTick(msg tickMsg) tea.Cmd {
	if msg.gen != m.timerGen || !m.timer.Running() {
		return nil
	}
	if m.timer.Tick() {
		m.status = "Focus block complete."
		return nil
	}
	return tickCmd(m.timerGen)
}

func (m *Model) contentWidth() int {
	return maxInt(10, m.width-sidebarWidth-2)
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.content.Width = m.contentWidth()
	m.content.Height = maxInt(1, m.height-1)
	for i := range m.auth.inputs {
		m.auth.inputs[i].Width = maxInt(10, modalWidth(m.width)-8)
	}
	m.refreshContent()
}

func (m *Model) refreshContent() {
	ctx := m.app.ViewContext()
	body := view.ModuleFor(m.current).Render(ctx)
	if m.current == view.Dashboard {
		body = m.renderDashboard(ctx, body)
	}
	m.content.SetContent(wrapText(body, m.contentWidth()))
}

func (m *Model) renderFooter() string {
	help := "up/down: views  enter: act  f: focus  L: language  o: log out  q: quit"
	if m.status != "" {
		return activeStyle.Render(truncateLine(m.status, m.width))
	}
	return mutedStyle.Render(truncateLine(help, m.width))
}

func (m *Model) renderConfirm() string {
	lang := m.app.Language()
	prompt := i18n.T(lang, i18n.KeyConfirmLogout)
	if m.confirm == confirmGuestSignUp {
		prompt = i18n.T(lang, i18n.KeyConfirmSignup)
	}
	body := strings.Join([]string{cardValueStyle.Render(prompt), "", mutedStyle.Render("y / enter: yes    n / esc: no")}, "\n")
	box := modalStyle.Width(modalWidth(m.width)).Render(body)
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func indexOf(views []view.View, v view.View) int {
	for i, candidate := range views {
		if candidate == v {
			return i
		}
	}
	return 0
}
