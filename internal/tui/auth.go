package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/aetheris/internal/app"
	"github.com/verte-zerg/aetheris/internal/auth"
	"github.com/verte-zerg/aetheris/internal/i18n"
	"github.com/verte-zerg/aetheris/internal/model"
)

const loginTimeout = 20 * time.Second

const (
	fieldEmail = iota
	fieldPassword
	fieldName
)

// authForm is the gate shown while nobody is signed in.
type authForm struct {
	inputs  []textinput.Model
	focus   int
	signUp  bool
	pending bool
	err     string
}

type loginResultMsg struct {
	profile model.UserProfile
	err     error
}

func newAuthInput(prompt string) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.CharLimit = 128
	input.Cursor.SetMode(cursor.CursorBlink)
	return input
}

func newAuthForm() authForm {
	password := newAuthInput("")
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	f := authForm{
		inputs: []textinput.Model{newAuthInput(""), password, newAuthInput("")},
	}
	return f
}

// visibleFields is the number of inputs in use: the name field only exists for sign-up.
func (f *authForm) visibleFields() int {
	if f.signUp {
		return len(f.inputs)
	}
	return fieldName
}

func (f *authForm) setFocus(idx int) tea.Cmd {
	count := f.visibleFields()
	if idx < 0 {
		idx = count - 1
	}
	if idx >= count {
		idx = 0
	}
	f.focus = idx
	var cmd tea.Cmd
	for i := range f.inputs {
		if i == f.focus {
			cmd = f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
	return cmd
}

func (f *authForm) toggleSignUp() tea.Cmd {
	f.signUp = !f.signUp
	f.err = ""
	if f.focus >= f.visibleFields() {
		return f.setFocus(0)
	}
	return nil
}

func (f *authForm) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
	f.pending = false
	f.err = ""
}

func (f *authForm) credentials() model.Credentials {
	creds := model.Credentials{
		Email:    strings.TrimSpace(f.inputs[fieldEmail].Value()),
		Password: f.inputs[fieldPassword].Value(),
		SignUp:   f.signUp,
	}
	if f.signUp {
		creds.Name = strings.TrimSpace(f.inputs[fieldName].Value())
	}
	return creds
}

// validate catches input the provider would reject anyway.
func (f *authForm) validate() string {
	creds := f.credentials()
	if creds.Email == "" || creds.Password == "" {
		return "Email and password are required."
	}
	if !strings.Contains(creds.Email, "@") {
		return "Enter a valid email address."
	}
	return ""
}

func loginCmd(a *app.App, creds model.Credentials) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loginTimeout)
		defer cancel()
		profile, err := a.Login(ctx, creds)
		return loginResultMsg{profile: profile, err: err}
	}
}

func (m *Model) updateAuth(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := &m.auth
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "down":
		return m, f.setFocus(f.focus + 1)
	case "shift+tab", "up":
		return m, f.setFocus(f.focus - 1)
	case "ctrl+s":
		if f.pending {
			return m, nil
		}
		return m, f.toggleSignUp()
	case "ctrl+g":
		if f.pending {
			return m, nil
		}
		if _, err := m.app.StartGuest(); err != nil {
			f.err = err.Error()
			return m, nil
		}
		return m, m.enterShell()
	case "enter":
		if f.pending {
			return m, nil
		}
		if f.focus < f.visibleFields()-1 {
			return m, f.setFocus(f.focus + 1)
		}
		if problem := f.validate(); problem != "" {
			f.err = problem
			return m, nil
		}
		f.err = ""
		f.pending = true
		return m, loginCmd(m.app, f.credentials())
	}
	if f.pending {
		return m, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return m, cmd
}

func (m *Model) handleLoginResult(msg loginResultMsg) (tea.Model, tea.Cmd) {
	m.auth.pending = false
	if msg.err != nil {
		m.auth.err = auth.UserMessage(msg.err)
		m.logger.Debug("login rejected")
		return m, nil
	}
	return m, m.enterShell()
}

func (m *Model) renderAuth() string {
	f := &m.auth
	lang := m.app.Language()
	title := titleStyle.Render("Aetheris")
	subtitle := mutedStyle.Render("FLOW STATE OS")
	heading := i18n.T(lang, i18n.KeySignIn)
	if f.signUp {
		heading = i18n.T(lang, i18n.KeySignUp)
	}
	lines := []string{title, subtitle, "", cardValueStyle.Render(heading), ""}
	labels := []string{i18n.T(lang, i18n.KeyEmail), i18n.T(lang, i18n.KeyPassword), i18n.T(lang, i18n.KeyName)}
	for i := 0; i < f.visibleFields(); i++ {
		label := mutedStyle.Render(labels[i])
		if i == f.focus {
			label = activeStyle.Render(labels[i])
		}
		lines = append(lines, label, f.inputs[i].View())
	}
	lines = append(lines, "")
	switch {
	case f.pending:
		lines = append(lines, mutedStyle.Render(i18n.T(lang, i18n.KeySigningIn)))
	case f.err != "":
		lines = append(lines, errorStyle.Render(f.err))
	default:
		lines = append(lines, "")
	}
	lines = append(lines, "", mutedStyle.Render(i18n.T(lang, i18n.KeyContinueGuest)+": ctrl+g"))
	lines = append(lines, mutedStyle.Render(i18n.T(lang, i18n.KeyAuthHelp)))

	box := modalStyle.Width(modalWidth(m.width)).Render(strings.Join(lines, "\n"))
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
