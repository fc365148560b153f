// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ndtruong/vango-client/internal/service"
	"github.com/ndtruong/vango-client/internal/validators"
	"github.com/ndtruong/vango-client/models"
)

// RegisterModel is the Bubble Tea model for the registration screen. It
// renders four text inputs (full name, email, phone number, password) and
// dispatches an async registration command on form submission. Registration
// signs the user in, so on success the model navigates straight to the home
// page with a [RegisterSuccessNotice] payload.
type RegisterModel struct {
	ctx      context.Context
	auth     service.AuthService
	validate validators.Validator

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewRegisterModel creates a [RegisterModel] with four pre-configured text
// inputs. The full-name field receives focus immediately; the password field
// uses masked echo.
func NewRegisterModel(ctx context.Context, auth service.AuthService) *RegisterModel {
	fields := make([]textinput.Model, 4)

	fields[0] = textinput.New()
	fields[0].Placeholder = "họ và tên"
	fields[0].Width = 40
	fields[0].Focus()

	fields[1] = textinput.New()
	fields[1].Placeholder = "email"
	fields[1].CharLimit = 64
	fields[1].Width = 40

	fields[2] = textinput.New()
	fields[2].Placeholder = "số điện thoại"
	fields[2].CharLimit = 15
	fields[2].Width = 40

	fields[3] = textinput.New()
	fields[3].Placeholder = "mật khẩu"
	fields[3].CharLimit = 256
	fields[3].Width = 40
	fields[3].EchoMode = textinput.EchoPassword
	fields[3].EchoCharacter = '*'

	return &RegisterModel{
		ctx:      ctx,
		auth:     auth,
		validate: validators.NewAuthValidator(),
		inputs:   fields,
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(RegisterResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = result.Err.Error()
			return m, nil
		}

		m.reset()
		fullName := ""
		if result.Auth != nil {
			fullName = result.Auth.User.FullName
		}
		return m, func() tea.Msg {
			return NavigateTo{
				Page:    pageHome,
				Payload: RegisterSuccessNotice{FullName: fullName},
			}
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			req := models.RegisterRequest{
				FullName:    strings.TrimSpace(m.inputs[0].Value()),
				Email:       strings.TrimSpace(m.inputs[1].Value()),
				PhoneNumber: strings.TrimSpace(m.inputs[2].Value()),
				Password:    m.inputs[3].Value(),
			}
			if err := m.validate.Validate(m.ctx, req); err != nil {
				m.errMsg = err.Error()
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(req)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *RegisterModel) View() string {
	labels := []string{"Họ tên       ", "Email        ", "Điện thoại   ", "Mật khẩu     "}

	var b strings.Builder
	b.WriteString("Trường        │ Giá trị\n")
	b.WriteString("──────────────┼────────────────────────────────────────────\n")
	for i, label := range labels {
		b.WriteString(label)
		b.WriteString(" │ [")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Đang đăng ký...]\n")
	} else {
		b.WriteString("\n[Đăng ký]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Lỗi: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("ĐĂNG KÝ", strings.TrimRight(b.String(), "\n"), "esc: quay lại │ tab: trường tiếp theo │ enter: xác nhận")
}

func (m *RegisterModel) cmdRegister(req models.RegisterRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		data, err := auth.Register(ctx, req)
		return RegisterResult{Err: err, Auth: data}
	}
}

func (m *RegisterModel) reset() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[0].Focus()
	m.errMsg = ""
}

func (m *RegisterModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
