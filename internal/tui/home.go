package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ndtruong/vango-client/internal/service"
)

// HomeModel is the signed-in landing page. It loads the current user's
// shipment requests and renders them as a table.
type HomeModel struct {
	ctx  context.Context
	auth service.AuthService
	ship service.ShipService

	items   []shipRow
	loading bool
	status  string
	errMsg  string
}

type shipRow struct {
	id      string
	status  string
	pickup  string
	dropoff string
}

func NewHomeModel(ctx context.Context, auth service.AuthService, ship service.ShipService) *HomeModel {
	return &HomeModel{
		ctx:  ctx,
		auth: auth,
		ship: ship,
	}
}

func (m *HomeModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return m.cmdLoadShipRequests()
}

func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RegisterSuccessNotice:
		if msg.FullName != "" {
			m.status = "Chào mừng, " + msg.FullName + "!"
		} else {
			m.status = "Đăng ký thành công"
		}
		return m, nil

	case shipRequestsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.items = m.items[:0]
		for _, sr := range msg.items {
			m.items = append(m.items, shipRow{
				id:      sr.ID,
				status:  sr.Status,
				pickup:  sr.PickupFullAddress,
				dropoff: sr.DropoffFullAddress,
			})
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			m.errMsg = ""
			return m, m.cmdLoadShipRequests()
		case "l":
			return m, m.cmdLogout()
		}
	}

	return m, nil
}

func (m *HomeModel) View() string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n\n")
	}

	switch {
	case m.loading:
		b.WriteString("Đang tải đơn hàng...\n")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render("Lỗi: " + m.errMsg))
		b.WriteString("\n")
	case len(m.items) == 0:
		b.WriteString("Chưa có đơn hàng nào\n")
	default:
		b.WriteString("Mã        │ Trạng thái │ Lấy hàng → Giao hàng\n")
		b.WriteString("──────────┼────────────┼────────────────────────────────\n")
		for _, row := range m.items {
			b.WriteString(fmt.Sprintf("%-9s │ %-10s │ %s → %s\n",
				fitText(row.id, 9),
				formatStatus(row.status),
				fitText(row.pickup, 20),
				fitText(row.dropoff, 20)))
		}
	}

	return renderPage("ĐƠN HÀNG CỦA TÔI", strings.TrimRight(b.String(), "\n"), "r: tải lại │ l: đăng xuất")
}

func (m *HomeModel) cmdLoadShipRequests() tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	ship := m.ship

	return func() tea.Msg {
		user, err := auth.CurrentUser(ctx)
		if err != nil {
			return shipRequestsLoadedMsg{err: err}
		}

		items, err := ship.ListByUser(ctx, user.ID)
		return shipRequestsLoadedMsg{items: items, err: err}
	}
}

func (m *HomeModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		if err := auth.Logout(ctx); err != nil {
			return loggedOutMsg{err: err}
		}
		return NavigateTo{Page: pageMenu, Payload: loggedOutMsg{}}
	}
}
