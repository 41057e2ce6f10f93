// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GreenJets Engineering

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/greenjets/bladerunner-portal/internal/service"
	"github.com/greenjets/bladerunner-portal/models"
)

const statusDisplayDuration = 3 * time.Second

// usersModel is the user management screen: a navigable account table with
// approve, revoke, delete, refresh and copy-email actions.
type usersModel struct {
	ctx   context.Context
	admin service.ConsoleAdminService
	self  models.User

	users   []models.User
	idx     int
	loading bool
	busy    bool
	spinner spinner.Model
	status  string
	errMsg  string

	confirming bool

	logout bool
}

func newUsersModel(ctx context.Context, admin service.ConsoleAdminService, self models.User) usersModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return usersModel{
		ctx:     ctx,
		admin:   admin,
		self:    self,
		spinner: s,
		loading: true,
	}
}

func (m usersModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadUsers())
}

func (m usersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case usersLoadedMsg:
		m.loading = false
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.users = msg.users
		if m.idx >= len(m.users) {
			m.idx = len(m.users) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil
	case approvalDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("approval update failed: %v", msg.err)
			return m, nil
		}
		if msg.user.Approved {
			m.status = fmt.Sprintf("approved %s", msg.user.Email)
		} else {
			m.status = fmt.Sprintf("revoked %s", msg.user.Email)
		}
		m.errMsg = ""
		m.loading = true
		return m, tea.Batch(m.cmdLoadUsers(), m.cmdClearStatus())
	case deleteDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("delete failed: %v", msg.err)
			return m, nil
		}
		m.status = "user deleted"
		m.errMsg = ""
		m.loading = true
		return m, tea.Batch(m.cmdLoadUsers(), m.cmdClearStatus())
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.confirming {
		return m.updateConfirm(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.users)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.refresh):
		if m.busy || m.loading {
			return m, nil
		}
		m.loading = true
		m.errMsg = ""
		return m, m.cmdLoadUsers()
	case key.Matches(keyMsg, keys.approve):
		return m.dispatchApproval(true)
	case key.Matches(keyMsg, keys.revoke):
		return m.dispatchApproval(false)
	case key.Matches(keyMsg, keys.delete):
		user, ok := m.current()
		if !ok {
			m.status = "no users"
			return m, m.cmdClearStatus()
		}
		if user.ID == m.self.ID {
			m.errMsg = "cannot delete your own account"
			return m, nil
		}
		m.confirming = true
		return m, nil
	case key.Matches(keyMsg, keys.copy):
		user, ok := m.current()
		if !ok {
			m.status = "nothing to copy"
			return m, m.cmdClearStatus()
		}
		if err := clipboard.WriteAll(user.Email); err != nil {
			m.errMsg = fmt.Sprintf("copy failed: %v", err)
			return m, nil
		}
		m.status = "email copied"
		return m, m.cmdClearStatus()
	}

	return m, nil
}

func (m usersModel) updateConfirm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.yes):
		m.confirming = false
		user, ok := m.current()
		if !ok {
			return m, nil
		}
		m.busy = true
		return m, m.cmdDelete(user.ID)
	case key.Matches(keyMsg, keys.no):
		m.confirming = false
	}
	return m, nil
}

func (m usersModel) dispatchApproval(approved bool) (tea.Model, tea.Cmd) {
	if m.busy || m.loading {
		return m, nil
	}

	user, ok := m.current()
	if !ok {
		m.status = "no users"
		return m, m.cmdClearStatus()
	}
	if user.Approved == approved {
		if approved {
			m.status = "already approved"
		} else {
			m.status = "not approved yet"
		}
		return m, m.cmdClearStatus()
	}

	m.busy = true
	m.errMsg = ""
	return m, m.cmdSetApproval(user.ID, approved)
}

func (m usersModel) current() (models.User, bool) {
	if len(m.users) == 0 || m.idx < 0 || m.idx >= len(m.users) {
		return models.User{}, false
	}
	return m.users[m.idx], true
}

func (m usersModel) View() string {
	if m.confirming {
		user, ok := m.current()
		if ok {
			return confirmModel{message: user.Email}.View()
		}
	}

	var b strings.Builder

	if m.loading || m.busy {
		b.WriteString(m.spinner.View())
		b.WriteString(" working...\n\n")
	}

	if !m.loading && len(m.users) == 0 {
		b.WriteString("no users\n")
	} else {
		b.WriteString(fmt.Sprintf("  %-5s %-10s %-30s %-16s %-6s %s\n",
			"ID", "STATUS", "EMAIL", "USERNAME", "ROLE", "CREATED"))
		for i, user := range m.users {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}

			status := pendingStyle.Render("pending")
			if user.Approved {
				status = approvedStyle.Render("approved")
			}

			b.WriteString(fmt.Sprintf("%s%-5d %-10s %-30s %-16s %-6s %s\n",
				cursor,
				user.ID,
				status,
				fitText(user.Email, 30),
				fitText(user.Username, 16),
				user.Role,
				user.CreatedAt.Format("2006-01-02"),
			))
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	title := fmt.Sprintf("USERS — signed in as %s", m.self.Email)
	hotKeys := "a: approve │ r: revoke │ ctrl+d: delete │ c: copy email │ s: refresh │ l: logout │ q: quit"
	return renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m usersModel) cmdLoadUsers() tea.Cmd {
	ctx := m.ctx
	admin := m.admin

	return func() tea.Msg {
		users, err := admin.ListUsers(ctx)
		return usersLoadedMsg{users: users, err: err}
	}
}

func (m usersModel) cmdSetApproval(id int64, approved bool) tea.Cmd {
	ctx := m.ctx
	admin := m.admin

	return func() tea.Msg {
		user, err := admin.SetApproval(ctx, id, approved)
		return approvalDoneMsg{user: user, err: err}
	}
}

func (m usersModel) cmdDelete(id int64) tea.Cmd {
	ctx := m.ctx
	admin := m.admin

	return func() tea.Msg {
		return deleteDoneMsg{err: admin.DeleteUser(ctx, id)}
	}
}

func (m usersModel) cmdClearStatus() tea.Cmd {
	return tea.Tick(statusDisplayDuration, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
