package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/sentiment/internal/controller"
)

const maxToasts = 3

type toast struct {
	id     int
	notice controller.Notice
}

type toastExpiredMsg struct{ id int }

// pushToast queues a notice and, when toasts expire, schedules its removal.
func (m *Model) pushToast(n controller.Notice) tea.Cmd {
	m.nextToast++
	id := m.nextToast
	m.toasts = append(m.toasts, toast{id: id, notice: n})
	if len(m.toasts) > maxToasts {
		m.toasts = m.toasts[len(m.toasts)-maxToasts:]
	}
	if m.toastTTL <= 0 {
		return nil
	}
	return tea.Tick(m.toastTTL, func(time.Time) tea.Msg { return toastExpiredMsg{id: id} })
}

func (m *Model) dropToast(id int) {
	for i, t := range m.toasts {
		if t.id == id {
			m.toasts = append(m.toasts[:i], m.toasts[i+1:]...)
			return
		}
	}
}

// flushNotices turns everything the controller raised into toasts.
func (m *Model) flushNotices() tea.Cmd {
	var cmds []tea.Cmd
	for _, n := range m.inbox.Drain() {
		cmds = append(cmds, m.pushToast(n))
	}
	return tea.Batch(cmds...)
}
