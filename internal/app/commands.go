package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/friskycodeur/folio/internal/domain"
	"github.com/friskycodeur/folio/internal/types"
)

const (
	toastLifetime = 4 * time.Second
	toastInterval = time.Second
	openTimeout   = 5 * time.Second
)

// linkResultMsg reports the outcome of opening or copying a link
type linkResultMsg struct {
	op   string
	link domain.Link
	err  error
}

type toastTickMsg time.Time

func toastTick() tea.Cmd {
	return tea.Tick(toastInterval, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

// openLinkCmd opens link off the event loop
func (m Model) openLinkCmd(link domain.Link) tea.Cmd {
	o := m.opener
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), openTimeout)
		defer cancel()
		return linkResultMsg{op: "open", link: link, err: o.Open(ctx, link)}
	}
}

// copyLinkCmd copies link's target to the clipboard
func (m Model) copyLinkCmd(link domain.Link) tea.Cmd {
	o := m.opener
	return func() tea.Msg {
		return linkResultMsg{op: "copy", link: link, err: o.Copy(link)}
	}
}

func (m Model) handleLinkResult(msg linkResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.logger.Error("link action failed", "op", msg.op, "label", msg.link.Label, "error", msg.err)
		return m, m.addToast(types.ToastError, msg.err.Error())
	}

	text := "Opened " + msg.link.Label
	if msg.op == "copy" {
		text = "Copied " + msg.link.Target()
	}
	return m, m.addToast(types.ToastSuccess, text)
}
