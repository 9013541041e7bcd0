package model

import (
	"time"

	"github.com/byxorna/standings/pkg/text"
	"github.com/byxorna/standings/pkg/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// NoticeKind adds some context to the notice being shown.
type NoticeKind int

const (
	NoticeSuccess NoticeKind = iota
	NoticeError
	NoticeInfo
)

func (k NoticeKind) String() string {
	switch k {
	case NoticeError:
		return "error"
	case NoticeInfo:
		return "info"
	}
	return "success"
}

// Notice is an ephemeral message displayed in the status bar.
type Notice struct {
	Kind    NoticeKind
	Message string
}

func (n Notice) View() string {
	switch n.Kind {
	case NoticeError:
		return ui.ErrorStyle.Render(text.EmojiError + " " + n.Message)
	case NoticeInfo:
		return ui.InfoStyle.Render(text.EmojiInfo + " " + n.Message)
	default:
		return ui.SuccessStyle.Render(text.EmojiSuccess + " " + n.Message)
	}
}

// noticeExpiredMsg clears the notice slot if seq is still the newest notice.
type noticeExpiredMsg struct {
	seq int
}

// showNotice replaces whatever notice is showing. Only the timer scheduled by
// the newest notice can clear the slot.
func (m *Model) showNotice(n Notice) tea.Cmd {
	m.noticeSeq++
	seq := m.noticeSeq
	m.State.Notice = &n
	return tea.Tick(m.noticeTimeout, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}

func (m *Model) expireNotice(msg noticeExpiredMsg) {
	if msg.seq == m.noticeSeq {
		m.State.Notice = nil
	}
}
