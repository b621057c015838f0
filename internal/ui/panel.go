package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/sentiment/internal/controller"
)

// Box is the framed container used across views.
func Box() lipgloss.Style {
	t := Current()
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
}

// Panel writes lines inside a framed box.
func Panel(w io.Writer, lines []string) {
	fmt.Fprintln(w, Box().Render(strings.Join(lines, "\n")))
}

// Fail writes an error line.
func Fail(w io.Writer, msg string) {
	t := Current()
	fmt.Fprintln(w, t.Error.Render(t.SymFail+" "+msg))
}

// RenderNotice formats a notice as a single styled line.
func RenderNotice(n controller.Notice) string {
	t := Current()
	var sym string
	var style lipgloss.Style
	switch n.Kind {
	case controller.NoticeSuccess:
		sym, style = t.SymOK, t.Success
	case controller.NoticeError:
		sym, style = t.SymFail, t.Error
	default:
		sym, style = t.SymInfo, t.Accent
	}
	return style.Render(sym+" "+n.Title) + " " + t.Muted.Render(n.Message)
}

// PrintNotice writes a notice line.
func PrintNotice(w io.Writer, n controller.Notice) {
	fmt.Fprintln(w, RenderNotice(n))
}
