package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Subtitle, Muted, Accent lipgloss.Style
	Success, Error, Warning        lipgloss.Style
	Selected, Disabled, Button     lipgloss.Style

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor

	Positive, Negative, Neutral lipgloss.TerminalColor

	IconPositive, IconNegative, IconNeutral string
	SymOK, SymFail, SymInfo, SymCursor      string
}

var asciiBorder = lipgloss.Border{
	Top: "-", Bottom: "-", Left: "|", Right: "|",
	TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
}

var current = classic()

func classic() Theme {
	return Theme{
		Name:        "classic",
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Subtitle:    lipgloss.NewStyle().Bold(true),
		Muted:       lipgloss.NewStyle().Faint(true),
		Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Selected:    lipgloss.NewStyle().Bold(true).Reverse(true),
		Disabled:    lipgloss.NewStyle().Faint(true).Padding(0, 2),
		Button:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("63")).Padding(0, 2),
		Border:      lipgloss.RoundedBorder(),
		BorderColor: lipgloss.Color("8"),
		Positive:    lipgloss.Color("42"),
		Negative:    lipgloss.Color("203"),
		Neutral:     lipgloss.Color("245"),

		IconPositive: "☺", IconNegative: "☹", IconNeutral: "◎",
		SymOK: "✔", SymFail: "✖", SymInfo: "•", SymCursor: "> ",
	}
}

func neon() Theme {
	t := classic()
	t.Name = "neon"
	t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5FD7"))
	t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FFFFF"))
	t.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF5F"))
	t.Button = t.Button.Background(lipgloss.Color("#AF00FF"))
	t.BorderColor = lipgloss.Color("#AF00FF")
	t.Positive = lipgloss.Color("#00FF87")
	t.Negative = lipgloss.Color("#FF005F")
	t.Neutral = lipgloss.Color("#8787AF")
	return t
}

func mono() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Name:        "mono",
		Title:       plain.Bold(true),
		Subtitle:    plain.Bold(true),
		Muted:       plain,
		Accent:      plain,
		Success:     plain,
		Error:       plain.Bold(true),
		Warning:     plain,
		Selected:    plain.Bold(true),
		Disabled:    plain.Padding(0, 2),
		Button:      plain.Bold(true).Padding(0, 2),
		Border:      asciiBorder,
		BorderColor: lipgloss.NoColor{},
		Positive:    lipgloss.NoColor{},
		Negative:    lipgloss.NoColor{},
		Neutral:     lipgloss.NoColor{},

		IconPositive: ":)", IconNegative: ":(", IconNeutral: ":|",
		SymOK: "ok", SymFail: "x", SymInfo: "-", SymCursor: "> ",
	}
}

// SetTheme selects classic, neon or mono. Unknown names fall back to classic.
func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = neon()
	case "mono":
		current = mono()
	default:
		current = classic()
	}
}

// SetColorEnabled switches lipgloss between auto-detected color and plain ASCII.
func SetColorEnabled(on bool) {
	if on {
		lipgloss.SetColorProfile(termenv.EnvColorProfile())
		return
	}
	lipgloss.SetColorProfile(termenv.Ascii)
}

// Current returns the active theme.
func Current() Theme { return current }
