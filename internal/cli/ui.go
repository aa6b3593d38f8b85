package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette. ANSI 256 codes so output looks the same on light and dark themes.
var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	StyleDim   = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)
)

// statusOut receives the status lines below. Logs go to the logger's
// writer; these are the user-facing results.
var statusOut io.Writer = os.Stdout

type statusKind struct {
	icon  string
	style lipgloss.Style
}

var (
	statusSuccess = statusKind{"✓", lipgloss.NewStyle().Foreground(colorGreen)}
	statusError   = statusKind{"✗", lipgloss.NewStyle().Foreground(colorRed)}
	statusWarning = statusKind{"!", lipgloss.NewStyle().Foreground(colorYellow)}
	statusInfo    = statusKind{"›", lipgloss.NewStyle().Foreground(colorGray)}
)

func (k statusKind) print(format string, args ...any) {
	fmt.Fprintln(statusOut, k.style.Render(k.icon)+" "+fmt.Sprintf(format, args...))
}

func printSuccess(format string, args ...any) { statusSuccess.print(format, args...) }
func printError(format string, args ...any)   { statusError.print(format, args...) }
func printInfo(format string, args ...any)    { statusInfo.print(format, args...) }

func printWarning(format string, args ...any) {
	statusWarning.print("%s", statusWarning.style.Render(fmt.Sprintf(format, args...)))
}

// printDetail prints an indented secondary line.
func printDetail(format string, args ...any) {
	fmt.Fprintln(statusOut, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints "→ path" for a written artifact.
func printFile(path string) {
	fmt.Fprintln(statusOut, "  "+StyleDim.Render("→")+" "+StyleValue.Render(path))
}

func printStats(states, transitions int, cached bool) {
	fmt.Fprintln(statusOut, "  "+statsLine(states, transitions, cached))
}

// statsLine renders "N states · M transitions · cached|fresh".
func statsLine(states, transitions int, cached bool) string {
	sep := StyleDim.Render(" · ")
	origin := lipgloss.NewStyle().Foreground(colorGray).Render("fresh")
	if cached {
		origin = lipgloss.NewStyle().Foreground(colorGreen).Render("cached")
	}
	return strings.Join([]string{
		StyleDim.Render(fmt.Sprintf("%d states", states)),
		StyleDim.Render(fmt.Sprintf("%d transitions", transitions)),
		origin,
	}, sep)
}
