package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	haltStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	summaryStyle = lipgloss.NewStyle().Faint(true)
)

type printer struct {
	out   io.Writer
	color bool
}

func (p printer) println(style lipgloss.Style, text string) {
	if p.color {
		text = style.Render(text)
	}
	fmt.Fprintln(p.out, text)
}
