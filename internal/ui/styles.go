package ui

import "github.com/charmbracelet/lipgloss"

var (
	TextMuted   = lipgloss.NewStyle().Faint(true)                        // hints, next-step lines
	TextCommand = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent) // wcagpal generate <hex>
	TextBold    = lipgloss.NewStyle().Bold(true)

	SectionHeader = lipgloss.NewStyle().Bold(true)
	SectionRule   = lipgloss.NewStyle().Faint(true)
	KeyStyle      = lipgloss.NewStyle().Faint(true).Width(20)
	ValueStyle    = lipgloss.NewStyle().PaddingLeft(1)

	LabelSuccess = lipgloss.NewStyle().Bold(true).Foreground(ColorSuccess)
	LabelWarning = lipgloss.NewStyle().Bold(true).Foreground(ColorWarning)
	LabelError   = lipgloss.NewStyle().Bold(true).Foreground(ColorError)
	LabelInfo    = lipgloss.NewStyle().Bold(true).Foreground(ColorInfo)

	// go-pretty pads the cells itself, so the table styles only color.
	TableHeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	TableEvenRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	TableOddRowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	TableMutedStyle   = lipgloss.NewStyle().Foreground(ColorMuted).Faint(true)
)

// TableRowStyle stripes table rows by their zero-based index.
func TableRowStyle(i int) lipgloss.Style {
	if i%2 == 0 {
		return TableEvenRowStyle
	}
	return TableOddRowStyle
}
