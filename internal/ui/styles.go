package ui

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	countsStyle   = lipgloss.NewStyle().Faint(true)
	taskTitle     = lipgloss.NewStyle().Bold(true)
	taskDesc      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	doneMark      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	openMark      = lipgloss.NewStyle()
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	hintStyle     = lipgloss.NewStyle().Faint(true)
	formBox       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	formHeading   = lipgloss.NewStyle().Bold(true)
	labelStyle    = lipgloss.NewStyle().Faint(true)
	cancelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	confirmStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	disabledStyle = lipgloss.NewStyle().Faint(true).Strikethrough(true)
)

const (
	markComplete   = "●"
	markIncomplete = "○"
)
