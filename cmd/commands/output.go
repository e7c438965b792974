package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6"))
)

func success(format string, args ...interface{}) {
	fmt.Print(successStyle.Render("✓ "))
	fmt.Printf(format+"\n", args...)
}

func warning(format string, args ...interface{}) {
	fmt.Print(warningStyle.Render("⚠ "))
	fmt.Printf(format+"\n", args...)
}

func info(format string, args ...interface{}) {
	fmt.Print(infoStyle.Render("ℹ "))
	fmt.Printf(format+"\n", args...)
}
