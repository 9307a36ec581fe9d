package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lexcalc/dintilhac/internal/calculation"
	"github.com/lexcalc/dintilhac/internal/tui"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: dintilhac-tui <case-file>")
		os.Exit(1)
	}
	casePath := os.Args[1]

	if _, err := os.Stat(casePath); os.IsNotExist(err) {
		fmt.Printf("Error: case file not found: %s\n", casePath)
		os.Exit(1)
	}

	// the alternate screen owns the terminal, so the engine stays silent
	model := tui.NewModel(casePath, calculation.NewCalculationEngine())

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
