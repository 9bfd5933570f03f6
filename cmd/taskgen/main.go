// cmd/taskgen/main.go
//
// Terminal client for the task generator. Run it from a project directory;
// it creates .taskgen/ there and talks to a running taskgen-server.

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ghanshambordekar3/Task-Generator/internal/config"
	"github.com/ghanshambordekar3/Task-Generator/internal/tui"
)

func main() {
	projectDir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "taskgen: resolve working directory: %v\n", err)
		os.Exit(1)
	}
	if err := config.InitTaskgenDir(projectDir); err != nil {
		fmt.Fprintf(os.Stderr, "taskgen: init %s: %v\n", config.TaskgenDir, err)
		os.Exit(1)
	}
	app, err := tui.NewApp(projectDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "taskgen: %v\n", err)
		os.Exit(1)
	}
	program := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "taskgen: %v\n", err)
		os.Exit(1)
	}
}
