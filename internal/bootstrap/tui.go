package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"focuscycle/internal/ui/terminal"
)

const tuiLogFile = "tui.log"

// RunTUI runs the terminal host until the user quits. Logs go to a file next
// to the settings so they do not corrupt the screen.
func RunTUI(env *Env) error {
	logPath := filepath.Join(filepath.Dir(env.Path), tuiLogFile)
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	logFile, err := tea.LogToFile(logPath, AppName)
	if err != nil {
		return fmt.Errorf("open tui log: %w", err)
	}
	defer logFile.Close()
	env.Logger = NewLogger(logFile, env.Options.Verbose)

	keeper := env.NewKeeper(Notifiers(env.Chime()))
	defer keeper.Close()

	model := terminal.New(keeper, keeper.Subscribe(eventBuffer), env.SaveDurations)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}
