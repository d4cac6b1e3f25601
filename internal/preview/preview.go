package preview

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive preview and blocks until the user quits or
// ctx is cancelled. It returns the launch shown last.
func Run(ctx context.Context, opts Options, in io.Reader, out io.Writer) (Model, error) {
	program := tea.NewProgram(New(opts),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)

	final, err := program.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return Model{}, fmt.Errorf("run preview: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return New(opts), nil
	}
	return m, nil
}
