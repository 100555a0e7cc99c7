package terminal

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rios0rios0/cargoupdate/internal/domain/entities"
	"github.com/rios0rios0/cargoupdate/internal/domain/repositories"
)

// TerminalSelectorRepository implements repositories.SelectorRepository with
// an interactive bubbletea list.
type TerminalSelectorRepository struct {
	input  io.Reader
	output io.Writer
}

// NewTerminalSelectorRepository creates a selector bound to stdin/stdout.
func NewTerminalSelectorRepository() repositories.SelectorRepository {
	return &TerminalSelectorRepository{input: os.Stdin, output: os.Stdout}
}

// Select runs the interactive list and returns the chosen updates. Cancelling
// returns an empty selection.
func (r *TerminalSelectorRepository) Select(updates []entities.Update) ([]entities.Update, error) {
	if len(updates) == 0 {
		return updates, nil
	}

	program := tea.NewProgram(
		newSelectorModel(updates),
		tea.WithInput(r.input),
		tea.WithOutput(r.output),
	)
	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("interactive selection failed: %w", err)
	}

	model, ok := final.(selectorModel)
	if !ok {
		return nil, fmt.Errorf("unexpected selector model %T", final)
	}
	return model.chosen(), nil
}
