package repositories

import (
	"github.com/rios0rios0/cargoupdate/internal/domain/entities"
)

// SelectorRepository lets the user pick which updates to apply.
type SelectorRepository interface {
	// Select returns the chosen subset of updates, preserving their order.
	Select(updates []entities.Update) ([]entities.Update, error)
}
