package state

import (
	"fmt"

	"github.com/julianstephens/watchlit/internal/constants"
	"github.com/julianstephens/watchlit/internal/validation"
)

// UpdateValidationStatus runs validation and updates the warning message
func (m *Model) UpdateValidationStatus() {
	result := validation.New().ValidateShows(m.Watchlist.All(), m.Settings)
	m.ValidationConflicts = result.Conflicts

	if len(result.Conflicts) > 0 {
		m.ValidationWarning = fmt.Sprintf("⚠ %d validation warning(s), run '%s validate'", len(result.Conflicts), constants.AppName)
	} else {
		m.ValidationWarning = ""
	}
}
