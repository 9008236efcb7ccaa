package di

import (
	stateadapters "finboard/internal/feature/appstate/adapters"
	"finboard/internal/feature/appstate/usecase"

	"gorm.io/gorm"
)

// NewStateRepository creates a StateRepository implementation.
// If the database is unavailable, it returns nil and the usecase
// degrades to read-miss / write-rejected behavior.
func NewStateRepository(db *gorm.DB) usecase.StateRepository {
	if db == nil {
		return nil
	}
	return stateadapters.NewStateGorm(db)
}
