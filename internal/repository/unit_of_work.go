package repository

import (
	"gorm.io/gorm"
)

// UnitOfWork wraps a gorm transaction around a Registry of repositories.
type UnitOfWork struct {
	db *gorm.DB
}

// Ensure UnitOfWork implements UnitOfWorkInterface
var _ UnitOfWorkInterface = (*UnitOfWork)(nil)

// NewUnitOfWork creates a new unit of work
func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

// NewRegistry builds a Registry whose repositories share the given handle.
func NewRegistry(db *gorm.DB) *Registry {
	return &Registry{
		Games:     NewGameRepository(db),
		Companies: NewCompanyRepository(db),
		Genres:    NewGenreRepository(db),
		Platforms: NewPlatformRepository(db),
		DLCs:      NewDLCRepository(db),
	}
}

// Do runs fn inside a single transaction. Returning an error rolls back the
// whole ingestion, so a failed step never leaves partial game graphs behind.
func (u *UnitOfWork) Do(fn func(r *Registry) error) error {
	return u.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRegistry(tx))
	})
}
