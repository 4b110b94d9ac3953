package models

import "time"

// CompanyRole tags the context a company row was first created under.
// A single row may later be referenced as developer by one game and
// publisher by another; the per-game role lives on the Game FKs.
type CompanyRole string

const (
	CompanyRoleDeveloper CompanyRole = "desenvolvedora"
	CompanyRolePublisher CompanyRole = "publicadora"
)

// Company represents a game developer or publisher, found-or-created by exact name.
type Company struct {
	ID        uint        `json:"id" gorm:"primaryKey"`
	Name      string      `json:"name" gorm:"uniqueIndex;not null;size:255"`
	Role      CompanyRole `json:"role" gorm:"type:varchar(20);not null"`
	Country   *string     `json:"country" gorm:"size:100"`
	Market    string      `json:"market" gorm:"not null;size:100"`
	FoundedAt *time.Time  `json:"founded_at" gorm:"type:date"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// TableName returns the table name for Company
func (Company) TableName() string {
	return "empresas"
}
