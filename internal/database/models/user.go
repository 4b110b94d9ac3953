package models

import "time"

// User represents a registered account. Passwords are stored as bcrypt hashes.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null;size:100" validate:"required,min=3,max=100"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Password  string    `json:"-" gorm:"not null;size:255"`
	Admin     bool      `json:"admin" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Watchlists []Watchlist `json:"watchlists,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Reviews    []Review    `json:"reviews,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
