package models

import "time"

// Watchlist is a named set of games owned by one user. A game appears at
// most once per watchlist; the add-game orchestration enforces it.
type Watchlist struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Name      string    `json:"name" gorm:"not null;size:255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Games []Game `json:"games,omitempty" gorm:"many2many:watchlist_jogo;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Watchlist
func (Watchlist) TableName() string {
	return "watchlists"
}
