package models

import "time"

// Game is the locally materialized copy of a catalog game. Rows are created
// lazily on first ingestion, matched by exact title, and never refreshed.
type Game struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"uniqueIndex;not null;size:255"`
	Description string    `json:"description" gorm:"type:text"`
	CriticScore *int      `json:"critic_score"`
	DeveloperID *uint     `json:"developer_id" gorm:"index"`
	PublisherID *uint     `json:"publisher_id" gorm:"index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relationships
	Developer     *Company       `json:"developer,omitempty" gorm:"foreignKey:DeveloperID"`
	Publisher     *Company       `json:"publisher,omitempty" gorm:"foreignKey:PublisherID"`
	Genres        []Genre        `json:"genres,omitempty" gorm:"many2many:jogo_genero;constraint:OnDelete:CASCADE"`
	PlatformLinks []GamePlatform `json:"platforms,omitempty" gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
	DLCs          []DLC          `json:"dlcs,omitempty" gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Game
func (Game) TableName() string {
	return "jogos"
}

// DLC is downloadable content belonging to exactly one game,
// found-or-created by (game, name).
type DLC struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	GameID      uint   `json:"game_id" gorm:"not null;index"`
	Name        string `json:"name" gorm:"not null;size:255"`
	Description string `json:"description" gorm:"type:text"`
}

// TableName returns the table name for DLC
func (DLC) TableName() string {
	return "dlcs"
}
