package models

import "time"

// Platform is a release platform, found-or-created by exact name.
type Platform struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null;size:100"`
}

// TableName returns the table name for Platform
func (Platform) TableName() string {
	return "plataformas"
}

// GamePlatform links a game to a platform and carries the release date for
// that pair. The catalog only exposes a single first-release timestamp, so
// every platform of one ingestion shares the same date.
type GamePlatform struct {
	GameID      uint       `json:"game_id" gorm:"primaryKey;autoIncrement:false"`
	PlatformID  uint       `json:"platform_id" gorm:"primaryKey;autoIncrement:false"`
	ReleaseDate *time.Time `json:"release_date" gorm:"type:date"`

	Platform Platform `json:"platform" gorm:"foreignKey:PlatformID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GamePlatform
func (GamePlatform) TableName() string {
	return "jogo_plataforma"
}
