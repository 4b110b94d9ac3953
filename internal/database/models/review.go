package models

import "time"

// Review is one user's rating of one game. The composite unique index makes
// the one-review-per-(user, game) invariant hold under concurrent submission.
type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_avaliacoes_user_jogo"`
	GameID    uint      `json:"game_id" gorm:"not null;uniqueIndex:idx_avaliacoes_user_jogo"`
	Rating    float64   `json:"rating" gorm:"not null"`
	Comment   *string   `json:"comment" gorm:"size:1000"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Game *Game `json:"game,omitempty" gorm:"foreignKey:GameID"`
}

// TableName returns the table name for Review
func (Review) TableName() string {
	return "avaliacoes"
}
