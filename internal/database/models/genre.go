package models

// Genre is a catalog genre, found-or-created by exact name.
type Genre struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null;size:100"`
}

// TableName returns the table name for Genre
func (Genre) TableName() string {
	return "generos"
}
