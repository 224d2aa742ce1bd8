package models

// Tag is deduplicated by name; doubts and discussions share the same pool.
type Tag struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex"`
}
