package models

import "gorm.io/gorm"

// Doubt is a question posted in the Q&A forum.
type Doubt struct {
	gorm.Model
	UserID    uint       `json:"userId"`
	User      User       `json:"user" gorm:"foreignKey:UserID"`
	Question  string     `json:"question"`
	IsActive  bool       `json:"isActive" gorm:"default:true"`
	Tags      []Tag      `json:"tags,omitempty" gorm:"many2many:doubt_tags"`
	Responses []Response `json:"responses,omitempty" gorm:"foreignKey:DoubtID"`
	Likes     []User     `json:"likes,omitempty" gorm:"many2many:doubt_likes"`
}
