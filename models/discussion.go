package models

import "gorm.io/gorm"

type Discussion struct {
	gorm.Model
	UserID   uint      `json:"userId"`
	User     User      `json:"user" gorm:"foreignKey:UserID"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	Tags     []Tag     `json:"tags,omitempty" gorm:"many2many:discussion_tags"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:DiscussionID"`
	Likes    []User    `json:"likes,omitempty" gorm:"many2many:discussion_likes"`
}
