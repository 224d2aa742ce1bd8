package models

import "gorm.io/gorm"

// Comment belongs to a discussion thread.
type Comment struct {
	gorm.Model
	DiscussionID uint   `json:"discussionId"`
	UserID       uint   `json:"userId"`
	User         User   `json:"user" gorm:"foreignKey:UserID"`
	Content      string `json:"content"`
	Likes        []User `json:"likes,omitempty" gorm:"many2many:comment_likes"`
}
