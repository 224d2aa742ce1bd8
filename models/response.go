package models

import "gorm.io/gorm"

// Response is an answer posted against a doubt.
type Response struct {
	gorm.Model
	UserID     uint   `json:"userId"`
	User       User   `json:"user" gorm:"foreignKey:UserID"`
	DoubtID    uint   `json:"doubtId"`
	Body       string `json:"response"`
	IsAccepted bool   `json:"isAccepted"`
	Likes      []User `json:"likes,omitempty" gorm:"many2many:response_likes"`
}
