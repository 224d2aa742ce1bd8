package models

import (
	"time"
)

// UserType distinguishes content creators from regular accounts.
type UserType string

const (
	UserTypePhilosopher UserType = "philosopher"
	UserTypeNormal      UserType = "normal"
)

// Valid reports whether the value is one of the known user types.
func (u UserType) Valid() bool {
	return u == UserTypePhilosopher || u == UserTypeNormal
}

type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name"`
	Email          string    `json:"email" gorm:"uniqueIndex"`
	Password       string    `json:"-"`
	Phone          string    `json:"phone"`
	UserType       UserType  `json:"userType" gorm:"default:normal"`
	Expertise      []string  `json:"expertise,omitempty" gorm:"serializer:json"`
	Bio            string    `json:"bio,omitempty"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
