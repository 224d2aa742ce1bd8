package models

import "time"

// Otp holds the single pending verification code for an email address.
// Code is a bcrypt hash; the plaintext only ever leaves the server by mail.
type Otp struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Email        string     `json:"email" gorm:"uniqueIndex"`
	Code         string     `json:"-"`
	Attempts     int        `json:"attempts"`
	ValidUntil   time.Time  `json:"validUntil"`
	BlockedUntil *time.Time `json:"blockedUntil"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
