package models

import (
	"time"

	"gorm.io/gorm"
)

type SeminarStatus string

const (
	SeminarStatusUpcoming  SeminarStatus = "upcoming"
	SeminarStatusOngoing   SeminarStatus = "ongoing"
	SeminarStatusCompleted SeminarStatus = "completed"
	SeminarStatusCancelled SeminarStatus = "cancelled"
)

const DefaultSeminarImage = "https://images.unsplash.com/photo-1582510003544-4d00b7f74220?w=400&h=250&fit=crop"

// Seminar is a scheduled event with a capacity-bounded attendee list.
// Status transitions are explicit; nothing moves a seminar along by time.
type Seminar struct {
	gorm.Model
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	HostID       uint          `json:"hostId"`
	Host         User          `json:"host" gorm:"foreignKey:HostID"`
	HostName     string        `json:"hostName"`
	Place        string        `json:"place"`
	Date         time.Time     `json:"date"`
	StartTime    string        `json:"startTime"`
	EndTime      string        `json:"endTime"`
	Image        string        `json:"image"`
	MaxAttendees int           `json:"maxAttendees" gorm:"default:50"`
	Attendees    []User        `json:"attendees,omitempty" gorm:"many2many:seminar_attendees"`
	Status       SeminarStatus `json:"status" gorm:"default:upcoming"`
	Tags         []string      `json:"tags" gorm:"serializer:json"`
	Requirements string        `json:"requirements"`
}

func (s *Seminar) BeforeCreate(tx *gorm.DB) error {
	if s.Status == "" {
		s.Status = SeminarStatusUpcoming
	}
	if s.Image == "" {
		s.Image = DefaultSeminarImage
	}
	if s.MaxAttendees == 0 {
		s.MaxAttendees = 50
	}
	return nil
}
