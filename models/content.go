package models

import (
	"gorm.io/gorm"
)

type ContentStatus string

const (
	ContentStatusDraft     ContentStatus = "draft"
	ContentStatusPublished ContentStatus = "published"
	ContentStatusArchived  ContentStatus = "archived"
)

// ContentCategories is the fixed set of article categories.
var ContentCategories = []string{
	"Ethics",
	"Metaphysics",
	"Logic",
	"Epistemology",
	"Political Philosophy",
	"Eastern Philosophy",
	"Existentialism",
	"Modern Ethics",
	"Ancient Philosophy",
	"Philosophy of Science",
}

// IsValidCategory reports whether name is a known content category.
func IsValidCategory(name string) bool {
	for _, c := range ContentCategories {
		if c == name {
			return true
		}
	}
	return false
}

type Content struct {
	gorm.Model
	Title       string           `json:"title"`
	Description string           `json:"description"`
	FullContent string           `json:"fullContent"`
	Category    string           `json:"category"`
	Status      ContentStatus    `json:"status" gorm:"default:published"`
	ReadTime    int              `json:"readTime"` // minutes
	Tags        []string         `json:"tags" gorm:"serializer:json"`
	AuthorID    uint             `json:"authorId"`
	Author      User             `json:"author" gorm:"foreignKey:AuthorID"`
	Likes       []User           `json:"likes,omitempty" gorm:"many2many:content_likes"`
	Comments    []ContentComment `json:"comments,omitempty" gorm:"foreignKey:ContentID"`
	Shares      int              `json:"shares"`
}

func (c *Content) BeforeCreate(tx *gorm.DB) error {
	if c.Status == "" {
		c.Status = ContentStatusPublished
	}
	return nil
}

// ContentComment is a comment left directly on an article.
type ContentComment struct {
	gorm.Model
	ContentID uint   `json:"contentId"`
	UserID    uint   `json:"userId"`
	User      User   `json:"user" gorm:"foreignKey:UserID"`
	Text      string `json:"text"`
}
