package controllers

import (
	"strings"

	"github.com/meinhoongagan/philosophy-hub/models"
	"gorm.io/gorm"
)

// resolveTags finds or creates tags by name. Doubts and discussions share
// this single path so the tag pool stays deduplicated.
func resolveTags(tx *gorm.DB, names []string) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		var tag models.Tag
		if err := tx.Where("name = ?", name).FirstOrCreate(&tag, models.Tag{Name: name}).Error; err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}
