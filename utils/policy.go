package utils

import (
	"fmt"

	"github.com/meinhoongagan/philosophy-hub/models"
	"gorm.io/gorm"
)

// IsOwner reports whether the caller owns the resource. Every mutating
// endpoint funnels its ownership decision through here.
func IsOwner(ownerID, callerID uint) bool {
	return ownerID == callerID
}

// OwnershipMessage is the forbidden-response message for a resource type.
func OwnershipMessage(resource string) string {
	return fmt.Sprintf("You can only modify your own %s", resource)
}

// ToggleLike flips the caller's like on a resource exposing a Likes
// association. Returns the resulting state and like count.
func ToggleLike(tx *gorm.DB, resource interface{}, userID uint) (bool, int64, error) {
	assoc := tx.Model(resource).Association("Likes")

	var existing []models.User
	if err := assoc.Find(&existing, "users.id = ?", userID); err != nil {
		return false, 0, err
	}

	user := models.User{ID: userID}
	liked := len(existing) == 0
	if liked {
		if err := assoc.Append(&user); err != nil {
			return false, 0, err
		}
	} else {
		if err := assoc.Delete(&user); err != nil {
			return false, 0, err
		}
	}

	return liked, assoc.Count(), nil
}

// AddLike records the caller's like if not already present.
func AddLike(tx *gorm.DB, resource interface{}, userID uint) (int64, error) {
	assoc := tx.Model(resource).Association("Likes")

	var existing []models.User
	if err := assoc.Find(&existing, "users.id = ?", userID); err != nil {
		return 0, err
	}
	if len(existing) == 0 {
		if err := assoc.Append(&models.User{ID: userID}); err != nil {
			return 0, err
		}
	}

	return assoc.Count(), nil
}

// RemoveLike withdraws the caller's like if present.
func RemoveLike(tx *gorm.DB, resource interface{}, userID uint) (int64, error) {
	assoc := tx.Model(resource).Association("Likes")
	if err := assoc.Delete(&models.User{ID: userID}); err != nil {
		return 0, err
	}
	return assoc.Count(), nil
}
