package controllers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/philosophy-hub/db"
	"github.com/meinhoongagan/philosophy-hub/models"
	"github.com/meinhoongagan/philosophy-hub/utils"
)

func formatTimeAgo(t time.Time) string {
	diff := time.Since(t)
	switch {
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%d minutes ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%d hours ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%d days ago", int(diff.Hours()/24))
	}
	return t.Format("1/2/2006")
}

// GetAllDoubts returns the active questions in the feed shape the client
// renders directly.
func GetAllDoubts(c *fiber.Ctx) error {
	var doubts []models.Doubt
	if err := db.DB.Preload("User").Preload("Tags").Preload("Likes").
		Preload("Responses.User").
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&doubts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Internal Server Error",
		})
	}

	formatted := make([]fiber.Map, 0, len(doubts))
	for _, doubt := range doubts {
		tags := make([]string, 0, len(doubt.Tags))
		for _, tag := range doubt.Tags {
			tags = append(tags, tag.Name)
		}
		answers := make([]fiber.Map, 0, len(doubt.Responses))
		for _, response := range doubt.Responses {
			answers = append(answers, fiber.Map{
				"id":       response.ID,
				"author":   response.User.Name,
				"content":  response.Body,
				"dateTime": formatTimeAgo(response.CreatedAt),
				"verified": response.User.UserType == models.UserTypePhilosopher,
			})
		}
		formatted = append(formatted, fiber.Map{
			"id":        doubt.ID,
			"question":  doubt.Question,
			"tags":      tags,
			"author":    doubt.User.Name,
			"isExpert":  doubt.User.UserType == models.UserTypePhilosopher,
			"dateTime":  formatTimeAgo(doubt.CreatedAt),
			"answers":   answers,
			"likeCount": len(doubt.Likes),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"doubts":  formatted,
	})
}

// GetDoubtByID returns one question with its responses.
func GetDoubtByID(c *fiber.Ctx) error {
	var doubt models.Doubt
	if err := db.DB.Preload("User").Preload("Tags").Preload("Responses.User").
		First(&doubt, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Doubt not found",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Doubt fetched successfully",
		"doubt":   doubt,
	})
}

// CreateDoubt posts a new question with optional tags.
func CreateDoubt(c *fiber.Ctx) error {
	var input struct {
		Question string   `json:"question"`
		Tags     []string `json:"tags"`
	}
	if err := c.BodyParser(&input); err != nil || strings.TrimSpace(input.Question) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Question is required",
		})
	}

	tags, err := resolveTags(db.DB, input.Tags)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Internal Server Error",
		})
	}

	doubt := models.Doubt{
		UserID:   c.Locals("userID").(uint),
		Question: strings.TrimSpace(input.Question),
		IsActive: true,
		Tags:     tags,
	}
	if err := db.DB.Create(&doubt).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Internal Server Error",
		})
	}
	db.DB.Preload("User").Preload("Tags").First(&doubt, doubt.ID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Question posted successfully",
		"doubt":   doubt,
	})
}

func setDoubtActive(c *fiber.Ctx, active bool, message string) error {
	var doubt models.Doubt
	if err := db.DB.First(&doubt, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Doubt not found",
		})
	}

	if !utils.IsOwner(doubt.UserID, c.Locals("userID").(uint)) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": utils.OwnershipMessage("doubt"),
		})
	}

	if err := db.DB.Model(&doubt).Update("is_active", active).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Internal Server Error",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": message,
		"doubt":   doubt,
	})
}

// ActivateDoubt reopens a question for responses.
func ActivateDoubt(c *fiber.Ctx) error {
	return setDoubtActive(c, true, "Doubt activated successfully")
}

// DeactivateDoubt hides a question from the feed.
func DeactivateDoubt(c *fiber.Ctx) error {
	return setDoubtActive(c, false, "Doubt deactivated successfully")
}

// LikeDoubt records the caller's like; liking twice is a no-op.
func LikeDoubt(c *fiber.Ctx) error {
	var doubt models.Doubt
	if err := db.DB.First(&doubt, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Doubt not found",
		})
	}

	count, err := utils.AddLike(db.DB, &doubt, c.Locals("userID").(uint))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Internal Server Error",
		})
	}

	return c.JSON(fiber.Map{
		"liked":      true,
		"success":    true,
		"message":    "Doubt liked successfully",
		"likesCount": count,
	})
}

// DislikeDoubt withdraws the caller's like.
func DislikeDoubt(c *fiber.Ctx) error {
	var doubt models.Doubt
	if err := db.DB.First(&doubt, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Doubt not found",
		})
	}

	count, err := utils.RemoveLike(db.DB, &doubt, c.Locals("userID").(uint))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Internal Server Error",
		})
	}

	return c.JSON(fiber.Map{
		"liked":      false,
		"success":    true,
		"message":    "Doubt disliked successfully",
		"likesCount": count,
	})
}
