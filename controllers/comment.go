package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/philosophy-hub/db"
	"github.com/meinhoongagan/philosophy-hub/models"
	"github.com/meinhoongagan/philosophy-hub/utils"
)

// CreateComment adds a comment to a discussion thread.
func CreateComment(c *fiber.Ctx) error {
	var input struct {
		DiscussionID uint   `json:"id"`
		Content      string `json:"content"`
	}
	if err := c.BodyParser(&input); err != nil || input.DiscussionID == 0 || input.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Discussion ID and content are required",
		})
	}

	var discussion models.Discussion
	if err := db.DB.First(&discussion, input.DiscussionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Discussion not found",
		})
	}

	comment := models.Comment{
		DiscussionID: discussion.ID,
		UserID:       c.Locals("userID").(uint),
		Content:      input.Content,
	}
	if err := db.DB.Create(&comment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Internal Server Error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Comment Added Successfully",
		"comment": comment,
	})
}

// LikeComment records the caller's like; liking twice is a no-op.
func LikeComment(c *fiber.Ctx) error {
	var comment models.Comment
	if err := db.DB.First(&comment, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Comment not found",
		})
	}

	count, err := utils.AddLike(db.DB, &comment, c.Locals("userID").(uint))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Internal Server Error",
		})
	}

	return c.JSON(fiber.Map{
		"liked":      true,
		"success":    true,
		"message":    "Comment liked successfully",
		"likesCount": count,
	})
}

// DislikeComment withdraws the caller's like.
func DislikeComment(c *fiber.Ctx) error {
	var comment models.Comment
	if err := db.DB.First(&comment, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Comment not found",
		})
	}

	count, err := utils.RemoveLike(db.DB, &comment, c.Locals("userID").(uint))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Internal Server Error",
		})
	}

	return c.JSON(fiber.Map{
		"liked":      false,
		"success":    true,
		"message":    "Comment disliked successfully",
		"likesCount": count,
	})
}
