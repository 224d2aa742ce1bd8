package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/philosophy-hub/db"
	"github.com/meinhoongagan/philosophy-hub/models"
	"github.com/meinhoongagan/philosophy-hub/utils"
)

// GetAllDiscussions lists every discussion thread.
func GetAllDiscussions(c *fiber.Ctx) error {
	var discussions []models.Discussion
	if err := db.DB.Preload("User").Preload("Tags").Find(&discussions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Internal Server Error",
		})
	}
	return c.JSON(fiber.Map{
		"success":     true,
		"discussions": discussions,
	})
}

// GetDiscussionByID returns one thread with its comments.
func GetDiscussionByID(c *fiber.Ctx) error {
	var discussion models.Discussion
	if err := db.DB.Preload("User").Preload("Tags").Preload("Comments.User").
		First(&discussion, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Discussion not found",
		})
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"discussion": discussion,
	})
}

// CreateDiscussion opens a new thread with optional tags.
func CreateDiscussion(c *fiber.Ctx) error {
	var input struct {
		Title   string   `json:"title"`
		Content string   `json:"content"`
		Tags    []string `json:"tags"`
	}
	if err := c.BodyParser(&input); err != nil || input.Title == "" || input.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "All fields are required",
		})
	}

	tags, err := resolveTags(db.DB, input.Tags)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Internal Server Error",
		})
	}

	discussion := models.Discussion{
		UserID:  c.Locals("userID").(uint),
		Title:   input.Title,
		Content: input.Content,
		Tags:    tags,
	}
	if err := db.DB.Create(&discussion).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Internal Server Error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":    true,
		"message":    "Discussion created successfully",
		"discussion": discussion,
	})
}

// UpdateDiscussion edits a thread; only its author may do so.
func UpdateDiscussion(c *fiber.Ctx) error {
	var input struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&input); err != nil || input.Title == "" || input.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "All fields are required",
		})
	}

	var discussion models.Discussion
	if err := db.DB.First(&discussion, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Discussion not found",
		})
	}

	if !utils.IsOwner(discussion.UserID, c.Locals("userID").(uint)) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": utils.OwnershipMessage("discussion"),
		})
	}

	if err := db.DB.Model(&discussion).Updates(map[string]interface{}{
		"title":   input.Title,
		"content": input.Content,
	}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Internal Server Error",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Discussion updated successfully",
	})
}

// LikeDiscussion records the caller's like; liking twice is a no-op.
func LikeDiscussion(c *fiber.Ctx) error {
	var discussion models.Discussion
	if err := db.DB.First(&discussion, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Discussion not found",
		})
	}

	count, err := utils.AddLike(db.DB, &discussion, c.Locals("userID").(uint))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Internal Server Error",
		})
	}

	return c.JSON(fiber.Map{
		"liked":      true,
		"success":    true,
		"message":    "Discussion liked successfully",
		"likesCount": count,
	})
}

// DislikeDiscussion withdraws the caller's like.
func DislikeDiscussion(c *fiber.Ctx) error {
	var discussion models.Discussion
	if err := db.DB.First(&discussion, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Discussion not found",
		})
	}

	count, err := utils.RemoveLike(db.DB, &discussion, c.Locals("userID").(uint))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Internal Server Error",
		})
	}

	return c.JSON(fiber.Map{
		"liked":      false,
		"success":    true,
		"message":    "Discussion disliked successfully",
		"likesCount": count,
	})
}
