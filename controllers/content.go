package controllers

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/philosophy-hub/db"
	"github.com/meinhoongagan/philosophy-hub/models"
	"github.com/meinhoongagan/philosophy-hub/redis"
	"github.com/meinhoongagan/philosophy-hub/utils"
)

const contentFeedCachePrefix = "content:feed:"

// estimateReadTime assumes an average of 200 words per minute.
func estimateReadTime(fullContent string) int {
	words := len(strings.Fields(fullContent))
	minutes := int(math.Ceil(float64(words) / 200))
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

func splitTags(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

var contentSortColumns = map[string]string{
	"createdAt": "created_at",
	"title":     "title",
	"readTime":  "read_time",
}

// GetAllContent lists published articles, paginated and filterable by
// category and search term. Responses are cached briefly in Redis.
func GetAllContent(c *fiber.Ctx) error {
	cacheKey := contentFeedCachePrefix + string(c.Request().URI().QueryString())
	if cached, ok := redis.GetCached(cacheKey); ok {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(cached)
	}

	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 10)
	if limit < 1 {
		limit = 10
	}

	query := db.DB.Model(&models.Content{}).Where("status = ?", models.ContentStatusPublished)

	if category := c.Query("category"); category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	sortColumn, ok := contentSortColumns[c.Query("sortBy", "createdAt")]
	if !ok {
		sortColumn = "created_at"
	}
	direction := "DESC"
	if c.Query("sortOrder", "desc") == "asc" {
		direction = "ASC"
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Error fetching content",
		})
	}

	var contents []models.Content
	if err := query.Preload("Author").Preload("Likes").
		Order(sortColumn + " " + direction).
		Offset((page - 1) * limit).Limit(limit).
		Find(&contents).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Error fetching content",
		})
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	payload := fiber.Map{
		"success":  true,
		"contents": contents,
		"pagination": fiber.Map{
			"currentPage":  page,
			"totalPages":   totalPages,
			"totalContent": total,
			"hasNextPage":  page < totalPages,
			"hasPrevPage":  page > 1,
		},
	}

	if b, err := json.Marshal(payload); err == nil {
		redis.SetCached(cacheKey, b, time.Minute)
	}
	return c.JSON(payload)
}

// CreateContent publishes a new article. The philosopher-only gate sits on
// the route as middleware.
func CreateContent(c *fiber.Ctx) error {
	var input struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		FullContent string `json:"fullContent"`
		Category    string `json:"category"`
		Tags        string `json:"tags"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Cannot parse JSON",
		})
	}
	if input.Title == "" || input.Description == "" || input.FullContent == "" || input.Category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "All required fields must be provided",
		})
	}
	if !models.IsValidCategory(input.Category) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid category",
		})
	}

	content := models.Content{
		Title:       input.Title,
		Description: input.Description,
		FullContent: input.FullContent,
		Category:    input.Category,
		Tags:        splitTags(input.Tags),
		AuthorID:    c.Locals("userID").(uint),
		ReadTime:    estimateReadTime(input.FullContent),
	}

	if err := db.DB.Create(&content).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Error creating content",
		})
	}
	db.DB.Preload("Author").First(&content, content.ID)
	redis.Invalidate(contentFeedCachePrefix)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Content created successfully",
		"content": content,
	})
}

// GetContentByID returns a single article with its comments.
func GetContentByID(c *fiber.Ctx) error {
	var content models.Content
	if err := db.DB.Preload("Author").Preload("Likes").Preload("Comments.User").
		First(&content, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Content not found",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"content": content,
	})
}

// GetMyContent lists the caller's own articles, drafts included.
func GetMyContent(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 10)
	if limit < 1 {
		limit = 10
	}

	var total int64
	db.DB.Model(&models.Content{}).Where("author_id = ?", userID).Count(&total)

	var contents []models.Content
	if err := db.DB.Preload("Author").Where("author_id = ?", userID).
		Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&contents).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Error fetching your content",
		})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"contents": contents,
		"pagination": fiber.Map{
			"currentPage":  page,
			"totalPages":   int(math.Ceil(float64(total) / float64(limit))),
			"totalContent": total,
		},
	})
}

// UpdateContent edits an article; only the author may do so.
func UpdateContent(c *fiber.Ctx) error {
	var content models.Content
	if err := db.DB.First(&content, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Content not found",
		})
	}

	userID := c.Locals("userID").(uint)
	if !utils.IsOwner(content.AuthorID, userID) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": utils.OwnershipMessage("content"),
		})
	}

	var input struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		FullContent string `json:"fullContent"`
		Category    string `json:"category"`
		Tags        string `json:"tags"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Cannot parse JSON",
		})
	}

	if input.Title != "" {
		content.Title = input.Title
	}
	if input.Description != "" {
		content.Description = input.Description
	}
	if input.FullContent != "" {
		content.FullContent = input.FullContent
		content.ReadTime = estimateReadTime(input.FullContent)
	}
	if input.Category != "" {
		if !models.IsValidCategory(input.Category) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid category",
			})
		}
		content.Category = input.Category
	}
	if input.Tags != "" {
		content.Tags = splitTags(input.Tags)
	}

	if err := db.DB.Save(&content).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Error updating content",
		})
	}
	db.DB.Preload("Author").First(&content, content.ID)
	redis.Invalidate(contentFeedCachePrefix)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Content updated successfully",
		"content": content,
	})
}

// DeleteContent removes an article; only the author may do so.
func DeleteContent(c *fiber.Ctx) error {
	var content models.Content
	if err := db.DB.First(&content, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Content not found",
		})
	}

	userID := c.Locals("userID").(uint)
	if !utils.IsOwner(content.AuthorID, userID) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": utils.OwnershipMessage("content"),
		})
	}

	if err := db.DB.Delete(&content).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Error deleting content",
		})
	}
	redis.Invalidate(contentFeedCachePrefix)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Content deleted successfully",
	})
}

// ToggleContentLike flips the caller's like on an article.
func ToggleContentLike(c *fiber.Ctx) error {
	var content models.Content
	if err := db.DB.First(&content, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Content not found",
		})
	}

	liked, count, err := utils.ToggleLike(db.DB, &content, c.Locals("userID").(uint))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Error updating like",
		})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"isLiked":   liked,
		"likeCount": count,
	})
}

// AddContentComment appends a comment to an article.
func AddContentComment(c *fiber.Ctx) error {
	var input struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&input); err != nil || strings.TrimSpace(input.Text) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Comment text is required",
		})
	}

	var content models.Content
	if err := db.DB.First(&content, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Content not found",
		})
	}

	comment := models.ContentComment{
		ContentID: content.ID,
		UserID:    c.Locals("userID").(uint),
		Text:      strings.TrimSpace(input.Text),
	}
	if err := db.DB.Create(&comment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Error adding comment",
		})
	}
	db.DB.Preload("User").First(&comment, comment.ID)

	var commentCount int64
	db.DB.Model(&models.ContentComment{}).Where("content_id = ?", content.ID).Count(&commentCount)

	return c.JSON(fiber.Map{
		"success":      true,
		"message":      "Comment added successfully",
		"comment":      comment,
		"commentCount": commentCount,
	})
}
