package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/philosophy-hub/db"
	"github.com/meinhoongagan/philosophy-hub/models"
	"github.com/meinhoongagan/philosophy-hub/utils"
)

// CreateSeminar schedules a new event. The philosopher-only gate sits on
// the route as middleware.
func CreateSeminar(c *fiber.Ctx) error {
	var input struct {
		Title        string    `json:"title"`
		Description  string    `json:"description"`
		Image        string    `json:"image"`
		ImageURL     string    `json:"imageUrl"`
		Place        string    `json:"place"`
		Date         time.Time `json:"date"`
		StartTime    string    `json:"startTime"`
		EndTime      string    `json:"endTime"`
		MaxAttendees int       `json:"maxAttendees"`
		Requirements string    `json:"requirements"`
		Tags         []string  `json:"tags"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Cannot parse JSON",
		})
	}
	if input.Title == "" || input.Description == "" || input.Place == "" ||
		input.Date.IsZero() || input.StartTime == "" || input.EndTime == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "All required fields must be provided",
		})
	}

	userID := c.Locals("userID").(uint)
	var host models.User
	if err := db.DB.First(&host, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "User not found",
		})
	}

	image := input.ImageURL
	if image == "" {
		image = input.Image
	}
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	seminar := models.Seminar{
		Title:        input.Title,
		Description:  input.Description,
		HostID:       host.ID,
		HostName:     host.Name,
		Place:        input.Place,
		Date:         input.Date,
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		Image:        image,
		MaxAttendees: input.MaxAttendees,
		Requirements: input.Requirements,
		Tags:         tags,
	}
	if err := db.DB.Create(&seminar).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Internal server error",
		})
	}
	db.DB.Preload("Host").First(&seminar, seminar.ID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Seminar created successfully",
		"seminar": seminar,
	})
}

// GetAllSeminars lists seminars, optionally filtered by status or limited
// to upcoming ones.
func GetAllSeminars(c *fiber.Ctx) error {
	query := db.DB.Preload("Host")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if c.Query("upcoming") == "true" {
		query = query.Where("date >= ? AND status = ?", time.Now(), models.SeminarStatusUpcoming)
	}

	var seminars []models.Seminar
	if err := query.Order("date ASC").Find(&seminars).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Internal server error",
		})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"seminars": seminars,
	})
}

// GetMySeminars lists the seminars hosted by the caller.
func GetMySeminars(c *fiber.Ctx) error {
	var seminars []models.Seminar
	if err := db.DB.Preload("Host").
		Where("host_id = ?", c.Locals("userID").(uint)).
		Order("date DESC").
		Find(&seminars).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Internal server error",
		})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"seminars": seminars,
	})
}

// GetSeminarByID returns one seminar with its attendee list.
func GetSeminarByID(c *fiber.Ctx) error {
	var seminar models.Seminar
	if err := db.DB.Preload("Host").Preload("Attendees").
		First(&seminar, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Seminar not found",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"seminar": seminar,
	})
}

// RegisterForSeminar adds the caller to the attendee list. Capacity is
// enforced by a conditional insert so a full seminar cannot overbook even
// under racing registrations.
func RegisterForSeminar(c *fiber.Ctx) error {
	var seminar models.Seminar
	if err := db.DB.First(&seminar, c.Params("seminarId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Seminar not found",
		})
	}

	userID := c.Locals("userID").(uint)

	var registered int64
	db.DB.Table("seminar_attendees").
		Where("seminar_id = ? AND user_id = ?", seminar.ID, userID).
		Count(&registered)
	if registered > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Already registered for this seminar",
		})
	}

	result := db.DB.Exec(`
		INSERT INTO seminar_attendees (seminar_id, user_id)
		SELECT ?, ?
		WHERE (SELECT COUNT(*) FROM seminar_attendees WHERE seminar_id = ?) < ?
	`, seminar.ID, userID, seminar.ID, seminar.MaxAttendees)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Internal server error",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Seminar is full",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Successfully registered for seminar",
	})
}

// UpdateSeminar edits a seminar; only the host may do so. Status changes
// (ongoing, completed, cancelled) come through here explicitly.
func UpdateSeminar(c *fiber.Ctx) error {
	var seminar models.Seminar
	if err := db.DB.First(&seminar, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Seminar not found",
		})
	}

	userID := c.Locals("userID").(uint)
	if !utils.IsOwner(seminar.HostID, userID) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": utils.OwnershipMessage("seminar"),
		})
	}

	var input struct {
		Title        string    `json:"title"`
		Description  string    `json:"description"`
		Image        string    `json:"image"`
		ImageURL     string    `json:"imageUrl"`
		Place        string    `json:"place"`
		Date         time.Time `json:"date"`
		StartTime    string    `json:"startTime"`
		EndTime      string    `json:"endTime"`
		MaxAttendees int       `json:"maxAttendees"`
		Requirements string    `json:"requirements"`
		Status       string    `json:"status"`
		Tags         []string  `json:"tags"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Cannot parse JSON",
		})
	}

	updates := models.Seminar{
		Title:        input.Title,
		Description:  input.Description,
		Place:        input.Place,
		Date:         input.Date,
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		MaxAttendees: input.MaxAttendees,
		Requirements: input.Requirements,
		Status:       models.SeminarStatus(input.Status),
	}
	if input.ImageURL != "" {
		updates.Image = input.ImageURL
	} else if input.Image != "" {
		updates.Image = input.Image
	}
	if input.Tags != nil {
		updates.Tags = input.Tags
	}

	if err := db.DB.Model(&seminar).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Internal server error",
		})
	}
	db.DB.Preload("Host").First(&seminar, seminar.ID)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Seminar updated successfully",
		"seminar": seminar,
	})
}

// DeleteSeminar removes a seminar; only the host may do so.
func DeleteSeminar(c *fiber.Ctx) error {
	var seminar models.Seminar
	if err := db.DB.First(&seminar, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Seminar not found",
		})
	}

	userID := c.Locals("userID").(uint)
	if !utils.IsOwner(seminar.HostID, userID) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": utils.OwnershipMessage("seminar"),
		})
	}

	if err := db.DB.Delete(&seminar).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Internal server error",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Seminar deleted successfully",
	})
}
