package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/philosophy-hub/db"
	"github.com/meinhoongagan/philosophy-hub/models"
	"github.com/meinhoongagan/philosophy-hub/utils"
)

// CreateResponse posts an answer against an existing doubt.
func CreateResponse(c *fiber.Ctx) error {
	var input struct {
		DoubtID  uint   `json:"doubtId"`
		Response string `json:"response"`
	}
	if err := c.BodyParser(&input); err != nil || strings.TrimSpace(input.Response) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Response content is required",
		})
	}
	if input.DoubtID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Doubt ID is required",
		})
	}

	var doubt models.Doubt
	if err := db.DB.First(&doubt, input.DoubtID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Doubt not found",
		})
	}

	response := models.Response{
		UserID:  c.Locals("userID").(uint),
		DoubtID: doubt.ID,
		Body:    strings.TrimSpace(input.Response),
	}
	if err := db.DB.Create(&response).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Internal Server Error",
		})
	}
	db.DB.Preload("User").First(&response, response.ID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"message":  "Response posted successfully",
		"response": response,
	})
}

// LikeResponse toggles the caller's like on an answer.
func LikeResponse(c *fiber.Ctx) error {
	var response models.Response
	if err := db.DB.First(&response, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Response not found",
		})
	}

	_, count, err := utils.ToggleLike(db.DB, &response, c.Locals("userID").(uint))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Internal Server Error",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Like toggled successfully",
		"likes":   count,
	})
}
