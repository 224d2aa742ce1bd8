package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/philosophy-hub/utils"
)

// UploadImage pushes a multipart image to Cloudinary and returns the
// secure URL for the client to store on a seminar or profile.
func UploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Image file is required",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to read image",
		})
	}
	defer file.Close()

	url, err := utils.UploadToCloudinary(file, utils.GenerateUUID())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to upload image",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Image uploaded successfully",
		"url":     url,
	})
}
