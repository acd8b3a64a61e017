package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

type recentFileRequest struct {
	Path string `json:"path"`
}

// ListRecentFiles godoc
// @Summary List recently opened files, most recent first
// @Tags recent
// @Produce json
// @Success 200 {array} model.RecentFile
// @Router /recent [get]
func ListRecentFiles(recent RecentFiles) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(recent.List())
	}
}

// AddRecentFile godoc
// @Summary Record a file as opened
// @Tags recent
// @Accept json
// @Produce json
// @Param body body recentFileRequest true "Opened file"
// @Success 200 {array} model.RecentFile
// @Failure 400 {object} errorPayload
// @Router /recent [post]
func AddRecentFile(recent RecentFiles) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req recentFileRequest
		if err := c.BodyParser(&req); err != nil {
			return writeInvalidBody(c)
		}
		if strings.TrimSpace(req.Path) == "" {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "path is required")
		}

		recent.Add(req.Path)
		return c.JSON(recent.List())
	}
}

// ClearRecentFiles godoc
// @Summary Forget every recent file
// @Tags recent
// @Success 204
// @Router /recent [delete]
func ClearRecentFiles(recent RecentFiles) fiber.Handler {
	return func(c *fiber.Ctx) error {
		recent.Clear()
		return c.SendStatus(fiber.StatusNoContent)
	}
}
