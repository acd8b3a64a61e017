package handler

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"mdlib/internal/service"
	"mdlib/internal/storage"
)

type exportHTMLRequest struct {
	HTML  string `json:"html"`
	Title string `json:"title"`
}

// ExportHTML godoc
// @Summary Export rendered markdown as a standalone HTML page
// @Tags export
// @Accept json
// @Produce json
// @Param body body exportHTMLRequest true "Rendered body and page title"
// @Success 201 {object} service.ExportResult
// @Failure 400 {object} errorPayload
// @Router /export/html [post]
func ExportHTML(svc service.ExportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req exportHTMLRequest
		if err := c.BodyParser(&req); err != nil {
			return writeInvalidBody(c)
		}

		res, err := svc.ExportHTML(c.UserContext(), req.HTML, req.Title)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

// DownloadExport godoc
// @Summary Download a stored export
// @Tags export
// @Produce html
// @Param key path string true "Export key, URL escaped"
// @Success 200 {file} file
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /export/{key} [get]
func DownloadExport(svc service.ExportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key, err := url.PathUnescape(c.Params("key"))
		if err != nil {
			return writeInvalidKey(c)
		}

		body, info, err := svc.Open(c.UserContext(), key)
		if err != nil {
			return writeServiceError(c, err)
		}
		if info.ContentType != "" {
			c.Set(fiber.HeaderContentType, info.ContentType)
		}
		// fasthttp closes body once it has been written.
		return c.SendStream(body, int(info.Size))
	}
}

// RemoveExport godoc
// @Summary Delete a stored export
// @Tags export
// @Param key path string true "Export key, URL escaped"
// @Success 204
// @Failure 400 {object} errorPayload
// @Router /export/{key} [delete]
func RemoveExport(svc service.ExportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key, err := url.PathUnescape(c.Params("key"))
		if err != nil {
			return writeInvalidKey(c)
		}

		if err := svc.Remove(c.UserContext(), key); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func writeInvalidKey(c *fiber.Ctx) error {
	return writeError(c, fiber.StatusBadRequest, "INVALID_KEY", storage.ErrInvalidKey.Error())
}
