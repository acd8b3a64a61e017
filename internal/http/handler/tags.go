package handler

import (
	"github.com/gofiber/fiber/v2"

	"mdlib/internal/service"
)

type createTagRequest struct {
	Name  string  `json:"name"`
	Color *string `json:"color"`
}

type detachResponse struct {
	Detached bool `json:"detached"`
}

// CreateTag godoc
// @Summary Create a tag
// @Tags tags
// @Accept json
// @Produce json
// @Param body body createTagRequest true "New tag"
// @Success 201 {object} model.Tag
// @Failure 409 {object} errorPayload
// @Router /library/tags [post]
func CreateTag(svc service.TagService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createTagRequest
		if err := c.BodyParser(&req); err != nil {
			return writeInvalidBody(c)
		}

		tag, err := svc.Create(c.UserContext(), req.Name, req.Color)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(tag)
	}
}

// ListTags godoc
// @Summary List tags by name
// @Tags tags
// @Produce json
// @Success 200 {array} model.Tag
// @Router /library/tags [get]
func ListTags(svc service.TagService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tags, err := svc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(nonNil(tags))
	}
}

// GetTag godoc
// @Summary Get a tag by id
// @Tags tags
// @Produce json
// @Param id path string true "Tag ID (UUID)"
// @Success 200 {object} model.Tag
// @Failure 404 {object} errorPayload
// @Router /library/tags/{id} [get]
func GetTag(svc service.TagService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return writeInvalidID(c)
		}

		tag, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		if tag == nil {
			return writeNotFound(c, "tag")
		}
		return c.JSON(tag)
	}
}

// DeleteTag godoc
// @Summary Delete a tag and all of its document links
// @Tags tags
// @Produce json
// @Param id path string true "Tag ID (UUID)"
// @Success 200 {object} deleteResponse
// @Router /library/tags/{id} [delete]
func DeleteTag(svc service.TagService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return writeInvalidID(c)
		}

		deleted, err := svc.Delete(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(deleteResponse{Deleted: deleted})
	}
}

// ListTaggedDocuments godoc
// @Summary List the documents carrying a tag
// @Tags tags
// @Produce json
// @Param id path string true "Tag ID (UUID)"
// @Success 200 {array} model.Document
// @Router /library/tags/{id}/documents [get]
func ListTaggedDocuments(svc service.TagService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return writeInvalidID(c)
		}

		docs, err := svc.ListDocuments(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(nonNil(docs))
	}
}

// ListDocumentTags godoc
// @Summary List the tags of a document
// @Tags tags
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Success 200 {array} model.Tag
// @Router /library/documents/{id}/tags [get]
func ListDocumentTags(svc service.TagService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return writeInvalidID(c)
		}

		tags, err := svc.ListForDocument(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(nonNil(tags))
	}
}

// AttachTag godoc
// @Summary Attach a tag to a document
// @Tags tags
// @Param id path string true "Document ID (UUID)"
// @Param tagId path string true "Tag ID (UUID)"
// @Success 204
// @Failure 409 {object} errorPayload
// @Router /library/documents/{id}/tags/{tagId} [put]
func AttachTag(svc service.TagService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docID, ok := paramID(c, "id")
		if !ok {
			return writeInvalidID(c)
		}
		tagID, ok := paramID(c, "tagId")
		if !ok {
			return writeInvalidID(c)
		}

		if err := svc.Attach(c.UserContext(), docID, tagID); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// DetachTag godoc
// @Summary Remove a tag from a document
// @Tags tags
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Param tagId path string true "Tag ID (UUID)"
// @Success 200 {object} detachResponse
// @Router /library/documents/{id}/tags/{tagId} [delete]
func DetachTag(svc service.TagService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docID, ok := paramID(c, "id")
		if !ok {
			return writeInvalidID(c)
		}
		tagID, ok := paramID(c, "tagId")
		if !ok {
			return writeInvalidID(c)
		}

		detached, err := svc.Detach(c.UserContext(), docID, tagID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(detachResponse{Detached: detached})
	}
}
