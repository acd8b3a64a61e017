package handler

import (
	"github.com/gofiber/fiber/v2"

	"mdlib/internal/model"
	"mdlib/internal/service"
)

type createDocumentRequest struct {
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	FolderID *string `json:"folderId"`
}

type importDocumentRequest struct {
	Path     string  `json:"path"`
	FolderID *string `json:"folderId"`
}

type deleteResponse struct {
	Deleted bool `json:"deleted"`
}

// CreateDocument godoc
// @Summary Create a document
// @Tags library
// @Accept json
// @Produce json
// @Param body body createDocumentRequest true "New document"
// @Success 201 {object} model.Document
// @Failure 400 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /library/documents [post]
func CreateDocument(svc service.LibraryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createDocumentRequest
		if err := c.BodyParser(&req); err != nil {
			return writeInvalidBody(c)
		}
		if !optionalUUID(req.FolderID) {
			return writeInvalidID(c)
		}

		doc, err := svc.Create(c.UserContext(), req.Title, req.Content, req.FolderID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	}
}

// ListDocuments godoc
// @Summary List every document, most recently updated first
// @Tags library
// @Produce json
// @Success 200 {array} model.Document
// @Router /library/documents [get]
func ListDocuments(svc service.LibraryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docs, err := svc.GetAll(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(nonNil(docs))
	}
}

// GetDocument godoc
// @Summary Get a document by id
// @Tags library
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Success 200 {object} model.Document
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /library/documents/{id} [get]
func GetDocument(svc service.LibraryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return writeInvalidID(c)
		}

		doc, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		if doc == nil {
			return writeNotFound(c, "document")
		}
		return c.JSON(doc)
	}
}

// UpdateDocument godoc
// @Summary Partially update a document
// @Tags library
// @Accept json
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Param body body model.DocumentPatch true "Fields to change; folderId null unfiles"
// @Success 200 {object} model.Document
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /library/documents/{id} [patch]
func UpdateDocument(svc service.LibraryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return writeInvalidID(c)
		}

		var patch model.DocumentPatch
		if err := c.BodyParser(&patch); err != nil {
			return writeInvalidBody(c)
		}
		if !optionalUUID(patch.FolderID.Value) {
			return writeInvalidID(c)
		}

		doc, err := svc.Update(c.UserContext(), id, patch)
		if err != nil {
			return writeServiceError(c, err)
		}
		if doc == nil {
			return writeNotFound(c, "document")
		}
		return c.JSON(doc)
	}
}

// DeleteDocument godoc
// @Summary Delete a document
// @Tags library
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Success 200 {object} deleteResponse
// @Router /library/documents/{id} [delete]
func DeleteDocument(svc service.LibraryService) fiber.Handler {
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

// SearchDocuments godoc
// @Summary Full-text search over titles and content
// @Tags library
// @Produce json
// @Param q query string true "FTS5 query"
// @Success 200 {array} model.Document
// @Failure 400 {object} errorPayload
// @Router /library/search [get]
func SearchDocuments(svc service.LibraryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docs, err := svc.Search(c.UserContext(), c.Query("q"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(nonNil(docs))
	}
}

// ListDocumentsByFolder godoc
// @Summary List the documents filed in a folder
// @Tags library
// @Produce json
// @Param folderId query string false "Folder ID; empty lists unfiled documents"
// @Success 200 {array} model.Document
// @Router /library/by-folder [get]
func ListDocumentsByFolder(svc service.LibraryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var folderID *string
		if v := c.Query("folderId"); v != "" {
			if !optionalUUID(&v) {
				return writeInvalidID(c)
			}
			folderID = &v
		}

		docs, err := svc.GetByFolder(c.UserContext(), folderID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(nonNil(docs))
	}
}

// ReindexLibrary godoc
// @Summary Rebuild the full-text index from the documents table
// @Tags library
// @Success 204
// @Router /library/reindex [post]
func ReindexLibrary(svc service.LibraryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Reindex(c.UserContext()); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ImportDocument godoc
// @Summary Import a markdown file from disk into the library
// @Tags library
// @Accept json
// @Produce json
// @Param body body importDocumentRequest true "File to import"
// @Success 201 {object} model.Document
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /library/import [post]
func ImportDocument(svc service.LibraryService, recent RecentFiles) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req importDocumentRequest
		if err := c.BodyParser(&req); err != nil {
			return writeInvalidBody(c)
		}
		if !optionalUUID(req.FolderID) {
			return writeInvalidID(c)
		}

		doc, err := svc.Import(c.UserContext(), req.Path, req.FolderID)
		if err != nil {
			return writeServiceError(c, err)
		}
		recent.Add(req.Path)
		return c.Status(fiber.StatusCreated).JSON(doc)
	}
}

// nonNil keeps empty results encoded as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
