package handler

import (
	"github.com/gofiber/fiber/v2"

	"mdlib/internal/model"
	"mdlib/internal/service"
)

type createFolderRequest struct {
	Name     string  `json:"name"`
	ParentID *string `json:"parentId"`
}

// CreateFolder godoc
// @Summary Create a folder
// @Tags folders
// @Accept json
// @Produce json
// @Param body body createFolderRequest true "New folder"
// @Success 201 {object} model.Folder
// @Failure 400 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /library/folders [post]
func CreateFolder(svc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createFolderRequest
		if err := c.BodyParser(&req); err != nil {
			return writeInvalidBody(c)
		}
		if !optionalUUID(req.ParentID) {
			return writeInvalidID(c)
		}

		f, err := svc.Create(c.UserContext(), req.Name, req.ParentID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(f)
	}
}

// ListFolders godoc
// @Summary List folders
// @Description Without parent every folder is returned. parent=root lists top-level
// @Description folders; parent=<id> lists the children of that folder.
// @Tags folders
// @Produce json
// @Param parent query string false "root or a folder ID"
// @Success 200 {array} model.Folder
// @Router /library/folders [get]
func ListFolders(svc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var (
			folders []model.Folder
			err     error
		)
		switch parent := c.Query("parent"); parent {
		case "":
			folders, err = svc.List(c.UserContext())
		case "root":
			folders, err = svc.ListChildren(c.UserContext(), nil)
		default:
			if !optionalUUID(&parent) {
				return writeInvalidID(c)
			}
			folders, err = svc.ListChildren(c.UserContext(), &parent)
		}
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(nonNil(folders))
	}
}

// GetFolder godoc
// @Summary Get a folder by id
// @Tags folders
// @Produce json
// @Param id path string true "Folder ID (UUID)"
// @Success 200 {object} model.Folder
// @Failure 404 {object} errorPayload
// @Router /library/folders/{id} [get]
func GetFolder(svc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return writeInvalidID(c)
		}

		f, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		if f == nil {
			return writeNotFound(c, "folder")
		}
		return c.JSON(f)
	}
}

// UpdateFolder godoc
// @Summary Rename or move a folder
// @Tags folders
// @Accept json
// @Produce json
// @Param id path string true "Folder ID (UUID)"
// @Param body body model.FolderPatch true "Fields to change; parentId null moves to top level"
// @Success 200 {object} model.Folder
// @Failure 404 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /library/folders/{id} [patch]
func UpdateFolder(svc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return writeInvalidID(c)
		}

		var patch model.FolderPatch
		if err := c.BodyParser(&patch); err != nil {
			return writeInvalidBody(c)
		}
		if !optionalUUID(patch.ParentID.Value) {
			return writeInvalidID(c)
		}

		f, err := svc.Update(c.UserContext(), id, patch)
		if err != nil {
			return writeServiceError(c, err)
		}
		if f == nil {
			return writeNotFound(c, "folder")
		}
		return c.JSON(f)
	}
}

// DeleteFolder godoc
// @Summary Delete a folder, its subfolders, and unfile their documents
// @Tags folders
// @Produce json
// @Param id path string true "Folder ID (UUID)"
// @Success 200 {object} deleteResponse
// @Router /library/folders/{id} [delete]
func DeleteFolder(svc service.FolderService) fiber.Handler {
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
