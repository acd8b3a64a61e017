package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"mdlib/internal/model"
	"mdlib/internal/service"
)

// RecentFiles is the ledger behind the /recent routes.
type RecentFiles interface {
	List() []model.RecentFile
	Add(path string)
	Clear()
}

// Deps carries everything the command surface dispatches to.
type Deps struct {
	DB      *sql.DB
	Library service.LibraryService
	Folders service.FolderService
	Tags    service.TagService
	Export  service.ExportService
	Recent  RecentFiles
}

// RegisterRoutes registers all HTTP routes.
func RegisterRoutes(app *fiber.App, d Deps) {
	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", Liveness())

	lib := app.Group("/library")
	lib.Post("/documents", CreateDocument(d.Library))
	lib.Get("/documents", ListDocuments(d.Library))
	lib.Get("/documents/:id", GetDocument(d.Library))
	lib.Patch("/documents/:id", UpdateDocument(d.Library))
	lib.Delete("/documents/:id", DeleteDocument(d.Library))
	lib.Get("/search", SearchDocuments(d.Library))
	lib.Get("/by-folder", ListDocumentsByFolder(d.Library))
	lib.Post("/reindex", ReindexLibrary(d.Library))
	lib.Post("/import", ImportDocument(d.Library, d.Recent))

	lib.Post("/folders", CreateFolder(d.Folders))
	lib.Get("/folders", ListFolders(d.Folders))
	lib.Get("/folders/:id", GetFolder(d.Folders))
	lib.Patch("/folders/:id", UpdateFolder(d.Folders))
	lib.Delete("/folders/:id", DeleteFolder(d.Folders))

	lib.Post("/tags", CreateTag(d.Tags))
	lib.Get("/tags", ListTags(d.Tags))
	lib.Get("/tags/:id", GetTag(d.Tags))
	lib.Delete("/tags/:id", DeleteTag(d.Tags))
	lib.Get("/tags/:id/documents", ListTaggedDocuments(d.Tags))
	lib.Get("/documents/:id/tags", ListDocumentTags(d.Tags))
	lib.Put("/documents/:id/tags/:tagId", AttachTag(d.Tags))
	lib.Delete("/documents/:id/tags/:tagId", DetachTag(d.Tags))

	app.Get("/recent", ListRecentFiles(d.Recent))
	app.Post("/recent", AddRecentFile(d.Recent))
	app.Delete("/recent", ClearRecentFiles(d.Recent))

	app.Post("/export/html", ExportHTML(d.Export))
	app.Get("/export/:key", DownloadExport(d.Export))
	app.Delete("/export/:key", RemoveExport(d.Export))
}

// paramID returns the named path parameter when it is a valid UUID.
func paramID(c *fiber.Ctx, name string) (string, bool) {
	id := c.Params(name)
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

func writeInvalidID(c *fiber.Ctx) error {
	return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
}

// optionalUUID validates an optional id; nil and "" pass through.
func optionalUUID(id *string) bool {
	if id == nil || *id == "" {
		return true
	}
	_, err := uuid.Parse(*id)
	return err == nil
}

func writeInvalidBody(c *fiber.Ctx) error {
	return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a JSON object")
}
