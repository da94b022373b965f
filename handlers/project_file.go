package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotebuilder/services"
	"quotebuilder/store"
)

// maxProjectFileSize caps project uploads; real project files are a few KB.
const maxProjectFileSize = 5 << 20

// HandleProjectExport returns a handler that downloads the working draft as
// a project file for later re-import.
func HandleProjectExport(app *pocketbase.PocketBase, drafts store.DraftStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, err := loadDraft(drafts)
		if err != nil {
			log.Printf("project_export: load draft: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to load quotation")
		}

		content, err := services.ExportProject(data)
		if err != nil {
			log.Printf("project_export: serialize: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to export project")
		}

		e.Response.Header().Set("Content-Type", "application/json")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, services.ProjectFileName(data)))
		e.Response.Write(content)
		return nil
	}
}

// HandleProjectImport returns a handler that replaces the working draft
// with an uploaded project file.
func HandleProjectImport(app *pocketbase.PocketBase, drafts store.DraftStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseMultipartForm(maxProjectFileSize); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "File too large or invalid form data")
		}

		file, _, err := e.Request.FormFile("project")
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Please select a project file to upload")
		}
		defer file.Close()

		content, err := io.ReadAll(io.LimitReader(file, maxProjectFileSize))
		if err != nil {
			log.Printf("project_import: read upload: %v", err)
			return ErrorToast(e, http.StatusBadRequest, "Could not read the uploaded file")
		}

		data, err := services.ImportProject(content)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrWrongFileType):
				return ErrorToast(e, http.StatusBadRequest, "That is a PDF, not a project file. Please select a "+services.ProjectFileExt+" file.")
			case errors.Is(err, services.ErrCorruptFile):
				return ErrorToast(e, http.StatusBadRequest, "The project file is corrupt and could not be read")
			case errors.Is(err, services.ErrInvalidProject):
				return ErrorToast(e, http.StatusBadRequest, "The file is not a valid quotation project")
			default:
				log.Printf("project_import: %v", err)
				return ErrorToast(e, http.StatusBadRequest, "Could not load the project file")
			}
		}

		if err := drafts.Save(data); err != nil {
			log.Printf("project_import: save draft: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to save quotation")
		}
		SetToast(e, "success", "Project loaded")
		return renderWorkspace(e, data)
	}
}
