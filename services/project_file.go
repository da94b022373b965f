package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ProjectFileExt is the extension reserved for editable project files.
const ProjectFileExt = ".luxe"

// pdfSignature is the leading byte sequence of a PDF file. Users routinely
// confuse the generated PDF with the saved project file, so imports detect
// it up front and name the mismatch instead of reporting corruption.
var pdfSignature = []byte("%PDF")

var (
	// ErrWrongFileType means the import was given a PDF export instead of
	// a project file.
	ErrWrongFileType = errors.New("this is a PDF export, not a " + ProjectFileExt + " project file")

	// ErrCorruptFile means the content could not be decoded at all.
	ErrCorruptFile = errors.New("project file could not be decoded")

	// ErrInvalidProject means the content decoded but is not a quotation
	// project (missing client or items).
	ErrInvalidProject = errors.New("invalid project file structure")
)

// ExportProject serializes the full quotation as an indented JSON snapshot.
// Re-importing the result reproduces an equivalent QuoteData.
func ExportProject(data QuoteData) ([]byte, error) {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode project: %w", err)
	}
	return out, nil
}

// ProjectFileName derives the download name from the client name and quote
// number, e.g. LuxeQuote_Rahul-Sharma_INT-2026-042.luxe.
func ProjectFileName(data QuoteData) string {
	name := data.Client.Name
	if name == "" {
		name = "Project"
	}
	return fmt.Sprintf("LuxeQuote_%s_%s%s", sanitizeFilename(name), data.Client.QuoteNumber, ProjectFileExt)
}

// sanitizeFilename replaces characters that are unsafe in download names.
func sanitizeFilename(s string) string {
	r := strings.NewReplacer(" ", "-", "/", "-", "\\", "-", ":", "-")
	return r.Replace(s)
}

// ImportProject decodes a project file into a QuoteData, validating in
// order: PDF signature, JSON decode, structural shape. The returned record
// has totals recomputed. Import is all-or-nothing: on any error the caller's
// state must be left untouched.
func ImportProject(content []byte) (QuoteData, error) {
	if bytes.HasPrefix(content, pdfSignature) {
		return QuoteData{}, ErrWrongFileType
	}

	// Probe the shape first: a struct decode would silently zero-fill
	// missing fields.
	var probe struct {
		Client *ClientDetails `json:"client"`
		Items  *[]QuoteItem   `json:"items"`
	}
	if err := json.Unmarshal(content, &probe); err != nil {
		return QuoteData{}, ErrCorruptFile
	}
	if probe.Client == nil || probe.Items == nil {
		return QuoteData{}, ErrInvalidProject
	}

	var data QuoteData
	if err := json.Unmarshal(content, &data); err != nil {
		return QuoteData{}, ErrCorruptFile
	}
	return Recompute(data), nil
}
