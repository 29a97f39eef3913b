package filecheck

import (
	"bytes"
	"path/filepath"
	"regexp"
	"strings"
)

// pdfMagic is the %PDF signature every PDF file starts with.
var pdfMagic = []byte{0x25, 0x50, 0x44, 0x46}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// Result contains the outcome of CV file validation.
type Result struct {
	Valid bool
	Error string
}

// ValidatePDF checks that the uploaded file is a PDF by extension, declared
// content type, and magic bytes. The intake boundary only accepts PDFs, so
// this is deliberately a single-type check rather than a whitelist.
func ValidatePDF(filename, declaredType string, data []byte) Result {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".pdf" {
		return Result{Error: "only PDF files are accepted"}
	}

	if declaredType != "" && declaredType != "application/pdf" {
		return Result{Error: "content type must be application/pdf"}
	}

	if len(data) < len(pdfMagic) || !bytes.HasPrefix(data, pdfMagic) {
		return Result{Error: "file content is not a valid PDF"}
	}

	return Result{Valid: true}
}

// SanitizeFileName replaces every character outside [a-zA-Z0-9.-] with an
// underscore so the name can be embedded in a storage path.
func SanitizeFileName(name string) string {
	if name == "" {
		return "cv.pdf"
	}
	return unsafeChars.ReplaceAllString(name, "_")
}
