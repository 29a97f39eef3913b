package filecheck_test

import (
	"testing"

	"cv-intake-backend/pkg/filecheck"

	"github.com/stretchr/testify/assert"
)

func TestValidatePDF(t *testing.T) {
	pdf := []byte("%PDF-1.7 content")

	t.Run("accepts a real pdf", func(t *testing.T) {
		res := filecheck.ValidatePDF("cv.pdf", "application/pdf", pdf)
		assert.True(t, res.Valid)
	})

	t.Run("accepts missing declared type", func(t *testing.T) {
		res := filecheck.ValidatePDF("cv.pdf", "", pdf)
		assert.True(t, res.Valid)
	})

	t.Run("rejects wrong extension", func(t *testing.T) {
		res := filecheck.ValidatePDF("cv.docx", "application/pdf", pdf)
		assert.False(t, res.Valid)
	})

	t.Run("rejects wrong declared type", func(t *testing.T) {
		res := filecheck.ValidatePDF("cv.pdf", "image/png", pdf)
		assert.False(t, res.Valid)
	})

	t.Run("rejects spoofed content", func(t *testing.T) {
		res := filecheck.ValidatePDF("cv.pdf", "application/pdf", []byte("MZ executable"))
		assert.False(t, res.Valid)
		assert.NotEmpty(t, res.Error)
	})

	t.Run("rejects truncated files", func(t *testing.T) {
		res := filecheck.ValidatePDF("cv.pdf", "application/pdf", []byte("%P"))
		assert.False(t, res.Valid)
	})
}

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "cv_ana_p_rez.pdf", filecheck.SanitizeFileName("cv ana pérez.pdf"))
	assert.Equal(t, "plain-name.pdf", filecheck.SanitizeFileName("plain-name.pdf"))
	assert.Equal(t, "cv.pdf", filecheck.SanitizeFileName(""))
}
