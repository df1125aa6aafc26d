package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-jobportal-api/pkg/validation"
)

var pdfHead = []byte{0x25, 0x50, 0x44, 0x46, 0x2D, 0x31, 0x2E, 0x34} // %PDF-1.4

func TestValidateResume(t *testing.T) {
	t.Run("Accepts a real PDF", func(t *testing.T) {
		result := validation.ValidateResume("cv.pdf", pdfHead, "application/pdf")
		assert.True(t, result.Valid)
		assert.Equal(t, ".pdf", result.Extension)
	})

	t.Run("Accepts a docx with zip signature", func(t *testing.T) {
		head := []byte{0x50, 0x4B, 0x03, 0x04, 0x14, 0x00}
		result := validation.ValidateResume("cv.docx", head,
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document")
		assert.True(t, result.Valid)
	})

	t.Run("Accepts plain text", func(t *testing.T) {
		result := validation.ValidateResume("cv.txt", []byte("Jane Doe, engineer"), "text/plain; charset=utf-8")
		assert.True(t, result.Valid)
	})

	t.Run("Rejects disallowed extensions", func(t *testing.T) {
		result := validation.ValidateResume("cv.exe", pdfHead, "application/pdf")
		assert.False(t, result.Valid)
		assert.Contains(t, result.Error, "not allowed")
	})

	t.Run("Rejects a file with no extension", func(t *testing.T) {
		result := validation.ValidateResume("resume", pdfHead, "application/pdf")
		assert.False(t, result.Valid)
	})

	t.Run("Rejects content that does not match the extension", func(t *testing.T) {
		head := []byte{0x4D, 0x5A, 0x90, 0x00} // MZ executable header
		result := validation.ValidateResume("cv.pdf", head, "application/pdf")
		assert.False(t, result.Valid)
		assert.Contains(t, result.Error, "does not match")
	})

	t.Run("Rejects octet-stream for pdf", func(t *testing.T) {
		result := validation.ValidateResume("cv.pdf", pdfHead, "application/octet-stream")
		assert.False(t, result.Valid)
	})

	t.Run("Tolerates octet-stream for docx after magic byte check", func(t *testing.T) {
		head := []byte{0x50, 0x4B, 0x03, 0x04}
		result := validation.ValidateResume("cv.docx", head, "application/octet-stream")
		assert.True(t, result.Valid)
	})

	t.Run("Rejects unknown MIME types", func(t *testing.T) {
		result := validation.ValidateResume("cv.pdf", pdfHead, "video/mp4")
		assert.False(t, result.Valid)
	})
}
