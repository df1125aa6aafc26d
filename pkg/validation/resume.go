package validation

import (
	"bytes"
	"path/filepath"
	"strings"
)

// SniffLen is how many leading bytes of an upload the HTTP layer should hand
// to ValidateResume. Enough for every signature below.
const SniffLen = 512

// Magic byte signatures for allowed resume types.
// Maps lowercase extension to possible magic byte prefixes.
var magicBytes = map[string][][]byte{
	".pdf":  {{0x25, 0x50, 0x44, 0x46}},                                 // %PDF
	".doc":  {{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}},        // OLE Compound Document
	".docx": {{0x50, 0x4B, 0x03, 0x04}},                                // ZIP (PK..)
	".txt":  {},                                                        // no magic bytes, rely on MIME
}

// Strict MIME types; application/octet-stream is only tolerated for the
// OLE/ZIP based formats whose content already passed the magic byte check.
var strictMIMETypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"text/plain":      true,
	"application/zip": true,
}

// ResumeValidationResult contains the result of resume file validation
type ResumeValidationResult struct {
	Valid     bool
	Extension string
	Error     string
}

// ValidateResume performs 3-layer validation on a resume upload:
// 1. Extension whitelist check
// 2. Magic byte verification against the first bytes of the stream
// 3. MIME type whitelist
// head must contain the leading bytes of the file (up to SniffLen); the caller
// keeps streaming the rest untouched.
func ValidateResume(filename string, head []byte, contentType string) ResumeValidationResult {
	result := ResumeValidationResult{}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		result.Error = "file has no extension"
		return result
	}
	result.Extension = ext

	// Layer 1: extension whitelist
	signatures, allowed := magicBytes[ext]
	if !allowed {
		result.Error = "file extension not allowed: " + ext
		return result
	}

	// Layer 2: content must match the claimed extension
	if len(signatures) > 0 && !matchesAny(head, signatures) {
		result.Error = "file content does not match extension"
		return result
	}

	// Layer 3: MIME whitelist
	mime := baseMIME(contentType)
	if mime == "application/octet-stream" {
		if ext != ".doc" && ext != ".docx" {
			result.Error = "content type application/octet-stream not allowed"
			return result
		}
		// magic bytes already confirmed the format
	} else if mime != "" && !strictMIMETypes[mime] {
		result.Error = "content type not allowed: " + mime
		return result
	}

	result.Valid = true
	return result
}

func matchesAny(head []byte, signatures [][]byte) bool {
	for _, sig := range signatures {
		if bytes.HasPrefix(head, sig) {
			return true
		}
	}
	return false
}

// baseMIME strips parameters such as "; charset=utf-8".
func baseMIME(contentType string) string {
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}
	return strings.TrimSpace(strings.ToLower(contentType))
}
