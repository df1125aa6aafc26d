package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKey(t *testing.T) {
	t.Run("Should prefix keys and keep the original extension", func(t *testing.T) {
		key := objectKey("cv final (2).pdf")

		assert.True(t, strings.HasPrefix(key, "resumes/"))
		assert.True(t, strings.HasSuffix(key, ".pdf"))
		assert.NotContains(t, key, "cv final")
	})

	t.Run("Should produce a bare key when the filename has no extension", func(t *testing.T) {
		key := objectKey("resume")

		assert.True(t, strings.HasPrefix(key, "resumes/"))
		assert.NotContains(t, strings.TrimPrefix(key, "resumes/"), ".")
	})

	t.Run("Should generate distinct keys for identical filenames", func(t *testing.T) {
		assert.NotEqual(t, objectKey("cv.pdf"), objectKey("cv.pdf"))
	})
}
