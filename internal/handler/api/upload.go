package api

import (
	"fmt"
	"mime/multipart"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// saveUpload stores an uploaded file under dir with a random name and returns
// the public URL path.
func saveUpload(c *gin.Context, file *multipart.FileHeader, dir string) (string, error) {
	name := uuid.NewString() + filepath.Ext(file.Filename)
	dst := filepath.Join(dir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", fmt.Errorf("failed to save uploaded file: %w", err)
	}
	return "/uploads/" + name, nil
}
