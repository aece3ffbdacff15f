package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nguyenlong0920/ecommerce-admin/internal/http/middleware"
	"github.com/nguyenlong0920/ecommerce-admin/internal/shared/apperr"
	"github.com/nguyenlong0920/ecommerce-admin/internal/storage"
)

const maxUploadBytes = 10 << 20 // per file

// UploadHandler stores product images and hands back their public URLs in
// the order the files were submitted.
type UploadHandler struct {
	store storage.Storage
}

func NewUploadHandler(store storage.Storage) *UploadHandler {
	return &UploadHandler{store: store}
}

func (h *UploadHandler) Post(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		middleware.Fail(c, apperr.InvalidErr("Upload payload is invalid.", nil))
		return
	}

	files := form.File["file"]
	if len(files) == 0 {
		middleware.Fail(c, apperr.InvalidErr("No files submitted.", nil))
		return
	}

	links := make([]string, 0, len(files))
	for _, fh := range files {
		if fh.Size > maxUploadBytes {
			middleware.Fail(c, apperr.InvalidErr("File too large.", map[string]string{"file": fh.Filename + " exceeds the 10MB limit."}))
			return
		}
		if !storage.AllowedImage(fh.Filename) {
			middleware.Fail(c, apperr.InvalidErr("Unsupported file type.", map[string]string{"file": fh.Filename + " is not an image."}))
			return
		}

		f, err := fh.Open()
		if err != nil {
			middleware.Fail(c, apperr.Wrap(err))
			return
		}

		res, err := h.store.Put(c.Request.Context(), f, storage.PutInput{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
		})
		f.Close()
		if err != nil {
			middleware.Fail(c, apperr.Wrap(err))
			return
		}
		links = append(links, res.URL)
	}

	c.JSON(http.StatusOK, gin.H{"links": links})
}
