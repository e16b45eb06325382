package controllers

import (
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/shashiranjanraj/kirana/pkg/response"
	"github.com/shashiranjanraj/kirana/pkg/storage"
)

// product image uploads land here, matching the form descriptor's
// upload_dir.
const uploadDir = "product-attachments"

// maxUploadBytes caps a single image upload at 8 MB.
const maxUploadBytes = 8 << 20

// UploadController stores product images on the configured disk.
type UploadController struct{}

func NewUploadController() *UploadController {
	return &UploadController{}
}

// Store accepts a multipart upload under the "image" field and returns the
// stored path plus its public URL. Filenames are preserved, sanitised to
// their base name.
func (c *UploadController) Store(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		response.Error(w, http.StatusBadRequest, "Could not parse upload")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "The image field is required.")
		return
	}
	defer file.Close()

	name := path.Base(strings.ReplaceAll(header.Filename, "\\", "/"))
	if name == "" || name == "." || name == "/" {
		response.Error(w, http.StatusBadRequest, "Invalid file name")
		return
	}

	dest := fmt.Sprintf("%s/%s", uploadDir, name)
	if err := storage.PutStream(dest, file); err != nil {
		response.Error(w, http.StatusInternalServerError, "Could not store upload")
		return
	}

	response.Created(w, map[string]string{
		"path": dest,
		"url":  storage.URL(dest),
	})
}
