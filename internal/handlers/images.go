package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"

	"printperfect-backend/internal/filestore"
	"printperfect-backend/internal/models"
	"printperfect-backend/internal/storage"
)

type ImagesHandler struct {
	repo  storage.Repository
	files filestore.Store
}

func NewImagesHandler(repo storage.Repository, files filestore.Store) *ImagesHandler {
	return &ImagesHandler{
		repo:  repo,
		files: files,
	}
}

// GetImage godoc
// @Summary     Get an image record
// @Description Returns the metadata record for one uploaded image
// @Tags        images
// @Accept      json
// @Produce     json
// @Param       id path int true "Image ID"
// @Success     200 {object} models.Image
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/images/{id} [get]
func (h *ImagesHandler) GetImage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid image id"})
		return
	}

	image, err := h.repo.GetImage(id)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "image not found"})
		return
	}
	if err != nil {
		log.Printf("Failed to fetch image %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to fetch image"})
		return
	}

	c.JSON(http.StatusOK, image)
}

// GetImageFile godoc
// @Summary     Serve an uploaded image file
// @Description Returns the raw stored bytes with their sniffed content type
// @Tags        images
// @Produce     image/jpeg
// @Produce     image/png
// @Param       fileName path string true "Stored file name"
// @Success     200 {file} binary
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/images/file/{fileName} [get]
func (h *ImagesHandler) GetImageFile(c *gin.Context) {
	fileName := c.Param("fileName")

	data, err := h.files.Open(fileName)
	if errors.Is(err, filestore.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "image file not found"})
		return
	}
	if err != nil {
		log.Printf("Failed to serve image file %s: %v", fileName, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to serve image file"})
		return
	}

	c.Data(http.StatusOK, mimetype.Detect(data).String(), data)
}
