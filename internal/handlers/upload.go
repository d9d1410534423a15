package handlers

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"printperfect-backend/internal/filestore"
	"printperfect-backend/internal/models"
	"printperfect-backend/internal/storage"
	"printperfect-backend/internal/telemetry"
)

// Uploads above this size are rejected before anything is written.
const maxUploadBytes = 10 << 20

type UploadHandler struct {
	repo  storage.Repository
	files filestore.Store
}

func NewUploadHandler(repo storage.Repository, files filestore.Store) *UploadHandler {
	return &UploadHandler{
		repo:  repo,
		files: files,
	}
}

// Upload godoc
// @Summary     Upload an image
// @Description Accepts a single JPEG or PNG up to 10 MiB in the multipart field "image",
// @Description stores the bytes under a server-generated name and creates the image record.
// @Description The stored bytes are never modified afterwards; rotation and filters are
// @Description display-only transforms applied in the browser.
// @Tags        images
// @Accept      multipart/form-data
// @Produce     json
// @Param       image formData file true "JPEG or PNG image, max 10 MiB"
// @Success     201 {object} models.Image
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/images/upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "no file uploaded"})
		return
	}

	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "file too large, maximum size is 10 MiB",
		})
		return
	}

	declared := fileHeader.Header.Get("Content-Type")
	if declared != "image/jpeg" && declared != "image/png" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "invalid file type, only JPEG and PNG are allowed",
		})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to read uploaded file",
			Message: err.Error(),
		})
		return
	}
	data, err := io.ReadAll(src)
	src.Close()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to read uploaded file",
			Message: err.Error(),
		})
		return
	}

	// The declared content type is client-controlled, so sniff the bytes too.
	mt := mimetype.Detect(data)
	if !mt.Is("image/jpeg") && !mt.Is("image/png") {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "invalid file type, only JPEG and PNG are allowed",
		})
		return
	}

	fileName := uuid.New().String() + mt.Extension()
	if err := h.files.Save(fileName, data); err != nil {
		log.Printf("Failed to store upload %s: %v", fileName, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "failed to store image",
		})
		return
	}

	// Metadata probe: confirm the bytes decode as an image. The decoded
	// config is not otherwise used.
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		h.cleanup(fileName)
		log.Printf("Image probe failed for %s: %v", fileName, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to process image",
			Message: err.Error(),
		})
		return
	}

	newImage := &models.Image{
		FileName:         fileName,
		OriginalFileName: fileHeader.Filename,
		MimeType:         mt.String(),
		SizeMb:           strconv.FormatFloat(float64(fileHeader.Size)/(1024*1024), 'f', -1, 64),
		UploadedAt:       time.Now().UTC().Format(time.RFC3339),
	}

	saved, err := h.repo.CreateImage(newImage)
	if err != nil {
		h.cleanup(fileName)
		log.Printf("Failed to create image record for %s: %v", fileName, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "failed to save image record",
		})
		return
	}

	telemetry.RecordImageUpload()
	c.JSON(http.StatusCreated, saved)
}

// cleanup removes an orphaned file after a failure between the file write
// and the record creation.
func (h *UploadHandler) cleanup(fileName string) {
	if err := h.files.Delete(fileName); err != nil {
		log.Printf("Failed to clean up file %s: %v", fileName, err)
	}
}
