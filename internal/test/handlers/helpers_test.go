package handlers_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"printperfect-backend/internal/config"
	"printperfect-backend/internal/filestore"
	"printperfect-backend/internal/handlers"
	"printperfect-backend/internal/middleware"
	"printperfect-backend/internal/storage"
)

// newTestRouter wires the full API against an in-memory repository and a
// temp-dir file store, mirroring the route table in cmd/server.
func newTestRouter(t *testing.T) (*gin.Engine, storage.Repository, filestore.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := storage.NewMemoryRepository()
	files, err := filestore.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	cfg := &config.Config{JWTSecret: "test-secret-key-for-jwt-signing-must-be-long-enough"}

	uploadHandler := handlers.NewUploadHandler(repo, files)
	imagesHandler := handlers.NewImagesHandler(repo, files)
	ordersHandler := handlers.NewOrdersHandler(repo)
	authHandler := handlers.NewAuthHandler(repo, cfg)

	router := gin.New()
	router.GET("/health", handlers.HealthHandler)

	api := router.Group("/api")
	api.GET("/pricing", handlers.PricingHandler)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/images/upload", uploadHandler.Upload)
	api.GET("/images/file/:fileName", imagesHandler.GetImageFile)
	api.GET("/images/:id", imagesHandler.GetImage)
	api.POST("/orders", ordersHandler.CreateOrder)
	api.GET("/orders/:id", ordersHandler.GetOrder)
	api.GET("/orders", middleware.AuthMiddleware(cfg), ordersHandler.ListOrders)

	return router, repo, files
}

func makePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for x := 0; x < 16; x++ {
		for y := 0; y < 16; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 16), G: uint8(y * 16), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func makeJPEG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

// makeMultipart builds a multipart body with one file part carrying an
// explicit Content-Type header, the way browsers submit the upload form.
func makeMultipart(t *testing.T, field, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		`form-data; name="`+field+`"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}
