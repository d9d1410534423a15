package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"printperfect-backend/internal/config"
	"printperfect-backend/internal/models"
	"printperfect-backend/internal/storage"
)

type AuthHandler struct {
	repo storage.Repository
	cfg  *config.Config
}

func NewAuthHandler(repo storage.Repository, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		repo: repo,
		cfg:  cfg,
	}
}

// Register godoc
// @Summary     Register an account
// @Description Creates a user with a bcrypt-hashed password
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body models.RegisterRequest true "Credentials"
// @Success     201 {object} models.RegisterResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "username and password are required",
			Message: err.Error(),
		})
		return
	}

	_, err := h.repo.GetUserByUsername(req.Username)
	if err == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "username already exists"})
		return
	}
	if !errors.Is(err, storage.ErrNotFound) {
		log.Printf("Failed to look up username %q: %v", req.Username, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to register"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to register"})
		return
	}

	user, err := h.repo.CreateUser(&models.User{
		Username: req.Username,
		Password: string(hash),
	})
	if err != nil {
		log.Printf("Failed to create user %q: %v", req.Username, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to register"})
		return
	}

	c.JSON(http.StatusCreated, models.RegisterResponse{
		ID:       user.ID,
		Username: user.Username,
	})
}

// Login godoc
// @Summary     Log in
// @Description Verifies credentials and returns a 7-day HS256 JWT
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body models.LoginRequest true "Credentials"
// @Success     200 {object} models.LoginResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "username and password are required",
			Message: err.Error(),
		})
		return
	}

	user, err := h.repo.GetUserByUsername(req.Username)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid credentials"})
		return
	}
	if err != nil {
		log.Printf("Failed to look up username %q: %v", req.Username, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to log in"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid credentials"})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": strconv.Itoa(user.ID),
		"exp": time.Now().Add(7 * 24 * time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to log in"})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{
		Token:     signed,
		TokenType: "Bearer",
	})
}
