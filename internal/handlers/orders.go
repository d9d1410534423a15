package handlers

import (
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"printperfect-backend/internal/models"
	"printperfect-backend/internal/pricing"
	"printperfect-backend/internal/storage"
	"printperfect-backend/internal/telemetry"
)

type OrdersHandler struct {
	repo storage.Repository
}

func NewOrdersHandler(repo storage.Repository) *OrdersHandler {
	return &OrdersHandler{
		repo: repo,
	}
}

// CreateOrder godoc
// @Summary     Place an order
// @Description Validates and persists one order referencing an uploaded image.
// @Description Payment fields are captured but never charged. The client-computed
// @Description price breakdown is stored as sent; a mismatch against the server's
// @Description own arithmetic is logged but not corrected.
// @Tags        orders
// @Accept      json
// @Produce     json
// @Param       request body models.CreateOrderRequest true "Order payload"
// @Success     201 {object} models.Order
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/orders [post]
func (h *OrdersHandler) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid order payload",
			Message: err.Error(),
		})
		return
	}

	if !pricing.ValidProductType(req.ProductType) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "productType must be one of: postcard, poster",
		})
		return
	}
	if !pricing.ValidProductSize(req.ProductSize) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "productSize must be one of: small, medium, large",
		})
		return
	}
	if !pricing.ValidFilter(req.Filter) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "filter is not a recognized filter token",
		})
		return
	}
	if req.Rotation%90 != 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "rotation must be a multiple of 90 degrees",
		})
		return
	}

	// The breakdown in the payload is trusted as sent. Flag disagreement
	// with our own arithmetic so it is at least visible in the logs.
	expected := pricing.CalculateTotal(req.UnitPrice, req.Quantity, true)
	if math.Abs(expected.Total-req.TotalPrice) > 0.01 {
		log.Printf("Order total mismatch: client sent %.4f, server computed %.4f",
			req.TotalPrice, expected.Total)
	}

	order := &models.Order{
		ImageID:      req.ImageID,
		ProductType:  req.ProductType,
		ProductSize:  req.ProductSize,
		Quantity:     req.Quantity,
		UnitPrice:    req.UnitPrice,
		TotalPrice:   req.TotalPrice,
		Rotation:     req.Rotation,
		Filter:       req.Filter,
		CustomerInfo: req.CustomerInfo,
		OrderedAt:    time.Now().UTC().Format(time.RFC3339),
	}

	saved, err := h.repo.CreateOrder(order)
	if err != nil {
		log.Printf("Failed to create order: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to create order"})
		return
	}

	telemetry.RecordOrderPlaced()
	c.JSON(http.StatusCreated, saved)
}

// GetOrder godoc
// @Summary     Get an order
// @Description Returns one placed order by id
// @Tags        orders
// @Accept      json
// @Produce     json
// @Param       id path int true "Order ID"
// @Success     200 {object} models.Order
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/orders/{id} [get]
func (h *OrdersHandler) GetOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid order id"})
		return
	}

	order, err := h.repo.GetOrder(id)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "order not found"})
		return
	}
	if err != nil {
		log.Printf("Failed to fetch order %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to fetch order"})
		return
	}

	c.JSON(http.StatusOK, order)
}

// ListOrders godoc
// @Summary     List orders
// @Description Returns all placed orders
// @Tags        orders
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.OrderListResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/orders [get]
func (h *OrdersHandler) ListOrders(c *gin.Context) {
	orders, err := h.repo.ListOrders()
	if err != nil {
		log.Printf("Failed to list orders: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to list orders"})
		return
	}

	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(http.StatusOK, models.OrderListResponse{Orders: orders})
}
