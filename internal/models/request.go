package models

// CreateOrderRequest is the order payload: the Order shape minus the
// server-assigned id and orderedAt. Enum fields (productType, productSize,
// filter) and rotation are validated against the pricing tables in the
// handler; binding tags cover shape and ranges.
type CreateOrderRequest struct {
	ImageID      int          `json:"imageId" binding:"required"`
	ProductType  string       `json:"productType" binding:"required"`
	ProductSize  string       `json:"productSize" binding:"required"`
	Quantity     int          `json:"quantity" binding:"required,min=1,max=100"`
	UnitPrice    float64      `json:"unitPrice" binding:"required"`
	TotalPrice   float64      `json:"totalPrice" binding:"required"`
	Rotation     int          `json:"rotation"`
	Filter       string       `json:"filter" binding:"required"`
	CustomerInfo CustomerInfo `json:"customerInfo" binding:"required"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
