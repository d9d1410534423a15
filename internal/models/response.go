package models

type RegisterResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
}

type OrderListResponse struct {
	Orders []Order `json:"orders"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
