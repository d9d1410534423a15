package models

// User is a registered account. Passwords are stored as bcrypt hashes and
// never serialized back to clients.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

// Image is the record of one uploaded photo. The stored bytes live in the
// file store under FileName; this record is immutable once created.
type Image struct {
	ID               int    `json:"id"`
	FileName         string `json:"fileName"`
	OriginalFileName string `json:"originalFileName"`
	MimeType         string `json:"mimeType"`
	SizeMb           string `json:"sizeMb"`
	UploadedAt       string `json:"uploadedAt"`
}

// CustomerInfo captures the shipping address and payment form fields exactly
// as submitted at checkout, along with the price breakdown at order time.
// Payment fields are captured only - no charge is ever made.
type CustomerInfo struct {
	FirstName  string  `json:"firstName" binding:"required"`
	LastName   string  `json:"lastName" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Address    string  `json:"address" binding:"required"`
	City       string  `json:"city" binding:"required"`
	State      string  `json:"state" binding:"required"`
	Zip        string  `json:"zip" binding:"required"`
	Country    string  `json:"country" binding:"required"`
	CardNumber string  `json:"cardNumber" binding:"required"`
	ExpDate    string  `json:"expDate" binding:"required"`
	Cvc        string  `json:"cvc" binding:"required"`
	Shipping   float64 `json:"shipping"`
	Tax        float64 `json:"tax"`
	Total      float64 `json:"total"`
}

// Order references an uploaded image together with the product selection and
// the display-only edits (rotation, filter). The edits are never applied to
// the stored image bytes. Immutable once created.
type Order struct {
	ID           int          `json:"id"`
	ImageID      int          `json:"imageId"`
	ProductType  string       `json:"productType"`
	ProductSize  string       `json:"productSize"`
	Quantity     int          `json:"quantity"`
	UnitPrice    float64      `json:"unitPrice"`
	TotalPrice   float64      `json:"totalPrice"`
	Rotation     int          `json:"rotation"`
	Filter       string       `json:"filter"`
	CustomerInfo CustomerInfo `json:"customerInfo"`
	OrderedAt    string       `json:"orderedAt"`
}
