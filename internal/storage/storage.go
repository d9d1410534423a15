package storage

import (
	"errors"

	"printperfect-backend/internal/models"
)

// ErrNotFound is returned by Get* methods when no record has the given key.
var ErrNotFound = errors.New("record not found")

// Repository is the persistence contract for the three entities. All records
// are append-only: create assigns the identifier and returns the stored
// record, and there are no update or delete operations. Both implementations
// must behave identically through this interface.
type Repository interface {
	CreateUser(user *models.User) (*models.User, error)
	GetUser(id int) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)

	CreateImage(image *models.Image) (*models.Image, error)
	GetImage(id int) (*models.Image, error)
	ListImages() ([]models.Image, error)

	CreateOrder(order *models.Order) (*models.Order, error)
	GetOrder(id int) (*models.Order, error)
	ListOrders() ([]models.Order, error)
}
