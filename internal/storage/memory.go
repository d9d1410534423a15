package storage

import (
	"sort"
	"sync"

	"printperfect-backend/internal/models"
)

// MemoryRepository keeps all records in process memory. Data does not
// survive a restart. Identifier counters are guarded by the mutex so
// concurrent creates never hand out the same id.
type MemoryRepository struct {
	mu sync.Mutex

	users  map[int]models.User
	images map[int]models.Image
	orders map[int]models.Order

	nextUserID  int
	nextImageID int
	nextOrderID int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users:       make(map[int]models.User),
		images:      make(map[int]models.Image),
		orders:      make(map[int]models.Order),
		nextUserID:  1,
		nextImageID: 1,
		nextOrderID: 1,
	}
}

func (r *MemoryRepository) CreateUser(user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *user
	stored.ID = r.nextUserID
	r.nextUserID++
	r.users[stored.ID] = stored

	return &stored, nil
}

func (r *MemoryRepository) GetUser(id int) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (r *MemoryRepository) GetUserByUsername(username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryRepository) CreateImage(image *models.Image) (*models.Image, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *image
	stored.ID = r.nextImageID
	r.nextImageID++
	r.images[stored.ID] = stored

	return &stored, nil
}

func (r *MemoryRepository) GetImage(id int) (*models.Image, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	image, ok := r.images[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &image, nil
}

func (r *MemoryRepository) ListImages() ([]models.Image, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	images := make([]models.Image, 0, len(r.images))
	for _, image := range r.images {
		images = append(images, image)
	}
	sort.Slice(images, func(i, j int) bool { return images[i].ID < images[j].ID })

	return images, nil
}

func (r *MemoryRepository) CreateOrder(order *models.Order) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *order
	stored.ID = r.nextOrderID
	r.nextOrderID++
	r.orders[stored.ID] = stored

	return &stored, nil
}

func (r *MemoryRepository) GetOrder(id int) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &order, nil
}

func (r *MemoryRepository) ListOrders() ([]models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders := make([]models.Order, 0, len(r.orders))
	for _, order := range r.orders {
		orders = append(orders, order)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })

	return orders, nil
}
