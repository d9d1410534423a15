package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/lib/pq"

	"printperfect-backend/internal/models"
)

// PostgresRepository persists records in three relational tables with
// serial primary keys, so identifiers survive restarts and are assigned by
// the database sequence under concurrent creates.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(connectionString string) (*PostgresRepository, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) CreateUser(user *models.User) (*models.User, error) {
	var stored models.User
	err := r.db.QueryRow(`
		INSERT INTO users (username, password)
		VALUES ($1, $2)
		RETURNING id, username, password
	`, user.Username, user.Password).Scan(&stored.ID, &stored.Username, &stored.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &stored, nil
}

func (r *PostgresRepository) GetUser(id int) (*models.User, error) {
	var user models.User
	err := r.db.QueryRow(`
		SELECT id, username, password
		FROM users
		WHERE id = $1
	`, id).Scan(&user.ID, &user.Username, &user.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (r *PostgresRepository) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.QueryRow(`
		SELECT id, username, password
		FROM users
		WHERE username = $1
	`, username).Scan(&user.ID, &user.Username, &user.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (r *PostgresRepository) CreateImage(image *models.Image) (*models.Image, error) {
	var stored models.Image
	err := r.db.QueryRow(`
		INSERT INTO images (file_name, original_file_name, mime_type, size_mb, uploaded_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, file_name, original_file_name, mime_type, size_mb, uploaded_at
	`, image.FileName, image.OriginalFileName, image.MimeType, image.SizeMb, image.UploadedAt).Scan(
		&stored.ID, &stored.FileName, &stored.OriginalFileName,
		&stored.MimeType, &stored.SizeMb, &stored.UploadedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create image: %w", err)
	}

	return &stored, nil
}

func (r *PostgresRepository) GetImage(id int) (*models.Image, error) {
	var image models.Image
	err := r.db.QueryRow(`
		SELECT id, file_name, original_file_name, mime_type, size_mb, uploaded_at
		FROM images
		WHERE id = $1
	`, id).Scan(
		&image.ID, &image.FileName, &image.OriginalFileName,
		&image.MimeType, &image.SizeMb, &image.UploadedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get image: %w", err)
	}

	return &image, nil
}

func (r *PostgresRepository) ListImages() ([]models.Image, error) {
	rows, err := r.db.Query(`
		SELECT id, file_name, original_file_name, mime_type, size_mb, uploaded_at
		FROM images
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	defer rows.Close()

	var images []models.Image
	for rows.Next() {
		var image models.Image
		err := rows.Scan(
			&image.ID, &image.FileName, &image.OriginalFileName,
			&image.MimeType, &image.SizeMb, &image.UploadedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan image: %w", err)
		}
		images = append(images, image)
	}

	return images, nil
}

func (r *PostgresRepository) CreateOrder(order *models.Order) (*models.Order, error) {
	customerInfo, err := json.Marshal(order.CustomerInfo)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal customer info: %w", err)
	}

	var stored models.Order
	var customerInfoRaw []byte
	err = r.db.QueryRow(`
		INSERT INTO orders (image_id, product_type, product_size, quantity,
			unit_price, total_price, rotation, filter, customer_info, ordered_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, image_id, product_type, product_size, quantity,
			unit_price, total_price, rotation, filter, customer_info, ordered_at
	`, order.ImageID, order.ProductType, order.ProductSize, order.Quantity,
		order.UnitPrice, order.TotalPrice, order.Rotation, order.Filter,
		customerInfo, order.OrderedAt).Scan(
		&stored.ID, &stored.ImageID, &stored.ProductType, &stored.ProductSize,
		&stored.Quantity, &stored.UnitPrice, &stored.TotalPrice,
		&stored.Rotation, &stored.Filter, &customerInfoRaw, &stored.OrderedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err := json.Unmarshal(customerInfoRaw, &stored.CustomerInfo); err != nil {
		return nil, fmt.Errorf("failed to unmarshal customer info: %w", err)
	}

	return &stored, nil
}

func (r *PostgresRepository) GetOrder(id int) (*models.Order, error) {
	var order models.Order
	var customerInfoRaw []byte
	err := r.db.QueryRow(`
		SELECT id, image_id, product_type, product_size, quantity,
			unit_price, total_price, rotation, filter, customer_info, ordered_at
		FROM orders
		WHERE id = $1
	`, id).Scan(
		&order.ID, &order.ImageID, &order.ProductType, &order.ProductSize,
		&order.Quantity, &order.UnitPrice, &order.TotalPrice,
		&order.Rotation, &order.Filter, &customerInfoRaw, &order.OrderedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if err := json.Unmarshal(customerInfoRaw, &order.CustomerInfo); err != nil {
		return nil, fmt.Errorf("failed to unmarshal customer info: %w", err)
	}

	return &order, nil
}

func (r *PostgresRepository) ListOrders() ([]models.Order, error) {
	rows, err := r.db.Query(`
		SELECT id, image_id, product_type, product_size, quantity,
			unit_price, total_price, rotation, filter, customer_info, ordered_at
		FROM orders
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var order models.Order
		var customerInfoRaw []byte
		err := rows.Scan(
			&order.ID, &order.ImageID, &order.ProductType, &order.ProductSize,
			&order.Quantity, &order.UnitPrice, &order.TotalPrice,
			&order.Rotation, &order.Filter, &customerInfoRaw, &order.OrderedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		if err := json.Unmarshal(customerInfoRaw, &order.CustomerInfo); err != nil {
			return nil, fmt.Errorf("failed to unmarshal customer info: %w", err)
		}
		orders = append(orders, order)
	}

	return orders, nil
}

func (r *PostgresRepository) Close() error {
	return r.db.Close()
}
