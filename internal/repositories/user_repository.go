package repositories

import (
	"context"
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"
	"tripmate/internal/models/db_models"
)

type UserRepositoryInterface interface {
	CreateUser(ctx context.Context, username, passwordHash string) (*db_models.User, error)
	GetUserByID(ctx context.Context, id int64) (*db_models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*db_models.User, error)
}

type InMemoryUserRepository struct {
	mu     sync.RWMutex
	data   map[int64]db_models.User
	nextID int64
}

func NewInMemoryUserRepository() UserRepositoryInterface {
	return &InMemoryUserRepository{
		data: make(map[int64]db_models.User),
	}
}

func (r *InMemoryUserRepository) CreateUser(ctx context.Context, username, passwordHash string) (*db_models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	user := db_models.User{
		ID:           r.nextID,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	r.data[user.ID] = user

	return &user, nil
}

func (r *InMemoryUserRepository) GetUserByID(ctx context.Context, id int64) (*db_models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.data[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *InMemoryUserRepository) GetUserByUsername(ctx context.Context, username string) (*db_models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.data {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

type PostgresUserRepository struct {
	db *gorm.DB
}

func NewPostgresUserRepository(db *gorm.DB) UserRepositoryInterface {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, username, passwordHash string) (*db_models.User, error) {
	user := db_models.User{
		Username:     username,
		PasswordHash: passwordHash,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.WithContext(ctx).Create(&user).Error
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *PostgresUserRepository) GetUserByID(ctx context.Context, id int64) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *PostgresUserRepository) GetUserByUsername(ctx context.Context, username string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
