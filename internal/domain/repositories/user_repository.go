package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"healthsync-service/internal/domain/entities"
)

// GormUserRepository implements UserRepositoryContract on a gorm connection.
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new gorm-backed user repository.
func NewUserRepository(db *gorm.DB) UserRepositoryContract {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) FindByOpenID(ctx context.Context, openID string) (*entities.User, error) {
	var user entities.User
	err := r.db.WithContext(ctx).Where("open_id = ?", openID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) Create(ctx context.Context, user *entities.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(user).Error
}
