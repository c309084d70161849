package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/sitebook/internal/domain"
	"github.com/dangerclosesec/sitebook/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserFactorRepositoryIface defines the interface for the user factor repository.
type UserFactorRepositoryIface interface {
	Create(ctx context.Context, factor *model.UserFactor) error
	FindByUserAndType(ctx context.Context, userID uuid.UUID, factorType model.FactorType) (*model.UserFactor, error)
	FindByMaterial(ctx context.Context, factorType model.FactorType, material string) (*model.UserFactor, error)
	Update(ctx context.Context, factor *model.UserFactor) error
}

// UserFactorRepository implements UserFactorRepositoryIface.
type UserFactorRepository struct {
	db *gorm.DB
}

// NewUserFactorRepository initializes a new repository instance.
func NewUserFactorRepository(db *gorm.DB) *UserFactorRepository {
	return &UserFactorRepository{db: db}
}

// Create inserts a new user factor.
func (r *UserFactorRepository) Create(ctx context.Context, factor *model.UserFactor) error {
	if err := conn(ctx, r.db).Create(factor).Error; err != nil {
		return fmt.Errorf("creating user factor: %w", err)
	}
	return nil
}

// FindByUserAndType retrieves the active factor of a type for a user.
func (r *UserFactorRepository) FindByUserAndType(ctx context.Context, userID uuid.UUID, factorType model.FactorType) (*model.UserFactor, error) {
	var factor model.UserFactor
	err := conn(ctx, r.db).
		Where("user_id = ? AND factor_type = ? AND is_active = ?", userID, factorType, true).
		Order("created_at DESC").
		First(&factor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFactorNotFound
		}
		return nil, fmt.Errorf("finding user factor: %w", err)
	}
	return &factor, nil
}

// FindByMaterial looks a factor up by its secret, e.g. an emailed
// verification token.
func (r *UserFactorRepository) FindByMaterial(ctx context.Context, factorType model.FactorType, material string) (*model.UserFactor, error) {
	var factor model.UserFactor
	err := conn(ctx, r.db).
		Where("factor_type = ? AND material = ?", factorType, material).
		First(&factor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFactorNotFound
		}
		return nil, fmt.Errorf("finding user factor: %w", err)
	}
	return &factor, nil
}

// Update modifies an existing user factor.
func (r *UserFactorRepository) Update(ctx context.Context, factor *model.UserFactor) error {
	if err := conn(ctx, r.db).Save(factor).Error; err != nil {
		return fmt.Errorf("updating user factor: %w", err)
	}
	return nil
}
