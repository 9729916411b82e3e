package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/minishop/minishop/pkg/errs"
	"github.com/minishop/minishop/pkg/tokens"
	"github.com/minishop/minishop/services/user/internal/models"
)

type userRow struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:32;not null"`
	Name         string `gorm:"size:255;not null"`
}

func (userRow) TableName() string { return "users" }

func (r userRow) toModel() models.User {
	return models.User{
		ID:           r.ID,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Role:         tokens.Role(r.Role),
		Name:         r.Name,
	}
}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&userRow{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Create(ctx context.Context, user models.User) (*models.User, error) {
	row := userRow{
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		Name:         user.Name,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		// The unique index is the arbiter under concurrent registration.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.Conflictf("Email already registered")
		}
		return nil, err
	}
	out := row.toModel()
	return &out, nil
}

func (s *GormStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var row userRow
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("user %q", email)
		}
		return nil, err
	}
	out := row.toModel()
	return &out, nil
}

func (s *GormStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var row userRow
	if err := s.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("User not found")
		}
		return nil, err
	}
	out := row.toModel()
	return &out, nil
}

func (s *GormStore) List(ctx context.Context) ([]models.User, error) {
	var rows []userRow
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]models.User, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toModel())
	}
	return out, nil
}
