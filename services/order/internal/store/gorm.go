package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/minishop/minishop/pkg/errs"
	"github.com/minishop/minishop/services/order/internal/models"
)

type orderRow struct {
	ID          int64     `gorm:"primaryKey"`
	ProductID   int64     `gorm:"not null"`
	ProductName string    `gorm:"size:255;not null"`
	Quantity    int       `gorm:"not null"`
	Status      string    `gorm:"size:32;index;not null"`
	Total       float64   `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

func (orderRow) TableName() string { return "orders" }

func (r orderRow) toModel() models.Order {
	return models.Order{
		ID:          r.ID,
		ProductID:   r.ProductID,
		ProductName: r.ProductName,
		Quantity:    r.Quantity,
		Status:      r.Status,
		Total:       r.Total,
		CreatedAt:   r.CreatedAt.UTC(),
	}
}

func toRow(o models.Order) orderRow {
	return orderRow{
		ID:          o.ID,
		ProductID:   o.ProductID,
		ProductName: o.ProductName,
		Quantity:    o.Quantity,
		Status:      o.Status,
		Total:       o.Total,
		CreatedAt:   o.CreatedAt,
	}
}

type GormStore struct {
	db *gorm.DB
}

// NewGormStore migrates the orders table and loads the mock orders when the
// table is empty.
func NewGormStore(db *gorm.DB, seed []models.Order) (*GormStore, error) {
	if err := db.AutoMigrate(&orderRow{}); err != nil {
		return nil, err
	}

	var count int64
	if err := db.Model(&orderRow{}).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 && len(seed) > 0 {
		rows := make([]orderRow, 0, len(seed))
		for _, o := range seed {
			rows = append(rows, toRow(o))
		}
		if err := db.Create(&rows).Error; err != nil {
			return nil, err
		}
	}

	return &GormStore{db: db}, nil
}

func (s *GormStore) List(ctx context.Context, status string) ([]models.Order, error) {
	tx := s.db.WithContext(ctx).Model(&orderRow{}).Order("id ASC")
	if status != "" {
		tx = tx.Where("LOWER(status) = LOWER(?)", status)
	}

	var rows []orderRow
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]models.Order, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toModel())
	}
	return out, nil
}

func (s *GormStore) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	var row orderRow
	if err := s.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("Order not found")
		}
		return nil, err
	}
	o := row.toModel()
	return &o, nil
}

// Create allocates ids with MAX(id)+1 inside the insert transaction. Ids
// keep counting up from the seeded rows on every backend.
func (s *GormStore) Create(ctx context.Context, order models.Order) (*models.Order, error) {
	var out models.Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxID int64
		if err := tx.Model(&orderRow{}).Select("COALESCE(MAX(id), 0)").Scan(&maxID).Error; err != nil {
			return err
		}

		row := toRow(order)
		row.ID = maxID + 1
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		out = row.toModel()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *GormStore) UpdateStatus(ctx context.Context, id int64, status string) (*models.Order, error) {
	res := s.db.WithContext(ctx).Model(&orderRow{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, errs.NotFoundf("Order not found")
	}
	return s.GetByID(ctx, id)
}
