package store

import (
	"context"
	"errors"
	"sort"

	"gorm.io/gorm"

	"github.com/minishop/minishop/pkg/errs"
	"github.com/minishop/minishop/services/product/internal/models"
)

type productRow struct {
	ID          int64   `gorm:"primaryKey"`
	Name        string  `gorm:"size:255;not null"`
	Price       float64 `gorm:"not null"`
	Category    string  `gorm:"size:128;index;not null"`
	Stock       int     `gorm:"not null"`
	Description string
}

func (productRow) TableName() string { return "products" }

func (r productRow) toModel() models.Product {
	return models.Product{
		ID:          r.ID,
		Name:        r.Name,
		Price:       r.Price,
		Category:    r.Category,
		Stock:       r.Stock,
		Description: r.Description,
	}
}

type GormStore struct {
	db *gorm.DB
}

// NewGormStore migrates the products table and loads the seed catalog when
// the table is empty.
func NewGormStore(db *gorm.DB, seed []models.Product) (*GormStore, error) {
	if err := db.AutoMigrate(&productRow{}); err != nil {
		return nil, err
	}

	var count int64
	if err := db.Model(&productRow{}).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 && len(seed) > 0 {
		rows := make([]productRow, 0, len(seed))
		for _, p := range seed {
			rows = append(rows, productRow{
				ID:          p.ID,
				Name:        p.Name,
				Price:       p.Price,
				Category:    p.Category,
				Stock:       p.Stock,
				Description: p.Description,
			})
		}
		if err := db.Create(&rows).Error; err != nil {
			return nil, err
		}
	}

	return &GormStore{db: db}, nil
}

func (s *GormStore) List(ctx context.Context, f Filter) ([]models.Product, error) {
	tx := s.db.WithContext(ctx).Model(&productRow{}).Order("id ASC")
	if f.Category != "" {
		tx = tx.Where("LOWER(category) = LOWER(?)", f.Category)
	}
	if f.MinPrice != nil {
		tx = tx.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		tx = tx.Where("price <= ?", *f.MaxPrice)
	}

	var rows []productRow
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]models.Product, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toModel())
	}
	return out, nil
}

func (s *GormStore) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	var row productRow
	if err := s.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("Product not found")
		}
		return nil, err
	}
	p := row.toModel()
	return &p, nil
}

func (s *GormStore) Categories(ctx context.Context) ([]string, error) {
	var cats []string
	if err := s.db.WithContext(ctx).Model(&productRow{}).Distinct().Pluck("category", &cats).Error; err != nil {
		return nil, err
	}
	sort.Strings(cats)
	return cats, nil
}
