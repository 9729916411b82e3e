package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/minishop/minishop/pkg/errs"
	"github.com/minishop/minishop/services/cart/internal/models"
)

// cartItemRow is the persisted line item. Position keeps the insertion order
// the cart contract promises.
type cartItemRow struct {
	UserID      string  `gorm:"primaryKey;size:64"`
	ProductID   string  `gorm:"primaryKey;size:64"`
	ProductName string  `gorm:"not null"`
	Price       float64 `gorm:"not null"`
	Quantity    int     `gorm:"not null"`
	Position    int     `gorm:"not null"`
}

func (cartItemRow) TableName() string { return "cart_items" }

type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&cartItemRow{}); err != nil {
		return nil, err
	}
	return &GormStore{DB: db}, nil
}

func (s *GormStore) Get(ctx context.Context, userID string) (*models.Cart, error) {
	var rows []cartItemRow
	if err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("position ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errs.NotFoundf("cart %q", userID)
	}

	cart := models.NewCart(userID)
	for _, r := range rows {
		cart.Items = append(cart.Items, models.CartItem{
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			Price:       r.Price,
			Quantity:    r.Quantity,
		})
	}
	cart.Recalculate()
	return cart, nil
}

func (s *GormStore) Save(ctx context.Context, cart *models.Cart) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", cart.UserID).Delete(&cartItemRow{}).Error; err != nil {
			return err
		}
		if len(cart.Items) == 0 {
			return nil
		}

		rows := make([]cartItemRow, len(cart.Items))
		for i, it := range cart.Items {
			rows[i] = cartItemRow{
				UserID:      cart.UserID,
				ProductID:   it.ProductID,
				ProductName: it.ProductName,
				Price:       it.Price,
				Quantity:    it.Quantity,
				Position:    i,
			}
		}
		return tx.Create(&rows).Error
	})
}

func (s *GormStore) Delete(ctx context.Context, userID string) error {
	return s.DB.WithContext(ctx).Where("user_id = ?", userID).Delete(&cartItemRow{}).Error
}
