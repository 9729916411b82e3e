package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/minishop/minishop/pkg/errs"
	"github.com/minishop/minishop/services/cart/internal/models"
	"github.com/minishop/minishop/services/cart/internal/store"
	"github.com/minishop/minishop/services/cart/internal/transport"
)

type CartService struct {
	Store store.Store
}

// Get never fails: an absent cart reads as a fresh empty one, which is not
// persisted until the first mutation.
func (s *CartService) Get(ctx context.Context, userID string) (*models.Cart, error) {
	cart, err := s.Store.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return models.NewCart(userID), nil
		}
		return nil, err
	}
	return cart, nil
}

func (s *CartService) AddItem(ctx context.Context, userID string, req transport.AddItemRequest) (*models.Cart, error) {
	productID := string(req.ProductID)
	if productID == "" || req.Price == nil {
		return nil, errs.Validationf("productId and price are required")
	}
	if *req.Price < 0 {
		return nil, errs.Validationf("price must be >= 0")
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}
	name := req.ProductName
	if name == "" {
		name = fmt.Sprintf("Product %s", productID)
	}

	cart, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if i := cart.Find(productID); i >= 0 {
		cart.Items[i].Quantity += quantity
	} else {
		cart.Items = append(cart.Items, models.CartItem{
			ProductID:   productID,
			ProductName: name,
			Price:       *req.Price,
			Quantity:    quantity,
		})
	}
	cart.Recalculate()

	if err := s.Store.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) SetItemQuantity(ctx context.Context, userID, productID string, quantity int) (*models.Cart, error) {
	cart, err := s.Store.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errs.NotFoundf("Cart not found")
		}
		return nil, err
	}

	i := cart.Find(productID)
	if i < 0 {
		return nil, errs.NotFoundf("Item not found in cart")
	}

	if quantity <= 0 {
		cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
	} else {
		cart.Items[i].Quantity = quantity
	}
	cart.Recalculate()

	return cart, s.persist(ctx, cart)
}

// RemoveItem drops one line item. A missing item is a no-op; only a missing
// cart is an error.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID string) (*models.Cart, error) {
	cart, err := s.Store.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errs.NotFoundf("Cart not found")
		}
		return nil, err
	}

	i := cart.Find(productID)
	if i < 0 {
		return cart, nil
	}

	cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
	cart.Recalculate()

	return cart, s.persist(ctx, cart)
}

func (s *CartService) Clear(ctx context.Context, userID string) error {
	return s.Store.Delete(ctx, userID)
}

// persist saves the cart, or deletes it once the last item is gone so the
// next read starts a fresh lifecycle.
func (s *CartService) persist(ctx context.Context, cart *models.Cart) error {
	if len(cart.Items) == 0 {
		return s.Store.Delete(ctx, cart.UserID)
	}
	return s.Store.Save(ctx, cart)
}
