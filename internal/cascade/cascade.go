// Package cascade implements the delete cascades between shop owners, shops
// and employees.
package cascade

import (
	"context"
	"fmt"
)

// Store is the set of primitive deletes a cascade is built from.
type Store interface {
	// Atomic runs fn against a store whose writes commit or roll back
	// together.
	Atomic(ctx context.Context, fn func(Store) error) error
	ShopIDsByOwner(ctx context.Context, ownerID int64) ([]int64, error)
	DeleteEmployeesOfShop(ctx context.Context, shopID int64) error
	DeleteShop(ctx context.Context, shopID int64) error
	DeleteShopOwner(ctx context.Context, ownerID int64) error
}

// DeleteShop removes the shop's employees and then the shop.
func DeleteShop(ctx context.Context, store Store, shopID int64) error {
	return store.Atomic(ctx, func(s Store) error {
		return deleteShop(ctx, s, shopID)
	})
}

// DeleteShopOwner removes every shop owned by ownerID (employees first) and
// then the owner.
func DeleteShopOwner(ctx context.Context, store Store, ownerID int64) error {
	return store.Atomic(ctx, func(s Store) error {
		shopIDs, err := s.ShopIDsByOwner(ctx, ownerID)
		if err != nil {
			return fmt.Errorf("list shops of owner %d: %w", ownerID, err)
		}
		for _, id := range shopIDs {
			if err := deleteShop(ctx, s, id); err != nil {
				return err
			}
		}
		if err := s.DeleteShopOwner(ctx, ownerID); err != nil {
			return fmt.Errorf("delete shop owner %d: %w", ownerID, err)
		}
		return nil
	})
}

func deleteShop(ctx context.Context, s Store, shopID int64) error {
	if err := s.DeleteEmployeesOfShop(ctx, shopID); err != nil {
		return fmt.Errorf("delete employees of shop %d: %w", shopID, err)
	}
	if err := s.DeleteShop(ctx, shopID); err != nil {
		return fmt.Errorf("delete shop %d: %w", shopID, err)
	}
	return nil
}
