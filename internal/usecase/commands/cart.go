package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"

	"ootd-commerce/internal/domain/cart"
	"ootd-commerce/internal/domain/product"
	"ootd-commerce/internal/usecase/shared"

	"github.com/google/uuid"
)

type CartCommands interface {
	// Upsert sets the staged quantity; zero removes the line.
	Upsert(ctx context.Context, userID, productID uuid.UUID, quantity int) error
	// Add increases the staged quantity by delta.
	Add(ctx context.Context, userID, productID uuid.UUID, delta int) error
	// Remove deletes every given line or none of them.
	Remove(ctx context.Context, userID uuid.UUID, productIDs []uuid.UUID) error
}

type cartCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewCartCommands(uow shared.UnitOfWork) CartCommands {
	return &cartCommandsImpl{uow: uow}
}

func (c *cartCommandsImpl) Upsert(ctx context.Context, userID, productID uuid.UUID, quantity int) error {
	if quantity < 0 {
		return cart.ErrNegativeQuantity
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if quantity == 0 {
			return translateRepoErr(tx.Carts().Delete(ctx, tx.DB(), userID, productID), nil)
		}

		state, err := tx.Products().Get(ctx, tx.DB(), productID)
		if err != nil {
			return translateRepoErr(err, product.ErrProductNotFound)
		}
		line, err := cart.Stage(userID, state.Product, state.StoreEnabled, quantity)
		if err != nil {
			return err
		}
		return translateRepoErr(tx.Carts().Upsert(ctx, tx.DB(), line), nil)
	})
}

func (c *cartCommandsImpl) Add(ctx context.Context, userID, productID uuid.UUID, delta int) error {
	if delta <= 0 {
		return product.ErrInvalidQuantity
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		state, err := tx.Products().Get(ctx, tx.DB(), productID)
		if err != nil {
			return translateRepoErr(err, product.ErrProductNotFound)
		}
		existing, err := tx.Carts().QuantityForUpdate(ctx, tx.DB(), userID, productID)
		if err != nil {
			return translateRepoErr(err, nil)
		}
		total, err := cart.Merge(existing, delta)
		if err != nil {
			return err
		}
		line, err := cart.Stage(userID, state.Product, state.StoreEnabled, total)
		if err != nil {
			return err
		}
		return translateRepoErr(tx.Carts().Upsert(ctx, tx.DB(), line), nil)
	})
}

func (c *cartCommandsImpl) Remove(ctx context.Context, userID uuid.UUID, productIDs []uuid.UUID) error {
	ids, err := cart.DistinctProductIDs(productIDs)
	if err != nil {
		return err
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		deleted, err := tx.Carts().DeleteMany(ctx, tx.DB(), userID, ids)
		if err != nil {
			return translateRepoErr(err, nil)
		}
		// returning an error rolls back the partial delete
		if len(deleted) < len(ids) {
			return cart.ErrLineNotFound
		}
		return nil
	})
}
