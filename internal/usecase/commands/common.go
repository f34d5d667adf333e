package commands

import (
	"context"
	"encoding/json"
	"time"

	"ootd-commerce/internal/domain/user"
	"ootd-commerce/internal/infra"
	"ootd-commerce/internal/pkg/errs"
	"ootd-commerce/internal/usecase/shared"

	"github.com/google/uuid"
)

// Actor is the authenticated caller of a command.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

// translateRepoErr maps repository error kinds onto the error taxonomy.
// notFound replaces a NOT_FOUND kind when given.
func translateRepoErr(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case notFound != nil && infra.IsKind(err, infra.KindNotFound):
		return notFound
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrNotFound)
	case infra.IsKind(err, infra.KindDuplicateKey), infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, errs.ErrConflict)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, errs.ErrNotFound)
	case infra.IsKind(err, infra.KindCheckViolated):
		return errs.Mark(err, errs.ErrBadRequest)
	default:
		return err
	}
}

// enqueueEvent writes an outbox job in the caller's transaction.
func enqueueEvent(ctx context.Context, tx shared.Tx, kind string, aggregateID uuid.UUID, event any, now time.Time) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to marshal outbox event")
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), kind, aggregateID, payload, now)
}
