package readstore

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/readstore/$GOFILE -package=readstoremock

import (
	"context"

	"ootd-commerce/internal/infra"
	sqlc "ootd-commerce/internal/infra/sqlc/generated"
)

type NotificationReadQueries interface {
	CountQueuedNotificationJobs(ctx context.Context, db sqlc.DBTX) (int64, error)
}

type NotificationReadStore struct {
	queries NotificationReadQueries
	db      sqlc.DBTX
}

func NewNotificationReadStore(queries NotificationReadQueries, db sqlc.DBTX) *NotificationReadStore {
	return &NotificationReadStore{
		queries: queries,
		db:      db,
	}
}

// CountQueued reports the outbox backlog.
func (s *NotificationReadStore) CountQueued(ctx context.Context) (int64, error) {
	n, err := s.queries.CountQueuedNotificationJobs(ctx, s.db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count queued notification jobs", err)
	}
	return n, nil
}
