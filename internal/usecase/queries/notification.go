package queries

import "context"

// DefaultNotificationLimit caps how many feed lines the dashboard shows.
const DefaultNotificationLimit = 15

type NotificationReadStore interface {
	Recent(limit int) ([]string, error)
}

type NotificationQueries interface {
	Recent(ctx context.Context) ([]string, error)
}

type notificationQueriesImpl struct {
	store NotificationReadStore
}

func NewNotificationQueries(store NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{store: store}
}

func (q *notificationQueriesImpl) Recent(_ context.Context) ([]string, error) {
	return q.store.Recent(DefaultNotificationLimit)
}
