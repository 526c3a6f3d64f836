package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"ttrss_sync/internal/domain"
	"ttrss_sync/internal/track"
)

type CategoryStore interface {
	UpsertCategories(ctx context.Context, categories []domain.Category) error
	DeleteCategories(ctx context.Context, withVirtual bool) error
	Category(ctx context.Context, id int64) (*domain.Category, error)
}

type FeedStore interface {
	UpsertFeeds(ctx context.Context, feeds []domain.Feed) error
	DeleteFeeds(ctx context.Context) error
	Feed(ctx context.Context, id int64) (*domain.Feed, error)
	ListFeeds(ctx context.Context, categoryID int64) ([]domain.Feed, error)
}

type ArticleStore interface {
	UpsertArticles(ctx context.Context, articles []domain.Article) error
	UnreadCount(ctx context.Context, id int64, isCategory bool) (int64, error)
	MarkRead(ctx context.Context, id int64, isCategory bool, all bool) ([]int64, error)
	SetFlags(ctx context.Context, ids []int64, field domain.MarkField, state int64) error
	SetArticleLabel(ctx context.Context, articleIDs []int64, labelID int64, assign bool) error
	LabelsForArticle(ctx context.Context, articleID int64) ([]domain.Label, error)
	RecomputeCounters(ctx context.Context) error
	ApplyCounters(ctx context.Context, counters []domain.CounterUpdate) error
	PurgeByCount(ctx context.Context, retain int64) (int64, error)
	PurgeOrphans(ctx context.Context) error
	Vacuum(ctx context.Context)
}

type MarkStore interface {
	RecordPending(ctx context.Context, ids []int64, field domain.MarkField, state int64) error
	RecordPendingNote(ctx context.Context, id int64, note string) error
	RecordPendingScopeRead(ctx context.Context, scopeID int64, scopeType int) error
	Pending(ctx context.Context, field domain.MarkField, state int64) ([]int64, error)
	PendingNotes(ctx context.Context) (map[int64]string, error)
	PendingScopes(ctx context.Context) ([]domain.PendingMark, error)
	ClearPending(ctx context.Context, ids []int64, field domain.MarkField) error
	ClearPendingScope(ctx context.Context, scopeID int64, scopeType int) error
}

// RemoteSource is the server-side of the sync: the TTRSS JSON API or
// anything shaped like it.
type RemoteSource interface {
	Login(ctx context.Context) error
	GetCategories(ctx context.Context) ([]domain.Category, error)
	GetFeeds(ctx context.Context) ([]domain.Feed, error)
	GetHeadlines(ctx context.Context, scope domain.Ref, limit int64, unreadOnly bool, sinceID int64) ([]domain.Article, error)
	GetCounters(ctx context.Context) ([]domain.CounterUpdate, error)
	SetArticleField(ctx context.Context, ids []int64, field domain.MarkField, state int64, note string) error
	SetRead(ctx context.Context, scope domain.Ref) error
	GetLabels(ctx context.Context, articleID int64) ([]domain.Label, error)
	SetArticleLabel(ctx context.Context, ids []int64, labelID int64, assign bool) error
}

type Tracker interface {
	IsStale(key track.Key, minInterval time.Duration) bool
	Touch(key track.Key)
	Reset(keys ...track.Key)
}

// Notifier receives a fire-and-forget signal after cached data changed.
type Notifier interface {
	NotifyChanged(ctx context.Context, kind string, id int64) error
	Close() error
}
