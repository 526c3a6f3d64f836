package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"ttrss_sync/internal/config"
	"ttrss_sync/internal/domain"
	"ttrss_sync/internal/track"
)

// Fetch limit policy. Starred/Published always pull a fixed window; other
// scopes size the fetch by the live unread count, padded so a refresh has
// a chance of picking up older already-read articles too.
const (
	fixedVirtualLimit    = 300
	maxLimit             = 300
	defaultUnreadLimit   = 50
	defaultAllLimit      = 100
	categoryLimitCushion = 50
	feedLimitCushion     = 15
	reconcileBatchSize   = 100
)

// Change event kinds passed to the Notifier.
const (
	ChangedCategories = "categories"
	ChangedFeeds      = "feeds"
	ChangedArticles   = "articles"
	ChangedCounters   = "counters"
)

// SyncService coordinates refreshes against the remote source, merges the
// results into the local store and reconciles mutations that were applied
// while offline.
type SyncService struct {
	remote     RemoteSource
	categories CategoryStore
	feeds      FeedStore
	articles   ArticleStore
	marks      MarkStore
	tracker    Tracker
	notifier   Notifier
	logger     *slog.Logger
	config     config.SyncConfig

	inFlight sync.Map // track.Key -> struct{}
}

func NewSyncService(
	remote RemoteSource,
	categories CategoryStore,
	feeds FeedStore,
	articles ArticleStore,
	marks MarkStore,
	tracker Tracker,
	notifier Notifier,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *SyncService {
	return &SyncService{
		remote:     remote,
		categories: categories,
		feeds:      feeds,
		articles:   articles,
		marks:      marks,
		tracker:    tracker,
		notifier:   notifier,
		logger:     logger.With("component", "sync"),
		config:     cfg,
	}
}

// begin claims the single-flight slot for a scope. A second trigger while
// a refresh is running is dropped, not queued.
func (s *SyncService) begin(key track.Key) bool {
	_, loaded := s.inFlight.LoadOrStore(key, struct{}{})
	return !loaded
}

func (s *SyncService) end(key track.Key) {
	s.inFlight.Delete(key)
}

func (s *SyncService) notify(ctx context.Context, kind string, id int64) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.NotifyChanged(ctx, kind, id); err != nil {
		s.logger.Warn("change notification failed", "kind", kind, "error", err)
	}
}

// RefreshCategories fetches the category list when stale and replaces the
// stored real categories wholesale. Returns the number of upserted rows.
func (s *SyncService) RefreshCategories(ctx context.Context, force bool) (int, error) {
	if !force && !s.tracker.IsStale(track.KeyCategories, s.config.RefreshInterval) {
		return 0, nil
	}

	categories, err := s.remote.GetCategories(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch categories: %w", err)
	}
	if len(categories) > 0 {
		if err := s.categories.DeleteCategories(ctx, false); err != nil {
			return 0, err
		}
		if err := s.categories.UpsertCategories(ctx, categories); err != nil {
			return 0, err
		}
	}

	s.tracker.Touch(track.KeyCategories)
	s.notify(ctx, ChangedCategories, 0)
	return len(categories), nil
}

// RefreshVirtualCategories rebuilds the synthetic categories from local
// counts. The server is never asked; their unread numbers are derived.
func (s *SyncService) RefreshVirtualCategories(ctx context.Context, force bool) (int, error) {
	if !force && !s.tracker.IsStale(track.KeyVirtualCategories, s.config.RefreshInterval) {
		return 0, nil
	}

	vcats := make([]domain.Category, 0, 5)
	for _, vc := range []struct {
		id    int64
		title string
	}{
		{domain.VCatAll, s.config.VirtualTitles.All},
		{domain.VCatFresh, s.config.VirtualTitles.Fresh},
		{domain.VCatPublished, s.config.VirtualTitles.Published},
		{domain.VCatStarred, s.config.VirtualTitles.Starred},
		{domain.VCatUncategorized, s.config.VirtualTitles.Uncategorized},
	} {
		unread, err := s.articles.UnreadCount(ctx, vc.id, true)
		if err != nil {
			return 0, err
		}
		vcats = append(vcats, domain.Category{ID: vc.id, Title: vc.title, Unread: unread})
	}

	if err := s.categories.UpsertCategories(ctx, vcats); err != nil {
		return 0, err
	}
	s.tracker.Touch(track.KeyVirtualCategories)
	s.notify(ctx, ChangedCategories, 0)
	return len(vcats), nil
}

// RefreshFeeds fetches the full feed list when the given category's view
// is stale and replaces stored feeds wholesale. Feeds are only deleted
// when the fetch actually returned some.
func (s *SyncService) RefreshFeeds(ctx context.Context, categoryID int64, force bool) (int, error) {
	if !force && !s.tracker.IsStale(track.FeedsKey(categoryID), s.config.RefreshInterval) {
		return 0, nil
	}

	feeds, err := s.remote.GetFeeds(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch feeds: %w", err)
	}
	if len(feeds) > 0 {
		if err := s.feeds.DeleteFeeds(ctx); err != nil {
			return 0, err
		}
		if err := s.feeds.UpsertFeeds(ctx, feeds); err != nil {
			return 0, err
		}
	}

	s.tracker.Touch(track.FeedsKey(categoryID))
	for _, f := range feeds {
		s.tracker.Touch(track.FeedsKey(f.CategoryID))
	}
	s.notify(ctx, ChangedFeeds, categoryID)
	return len(feeds), nil
}

// RefreshCounters pulls the server's counter list and applies it to the
// cached unread columns. Runs on a tighter interval than full refreshes.
func (s *SyncService) RefreshCounters(ctx context.Context, force bool) error {
	if !force && !s.tracker.IsStale(track.KeyCounters, s.config.CountersInterval) {
		return nil
	}

	counters, err := s.remote.GetCounters(ctx)
	if err != nil {
		return fmt.Errorf("fetch counters: %w", err)
	}
	if err := s.articles.ApplyCounters(ctx, counters); err != nil {
		return err
	}

	s.tracker.Touch(track.KeyCounters)
	s.notify(ctx, ChangedCounters, 0)
	return nil
}

// RefreshArticles fetches headlines for a feed, category or virtual
// category when stale, sizing the fetch by the live unread count. When
// the cached counter claims more unread articles than the rows show, the
// scope is treated as stale regardless of the timer and a supplemental
// unread-only fetch closes the gap.
func (s *SyncService) RefreshArticles(ctx context.Context, scope domain.Ref, unreadOnly bool, force bool) (int, error) {
	scopeID, _ := scope.Legacy()
	key := track.ArticlesKey(scopeID)

	if !s.begin(key) {
		s.logger.Debug("refresh already in flight, dropping", "scope", scope.String())
		return 0, nil
	}
	defer s.end(key)

	needUnreadUpdate := false
	if scope.Kind == domain.RefFeed && !unreadOnly {
		cached := int64(0)
		if f, err := s.feeds.Feed(ctx, scopeID); err == nil && f != nil {
			cached = f.Unread
		}
		actual, err := s.articles.UnreadCount(ctx, scopeID, false)
		if err != nil {
			return 0, err
		}
		if cached > actual {
			needUnreadUpdate = true
			s.tracker.Reset(key)
		}
	}

	if !force && !s.tracker.IsStale(key, s.config.RefreshInterval) {
		return 0, nil
	}

	limit, unreadOnly, err := s.fetchLimit(ctx, scope, unreadOnly)
	if err != nil {
		return 0, err
	}

	headlines, err := s.remote.GetHeadlines(ctx, scope, limit, unreadOnly, 0)
	if err != nil {
		return 0, fmt.Errorf("fetch headlines %s: %w", scope.String(), err)
	}
	if err := s.articles.UpsertArticles(ctx, headlines); err != nil {
		return 0, err
	}
	fetched := len(headlines)

	if needUnreadUpdate && !unreadOnly {
		supplemental, err := s.remote.GetHeadlines(ctx, scope, limit, true, 0)
		if err != nil {
			return fetched, fmt.Errorf("supplemental unread fetch %s: %w", scope.String(), err)
		}
		if err := s.articles.UpsertArticles(ctx, supplemental); err != nil {
			return fetched, err
		}
		fetched += len(supplemental)
	}

	if err := s.articles.RecomputeCounters(ctx); err != nil {
		return fetched, err
	}

	s.tracker.Touch(key)
	if scope.Kind == domain.RefCategory {
		feeds, err := s.feeds.ListFeeds(ctx, scopeID)
		if err == nil {
			for _, f := range feeds {
				s.tracker.Touch(track.ArticlesKey(f.ID))
			}
		}
	}

	s.notify(ctx, ChangedArticles, scopeID)
	return fetched, nil
}

// fetchLimit sizes a headline fetch. Starred/Published use a fixed window
// and always fetch read articles too; everything else starts from the
// live unread count, with floors, a hard cap and a cushion below the cap.
func (s *SyncService) fetchLimit(ctx context.Context, scope domain.Ref, unreadOnly bool) (int64, bool, error) {
	scopeID, isCategory := scope.Legacy()

	var limit int64
	switch scopeID {
	case domain.VCatStarred, domain.VCatPublished:
		return fixedVirtualLimit, false, nil
	case domain.VCatFresh, domain.VCatAll:
		n, err := s.articles.UnreadCount(ctx, scopeID, true)
		if err != nil {
			return 0, unreadOnly, err
		}
		limit = n
	default:
		n, err := s.articles.UnreadCount(ctx, scopeID, isCategory)
		if err != nil {
			return 0, unreadOnly, err
		}
		limit = n
	}

	switch {
	case limit <= 0 && unreadOnly:
		limit = defaultUnreadLimit
	case limit <= 0:
		limit = defaultAllLimit
	case limit > maxLimit:
		limit = maxLimit
	}
	if limit < maxLimit {
		if isCategory {
			limit += categoryLimitCushion
		} else {
			limit += feedLimitCushion
		}
	}
	return limit, unreadOnly, nil
}

// SetArticleField applies a flag change locally, then tries to push it.
// A failed push demotes the change to a pending mark for the next
// reconciliation pass; the call itself never blocks on retries.
func (s *SyncService) SetArticleField(ctx context.Context, ids []int64, field domain.MarkField, state int64, note string) error {
	if len(ids) == 0 {
		return nil
	}

	if field == domain.MarkNote {
		if err := s.remote.SetArticleField(ctx, ids, field, state, note); err != nil {
			s.logger.Info("note push failed, deferring", "error", err)
			for _, id := range ids {
				if err := s.marks.RecordPendingNote(ctx, id, note); err != nil {
					return err
				}
			}
		}
		return nil
	}

	if err := s.articles.SetFlags(ctx, ids, field, state); err != nil {
		return err
	}
	if err := s.remote.SetArticleField(ctx, ids, field, state, note); err != nil {
		s.logger.Info("mark push failed, deferring", "field", field, "count", len(ids), "error", err)
		return s.marks.RecordPending(ctx, ids, field, state)
	}
	return nil
}

// MarkScopeRead marks a whole feed, category or virtual category read,
// locally and remotely. Returns the article ids that changed. An offline
// push is recorded as a scope-level pending mark and replayed later.
func (s *SyncService) MarkScopeRead(ctx context.Context, scope domain.Ref) ([]int64, error) {
	scopeID, isCategory := scope.Legacy()

	if err := s.remote.SetRead(ctx, scope); err != nil {
		s.logger.Info("scope read push failed, deferring", "scope", scope.String(), "error", err)
		scopeType := domain.MarkTypeFeed
		if isCategory {
			scopeType = domain.MarkTypeCategory
		}
		if err := s.marks.RecordPendingScopeRead(ctx, scopeID, scopeType); err != nil {
			return nil, err
		}
	}

	return s.articles.MarkRead(ctx, scopeID, isCategory, scopeID == domain.VCatAll)
}

// SetArticleLabel assigns or removes a label remotely and mirrors the
// association locally in the same call.
func (s *SyncService) SetArticleLabel(ctx context.Context, ids []int64, labelID int64, assign bool) error {
	if err := s.remote.SetArticleLabel(ctx, ids, labelID, assign); err != nil {
		s.logger.Warn("label push failed", "label", labelID, "error", err)
	}
	return s.articles.SetArticleLabel(ctx, ids, labelID, assign)
}

// ArticleLabels returns the label picker state for one article: every
// known label with its checked flag. The server answer is authoritative;
// when it cannot be reached the cached associations serve instead.
func (s *SyncService) ArticleLabels(ctx context.Context, articleID int64) ([]domain.Label, error) {
	labels, err := s.remote.GetLabels(ctx, articleID)
	if err != nil {
		s.logger.Warn("label fetch failed, using cache", "article", articleID, "error", err)
		return s.articles.LabelsForArticle(ctx, articleID)
	}
	return labels, nil
}

// Reconcile pushes every pending mark to the server in batches. A failed
// batch stays pending for the next pass; a succeeded batch is cleared
// even when a later batch fails. Notes are pushed separately and only
// when non-empty.
func (s *SyncService) Reconcile(ctx context.Context) (int, error) {
	reconciled := 0

	for _, field := range []domain.MarkField{domain.MarkRead, domain.MarkStar, domain.MarkPublish} {
		for _, state := range []int64{1, 0} {
			ids, err := s.marks.Pending(ctx, field, state)
			if err != nil {
				return reconciled, err
			}
			for _, batch := range batchIDs(ids, reconcileBatchSize) {
				if err := s.remote.SetArticleField(ctx, batch, field, state, ""); err != nil {
					s.logger.Warn("reconcile batch failed", "field", field, "state", state, "count", len(batch), "error", err)
					continue
				}
				if err := s.marks.ClearPending(ctx, batch, field); err != nil {
					return reconciled, err
				}
				reconciled += len(batch)
			}
		}
	}

	notes, err := s.marks.PendingNotes(ctx)
	if err != nil {
		return reconciled, err
	}
	for id, note := range notes {
		if note == "" {
			continue
		}
		if err := s.remote.SetArticleField(ctx, []int64{id}, domain.MarkNote, 1, note); err != nil {
			s.logger.Warn("reconcile note failed", "article", id, "error", err)
			continue
		}
		if err := s.marks.ClearPending(ctx, []int64{id}, domain.MarkNote); err != nil {
			return reconciled, err
		}
		reconciled++
	}

	scopes, err := s.marks.PendingScopes(ctx)
	if err != nil {
		return reconciled, err
	}
	for _, scope := range scopes {
		ref := domain.RefFromLegacy(scope.ID, scope.Type == domain.MarkTypeCategory)
		if err := s.remote.SetRead(ctx, ref); err != nil {
			s.logger.Warn("reconcile scope read failed", "scope", ref.String(), "error", err)
			continue
		}
		if err := s.marks.ClearPendingScope(ctx, scope.ID, scope.Type); err != nil {
			return reconciled, err
		}
		reconciled++
	}

	return reconciled, nil
}

// Sync is one full pass: push pending state, pull everything stale, then
// bound local storage. Individual step failures are logged and counted,
// never abort the pass.
func (s *SyncService) Sync(ctx context.Context) (*domain.SyncStats, error) {
	const fullSyncKey = track.Key("fullsync")
	if !s.begin(fullSyncKey) {
		s.logger.Debug("full sync already in flight, dropping")
		return &domain.SyncStats{}, nil
	}
	defer s.end(fullSyncKey)

	start := time.Now()
	stats := &domain.SyncStats{}

	step := func(name string, fn func() error) {
		if err := fn(); err != nil {
			stats.Errors++
			s.logger.Error("sync step failed", "step", name, "error", err)
		}
	}

	step("reconcile", func() error {
		n, err := s.Reconcile(ctx)
		stats.Reconciled = n
		return err
	})
	step("counters", func() error {
		return s.RefreshCounters(ctx, false)
	})
	step("categories", func() error {
		n, err := s.RefreshCategories(ctx, false)
		stats.Categories = n
		return err
	})
	step("feeds", func() error {
		n, err := s.RefreshFeeds(ctx, domain.VCatAll, false)
		stats.Feeds = n
		return err
	})
	step("vcategories", func() error {
		_, err := s.RefreshVirtualCategories(ctx, false)
		return err
	})
	step("articles", func() error {
		n, err := s.RefreshArticles(ctx, domain.VirtualCategoryRef(domain.VCatFresh), true, false)
		stats.Articles = n
		return err
	})

	// Purging is bounded to the end of a full pass, not done per mutation.
	step("purge orphans", func() error {
		return s.articles.PurgeOrphans(ctx)
	})
	step("purge by count", func() error {
		n, err := s.articles.PurgeByCount(ctx, s.config.ArticleLimit)
		stats.Purged = n
		return err
	})
	s.articles.Vacuum(ctx)

	stats.Duration = time.Since(start)
	s.logger.Info("sync completed",
		"categories", stats.Categories,
		"feeds", stats.Feeds,
		"articles", stats.Articles,
		"reconciled", stats.Reconciled,
		"purged", stats.Purged,
		"errors", stats.Errors,
		"duration", stats.Duration,
	)
	return stats, nil
}

func batchIDs(ids []int64, size int) [][]int64 {
	var batches [][]int64
	for len(ids) > size {
		batches = append(batches, ids[:size])
		ids = ids[size:]
	}
	if len(ids) > 0 {
		batches = append(batches, ids)
	}
	return batches
}
