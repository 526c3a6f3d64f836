package sqlite

import (
	"sync"
	"time"

	"ttrss_sync/internal/domain"
)

func (s *StoreTestSuite) TestUpsertArticles_RoundTrip() {
	updated := time.Now().Add(-2 * time.Hour)
	s.Require().NoError(s.store.UpsertArticles(s.ctx, []domain.Article{{
		ID:          100,
		FeedID:      10,
		Title:       "Hello",
		IsUnread:    true,
		URL:         "https://example.com/100",
		CommentURL:  "https://example.com/100#comments",
		Updated:     updated,
		Content:     "<p>body</p>",
		Attachments: []string{"https://example.com/a.png", "https://example.com/b.mp3"},
		IsStarred:   true,
	}}))

	a, err := s.store.Article(s.ctx, 100)
	s.Require().NoError(err)
	s.Require().NotNil(a)
	s.Equal("Hello", a.Title)
	s.True(a.IsUnread)
	s.True(a.IsStarred)
	s.False(a.IsPublished)
	s.Equal(updated.UnixMilli(), a.Updated.UnixMilli())
	s.Equal([]string{"https://example.com/a.png", "https://example.com/b.mp3"}, a.Attachments)
	s.False(a.CachedImages)
}

func (s *StoreTestSuite) TestUpsertArticles_PreservesCachedImages() {
	article := domain.Article{ID: 100, FeedID: 10, Title: "v1", IsUnread: true, Updated: time.Now()}
	s.Require().NoError(s.store.UpsertArticles(s.ctx, []domain.Article{article}))
	s.Require().NoError(s.store.SetCachedImages(s.ctx, 100))

	// A later refresh replaces the row; the flag must survive.
	article.Title = "v2"
	s.Require().NoError(s.store.UpsertArticles(s.ctx, []domain.Article{article}))

	a, err := s.store.Article(s.ctx, 100)
	s.Require().NoError(err)
	s.Require().NotNil(a)
	s.Equal("v2", a.Title)
	s.True(a.CachedImages)
}

func (s *StoreTestSuite) TestUpsertArticles_WritesLabelAssociations() {
	s.Require().NoError(s.store.UpsertFeeds(s.ctx, []domain.Feed{
		{ID: -11, CategoryID: -2, Title: "work"},
		{ID: -12, CategoryID: -2, Title: "later"},
	}))
	s.Require().NoError(s.store.UpsertArticles(s.ctx, []domain.Article{{
		ID: 100, FeedID: 10, Title: "labeled", IsUnread: true, Updated: time.Now(),
		Labels: []domain.Label{
			{ID: -11, Caption: "work", Foreground: "#ff0000", Background: "#00ff00"},
		},
	}}))

	labels, err := s.store.LabelsForArticle(s.ctx, 100)
	s.Require().NoError(err)
	s.Require().Len(labels, 2)

	byCaption := map[string]bool{}
	for _, l := range labels {
		byCaption[l.Caption] = l.Checked
	}
	s.True(byCaption["work"])
	s.False(byCaption["later"])

	// The serialized cache on the row survives the round trip.
	a, err := s.store.Article(s.ctx, 100)
	s.Require().NoError(err)
	s.Require().NotNil(a)
	s.Require().Len(a.Labels, 1)
	s.Equal("work", a.Labels[0].Caption)
	s.Equal("#ff0000", a.Labels[0].Foreground)
	s.Equal("#00ff00", a.Labels[0].Background)
	s.True(a.Labels[0].Checked)
}

func (s *StoreTestSuite) TestSetArticleLabel() {
	s.Require().NoError(s.store.UpsertArticles(s.ctx, []domain.Article{
		{ID: 100, FeedID: 10, Title: "a", Updated: time.Now()},
	}))

	s.Require().NoError(s.store.SetArticleLabel(s.ctx, []int64{100}, -11, true))
	n, err := s.store.UnreadCount(s.ctx, -11, false)
	s.Require().NoError(err)
	s.Equal(int64(0), n) // article is read

	s.Require().NoError(s.store.SetFlags(s.ctx, []int64{100}, domain.MarkRead, 1))
	n, err = s.store.UnreadCount(s.ctx, -11, false)
	s.Require().NoError(err)
	s.Equal(int64(1), n)

	s.Require().NoError(s.store.SetArticleLabel(s.ctx, []int64{100}, -11, false))
	n, err = s.store.UnreadCount(s.ctx, -11, false)
	s.Require().NoError(err)
	s.Equal(int64(0), n)

	// Non-label ids are ignored outright.
	s.NoError(s.store.SetArticleLabel(s.ctx, []int64{100}, 5, true))
}

func (s *StoreTestSuite) TestUnreadCount_Scopes() {
	now := time.Now()
	s.Require().NoError(s.store.UpsertCategories(s.ctx, []domain.Category{{ID: 1, Title: "News"}}))
	s.Require().NoError(s.store.UpsertFeeds(s.ctx, []domain.Feed{
		{ID: 10, CategoryID: 1, Title: "BBC"},
		{ID: 11, CategoryID: 1, Title: "CNN"},
	}))
	s.Require().NoError(s.store.UpsertArticles(s.ctx, []domain.Article{
		{ID: 100, FeedID: 10, IsUnread: true, Updated: now},
		{ID: 101, FeedID: 10, IsUnread: false, Updated: now},
		{ID: 102, FeedID: 11, IsUnread: true, IsStarred: true, Updated: now.Add(-48 * time.Hour)},
		{ID: 103, FeedID: 11, IsUnread: true, IsPublished: true, Updated: now},
	}))

	cases := []struct {
		name       string
		id         int64
		isCategory bool
		want       int64
	}{
		{"feed", 10, false, 1},
		{"category", 1, true, 3},
		{"all", domain.VCatAll, true, 3},
		{"fresh excludes old", domain.VCatFresh, true, 2},
		{"starred", domain.VCatStarred, true, 1},
		{"published", domain.VCatPublished, true, 1},
	}
	for _, tc := range cases {
		n, err := s.store.UnreadCount(s.ctx, tc.id, tc.isCategory)
		s.Require().NoError(err, tc.name)
		s.Equal(tc.want, n, tc.name)
	}
}

func (s *StoreTestSuite) TestRecomputeCounters() {
	s.Require().NoError(s.store.UpsertCategories(s.ctx, []domain.Category{
		{ID: 1, Title: "News", Unread: 99}, // stale cached value
		{ID: domain.VCatAll, Title: "All Articles"},
		{ID: domain.VCatStarred, Title: "Starred Articles"},
		{ID: domain.VCatPublished, Title: "Published Articles"},
		{ID: domain.VCatFresh, Title: "Fresh Articles"},
	}))
	s.Require().NoError(s.store.UpsertFeeds(s.ctx, []domain.Feed{
		{ID: 10, CategoryID: 1, Title: "BBC", Unread: 99},
	}))
	s.Require().NoError(s.store.UpsertArticles(s.ctx, []domain.Article{
		{ID: 100, FeedID: 10, IsUnread: true, Updated: time.Now()},
		{ID: 101, FeedID: 10, IsUnread: false, Updated: time.Now()},
	}))

	s.Require().NoError(s.store.RecomputeCounters(s.ctx))

	feed, err := s.store.Feed(s.ctx, 10)
	s.Require().NoError(err)
	s.Equal(int64(1), feed.Unread)

	category, err := s.store.Category(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal(int64(1), category.Unread)

	all, err := s.store.Category(s.ctx, domain.VCatAll)
	s.Require().NoError(err)
	s.Equal(int64(1), all.Unread)

	starred, err := s.store.Category(s.ctx, domain.VCatStarred)
	s.Require().NoError(err)
	s.Equal(int64(0), starred.Unread)
}

func (s *StoreTestSuite) TestApplyCounters_WritesCachedValuesOnly() {
	s.seedFixture()

	s.Require().NoError(s.store.ApplyCounters(s.ctx, []domain.CounterUpdate{
		{ID: 10, IsCategory: false, Count: 42},
		{ID: 1, IsCategory: true, Count: 42},
	}))

	feed, err := s.store.Feed(s.ctx, 10)
	s.Require().NoError(err)
	s.Equal(int64(42), feed.Unread)

	// The live count is untouched; this is how drift gets detected.
	live, err := s.store.UnreadCount(s.ctx, 10, false)
	s.Require().NoError(err)
	s.Equal(int64(1), live)
}

func (s *StoreTestSuite) TestMarkRead_FeedReturnsChangedIDs() {
	s.seedFixture()

	ids, err := s.store.MarkRead(s.ctx, 10, false, false)
	s.Require().NoError(err)
	s.Equal([]int64{100}, ids)

	n, err := s.store.UnreadCount(s.ctx, 10, false)
	s.Require().NoError(err)
	s.Equal(int64(0), n)
}

func (s *StoreTestSuite) TestMarkRead_CategoryCoversItsFeeds() {
	s.seedFixture()
	s.Require().NoError(s.store.UpsertFeeds(s.ctx, []domain.Feed{
		{ID: 11, CategoryID: 2, Title: "Other"},
	}))
	s.Require().NoError(s.store.UpsertArticles(s.ctx, []domain.Article{
		{ID: 200, FeedID: 11, IsUnread: true, Updated: time.Now()},
	}))

	ids, err := s.store.MarkRead(s.ctx, 1, true, false)
	s.Require().NoError(err)
	s.Equal([]int64{100}, ids)

	// The article outside the category is untouched.
	n, err := s.store.UnreadCount(s.ctx, 11, false)
	s.Require().NoError(err)
	s.Equal(int64(1), n)
}

func (s *StoreTestSuite) TestMarkRead_All() {
	s.seedFixture()
	s.Require().NoError(s.store.UpsertFeeds(s.ctx, []domain.Feed{
		{ID: 11, CategoryID: 2, Title: "Other"},
	}))
	s.Require().NoError(s.store.UpsertArticles(s.ctx, []domain.Article{
		{ID: 200, FeedID: 11, IsUnread: true, Updated: time.Now()},
	}))

	ids, err := s.store.MarkRead(s.ctx, domain.VCatAll, true, true)
	s.Require().NoError(err)
	s.Len(ids, 2)

	n, err := s.store.UnreadCount(s.ctx, domain.VCatAll, true)
	s.Require().NoError(err)
	s.Equal(int64(0), n)
}

func (s *StoreTestSuite) TestSetFlags() {
	s.seedFixture()

	s.Require().NoError(s.store.SetFlags(s.ctx, []int64{100, 101}, domain.MarkStar, 1))

	for _, id := range []int64{100, 101} {
		a, err := s.store.Article(s.ctx, id)
		s.Require().NoError(err)
		s.True(a.IsStarred)
	}

	s.Error(s.store.SetFlags(s.ctx, []int64{100}, domain.MarkNote, 1))
}

func (s *StoreTestSuite) TestPurgeByCount_Boundary() {
	s.Require().NoError(s.store.UpsertFeeds(s.ctx, []domain.Feed{{ID: 10, CategoryID: 1, Title: "BBC"}}))

	base := time.Now().Add(-10 * time.Hour)
	articles := make([]domain.Article, 0, 10)
	for i := 0; i < 10; i++ {
		articles = append(articles, domain.Article{
			ID: int64(100 + i), FeedID: 10, Updated: base.Add(time.Duration(i) * time.Hour),
		})
	}
	s.Require().NoError(s.store.UpsertArticles(s.ctx, articles))

	deleted, err := s.store.PurgeByCount(s.ctx, 6)
	s.Require().NoError(err)
	s.Equal(int64(4), deleted)

	// The four oldest are gone, the six newest stay.
	for i := 0; i < 4; i++ {
		a, err := s.store.Article(s.ctx, int64(100+i))
		s.Require().NoError(err)
		s.Nil(a)
	}
	for i := 4; i < 10; i++ {
		a, err := s.store.Article(s.ctx, int64(100+i))
		s.Require().NoError(err)
		s.NotNil(a)
	}
}

func (s *StoreTestSuite) TestPurgeByCount_SparesStarredAndPublished() {
	s.Require().NoError(s.store.UpsertFeeds(s.ctx, []domain.Feed{{ID: 10, CategoryID: 1, Title: "BBC"}}))

	old := time.Now().Add(-100 * time.Hour)
	s.Require().NoError(s.store.UpsertArticles(s.ctx, []domain.Article{
		{ID: 100, FeedID: 10, IsStarred: true, Updated: old},
		{ID: 101, FeedID: 10, IsPublished: true, Updated: old},
		{ID: 102, FeedID: 10, Updated: old},
		{ID: 103, FeedID: 10, Updated: time.Now()},
	}))

	deleted, err := s.store.PurgeByCount(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal(int64(1), deleted)

	gone, err := s.store.Article(s.ctx, 102)
	s.Require().NoError(err)
	s.Nil(gone)

	for _, id := range []int64{100, 101, 103} {
		a, err := s.store.Article(s.ctx, id)
		s.Require().NoError(err)
		s.NotNil(a, "article %d", id)
	}
}

func (s *StoreTestSuite) TestPurgeOrphans() {
	s.Require().NoError(s.store.UpsertFeeds(s.ctx, []domain.Feed{{ID: 10, CategoryID: 1, Title: "BBC"}}))
	s.Require().NoError(s.store.UpsertArticles(s.ctx, []domain.Article{
		{ID: 100, FeedID: 10, Updated: time.Now()},
		{ID: 200, FeedID: 99, Updated: time.Now()}, // feed 99 does not exist
	}))
	s.Require().NoError(s.store.SetArticleLabel(s.ctx, []int64{200}, -11, true))

	s.Require().NoError(s.store.PurgeOrphans(s.ctx))

	kept, err := s.store.Article(s.ctx, 100)
	s.Require().NoError(err)
	s.NotNil(kept)

	gone, err := s.store.Article(s.ctx, 200)
	s.Require().NoError(err)
	s.Nil(gone)

	// The association rows of the deleted article were swept too.
	db, ok := s.store.handle()
	s.Require().True(ok)
	var n int
	s.Require().NoError(db.Get(&n, "SELECT COUNT(*) FROM articles2labels"))
	s.Equal(0, n)
}

func (s *StoreTestSuite) TestUpsertArticles_ConcurrentDisjointBatches() {
	s.Require().NoError(s.store.UpsertFeeds(s.ctx, []domain.Feed{{ID: 10, CategoryID: 1, Title: "BBC"}}))

	var wg sync.WaitGroup
	errs := make(chan error, 4)
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			batch := make([]domain.Article, 0, 25)
			for i := 0; i < 25; i++ {
				batch = append(batch, domain.Article{
					ID: int64(g*1000 + i), FeedID: 10, IsUnread: true, Updated: time.Now(),
				})
			}
			errs <- s.store.UpsertArticles(s.ctx, batch)
		}(g)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		s.NoError(err)
	}

	n, err := s.store.CountArticles(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(100), n)
}
