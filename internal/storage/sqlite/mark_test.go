package sqlite

import (
	"ttrss_sync/internal/domain"
)

func (s *StoreTestSuite) TestRecordPending_Lifecycle() {
	s.Require().NoError(s.store.RecordPending(s.ctx, []int64{100, 101}, domain.MarkStar, 1))

	ids, err := s.store.Pending(s.ctx, domain.MarkStar, 1)
	s.Require().NoError(err)
	s.ElementsMatch([]int64{100, 101}, ids)

	// Other fields and states are empty.
	ids, err = s.store.Pending(s.ctx, domain.MarkStar, 0)
	s.Require().NoError(err)
	s.Empty(ids)
	ids, err = s.store.Pending(s.ctx, domain.MarkRead, 1)
	s.Require().NoError(err)
	s.Empty(ids)

	s.Require().NoError(s.store.ClearPending(s.ctx, []int64{100, 101}, domain.MarkStar))

	ids, err = s.store.Pending(s.ctx, domain.MarkStar, 1)
	s.Require().NoError(err)
	s.Empty(ids)

	// Fully cleared rows are deleted, not left as null husks.
	db, ok := s.store.handle()
	s.Require().True(ok)
	var n int
	s.Require().NoError(db.Get(&n, "SELECT COUNT(*) FROM marked"))
	s.Equal(0, n)
}

func (s *StoreTestSuite) TestRecordPending_MergesIntoExistingRow() {
	s.Require().NoError(s.store.RecordPending(s.ctx, []int64{100}, domain.MarkRead, 0))
	s.Require().NoError(s.store.RecordPending(s.ctx, []int64{100}, domain.MarkStar, 1))

	read, err := s.store.Pending(s.ctx, domain.MarkRead, 0)
	s.Require().NoError(err)
	s.Equal([]int64{100}, read)

	starred, err := s.store.Pending(s.ctx, domain.MarkStar, 1)
	s.Require().NoError(err)
	s.Equal([]int64{100}, starred)

	db, ok := s.store.handle()
	s.Require().True(ok)
	var n int
	s.Require().NoError(db.Get(&n, "SELECT COUNT(*) FROM marked"))
	s.Equal(1, n)

	// Clearing one field keeps the row for the other.
	s.Require().NoError(s.store.ClearPending(s.ctx, []int64{100}, domain.MarkRead))
	starred, err = s.store.Pending(s.ctx, domain.MarkStar, 1)
	s.Require().NoError(err)
	s.Equal([]int64{100}, starred)
}

func (s *StoreTestSuite) TestRecordPending_LatestStateWins() {
	s.Require().NoError(s.store.RecordPending(s.ctx, []int64{100}, domain.MarkStar, 1))
	s.Require().NoError(s.store.RecordPending(s.ctx, []int64{100}, domain.MarkStar, 0))

	ids, err := s.store.Pending(s.ctx, domain.MarkStar, 1)
	s.Require().NoError(err)
	s.Empty(ids)

	ids, err = s.store.Pending(s.ctx, domain.MarkStar, 0)
	s.Require().NoError(err)
	s.Equal([]int64{100}, ids)
}

func (s *StoreTestSuite) TestRecordPendingNote() {
	s.Require().NoError(s.store.RecordPendingNote(s.ctx, 100, "remember this"))
	s.Require().NoError(s.store.RecordPendingNote(s.ctx, 101, ""))

	notes, err := s.store.PendingNotes(s.ctx)
	s.Require().NoError(err)
	s.Equal(map[int64]string{100: "remember this"}, notes)

	s.Require().NoError(s.store.ClearPending(s.ctx, []int64{100}, domain.MarkNote))

	notes, err = s.store.PendingNotes(s.ctx)
	s.Require().NoError(err)
	s.Empty(notes)
}

func (s *StoreTestSuite) TestPendingScopes() {
	s.Require().NoError(s.store.RecordPendingScopeRead(s.ctx, 3, domain.MarkTypeCategory))
	s.Require().NoError(s.store.RecordPendingScopeRead(s.ctx, 10, domain.MarkTypeFeed))
	s.Error(s.store.RecordPendingScopeRead(s.ctx, 10, domain.MarkTypeArticle))

	scopes, err := s.store.PendingScopes(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(scopes, 2)

	s.Require().NoError(s.store.ClearPendingScope(s.ctx, 3, domain.MarkTypeCategory))

	scopes, err = s.store.PendingScopes(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(scopes, 1)
	s.Equal(int64(10), scopes[0].ID)
	s.Equal(domain.MarkTypeFeed, scopes[0].Type)
}

func (s *StoreTestSuite) TestPendingScopes_DoNotLeakIntoArticleQueries() {
	s.Require().NoError(s.store.RecordPendingScopeRead(s.ctx, 10, domain.MarkTypeFeed))

	// The scope row has id 10 and isUnread = 0; it must not surface as an
	// article-level pending mark.
	ids, err := s.store.Pending(s.ctx, domain.MarkRead, 0)
	s.Require().NoError(err)
	s.Empty(ids)
}

func (s *StoreTestSuite) TestPendingMarks_LargeBatch() {
	ids := make([]int64, 250)
	for i := range ids {
		ids[i] = int64(i + 1)
	}

	s.Require().NoError(s.store.RecordPending(s.ctx, ids, domain.MarkRead, 1))

	pending, err := s.store.Pending(s.ctx, domain.MarkRead, 1)
	s.Require().NoError(err)
	s.Len(pending, 250)

	s.Require().NoError(s.store.ClearPending(s.ctx, ids, domain.MarkRead))

	pending, err = s.store.Pending(s.ctx, domain.MarkRead, 1)
	s.Require().NoError(err)
	s.Empty(pending)
}
