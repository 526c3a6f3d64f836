package domain

// MarkField names a locally togglable article property. The values double
// as column names in the articles and marked tables.
type MarkField string

const (
	MarkRead    MarkField = "isUnread"
	MarkStar    MarkField = "isStarred"
	MarkPublish MarkField = "isPublished"
	MarkNote    MarkField = "note"
)

// Mark scope types for rows of the marked table. Article rows carry flag
// overrides; category/feed rows record an offline "mark whole scope read"
// that has to be replayed against the server.
const (
	MarkTypeArticle  = 0
	MarkTypeCategory = 1
	MarkTypeFeed     = 2
)

// PendingMark is a locally applied state change that has not been
// confirmed by the server yet. A row disappears once every field is
// cleared.
type PendingMark struct {
	ID          int64
	Type        int
	IsUnread    *int64
	IsStarred   *int64
	IsPublished *int64
	Note        *string
}
