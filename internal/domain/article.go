package domain

import "time"

// Article is a single headline as cached locally. IDs are assigned by the
// server and stable across fetches.
type Article struct {
	ID           int64
	FeedID       int64
	Title        string
	IsUnread     bool
	URL          string
	CommentURL   string
	Updated      time.Time
	Content      string
	Attachments  []string
	IsStarred    bool
	IsPublished  bool
	CachedImages bool
	Labels       []Label
}

type Category struct {
	ID     int64
	Title  string
	Unread int64
}

type Feed struct {
	ID         int64
	CategoryID int64
	Title      string
	URL        string
	Unread     int64
}

// Label is a user-defined tag. Labels live in the feeds table with ids
// below -10 and are additionally linked to articles through the
// articles2labels association table.
type Label struct {
	ID         int64
	Caption    string
	Foreground string
	Background string
	Checked    bool
}

// IsLabelID reports whether a feed id denotes a label pseudo-feed.
func IsLabelID(id int64) bool {
	return id < -10
}

// CounterUpdate is one entry of a server counters response.
type CounterUpdate struct {
	ID         int64
	IsCategory bool
	Count      int64
}
