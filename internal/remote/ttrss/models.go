package ttrss

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// envelope is the outer frame of every API response.
type envelope struct {
	Seq     int             `json:"seq"`
	Status  int             `json:"status"`
	Content json.RawMessage `json:"content"`
}

type apiError struct {
	Error string `json:"error"`
}

type loginContent struct {
	SessionID string `json:"session_id"`
}

// flexInt tolerates the API's habit of sending numeric ids as strings.
type flexInt int64

func (f *flexInt) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		// Non-numeric ids (e.g. "global-unread" counters) map to zero.
		*f = 0
		return nil
	}
	*f = flexInt(n)
	return nil
}

type apiCategory struct {
	ID     flexInt `json:"id"`
	Title  string  `json:"title"`
	Unread int64   `json:"unread"`
}

type apiFeed struct {
	ID         flexInt `json:"id"`
	CategoryID flexInt `json:"cat_id"`
	Title      string  `json:"title"`
	FeedURL    string  `json:"feed_url"`
	Unread     int64   `json:"unread"`
}

type apiAttachment struct {
	ContentURL string `json:"content_url"`
}

type apiHeadline struct {
	ID           flexInt             `json:"id"`
	FeedID       flexInt             `json:"feed_id"`
	Title        string              `json:"title"`
	Unread       bool                `json:"unread"`
	Marked       bool                `json:"marked"`
	Published    bool                `json:"published"`
	Updated      int64               `json:"updated"`
	Link         string              `json:"link"`
	CommentsLink string              `json:"comments_link"`
	Content      string              `json:"content"`
	Attachments  []apiAttachment     `json:"attachments"`
	Labels       [][]json.RawMessage `json:"labels"`
}

type apiCounter struct {
	ID      flexInt `json:"id"`
	Counter int64   `json:"counter"`
	Kind    string  `json:"kind"`
}

type apiLabel struct {
	ID      flexInt `json:"id"`
	Caption string  `json:"caption"`
	FgColor string  `json:"fg_color"`
	BgColor string  `json:"bg_color"`
	Checked bool    `json:"checked"`
}

type statusContent struct {
	Status string `json:"status"`
}
