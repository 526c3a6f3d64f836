// Package ttrss talks to the Tiny Tiny RSS JSON API. Thin transport: it
// parses wire records into domain values and classifies failures; all
// caching and reconciliation logic lives above it.
package ttrss

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"ttrss_sync/internal/domain"
)

type Config struct {
	URL            string
	Username       string
	Password       string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Client implements the remote side of the sync against a TTRSS server.
// A rejected session is transparently renewed once per call; a second
// consecutive auth failure surfaces as ErrNotAuthenticated.
type Client struct {
	httpClient     *http.Client
	apiURL         string
	username       string
	password       string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger

	sessionMu sync.Mutex
	session   string
}

func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient:     &http.Client{Timeout: cfg.Timeout},
		apiURL:         strings.TrimRight(cfg.URL, "/") + "/api/",
		username:       cfg.Username,
		password:       cfg.Password,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("component", "ttrss"),
	}
}

// Login opens a session. Called lazily by every operation when no
// session is held yet.
func (c *Client) Login(ctx context.Context) error {
	c.sessionMu.Lock()
	defer c.sessionMu.Unlock()
	return c.loginLocked(ctx)
}

func (c *Client) loginLocked(ctx context.Context) error {
	var content loginContent
	err := c.rawCall(ctx, "login", map[string]any{
		"op":       "login",
		"user":     c.username,
		"password": c.password,
	}, &content)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Message == apiErrLoginFailed {
			return fmt.Errorf("%w: login rejected", ErrNotAuthenticated)
		}
		return err
	}
	c.session = content.SessionID
	return nil
}

func (c *Client) sessionID(ctx context.Context) (string, error) {
	c.sessionMu.Lock()
	defer c.sessionMu.Unlock()
	if c.session == "" {
		if err := c.loginLocked(ctx); err != nil {
			return "", err
		}
	}
	return c.session, nil
}

func (c *Client) dropSession() {
	c.sessionMu.Lock()
	c.session = ""
	c.sessionMu.Unlock()
}

// call runs one API operation with the current session, renewing it once
// when the server reports NOT_LOGGED_IN.
func (c *Client) call(ctx context.Context, op string, params map[string]any, out any) error {
	for attempt := 0; ; attempt++ {
		sid, err := c.sessionID(ctx)
		if err != nil {
			return err
		}

		body := map[string]any{"op": op, "sid": sid}
		for k, v := range params {
			body[k] = v
		}

		err = c.rawCall(ctx, op, body, out)
		if err == nil {
			return nil
		}

		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Message == apiErrNotLoggedIn {
			if attempt > 0 {
				return fmt.Errorf("%w: session renewal did not stick", ErrNotAuthenticated)
			}
			c.logger.Info("session expired, logging in again", "op", op)
			c.dropSession()
			continue
		}
		return err
	}
}

// rawCall posts one request envelope, with bounded transport retries.
func (c *Client) rawCall(ctx context.Context, op string, body map[string]any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		lastErr = c.doRequest(ctx, op, payload, out)
		if lastErr == nil {
			return nil
		}
		var apiErr *APIError
		if errors.As(lastErr, &apiErr) {
			// Server answered; retrying will not change its mind.
			return lastErr
		}
		if attempt == c.maxAttempts {
			break
		}

		backoff := c.backoff(attempt)
		c.logger.Warn("request failed, retrying", "op", op, "attempt", attempt, "backoff", backoff, "error", lastErr)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}
	return fmt.Errorf("after %d attempts: %w", c.maxAttempts, lastErr)
}

func (c *Client) doRequest(ctx context.Context, op string, payload []byte, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "ttrss-sync/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if env.Status != 0 {
		var ae apiError
		_ = json.Unmarshal(env.Content, &ae)
		if ae.Error == "" {
			ae.Error = "unknown server error"
		}
		return &APIError{Op: op, Message: ae.Error}
	}

	if out != nil {
		if err := json.Unmarshal(env.Content, out); err != nil {
			return fmt.Errorf("decode content: %w", err)
		}
	}
	return nil
}

func (c *Client) backoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}

func (c *Client) GetCategories(ctx context.Context) ([]domain.Category, error) {
	var raw []apiCategory
	if err := c.call(ctx, "getCategories", nil, &raw); err != nil {
		return nil, err
	}
	categories := make([]domain.Category, 0, len(raw))
	for _, r := range raw {
		categories = append(categories, domain.Category{
			ID:     int64(r.ID),
			Title:  r.Title,
			Unread: r.Unread,
		})
	}
	return categories, nil
}

func (c *Client) GetFeeds(ctx context.Context) ([]domain.Feed, error) {
	var raw []apiFeed
	// cat_id -4 returns every feed, labels included.
	if err := c.call(ctx, "getFeeds", map[string]any{"cat_id": domain.VCatAll}, &raw); err != nil {
		return nil, err
	}
	feeds := make([]domain.Feed, 0, len(raw))
	for _, r := range raw {
		feeds = append(feeds, domain.Feed{
			ID:         int64(r.ID),
			CategoryID: int64(r.CategoryID),
			Title:      r.Title,
			URL:        r.FeedURL,
			Unread:     r.Unread,
		})
	}
	return feeds, nil
}

func (c *Client) GetHeadlines(ctx context.Context, scope domain.Ref, limit int64, unreadOnly bool, sinceID int64) ([]domain.Article, error) {
	scopeID, isCategory := scope.Legacy()

	viewMode := "all_articles"
	if unreadOnly {
		viewMode = "unread"
	}
	params := map[string]any{
		"feed_id":      scopeID,
		"limit":        limit,
		"view_mode":    viewMode,
		"is_cat":       isCategory,
		"show_content": true,
	}
	if sinceID > 0 {
		params["since_id"] = sinceID
	}

	var raw []apiHeadline
	if err := c.call(ctx, "getHeadlines", params, &raw); err != nil {
		return nil, err
	}

	articles := make([]domain.Article, 0, len(raw))
	for _, r := range raw {
		articles = append(articles, c.toArticle(r))
	}
	return articles, nil
}

func (c *Client) toArticle(r apiHeadline) domain.Article {
	a := domain.Article{
		ID:          int64(r.ID),
		FeedID:      int64(r.FeedID),
		Title:       r.Title,
		IsUnread:    r.Unread,
		URL:         r.Link,
		CommentURL:  r.CommentsLink,
		Updated:     time.Unix(r.Updated, 0),
		Content:     r.Content,
		IsStarred:   r.Marked,
		IsPublished: r.Published,
	}
	for _, att := range r.Attachments {
		if att.ContentURL != "" {
			a.Attachments = append(a.Attachments, att.ContentURL)
		}
	}
	// Labels come as [id, caption, fg, bg] tuples.
	for _, tuple := range r.Labels {
		if len(tuple) < 2 {
			continue
		}
		var l domain.Label
		var id flexInt
		if err := json.Unmarshal(tuple[0], &id); err != nil {
			continue
		}
		l.ID = int64(id)
		if err := json.Unmarshal(tuple[1], &l.Caption); err != nil {
			continue
		}
		if len(tuple) > 2 {
			_ = json.Unmarshal(tuple[2], &l.Foreground)
		}
		if len(tuple) > 3 {
			_ = json.Unmarshal(tuple[3], &l.Background)
		}
		l.Checked = true
		a.Labels = append(a.Labels, l)
	}
	return a
}

func (c *Client) GetCounters(ctx context.Context) ([]domain.CounterUpdate, error) {
	var raw []apiCounter
	if err := c.call(ctx, "getCounters", map[string]any{"output_mode": "fc"}, &raw); err != nil {
		return nil, err
	}
	counters := make([]domain.CounterUpdate, 0, len(raw))
	for _, r := range raw {
		if r.ID == 0 && r.Kind != "cat" {
			// Aggregate pseudo-counters ("global-unread") are derived
			// locally, skip them.
			continue
		}
		counters = append(counters, domain.CounterUpdate{
			ID:         int64(r.ID),
			IsCategory: r.Kind == "cat",
			Count:      r.Counter,
		})
	}
	return counters, nil
}

// updateArticle field selectors, per API.
var updateFields = map[domain.MarkField]int{
	domain.MarkStar:    0,
	domain.MarkPublish: 1,
	domain.MarkRead:    2,
	domain.MarkNote:    3,
}

func (c *Client) SetArticleField(ctx context.Context, ids []int64, field domain.MarkField, state int64, note string) error {
	if len(ids) == 0 {
		return nil
	}
	fieldNo, ok := updateFields[field]
	if !ok {
		return fmt.Errorf("unsupported article field %q", field)
	}

	params := map[string]any{
		"article_ids": joinIDs(ids),
		"field":       fieldNo,
		"mode":        state,
	}
	if field == domain.MarkNote {
		params["data"] = note
		params["mode"] = 1
	}

	var content statusContent
	return c.call(ctx, "updateArticle", params, &content)
}

func (c *Client) SetRead(ctx context.Context, scope domain.Ref) error {
	scopeID, isCategory := scope.Legacy()
	var content statusContent
	return c.call(ctx, "catchupFeed", map[string]any{
		"feed_id": scopeID,
		"is_cat":  isCategory,
	}, &content)
}

func (c *Client) GetLabels(ctx context.Context, articleID int64) ([]domain.Label, error) {
	var raw []apiLabel
	if err := c.call(ctx, "getLabels", map[string]any{"article_id": articleID}, &raw); err != nil {
		return nil, err
	}
	labels := make([]domain.Label, 0, len(raw))
	for _, r := range raw {
		labels = append(labels, domain.Label{
			ID:         int64(r.ID),
			Caption:    r.Caption,
			Foreground: r.FgColor,
			Background: r.BgColor,
			Checked:    r.Checked,
		})
	}
	return labels, nil
}

func (c *Client) SetArticleLabel(ctx context.Context, ids []int64, labelID int64, assign bool) error {
	if len(ids) == 0 {
		return nil
	}
	var content statusContent
	return c.call(ctx, "setArticleLabel", map[string]any{
		"article_ids": joinIDs(ids),
		"label_id":    labelID,
		"assign":      assign,
	}, &content)
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}
