// ABOUTME: Builds the unread-entries query URL against a Miniflux instance
// ABOUTME: Fixed unread filter with newest-first ordering, optional cutoff and categories

package driver

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"miniflux-connector/models"
)

// EntriesQuery describes the filter options for an unread-entries fetch
type EntriesQuery struct {
	Limit       int
	RecentDays  int
	CategoryIDs []string
}

// NewEntriesQuery derives the query from user-configured options, applying
// defaults and the category no-filter rule
func NewEntriesQuery(opts *models.Options) EntriesQuery {
	return EntriesQuery{
		Limit:       opts.EffectiveLimit(),
		RecentDays:  opts.RecentDays,
		CategoryIDs: opts.CategoryFilter(),
	}
}

// BuildEntriesURL produces the full entries query URL. The base URL's
// trailing slash is stripped. Each category id becomes a repeated
// category_id parameter.
func BuildEntriesURL(baseURL string, query EntriesQuery, now time.Time) string {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")

	values := url.Values{}
	values.Set("status", models.EntryStatusUnread)
	values.Set("order", "published_at")
	values.Set("direction", "desc")

	if query.Limit > 0 {
		values.Set("limit", strconv.Itoa(query.Limit))
	}

	if query.RecentDays > 0 {
		cutoff := now.AddDate(0, 0, -query.RecentDays).Unix()
		values.Set("published_after", strconv.FormatInt(cutoff, 10))
	}

	for _, id := range query.CategoryIDs {
		values.Add("category_id", id)
	}

	return base + "/v1/entries?" + values.Encode()
}
