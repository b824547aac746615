package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"miniflux-connector/models"
)

func sampleEntry() *models.Entry {
	return &models.Entry{
		ID:          42,
		URL:         "https://example.com/post",
		Title:       "Hello",
		Content:     "<p>Body</p>",
		PublishedAt: models.TimeFromUnix(1672531200),
		Status:      models.EntryStatusUnread,
		Starred:     false,
		Author:      "Entry Author",
		Feed: &models.Feed{
			Title:    "Example Blog",
			SiteURL:  "https://example.com/blog/",
			Category: &models.Category{Title: "Tech"},
		},
	}
}

func TestEntryMapper_MapEntry(t *testing.T) {
	mapper := NewEntryMapper(models.ActionModeFull, nil)
	item := mapper.MapEntry(sampleEntry())

	assert.Equal(t, "https://example.com/post#42", item.URI)
	assert.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), item.Timestamp)
	assert.Equal(t, "Hello", item.Title)
	assert.Equal(t, "<p>Body</p>", item.Body)

	// Author identity comes from the feed title, not the entry author field
	require.NotNil(t, item.Author)
	assert.Equal(t, "Example Blog", item.Author.Name)
	assert.Equal(t, "https://icons.duckduckgo.com/ip3/example.com.ico", item.Author.AvatarURL)

	require.NotNil(t, item.Source)
	assert.Equal(t, "Example Blog", item.Source.Name)
	assert.Equal(t, "https://example.com/blog/", item.Source.URI)

	// Author and source are deliberately separate objects
	assert.NotSame(t, item.Author, item.Source)

	assert.Equal(t, "Tech", item.Category)
}

func TestEntryMapper_MapEntryIsDeterministic(t *testing.T) {
	mapper := NewEntryMapper(models.ActionModeFull, nil)
	entry := sampleEntry()

	first, err := json.Marshal(mapper.MapEntry(entry))
	require.NoError(t, err)
	second, err := json.Marshal(mapper.MapEntry(entry))
	require.NoError(t, err)

	assert.JSONEq(t, string(first), string(second))
}

func TestEntryMapper_OptionalFieldsOmitted(t *testing.T) {
	mapper := NewEntryMapper(models.ActionModeFull, nil)

	entry := sampleEntry()
	entry.Feed = nil

	item := mapper.MapEntry(entry)
	assert.Nil(t, item.Author)
	assert.Nil(t, item.Source)
	assert.Empty(t, item.Category)

	data, err := json.Marshal(item)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.NotContains(t, decoded, "author")
	assert.NotContains(t, decoded, "source")
	assert.NotContains(t, decoded, "category")
}

func TestEntryMapper_NoAvatarWithoutSiteURL(t *testing.T) {
	mapper := NewEntryMapper(models.ActionModeFull, nil)

	entry := sampleEntry()
	entry.Feed.SiteURL = ""

	item := mapper.MapEntry(entry)
	require.NotNil(t, item.Author)
	assert.Empty(t, item.Author.AvatarURL)
	require.NotNil(t, item.Source)
	assert.Empty(t, item.Source.URI)
	assert.Empty(t, item.Source.AvatarURL)
}

func TestEntryMapper_CategoryRequiresTitle(t *testing.T) {
	mapper := NewEntryMapper(models.ActionModeFull, nil)

	entry := sampleEntry()
	entry.Feed.Category = &models.Category{}

	item := mapper.MapEntry(entry)
	assert.Empty(t, item.Category)
}

func TestItemURI_DistinctPairsNeverCollide(t *testing.T) {
	a := &models.Entry{ID: 1, URL: "https://example.com/post"}
	b := &models.Entry{ID: 2, URL: "https://example.com/post"}
	c := &models.Entry{ID: 1, URL: "https://example.com/other"}

	assert.NotEqual(t, ItemURI(a), ItemURI(b))
	assert.NotEqual(t, ItemURI(a), ItemURI(c))
	assert.Equal(t, ItemURI(a), ItemURI(a))
}

func TestFaviconURL_DomainExtraction(t *testing.T) {
	tests := map[string]struct {
		siteURL  string
		expected string
	}{
		"https_with_path": {
			siteURL:  "https://example.com/blog/index.html",
			expected: "https://icons.duckduckgo.com/ip3/example.com.ico",
		},
		"http_bare_domain": {
			siteURL:  "http://news.example.org",
			expected: "https://icons.duckduckgo.com/ip3/news.example.org.ico",
		},
		"no_scheme": {
			siteURL:  "example.net/feed",
			expected: "https://icons.duckduckgo.com/ip3/example.net.ico",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FaviconURL(tt.siteURL))
		})
	}
}

func TestEntryMapper_ActionsReflectRemoteState(t *testing.T) {
	mapper := NewEntryMapper(models.ActionModeFull, nil)

	tests := map[string]struct {
		status   string
		starred  bool
		expected map[string]string
	}{
		"unread_starred": {
			status:  models.EntryStatusUnread,
			starred: true,
			expected: map[string]string{
				models.ActionMarkAsRead: "42",
				models.ActionUnstar:     "42",
			},
		},
		"read_unstarred": {
			status:  models.EntryStatusRead,
			starred: false,
			expected: map[string]string{
				models.ActionMarkAsUnread: "42",
				models.ActionStar:         "42",
			},
		},
		"unread_unstarred": {
			status:  models.EntryStatusUnread,
			starred: false,
			expected: map[string]string{
				models.ActionMarkAsRead: "42",
				models.ActionStar:       "42",
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			entry := sampleEntry()
			entry.Status = tt.status
			entry.Starred = tt.starred

			assert.Equal(t, tt.expected, mapper.ActionsFor(entry))
		})
	}
}

func TestEntryMapper_ClassicActionMode(t *testing.T) {
	mapper := NewEntryMapper(models.ActionModeClassic, nil)

	unread := sampleEntry()
	assert.Equal(t, map[string]string{models.ActionMarkAsRead: "42"}, mapper.ActionsFor(unread))

	read := sampleEntry()
	read.Status = models.EntryStatusRead
	read.Starred = true
	assert.Nil(t, mapper.ActionsFor(read))
}

func TestEntryMapper_ApplyActionFlipsExactlyOnePair(t *testing.T) {
	mapper := NewEntryMapper(models.ActionModeFull, nil)

	actions := map[string]string{
		models.ActionMarkAsRead: "10",
		models.ActionUnstar:     "10",
	}

	mapper.ApplyAction(actions, models.ActionMarkAsRead)

	// Read/unread pair flipped, star pair untouched
	assert.Equal(t, map[string]string{
		models.ActionMarkAsUnread: "10",
		models.ActionUnstar:       "10",
	}, actions)

	mapper.ApplyAction(actions, models.ActionUnstar)
	assert.Equal(t, map[string]string{
		models.ActionMarkAsUnread: "10",
		models.ActionStar:         "10",
	}, actions)
}

func TestEntryMapper_ApplyActionIgnoresAbsentAction(t *testing.T) {
	mapper := NewEntryMapper(models.ActionModeFull, nil)

	actions := map[string]string{models.ActionMarkAsRead: "10"}
	mapper.ApplyAction(actions, models.ActionStar)

	assert.Equal(t, map[string]string{models.ActionMarkAsRead: "10"}, actions)
}

func TestEntryMapper_ApplyActionClassicConsumes(t *testing.T) {
	mapper := NewEntryMapper(models.ActionModeClassic, nil)

	actions := map[string]string{models.ActionMarkAsRead: "10"}
	mapper.ApplyAction(actions, models.ActionMarkAsRead)

	assert.Empty(t, actions)
}
