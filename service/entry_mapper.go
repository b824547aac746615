// ABOUTME: Maps Miniflux entries into host-facing timeline items
// ABOUTME: Optional fields are attached conditionally, never as placeholder values

package service

import (
	"log/slog"
	"strconv"
	"strings"

	"miniflux-connector/models"
)

const faviconURLFormat = "https://icons.duckduckgo.com/ip3/"

// EntryMapper transforms remote entries into timeline items. The configured
// action mode decides which action set mapped items expose.
type EntryMapper struct {
	mode   models.ActionMode
	logger *slog.Logger
}

// NewEntryMapper creates a mapper for the given action mode
func NewEntryMapper(mode models.ActionMode, logger *slog.Logger) *EntryMapper {
	if logger == nil {
		logger = slog.Default()
	}
	if !mode.Valid() {
		mode = models.ActionModeFull
	}

	return &EntryMapper{
		mode:   mode,
		logger: logger,
	}
}

// MapEntry maps a single entry to a timeline item. Mapping is pure: the same
// entry always produces the same item content.
func (m *EntryMapper) MapEntry(entry *models.Entry) *models.Item {
	item := models.NewItem(ItemURI(entry), entry.PublishedAt.Time)
	item.Title = entry.Title
	item.Body = entry.Content // Raw HTML; the host owns safe rendering

	if feed := entry.Feed; feed != nil {
		if feed.Title != "" {
			// Author identity comes from the feed, not the entry author
			// field. Avatar only when the feed has a site URL.
			author := models.NewIdentity(feed.Title)
			if feed.SiteURL != "" {
				author.AvatarURL = FaviconURL(feed.SiteURL)
			}
			item.Author = author

			// Source is a deliberately separate object built from the same
			// feed, not a shared reference with the author identity
			source := models.NewIdentity(feed.Title)
			if feed.SiteURL != "" {
				source.URI = feed.SiteURL
				source.AvatarURL = FaviconURL(feed.SiteURL)
			}
			item.Source = source
		}

		if feed.Category != nil && feed.Category.Title != "" {
			item.Category = feed.Category.Title
		}
	}

	item.Actions = m.ActionsFor(entry)

	return item
}

// ActionsFor derives the action set reflecting the entry's current remote
// state. Read/unread and star/unstar pairs are mutually exclusive; the
// argument is always the stringified entry id.
func (m *EntryMapper) ActionsFor(entry *models.Entry) map[string]string {
	arg := strconv.FormatInt(entry.ID, 10)

	if m.mode == models.ActionModeClassic {
		if entry.Status == models.EntryStatusUnread {
			return map[string]string{models.ActionMarkAsRead: arg}
		}
		return nil
	}

	actions := make(map[string]string, 2)
	if entry.Status == models.EntryStatusRead {
		actions[models.ActionMarkAsUnread] = arg
	} else {
		actions[models.ActionMarkAsRead] = arg
	}
	if entry.Starred {
		actions[models.ActionUnstar] = arg
	} else {
		actions[models.ActionStar] = arg
	}

	return actions
}

// ApplyAction rewrites an item's action set in place after a successful
// dispatch, flipping exactly the toggled pair and preserving the other. In
// classic mode the single action is simply consumed.
func (m *EntryMapper) ApplyAction(actions map[string]string, action string) {
	arg, ok := actions[action]
	if !ok {
		return
	}

	delete(actions, action)

	if m.mode == models.ActionModeClassic {
		return
	}

	switch action {
	case models.ActionMarkAsRead:
		actions[models.ActionMarkAsUnread] = arg
	case models.ActionMarkAsUnread:
		actions[models.ActionMarkAsRead] = arg
	case models.ActionStar:
		actions[models.ActionUnstar] = arg
	case models.ActionUnstar:
		actions[models.ActionStar] = arg
	}
}

// ItemURI derives the stable unique identifier for an entry. Re-fetching the
// same entry never produces a duplicate, and distinct (url, id) pairs never
// collide.
func ItemURI(entry *models.Entry) string {
	return entry.URL + "#" + strconv.FormatInt(entry.ID, 10)
}

// FaviconURL derives a favicon lookup URL from a feed's site URL
func FaviconURL(siteURL string) string {
	return faviconURLFormat + faviconDomain(siteURL) + ".ico"
}

// faviconDomain extracts the domain by stripping the scheme and everything
// after the first remaining slash
func faviconDomain(siteURL string) string {
	domain := siteURL
	if idx := strings.Index(domain, "://"); idx >= 0 {
		domain = domain[idx+3:]
	}
	if idx := strings.Index(domain, "/"); idx >= 0 {
		domain = domain[:idx]
	}
	return domain
}
