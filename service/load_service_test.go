package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"miniflux-connector/driver"
	"miniflux-connector/mocks"
	"miniflux-connector/models"
)

func completeCredentials() *models.Credentials {
	return &models.Credentials{BaseURL: "https://reader.example.com", APIToken: "secret"}
}

func TestLoadService_MapsEntriesInServerOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	response := &models.EntriesResponse{
		Total: 2,
		Entries: []models.Entry{
			{ID: 10, URL: "https://a.example/1", Title: "first", Status: models.EntryStatusUnread, Starred: true, PublishedAt: models.TimeFromUnix(1672617600)},
			{ID: 11, URL: "https://a.example/2", Title: "second", Status: models.EntryStatusRead, Starred: false, PublishedAt: models.TimeFromUnix(1672531200)},
		},
	}

	api := mocks.NewMockMinifluxAPI(ctrl)
	api.EXPECT().GetEntries(gomock.Any(), gomock.Any()).Return(response, nil)

	opts := &models.Options{}
	mapper := NewEntryMapper(models.ActionModeFull, nil)
	svc := NewLoadService(api, completeCredentials(), opts, mapper, nil)

	items, err := svc.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "https://a.example/1#10", items[0].URI)
	assert.Equal(t, "https://a.example/2#11", items[1].URI)

	// Action sets reflect each entry's remote state
	assert.Equal(t, map[string]string{
		models.ActionMarkAsRead: "10",
		models.ActionUnstar:     "10",
	}, items[0].Actions)
	assert.Equal(t, map[string]string{
		models.ActionMarkAsUnread: "11",
		models.ActionStar:         "11",
	}, items[1].Actions)
}

func TestLoadService_QueryDerivedFromOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockMinifluxAPI(ctrl)
	api.EXPECT().
		GetEntries(gomock.Any(), driver.EntriesQuery{Limit: 10, RecentDays: 7, CategoryIDs: []string{"1", "5"}}).
		Return(&models.EntriesResponse{}, nil)

	opts := &models.Options{Limit: 10, RecentDays: 7, CategoryIDs: "1,5"}
	mapper := NewEntryMapper(models.ActionModeFull, nil)
	svc := NewLoadService(api, completeCredentials(), opts, mapper, nil)

	items, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestLoadService_IncompleteSettingsFailLoudly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockMinifluxAPI(ctrl)

	mapper := NewEntryMapper(models.ActionModeFull, nil)
	svc := NewLoadService(api, &models.Credentials{}, &models.Options{}, mapper, nil)

	items, err := svc.Load(context.Background())
	assert.Nil(t, items)

	var incomplete *ConfigIncompleteError
	require.ErrorAs(t, err, &incomplete)
	assert.Contains(t, incomplete.Fields, "base_url")
}

func TestLoadService_TransportFailureSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockMinifluxAPI(ctrl)
	api.EXPECT().GetEntries(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

	mapper := NewEntryMapper(models.ActionModeFull, nil)
	svc := NewLoadService(api, completeCredentials(), &models.Options{}, mapper, nil)

	items, err := svc.Load(context.Background())
	assert.Nil(t, items)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load unread entries")
}
