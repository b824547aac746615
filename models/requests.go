// ABOUTME: Request types for Miniflux API calls
package models

// UpdateEntriesRequest is the body for PUT /v1/entries status updates
type UpdateEntriesRequest struct {
	EntryIDs []int64 `json:"entry_ids"`
	Status   string  `json:"status"`
}
