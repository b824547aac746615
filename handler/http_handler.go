// ABOUTME: HTTP bridge exposing the connector entry points to a host process
// ABOUTME: Each request runs one entry point and collects host callbacks into the response

package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"miniflux-connector/models"
)

// HTTPHandler serves the connector over localhost HTTP for hosts that drive
// the plugin out of process
type HTTPHandler struct {
	connector *ConnectorHandler
}

// NewHTTPHandler creates the bridge handler
func NewHTTPHandler(connector *ConnectorHandler) *HTTPHandler {
	return &HTTPHandler{connector: connector}
}

// RegisterRoutes attaches the bridge endpoints to an echo instance
func (h *HTTPHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.HandleHealth)
	e.POST("/v1/verify", h.HandleVerify)
	e.POST("/v1/load", h.HandleLoad)
	e.POST("/v1/actions/:name", h.HandleAction)
}

// VerifyResponse reports a verification outcome over the bridge
type VerifyResponse struct {
	Status      string    `json:"status"` // "incomplete", "verified" or "error"
	DisplayName string    `json:"display_name,omitempty"`
	Message     string    `json:"message,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// LoadResponse carries the mapped timeline items over the bridge
type LoadResponse struct {
	Status    string         `json:"status"` // "ok" or "error"
	Items     []*models.Item `json:"items,omitempty"`
	Message   string         `json:"message,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// ActionRequest identifies the tapped action's target item
type ActionRequest struct {
	EntryID string            `json:"entry_id"`
	Actions map[string]string `json:"actions,omitempty"`
}

// ActionResponse returns the item's updated action set. Dispatch is
// best-effort, so the status is always "ok".
type ActionResponse struct {
	Status    string            `json:"status"`
	Actions   map[string]string `json:"actions,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// HandleHealth responds 200 while the bridge is up
func (h *HTTPHandler) HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// HandleVerify runs the verification entry point
func (h *HTTPHandler) HandleVerify(c echo.Context) error {
	host := &collectingHost{}
	h.connector.Verify(c.Request().Context(), host)

	resp := VerifyResponse{
		Status:    "incomplete",
		Timestamp: time.Now(),
	}
	switch {
	case host.failed:
		resp.Status = "error"
		resp.Message = host.errMessage
	case host.verified:
		resp.Status = "verified"
		resp.DisplayName = host.displayName
	}

	return c.JSON(http.StatusOK, resp)
}

// HandleLoad runs the content loading entry point
func (h *HTTPHandler) HandleLoad(c echo.Context) error {
	host := &collectingHost{}
	h.connector.Load(c.Request().Context(), host)

	resp := LoadResponse{
		Status:    "ok",
		Items:     host.items,
		Timestamp: time.Now(),
	}
	if host.failed {
		resp.Status = "error"
		resp.Items = nil
		resp.Message = host.errMessage
	}

	return c.JSON(http.StatusOK, resp)
}

// HandleAction runs the action dispatch entry point
func (h *HTTPHandler) HandleAction(c echo.Context) error {
	var req ActionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"status":  "error",
			"message": "invalid action request body",
		})
	}

	actions := h.connector.HandleAction(c.Request().Context(), c.Param("name"), req.EntryID, req.Actions)

	return c.JSON(http.StatusOK, ActionResponse{
		Status:    "ok",
		Actions:   actions,
		Timestamp: time.Now(),
	})
}

// collectingHost buffers host callbacks for one bridge request
type collectingHost struct {
	items       []*models.Item
	displayName string
	verified    bool
	errMessage  string
	failed      bool
}

func (h *collectingHost) ReportItems(items []*models.Item) {
	h.items = items
}

func (h *collectingHost) ReportVerified(displayName string) {
	h.verified = true
	h.displayName = displayName
}

func (h *collectingHost) ReportError(message string) {
	h.failed = true
	h.errMessage = message
}
