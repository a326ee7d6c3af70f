package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/mmynk/marklist/internal/models"
)

// Error messages returned to clients. The underlying cause is only logged.
const (
	ErrFetchingItems = "Error fetching items"
	ErrAddingItem    = "Error adding item"
	ErrDeletingItems = "Error deleting items"
)

// ItemService is the data access the handlers depend on.
type ItemService interface {
	List(ctx context.Context) ([]models.Item, error)
	Create(ctx context.Context, input models.NewItem) (*models.Item, error)
	DeleteMany(ctx context.Context, ids []string) ([]models.Item, error)
}

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Error string `json:"error"`
}

// DeleteRequest is the body of DELETE /delete.
type DeleteRequest struct {
	IDs []string `json:"ids"`
}

// Handlers adapts HTTP requests to ItemService calls.
type Handlers struct {
	items ItemService
}

// NewHandlers creates the item handlers.
func NewHandlers(items ItemService) *Handlers {
	return &Handlers{items: items}
}

// ListItems handles GET /api/items.
func (h *Handlers) ListItems(c *gin.Context) {
	items, err := h.items.List(c.Request.Context())
	if err != nil {
		fail(c, ErrFetchingItems, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateItem handles POST /api/items with body {text, isMarked}.
func (h *Handlers) CreateItem(c *gin.Context) {
	var input models.NewItem
	if err := bindJSON(c, &input); err != nil {
		fail(c, ErrAddingItem, err)
		return
	}

	item, err := h.items.Create(c.Request.Context(), input)
	if err != nil {
		fail(c, ErrAddingItem, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteItems handles DELETE /delete with body {ids: [...]} and responds
// with the items that remain.
func (h *Handlers) DeleteItems(c *gin.Context) {
	var req DeleteRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, ErrDeletingItems, err)
		return
	}

	remaining, err := h.items.DeleteMany(c.Request.Context(), req.IDs)
	if err != nil {
		fail(c, ErrDeletingItems, err)
		return
	}
	c.JSON(http.StatusOK, remaining)
}

// bindJSON decodes a JSON request body. Bodies sent with any other content
// type are not parsed and fail the request.
func bindJSON(c *gin.Context, obj any) error {
	if ct := c.ContentType(); ct != binding.MIMEJSON {
		return fmt.Errorf("unsupported content type %q", ct)
	}
	return c.ShouldBindWith(obj, binding.JSON)
}

// fail logs err and responds 500 with a generic message. Validation and
// storage failures are deliberately indistinguishable to clients.
func fail(c *gin.Context, message string, err error) {
	slog.Error(message, "path", c.Request.URL.Path, "error", err)
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: message})
}
