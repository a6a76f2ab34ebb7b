package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/filings-platform/accounts-service/internal/application"
	"github.com/filings-platform/accounts-service/internal/domain"
	"github.com/filings-platform/accounts-service/pkg/logging"
	"github.com/filings-platform/accounts-service/pkg/middleware"
)

// NoteHandlers dispatches note operations by the noteType route parameter.
// One handler serves every note kind; an unknown segment is a routing miss,
// not a validation failure.
type NoteHandlers struct {
	services map[domain.ResourceKind]*application.ResourceService
	logger   *logging.Logger
}

// NewNoteHandlers creates a NoteHandlers over the per-kind note services
func NewNoteHandlers(services map[domain.ResourceKind]*application.ResourceService, logger *logging.Logger) *NoteHandlers {
	return &NoteHandlers{
		services: services,
		logger:   logger,
	}
}

// RegisterRoutes registers note routes on the router
func (h *NoteHandlers) RegisterRoutes(router *gin.RouterGroup) {
	notes := router.Group("/notes/:noteType")
	{
		notes.POST("", h.CreateNote)
		notes.GET("", h.GetNote)
		notes.PUT("", h.UpdateNote)
		notes.DELETE("", h.DeleteNote)
	}
}

// resolve maps the noteType path segment to its kind's handlers. Unknown
// segments 404 without touching storage.
func (h *NoteHandlers) resolve(c *gin.Context) (resourceHandlers, bool) {
	segment := c.Param("noteType")

	kind, ok := domain.NoteKindForSegment(segment)
	if !ok {
		middleware.NewErrorResponder(c, h.logger.Logger).RespondNotFound("note type " + segment)
		return resourceHandlers{}, false
	}

	service, ok := h.services[kind]
	if !ok {
		middleware.NewErrorResponder(c, h.logger.Logger).RespondNotFound("note type " + segment)
		return resourceHandlers{}, false
	}

	middleware.AddSpanAttributes(c, map[string]interface{}{
		"filing.transaction_id":     c.Param("transactionId"),
		"filing.company_account_id": c.Param("companyAccountId"),
		"filing.note_type":          segment,
	})
	return newResourceHandlers(service, h.logger), true
}

// CreateNote handles note creation
func (h *NoteHandlers) CreateNote(c *gin.Context) {
	if rh, ok := h.resolve(c); ok {
		rh.create(c, c.Param("companyAccountId"))
	}
}

// GetNote handles getting a note
func (h *NoteHandlers) GetNote(c *gin.Context) {
	if rh, ok := h.resolve(c); ok {
		rh.get(c, c.Param("companyAccountId"))
	}
}

// UpdateNote handles replacing a note
func (h *NoteHandlers) UpdateNote(c *gin.Context) {
	if rh, ok := h.resolve(c); ok {
		rh.update(c, c.Param("companyAccountId"))
	}
}

// DeleteNote handles deleting a note
func (h *NoteHandlers) DeleteNote(c *gin.Context) {
	if rh, ok := h.resolve(c); ok {
		rh.remove(c, c.Param("companyAccountId"))
	}
}
