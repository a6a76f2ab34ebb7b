package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/filings-platform/accounts-service/internal/application"
	"github.com/filings-platform/accounts-service/pkg/logging"
)

// PeriodHandlers contains handlers for one accounting period kind. Periods
// hang off the small-full aggregate and are addressed by company account id.
type PeriodHandlers struct {
	resourceHandlers
}

// NewPeriodHandlers creates a PeriodHandlers for the current or previous
// period service
func NewPeriodHandlers(service *application.ResourceService, logger *logging.Logger) *PeriodHandlers {
	return &PeriodHandlers{newResourceHandlers(service, logger)}
}

// RegisterRoutes registers the period routes on the router
func (h *PeriodHandlers) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("", h.CreatePeriod)
	router.GET("", h.GetPeriod)
	router.PUT("", h.UpdatePeriod)
	router.DELETE("", h.DeletePeriod)
}

// CreatePeriod handles period creation
func (h *PeriodHandlers) CreatePeriod(c *gin.Context) {
	spanAttributes(c)
	h.create(c, c.Param("companyAccountId"))
}

// GetPeriod handles getting the period
func (h *PeriodHandlers) GetPeriod(c *gin.Context) {
	spanAttributes(c)
	h.get(c, c.Param("companyAccountId"))
}

// UpdatePeriod handles replacing the period
func (h *PeriodHandlers) UpdatePeriod(c *gin.Context) {
	spanAttributes(c)
	h.update(c, c.Param("companyAccountId"))
}

// DeletePeriod handles deleting the period
func (h *PeriodHandlers) DeletePeriod(c *gin.Context) {
	spanAttributes(c)
	h.remove(c, c.Param("companyAccountId"))
}
