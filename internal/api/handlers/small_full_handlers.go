package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/filings-platform/accounts-service/internal/application"
	"github.com/filings-platform/accounts-service/pkg/logging"
	"github.com/filings-platform/accounts-service/pkg/middleware"
)

// SmallFullHandlers contains handlers for the small-full aggregate. Its
// parent is the company account.
type SmallFullHandlers struct {
	resourceHandlers
}

// NewSmallFullHandlers creates a new SmallFullHandlers
func NewSmallFullHandlers(service *application.ResourceService, logger *logging.Logger) *SmallFullHandlers {
	return &SmallFullHandlers{newResourceHandlers(service, logger)}
}

// RegisterRoutes registers small-full routes on the router
func (h *SmallFullHandlers) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("", h.CreateSmallFull)
	router.GET("", h.GetSmallFull)
	router.PUT("", h.UpdateSmallFull)
	router.DELETE("", h.DeleteSmallFull)
}

func spanAttributes(c *gin.Context) {
	middleware.AddSpanAttributes(c, map[string]interface{}{
		"filing.transaction_id":     c.Param("transactionId"),
		"filing.company_account_id": c.Param("companyAccountId"),
	})
}

// CreateSmallFull handles small-full creation
func (h *SmallFullHandlers) CreateSmallFull(c *gin.Context) {
	spanAttributes(c)
	h.create(c, c.Param("companyAccountId"))
}

// GetSmallFull handles getting the small-full aggregate
func (h *SmallFullHandlers) GetSmallFull(c *gin.Context) {
	spanAttributes(c)
	h.get(c, c.Param("companyAccountId"))
}

// UpdateSmallFull handles replacing the small-full aggregate
func (h *SmallFullHandlers) UpdateSmallFull(c *gin.Context) {
	spanAttributes(c)
	h.update(c, c.Param("companyAccountId"))
}

// DeleteSmallFull handles deleting the small-full aggregate
func (h *SmallFullHandlers) DeleteSmallFull(c *gin.Context) {
	spanAttributes(c)
	h.remove(c, c.Param("companyAccountId"))
}
