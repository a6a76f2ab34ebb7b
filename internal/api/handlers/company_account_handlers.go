package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/filings-platform/accounts-service/internal/application"
	"github.com/filings-platform/accounts-service/pkg/logging"
	"github.com/filings-platform/accounts-service/pkg/middleware"
)

// CompanyAccountHandlers contains handlers for company-account operations.
// The company account is the root of the filing tree; its parent is the
// externally owned transaction, so its parent id is the transaction id.
type CompanyAccountHandlers struct {
	resourceHandlers
}

// NewCompanyAccountHandlers creates a new CompanyAccountHandlers
func NewCompanyAccountHandlers(service *application.ResourceService, logger *logging.Logger) *CompanyAccountHandlers {
	return &CompanyAccountHandlers{newResourceHandlers(service, logger)}
}

// RegisterRoutes registers company-account routes on the router
func (h *CompanyAccountHandlers) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("", h.CreateCompanyAccount)
	router.GET("/:companyAccountId", h.GetCompanyAccount)
	router.DELETE("/:companyAccountId", h.DeleteCompanyAccount)
}

// CreateCompanyAccount handles company-account creation. The account's id is
// derived from the transaction id, so a transaction holds at most one.
func (h *CompanyAccountHandlers) CreateCompanyAccount(c *gin.Context) {
	transactionID := c.Param("transactionId")
	middleware.AddSpanAttributes(c, map[string]interface{}{
		"filing.transaction_id": transactionID,
	})

	h.create(c, transactionID)
}

// GetCompanyAccount handles getting the company account
func (h *CompanyAccountHandlers) GetCompanyAccount(c *gin.Context) {
	transactionID := c.Param("transactionId")
	middleware.AddSpanAttributes(c, map[string]interface{}{
		"filing.transaction_id":     transactionID,
		"filing.company_account_id": c.Param("companyAccountId"),
	})

	h.get(c, transactionID)
}

// DeleteCompanyAccount handles deleting the company account
func (h *CompanyAccountHandlers) DeleteCompanyAccount(c *gin.Context) {
	transactionID := c.Param("transactionId")
	middleware.AddSpanAttributes(c, map[string]interface{}{
		"filing.transaction_id":     transactionID,
		"filing.company_account_id": c.Param("companyAccountId"),
	})

	h.remove(c, transactionID)
}
