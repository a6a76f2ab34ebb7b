package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/filings-platform/accounts-service/internal/application"
	"github.com/filings-platform/accounts-service/internal/validation"
	"github.com/filings-platform/accounts-service/pkg/errors"
	"github.com/filings-platform/accounts-service/pkg/logging"
	"github.com/filings-platform/accounts-service/pkg/middleware"
)

// ClosureCheckResponse is the closure check result payload. Both outcomes
// return HTTP 200; is_valid distinguishes them.
type ClosureCheckResponse struct {
	IsValid bool               `json:"is_valid"`
	Errors  []validation.Error `json:"errors,omitempty"`
}

// ClosureHandlers contains the closure validation endpoint
type ClosureHandlers struct {
	service *application.ClosureService
	logger  *logging.Logger
}

// NewClosureHandlers creates a new ClosureHandlers
func NewClosureHandlers(service *application.ClosureService, logger *logging.Logger) *ClosureHandlers {
	return &ClosureHandlers{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the closure check route on the router
func (h *ClosureHandlers) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/:companyAccountId/validate", h.ValidateClosure)
}

// ValidateClosure runs the closure check for a filing. Validation findings
// are payload, not errors; only infrastructure faults surface as non-200.
func (h *ClosureHandlers) ValidateClosure(c *gin.Context) {
	responder := middleware.NewErrorResponder(c, h.logger.Logger)

	transactionID := c.Param("transactionId")
	companyAccountID := c.Param("companyAccountId")
	ids := routeIdentifiers{TransactionID: transactionID, CompanyAccountID: companyAccountID}
	if appErr := middleware.ValidateStruct(ids); appErr != nil {
		responder.RespondWithAppError(appErr)
		return
	}
	middleware.AddSpanAttributes(c, map[string]interface{}{
		"filing.transaction_id":     transactionID,
		"filing.company_account_id": companyAccountID,
	})

	errs, err := h.service.Validate(c.Request.Context(), transactionID, companyAccountID)
	if err != nil {
		if appErr, ok := errors.AsAppError(err); ok {
			responder.RespondWithAppError(appErr)
		} else {
			responder.RespondInternalError(err)
		}
		return
	}

	c.JSON(http.StatusOK, ClosureCheckResponse{
		IsValid: errs.IsEmpty(),
		Errors:  errs.List(),
	})
}
