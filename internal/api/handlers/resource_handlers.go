package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/filings-platform/accounts-service/internal/application"
	"github.com/filings-platform/accounts-service/internal/domain"
	"github.com/filings-platform/accounts-service/internal/validation"
	"github.com/filings-platform/accounts-service/pkg/errors"
	"github.com/filings-platform/accounts-service/pkg/logging"
	"github.com/filings-platform/accounts-service/pkg/middleware"
)

// ValidationErrorResponse is the body returned when a submission fails
// validation
type ValidationErrorResponse struct {
	Errors []validation.Error `json:"errors"`
}

// resourceHandlers is the shared CRUD plumbing every kind-specific handler
// delegates to. One instance serves one resource kind.
type resourceHandlers struct {
	service *application.ResourceService
	logger  *logging.Logger
}

func newResourceHandlers(service *application.ResourceService, logger *logging.Logger) resourceHandlers {
	return resourceHandlers{service: service, logger: logger}
}

// routeIdentifiers is checked before any storage access. The company account
// id is absent on the collection-level create route.
type routeIdentifiers struct {
	TransactionID    string `json:"transaction_id" validate:"required,transaction_id"`
	CompanyAccountID string `json:"company_account_id" validate:"omitempty,safe_string"`
}

// filingContext validates the route identifiers and extracts them. Malformed
// identifiers are a 400 before anything touches storage.
func (h resourceHandlers) filingContext(c *gin.Context) (application.FilingContext, bool) {
	ids := routeIdentifiers{
		TransactionID:    c.Param("transactionId"),
		CompanyAccountID: c.Param("companyAccountId"),
	}
	if appErr := middleware.ValidateStruct(ids); appErr != nil {
		middleware.NewErrorResponder(c, h.logger.Logger).RespondWithAppError(appErr)
		return application.FilingContext{}, false
	}
	return application.FilingContext{
		TransactionID:    ids.TransactionID,
		CompanyAccountID: ids.CompanyAccountID,
	}, true
}

// bindAndValidate binds the request body into the kind's REST shape and runs
// its submission validator. A non-empty accumulator blocks persistence.
func (h resourceHandlers) bindAndValidate(c *gin.Context) (domain.RestObject, bool) {
	rest := h.service.NewRest()
	if appErr := middleware.BindAndValidate(c, rest); appErr != nil {
		middleware.NewErrorResponder(c, h.logger.Logger).RespondWithAppError(appErr)
		return nil, false
	}

	if validator, ok := validation.SubmissionValidatorFor(h.service.Kind()); ok {
		errs := validation.NewErrors()
		validator.Validate(rest, errs)
		if !errs.IsEmpty() {
			c.JSON(http.StatusBadRequest, ValidationErrorResponse{Errors: errs.List()})
			return nil, false
		}
	}
	return rest, true
}

func (h resourceHandlers) respondError(c *gin.Context, err error) {
	responder := middleware.NewErrorResponder(c, h.logger.Logger)
	if appErr, ok := errors.AsAppError(err); ok {
		responder.RespondWithAppError(appErr)
	} else {
		responder.RespondInternalError(err)
	}
}

// create handles POST for the kind under the given parent id
func (h resourceHandlers) create(c *gin.Context, parentID string) {
	fc, ok := h.filingContext(c)
	if !ok {
		return
	}
	rest, ok := h.bindAndValidate(c)
	if !ok {
		return
	}

	result, outcome, err := h.service.Create(c.Request.Context(), fc, parentID, rest)
	if err != nil {
		h.respondError(c, err)
		return
	}

	switch outcome {
	case application.OutcomeConflict:
		middleware.NewErrorResponder(c, h.logger.Logger).
			RespondConflict(string(h.service.Kind()) + " already exists")
	default:
		c.JSON(http.StatusCreated, result)
	}
}

// get handles GET for the kind under the given parent id
func (h resourceHandlers) get(c *gin.Context, parentID string) {
	if _, ok := h.filingContext(c); !ok {
		return
	}

	result, outcome, err := h.service.Find(c.Request.Context(), parentID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if outcome == application.OutcomeNotFound {
		middleware.NewErrorResponder(c, h.logger.Logger).
			RespondNotFound(string(h.service.Kind()))
		return
	}
	c.JSON(http.StatusOK, result)
}

// update handles PUT for the kind under the given parent id
func (h resourceHandlers) update(c *gin.Context, parentID string) {
	fc, ok := h.filingContext(c)
	if !ok {
		return
	}
	rest, ok := h.bindAndValidate(c)
	if !ok {
		return
	}

	result, outcome, err := h.service.Update(c.Request.Context(), fc, parentID, rest)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if outcome == application.OutcomeNotFound {
		middleware.NewErrorResponder(c, h.logger.Logger).
			RespondNotFound(string(h.service.Kind()))
		return
	}
	c.JSON(http.StatusOK, result)
}

// remove handles DELETE for the kind under the given parent id
func (h resourceHandlers) remove(c *gin.Context, parentID string) {
	fc, ok := h.filingContext(c)
	if !ok {
		return
	}

	outcome, err := h.service.Delete(c.Request.Context(), fc, parentID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if outcome == application.OutcomeNotFound {
		middleware.NewErrorResponder(c, h.logger.Logger).
			RespondNotFound(string(h.service.Kind()))
		return
	}
	c.Status(http.StatusNoContent)
}
