package transactions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/filings-platform/accounts-service/internal/domain"
	"github.com/filings-platform/accounts-service/pkg/errors"
	"github.com/filings-platform/accounts-service/pkg/logging"
	"github.com/filings-platform/accounts-service/pkg/resilience"
)

// Client talks to the external transaction service. It is the read side for
// closure checks and the parent link store for company-account resources.
// Implements application.TransactionGetter and domain.ParentLinkStore.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *resilience.CircuitBreaker
	retry      *resilience.RetryConfig
	logger     *logging.Logger
}

// Config holds transaction service connection settings
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// DefaultConfig returns transaction client defaults
func DefaultConfig() Config {
	return Config{
		BaseURL: "http://localhost:4000",
		Timeout: 10 * time.Second,
	}
}

// NewClient creates a transaction service client. onStateChange may be nil.
func NewClient(cfg Config, logger *logging.Logger, onStateChange resilience.StateChangeHook) *Client {
	breakerCfg := resilience.DefaultCircuitBreakerConfig("transaction-service")
	breakerCfg.OnStateChange = onStateChange

	retryCfg := resilience.DefaultRetryConfig()
	retryCfg.RetryableErrors = isRetryable

	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		breaker: resilience.NewCircuitBreaker(breakerCfg, logger.Logger),
		retry:   retryCfg,
		logger:  logger,
	}
}

// retryableError marks transport-level failures worth retrying. Definitive
// responses (404, 4xx) are never retried.
type retryableError struct {
	err error
}

func (e *retryableError) Error() string { return e.err.Error() }
func (e *retryableError) Unwrap() error { return e.err }

func isRetryable(err error) bool {
	_, ok := err.(*retryableError)
	return ok
}

// Get fetches a transaction by ID
func (c *Client) Get(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	var tx *domain.Transaction

	err := resilience.Retry(ctx, c.retry, func() error {
		result, err := c.breaker.Execute(ctx, func() (interface{}, error) {
			return c.fetch(ctx, transactionID)
		})
		if err != nil {
			return err
		}
		tx = result.(*domain.Transaction)
		return nil
	})
	if err != nil {
		return nil, c.mapError("get transaction", transactionID, err)
	}
	return tx, nil
}

func (c *Client) fetch(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	url := fmt.Sprintf("%s/transactions/%s", c.baseURL, transactionID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &retryableError{fmt.Errorf("failed to fetch transaction: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errors.ErrNotFoundWithID("transaction", transactionID)
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, &retryableError{fmt.Errorf("transaction service returned status %d", resp.StatusCode)}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("transaction service returned status %d", resp.StatusCode)
	}

	var tx domain.Transaction
	if err := json.NewDecoder(resp.Body).Decode(&tx); err != nil {
		return nil, fmt.Errorf("failed to decode transaction response: %w", err)
	}
	return &tx, nil
}

// SetLink registers a resource on the transaction envelope. Re-registering
// the same resource with the same location is a no-op on the service side.
func (c *Client) SetLink(ctx context.Context, transactionID, linkName, location string) error {
	body := map[string]interface{}{
		"resources": map[string]interface{}{
			linkName: map[string]interface{}{
				"kind":  "company-accounts",
				"links": map[string]string{"resource": location},
			},
		},
	}
	if err := c.patch(ctx, transactionID, body); err != nil {
		return c.mapError("register resource on transaction", transactionID, err)
	}
	return nil
}

// UnsetLink removes a resource registration from the transaction envelope
func (c *Client) UnsetLink(ctx context.Context, transactionID, linkName string) error {
	body := map[string]interface{}{
		"resources": map[string]interface{}{
			linkName: nil,
		},
	}
	if err := c.patch(ctx, transactionID, body); err != nil {
		return c.mapError("remove resource from transaction", transactionID, err)
	}
	return nil
}

func (c *Client) patch(ctx context.Context, transactionID string, body map[string]interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode transaction patch: %w", err)
	}

	return resilience.Retry(ctx, c.retry, func() error {
		_, err := c.breaker.Execute(ctx, func() (interface{}, error) {
			url := fmt.Sprintf("%s/transactions/%s", c.baseURL, transactionID)

			req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(payload))
			if err != nil {
				return nil, fmt.Errorf("failed to create request: %w", err)
			}
			req.Header.Set("Content-Type", "application/json")

			resp, err := c.httpClient.Do(req)
			if err != nil {
				return nil, &retryableError{fmt.Errorf("failed to patch transaction: %w", err)}
			}
			defer resp.Body.Close()

			if resp.StatusCode == http.StatusNotFound {
				return nil, errors.ErrNotFoundWithID("transaction", transactionID)
			}
			if resp.StatusCode >= http.StatusInternalServerError {
				return nil, &retryableError{fmt.Errorf("transaction service returned status %d", resp.StatusCode)}
			}
			if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
				return nil, fmt.Errorf("transaction service returned status %d", resp.StatusCode)
			}
			return nil, nil
		})
		return err
	})
}

// mapError converts client failures into the error taxonomy the handlers
// understand. Not-found passes through; everything else is an upstream fault.
func (c *Client) mapError(operation, transactionID string, err error) error {
	if appErr, ok := errors.AsAppError(err); ok && appErr.Code == errors.CodeNotFound {
		return appErr
	}
	c.logger.WithError(err).Error("transaction service call failed",
		"operation", operation, "transactionId", transactionID)
	return errors.ErrDataException(operation, err)
}
