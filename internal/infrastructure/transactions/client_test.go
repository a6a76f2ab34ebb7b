package transactions

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filings-platform/accounts-service/internal/domain"
	"github.com/filings-platform/accounts-service/pkg/errors"
	"github.com/filings-platform/accounts-service/pkg/logging"
)

func testLogger() *logging.Logger {
	return logging.New(&logging.Config{
		Level:       logging.LevelError,
		ServiceName: "test",
		Output:      io.Discard,
	})
}

func newTestClient(serverURL string) *Client {
	return NewClient(Config{BaseURL: serverURL, Timeout: 2 * time.Second}, testLogger(), nil)
}

func TestGetTransaction(t *testing.T) {
	var requests int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/transactions/tx-1", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(domain.Transaction{
			ID:            "tx-1",
			Status:        domain.TransactionStatusOpen,
			CompanyNumber: "01234567",
			FilerType:     domain.FilerTypeMultiYear,
		})
	}))
	defer server.Close()

	tx, err := newTestClient(server.URL).Get(context.Background(), "tx-1")
	require.NoError(t, err)
	assert.Equal(t, "tx-1", tx.ID)
	assert.Equal(t, "01234567", tx.CompanyNumber)
	assert.Equal(t, domain.TransactionStatusOpen, tx.Status)
	assert.True(t, tx.FilerType.IsMultiYear())
	assert.EqualValues(t, 1, atomic.LoadInt32(&requests))
}

func TestGetTransactionNotFoundIsNotRetried(t *testing.T) {
	var requests int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Get(context.Background(), "tx-missing")
	require.Error(t, err)

	appErr, ok := errors.AsAppError(err)
	require.True(t, ok, "expected an AppError, got %v", err)
	assert.Equal(t, errors.CodeNotFound, appErr.Code)
	assert.EqualValues(t, 1, atomic.LoadInt32(&requests), "definitive responses must not be retried")
}

func TestGetRetriesServerErrors(t *testing.T) {
	var requests int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&requests, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(domain.Transaction{ID: "tx-1", Status: domain.TransactionStatusOpen})
	}))
	defer server.Close()

	tx, err := newTestClient(server.URL).Get(context.Background(), "tx-1")
	require.NoError(t, err)
	assert.Equal(t, "tx-1", tx.ID)
	assert.EqualValues(t, 3, atomic.LoadInt32(&requests))
}

func TestSetLinkPatchesResourceOntoTransaction(t *testing.T) {
	var captured map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/transactions/tx-1", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	location := "/transactions/tx-1/company-accounts/ca-1"
	err := newTestClient(server.URL).SetLink(context.Background(), "tx-1", "company_account", location)
	require.NoError(t, err)

	resources, ok := captured["resources"].(map[string]interface{})
	require.True(t, ok, "expected a resources object, got %v", captured)
	entry, ok := resources["company_account"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "company-accounts", entry["kind"])
	links, ok := entry["links"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, location, links["resource"])
}

func TestUnsetLinkPatchesNullEntry(t *testing.T) {
	var captured map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := newTestClient(server.URL).UnsetLink(context.Background(), "tx-1", "company_account")
	require.NoError(t, err)

	resources, ok := captured["resources"].(map[string]interface{})
	require.True(t, ok)
	value, present := resources["company_account"]
	assert.True(t, present, "the entry must be present so the service clears it")
	assert.Nil(t, value)
}

func TestSetLinkNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	err := newTestClient(server.URL).SetLink(context.Background(), "tx-gone", "company_account", "/x")
	require.Error(t, err)

	appErr, ok := errors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, errors.CodeNotFound, appErr.Code)
}

func TestTransportFailureIsDataException(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // all requests now fail at the transport level

	_, err := newTestClient(server.URL).Get(context.Background(), "tx-1")
	require.Error(t, err)

	appErr, ok := errors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, errors.CodeDataException, appErr.Code)
}
