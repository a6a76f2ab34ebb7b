package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filings-platform/accounts-service/internal/application"
	"github.com/filings-platform/accounts-service/internal/domain"
	"github.com/filings-platform/accounts-service/internal/registry"
	"github.com/filings-platform/accounts-service/pkg/logging"
	"github.com/filings-platform/accounts-service/pkg/mongodb"
)

func testLogger() *logging.Logger {
	return logging.New(&logging.Config{
		Level:       logging.LevelError,
		ServiceName: "test",
		Output:      io.Discard,
	})
}

type memAdapter struct {
	docs map[string]domain.StorageDocument
}

func newMemAdapter() *memAdapter {
	return &memAdapter{docs: make(map[string]domain.StorageDocument)}
}

func (a *memAdapter) Insert(ctx context.Context, doc domain.StorageDocument) error {
	if _, exists := a.docs[doc.DocID()]; exists {
		return domain.ErrDuplicateKey
	}
	a.docs[doc.DocID()] = doc
	return nil
}

func (a *memAdapter) FindByID(ctx context.Context, id string) (domain.StorageDocument, error) {
	doc, ok := a.docs[id]
	if !ok {
		return nil, nil
	}
	return doc, nil
}

func (a *memAdapter) Replace(ctx context.Context, doc domain.StorageDocument) (bool, error) {
	if _, ok := a.docs[doc.DocID()]; !ok {
		return false, nil
	}
	a.docs[doc.DocID()] = doc
	return true, nil
}

func (a *memAdapter) DeleteByID(ctx context.Context, id string) (bool, error) {
	if _, ok := a.docs[id]; !ok {
		return false, nil
	}
	delete(a.docs, id)
	return true, nil
}

// memLinkStore mutates links on a stored parent document, mirroring the real
// topology where children are linked on their parent's data sub-object. A
// link write against a missing parent fails the same way the mongo store
// does.
type memLinkStore struct {
	adapter *memAdapter
	docID   func(parentID string) string
}

func (s *memLinkStore) SetLink(ctx context.Context, parentID, linkName, location string) error {
	doc, ok := s.adapter.docs[s.docID(parentID)]
	if !ok {
		return domain.ErrNoParentDocument
	}
	meta := doc.DataMeta()
	if meta.Links == nil {
		meta.Links = domain.Links{}
	}
	meta.Links[linkName] = location
	return nil
}

func (s *memLinkStore) UnsetLink(ctx context.Context, parentID, linkName string) error {
	doc, ok := s.adapter.docs[s.docID(parentID)]
	if !ok {
		return domain.ErrNoParentDocument
	}
	delete(doc.DataMeta().Links, linkName)
	return nil
}

type noopLinkStore struct{}

func (noopLinkStore) SetLink(ctx context.Context, parentID, linkName, location string) error {
	return nil
}
func (noopLinkStore) UnsetLink(ctx context.Context, parentID, linkName string) error { return nil }

type stubTransactions struct {
	tx *domain.Transaction
}

func (s *stubTransactions) Get(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return s.tx, nil
}

// newTestRouter wires the full route tree over in-memory storage
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := testLogger()
	adapters := make(map[domain.ResourceKind]*memAdapter)
	reg := registry.New()
	for _, kind := range domain.AllKinds() {
		adapter := newMemAdapter()
		adapters[kind] = adapter
		transformer, ok := application.TransformerFor(kind)
		require.True(t, ok, "missing transformer for %s", kind)
		reg.RegisterAdapter(kind, adapter)
		reg.RegisterTransformer(kind, transformer)
	}
	reg.Seal()

	companyAccountLinks := &memLinkStore{
		adapter: adapters[domain.KindCompanyAccount],
		docID:   func(parentID string) string { return parentID },
	}
	smallFullLinks := &memLinkStore{
		adapter: adapters[domain.KindSmallFull],
		docID: func(parentID string) string {
			return mongodb.GenerateDeterministicID(parentID, domain.KindSmallFull.PathSegment())
		},
	}

	services := make(map[domain.ResourceKind]*application.ResourceService)
	for _, kind := range domain.AllKinds() {
		transformer, _ := application.TransformerFor(kind)
		var parents domain.ParentLinkStore
		switch kind {
		case domain.KindCompanyAccount:
			parents = noopLinkStore{}
		case domain.KindSmallFull:
			parents = companyAccountLinks
		default:
			parents = smallFullLinks
		}
		services[kind] = application.NewResourceService(kind, adapters[kind], transformer, parents, nil, logger, nil)
	}

	transactions := &stubTransactions{tx: &domain.Transaction{
		ID:        testTransactionID,
		Status:    domain.TransactionStatusOpen,
		FilerType: domain.FilerTypeSingleYear,
	}}
	closureService := application.NewClosureService(reg, transactions, nil, logger, nil)

	router := gin.New()
	accounts := router.Group("/transactions/:transactionId/company-accounts")
	NewCompanyAccountHandlers(services[domain.KindCompanyAccount], logger).RegisterRoutes(accounts)
	NewClosureHandlers(closureService, logger).RegisterRoutes(accounts)

	smallFull := accounts.Group("/:companyAccountId/small-full")
	NewSmallFullHandlers(services[domain.KindSmallFull], logger).RegisterRoutes(smallFull)
	NewPeriodHandlers(services[domain.KindCurrentPeriod], logger).RegisterRoutes(smallFull.Group("/current-period"))
	NewPeriodHandlers(services[domain.KindPreviousPeriod], logger).RegisterRoutes(smallFull.Group("/previous-period"))

	noteServices := make(map[domain.ResourceKind]*application.ResourceService)
	for _, kind := range domain.NoteKinds() {
		noteServices[kind] = services[kind]
	}
	NewNoteHandlers(noteServices, logger).RegisterRoutes(smallFull)

	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

const testTransactionID = "111111-222222-333333"

func accountsBase() string {
	return "/transactions/" + testTransactionID + "/company-accounts"
}

func companyAccountID() string {
	return mongodb.GenerateDeterministicID(testTransactionID, domain.KindCompanyAccount.PathSegment())
}

func smallFullBase() string {
	return accountsBase() + "/" + companyAccountID() + "/small-full"
}

// createFiling creates the company account and small-full aggregates the
// nested resources hang off
func createFiling(t *testing.T, router *gin.Engine) {
	t.Helper()
	require.Equal(t, http.StatusCreated, doRequest(router, http.MethodPost, accountsBase(), "{}").Code)
	require.Equal(t, http.StatusCreated, doRequest(router, http.MethodPost, smallFullBase(), "{}").Code)
}

func TestCreateCompanyAccount(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, accountsBase(), "{}")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["etag"])
	assert.Equal(t, string(domain.KindCompanyAccount), body["kind"])

	links, ok := body["links"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, links["self"], accountsBase()+"/")
}

func TestCreateCompanyAccountTwiceConflicts(t *testing.T) {
	router := newTestRouter(t)

	first := doRequest(router, http.MethodPost, accountsBase(), "{}")
	require.Equal(t, http.StatusCreated, first.Code)

	second := doRequest(router, http.MethodPost, accountsBase(), "{}")
	assert.Equal(t, http.StatusConflict, second.Code, second.Body.String())
}

func TestGetCompanyAccountNotFound(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, accountsBase()+"/"+companyAccountID(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteCompanyAccountIsIdempotent(t *testing.T) {
	router := newTestRouter(t)

	require.Equal(t, http.StatusCreated,
		doRequest(router, http.MethodPost, accountsBase(), "{}").Code)

	path := accountsBase() + "/" + companyAccountID()
	assert.Equal(t, http.StatusNoContent, doRequest(router, http.MethodDelete, path, "").Code)
	assert.Equal(t, http.StatusNotFound, doRequest(router, http.MethodDelete, path, "").Code)
}

func TestMalformedBodyIsBadRequest(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, accountsBase(), "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInvalidTransactionIDIsBadRequest(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/transactions/tx-1/company-accounts", "{}")
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION_ERROR", body["code"])

	details, ok := body["details"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, details, "transaction_id")
}

func TestCreateNoteWithoutParentAggregateFails(t *testing.T) {
	router := newTestRouter(t)

	// the small-full aggregate the note would be linked on was never created
	w := doRequest(router, http.MethodPost, smallFullBase()+"/notes/stocks",
		`{"current_period":{"stocks":50,"total":50}}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code, w.Body.String())
}

func TestCreateNoteFailsValidation(t *testing.T) {
	router := newTestRouter(t)
	createFiling(t, router)

	// breakdown disagrees with the stated total
	body := `{"current_period":{"stocks":50,"total":60}}`
	w := doRequest(router, http.MethodPost, smallFullBase()+"/notes/stocks", body)
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	var resp ValidationErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Errors)
	assert.Equal(t, "incorrectTotal", resp.Errors[0].MessageKey)
	assert.Equal(t, "$.small_full.notes.stocks.current_period.total", resp.Errors[0].Location)

	// nothing was persisted
	assert.Equal(t, http.StatusNotFound, doRequest(router, http.MethodGet, smallFullBase()+"/notes/stocks", "").Code)
}

func TestNoteLifecycle(t *testing.T) {
	router := newTestRouter(t)
	createFiling(t, router)
	path := smallFullBase() + "/notes/stocks"

	created := doRequest(router, http.MethodPost, path, `{"current_period":{"stocks":50,"total":50}}`)
	require.Equal(t, http.StatusCreated, created.Code, created.Body.String())

	got := doRequest(router, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, got.Code)

	updated := doRequest(router, http.MethodPut, path, `{"current_period":{"stocks":75,"total":75}}`)
	require.Equal(t, http.StatusOK, updated.Code, updated.Body.String())

	var note domain.StocksNote
	require.NoError(t, json.Unmarshal(updated.Body.Bytes(), &note))
	require.NotNil(t, note.CurrentPeriod)
	require.NotNil(t, note.CurrentPeriod.Stocks)
	assert.EqualValues(t, 75, *note.CurrentPeriod.Stocks)

	assert.Equal(t, http.StatusNoContent, doRequest(router, http.MethodDelete, path, "").Code)
	assert.Equal(t, http.StatusNotFound, doRequest(router, http.MethodGet, path, "").Code)
}

func TestUpdateAbsentNoteIsNotFound(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPut, smallFullBase()+"/notes/employees",
		`{"current_period":{"average_number_of_employees":4}}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUnknownNoteTypeIsNotFound(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, smallFullBase()+"/notes/directors-report", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreatePeriodRequiresBalanceSheet(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, smallFullBase()+"/current-period", "{}")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp ValidationErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Errors)
	assert.Equal(t, "mandatoryElementMissing", resp.Errors[0].MessageKey)
	assert.Equal(t, "$.small_full.current_period.balance_sheet", resp.Errors[0].Location)
}

func TestClosureValidateAbsentAccount(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet,
		accountsBase()+"/"+companyAccountID()+"/validate", "")
	assert.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
}

func TestClosureValidateEndToEnd(t *testing.T) {
	router := newTestRouter(t)
	validatePath := accountsBase() + "/" + companyAccountID() + "/validate"

	require.Equal(t, http.StatusCreated,
		doRequest(router, http.MethodPost, accountsBase(), "{}").Code)

	// no small-full aggregate: nothing for the engine to check
	w := doRequest(router, http.MethodGet, validatePath, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp ClosureCheckResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsValid)

	require.Equal(t, http.StatusCreated,
		doRequest(router, http.MethodPost, smallFullBase(), "{}").Code)

	// small-full present but no current period yet
	w = doRequest(router, http.MethodGet, validatePath, "")
	require.Equal(t, http.StatusOK, w.Code)
	resp = ClosureCheckResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.False(t, resp.IsValid)
	require.NotEmpty(t, resp.Errors)
	assert.Equal(t, "$.small_full.current_period", resp.Errors[0].Location)

	period := `{"balance_sheet":{"capital_and_reserves":{"called_up_share_capital":100,"total_shareholders_funds":100}}}`
	require.Equal(t, http.StatusCreated,
		doRequest(router, http.MethodPost, smallFullBase()+"/current-period", period).Code)

	w = doRequest(router, http.MethodGet, validatePath, "")
	require.Equal(t, http.StatusOK, w.Code)
	resp = ClosureCheckResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsValid)
	assert.Empty(t, resp.Errors)
}
