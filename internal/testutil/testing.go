package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"curiona-admin/internal/config"
	"curiona-admin/internal/middlewares"
	"curiona-admin/internal/mocks"
	"curiona-admin/internal/models"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"
)

// TestContext holds everything needed for testing
type TestContext struct {
	AppContext     *middlewares.AppContext
	Request        *http.Request
	Response       *httptest.ResponseRecorder
	MockController *gomock.Controller
	MockCache      *mocks.MockCacheProvider
	MockSession    *mocks.MockSessionProvider
	MockHandshake  *mocks.MockHandshakeProvider
	MockOAuth      *mocks.MockOAuthProvider
	MockAuthClient *mocks.MockAuthClient
	MockAdmin      *mocks.MockAdminGateway
	LogHandler     *TestLogHandler
}

// NewTestContext creates a test context with every provider mocked and no request.
func NewTestContext(t *testing.T) *TestContext {
	tc := newTestContext(t)
	tc.AppContext.Context = context.Background()
	return tc
}

// NewTestContextWithURL creates a complete test setup with sensible defaults
func NewTestContextWithURL(t *testing.T, method, url string) *TestContext {
	tc := newTestContext(t)
	tc.WithRequest(httptest.NewRequest(method, url, nil))
	return tc
}

func newTestContext(t *testing.T) *TestContext {
	cfg := &config.Config{
		Sessions: config.DefaultSessionConfig,
	}

	logHandler := NewTestLogHandler()
	logger := slog.New(logHandler)

	ctrl := gomock.NewController(t)

	mockCache := mocks.NewMockCacheProvider(ctrl)
	mockSession := mocks.NewMockSessionProvider(ctrl)
	mockHandshake := mocks.NewMockHandshakeProvider(ctrl)
	mockOAuth := mocks.NewMockOAuthProvider(ctrl)
	mockAuthClient := mocks.NewMockAuthClient(ctrl)
	mockAdmin := mocks.NewMockAdminGateway(ctrl)

	rr := httptest.NewRecorder()

	appCtx := &middlewares.AppContext{
		Config:        cfg,
		Logger:        logger,
		Sessions:      mockSession,
		Handshake:     mockHandshake,
		OAuthProvider: mockOAuth,
		AuthClient:    mockAuthClient,
		Admin:         mockAdmin,
		Cache:         mockCache,
		Response:      rr,
	}

	return &TestContext{
		AppContext:     appCtx,
		Response:       rr,
		MockController: ctrl,
		MockCache:      mockCache,
		MockSession:    mockSession,
		MockHandshake:  mockHandshake,
		MockOAuth:      mockOAuth,
		MockAuthClient: mockAuthClient,
		MockAdmin:      mockAdmin,
		LogHandler:     logHandler,
	}
}

// Finish should be called at the end of tests to clean up mocks
func (tc *TestContext) Finish() {
	if tc.MockController != nil {
		tc.MockController.Finish()
	}
}

func (tc *TestContext) AssertLogContains(t *testing.T, level slog.Level, message string) {
	t.Helper()
	if !tc.LogHandler.ContainsMessage(level, message) {
		t.Errorf("Expected to find log entry with level %v containing message: %s", level, message)
	}
}

func (tc *TestContext) AssertLogCount(t *testing.T, level slog.Level, expectedCount int) {
	t.Helper()
	count := tc.LogHandler.CountByLevel(level)
	if count != expectedCount {
		t.Errorf("Expected %d log entries at level %v, got %d", expectedCount, level, count)
	}
}

func (tc *TestContext) GetLogRecords() []TestLogRecord {
	return tc.LogHandler.GetRecords()
}

// CallHandler executes a handler with the test context
func (tc *TestContext) CallHandler(handler middlewares.AppHandler) {
	handler(tc.AppContext)
}

// AssertStatus checks the HTTP status code
func (tc *TestContext) AssertStatus(t *testing.T, expectedStatus int) {
	t.Helper()
	if tc.Response.Code != expectedStatus {
		t.Errorf("Expected status %d, got %d (body: %s)", expectedStatus, tc.Response.Code, tc.Response.Body.String())
	}
}

// AssertContentType checks the content type header
func (tc *TestContext) AssertContentType(t *testing.T, expectedType string) {
	t.Helper()
	if ct := tc.Response.Header().Get("Content-Type"); ct != expectedType {
		t.Errorf("Expected content type %s, got %s", expectedType, ct)
	}
}

// GetJSONResponse parses the response body as JSON
func (tc *TestContext) GetJSONResponse(t *testing.T) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	if err := json.Unmarshal(tc.Response.Body.Bytes(), &response); err != nil {
		t.Fatalf("Could not parse JSON response: %v", err)
	}
	return response
}

// DecodeJSONResponse decodes the response body into v.
func (tc *TestContext) DecodeJSONResponse(t *testing.T, v any) {
	t.Helper()
	if err := json.Unmarshal(tc.Response.Body.Bytes(), v); err != nil {
		t.Fatalf("Could not decode JSON response: %v", err)
	}
}

// AssertJSONField checks a specific field in a JSON response
func (tc *TestContext) AssertJSONField(t *testing.T, field string, expected any) {
	t.Helper()
	response := tc.GetJSONResponse(t)
	if actual, ok := response[field]; !ok || actual != expected {
		t.Errorf("Expected %s to be %v, got %v", field, expected, response[field])
	}
}

func (tc *TestContext) AssertJSONBool(t *testing.T, field string, expected bool) {
	t.Helper()
	response := tc.GetJSONResponse(t)
	actual, exists := response[field]

	if !exists {
		t.Errorf("Field %s not found in response", field)
		return
	}

	actualBool, ok := actual.(bool)
	if !ok {
		t.Errorf("Expected %s to be a boolean, got %T", field, actual)
		return
	}

	if actualBool != expected {
		t.Errorf("Expected %s to be %v, got %v", field, expected, actualBool)
	}
}

// AssertJSONObject validates an object field with expected key-value pairs
func (tc *TestContext) AssertJSONObject(t *testing.T, field string, expectedFields map[string]interface{}) {
	t.Helper()
	response := tc.GetJSONResponse(t)
	actual, exists := response[field]

	if !exists {
		t.Errorf("Field %s not found in response", field)
		return
	}

	actualObj, ok := actual.(map[string]interface{})
	if !ok {
		t.Errorf("Expected %s to be an object, got %T", field, actual)
		return
	}

	for key, expectedValue := range expectedFields {
		if actualValue, keyExists := actualObj[key]; !keyExists {
			t.Errorf("Expected field %s.%s to exist", field, key)
		} else if actualValue != expectedValue {
			t.Errorf("Expected %s.%s to be %v, got %v", field, key, expectedValue, actualValue)
		}
	}
}

// AssertCookie checks that the response set cookie name and returns it.
func (tc *TestContext) AssertCookie(t *testing.T, name string) *http.Cookie {
	t.Helper()
	for _, cookie := range tc.Response.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	t.Errorf("Expected response to set cookie %s", name)
	return nil
}

// WithConfig allows you to override the default config for specific tests
func (tc *TestContext) WithConfig(cfg *config.Config) *TestContext {
	tc.AppContext.Config = cfg
	return tc
}

// WithLogger allows you to override the default logger for specific tests
func (tc *TestContext) WithLogger(logger *slog.Logger) *TestContext {
	tc.AppContext.Logger = logger
	return tc
}

// WithSessionManager allows you to override the session store with a different mock or implementation
func (tc *TestContext) WithSessionManager(sm middlewares.SessionProvider) *TestContext {
	tc.AppContext.Sessions = sm
	return tc
}

// WithSession marks the request as signed in.
func (tc *TestContext) WithSession(s *models.Session) *TestContext {
	tc.AppContext.Session = s
	return tc
}

// TestSession returns a signed in session whose access token is valid for an hour.
func TestSession(userID int64, token string) *models.Session {
	return &models.Session{
		User: models.User{
			ID:       userID,
			Email:    "admin@curiona.test",
			Name:     "Admin",
			JoinedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		Tokens: models.Tokens{
			AccessToken:          token,
			AccessTokenExpiresAt: time.Now().Add(time.Hour),
		},
	}
}

// Helper to add query parameters to the request
func (tc *TestContext) WithQueryParam(key, value string) *TestContext {
	q := tc.Request.URL.Query()
	q.Add(key, value)
	tc.Request.URL.RawQuery = q.Encode()
	return tc
}

// Helper to add headers
func (tc *TestContext) WithHeader(key, value string) *TestContext {
	tc.Request.Header.Set(key, value)
	return tc
}

// WithURLParam sets a chi route parameter on the request.
func (tc *TestContext) WithURLParam(key, value string) *TestContext {
	rctx := chi.RouteContext(tc.Request.Context())
	if rctx == nil {
		rctx = chi.NewRouteContext()
		tc.WithRequest(tc.Request.WithContext(context.WithValue(tc.Request.Context(), chi.RouteCtxKey, rctx)))
	}
	rctx.URLParams.Add(key, value)
	return tc
}

// WithJSONBody replaces the request body with the JSON encoding of body.
func (tc *TestContext) WithJSONBody(t *testing.T, body any) *TestContext {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Could not marshal request body: %v", err)
	}

	req := httptest.NewRequest(tc.Request.Method, tc.Request.URL.String(), bytes.NewReader(data))
	req.Header = tc.Request.Header.Clone()
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = tc.Request.RemoteAddr
	return tc.WithRequest(req.WithContext(tc.Request.Context()))
}

// WithRequest allows you to set a custom request (useful for tests that don't use URL constructor)
func (tc *TestContext) WithRequest(req *http.Request) *TestContext {
	tc.Request = req
	tc.AppContext.Request = req
	tc.AppContext.Context = req.Context()
	return tc
}

// ExpectCacheIncrement sets up an expectation for cache.Increment()
func (tc *TestContext) ExpectCacheIncrement(key string, window time.Duration, count int64, ttl time.Duration, err error) *gomock.Call {
	return tc.MockCache.EXPECT().Increment(gomock.Any(), key, window).Return(count, ttl, err)
}
