package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/inventory-dashboard/internal/alert"
	"github.com/rogerio-castellano/inventory-dashboard/internal/analytics"
	"github.com/rogerio-castellano/inventory-dashboard/internal/auth"
	api "github.com/rogerio-castellano/inventory-dashboard/internal/http"
	"github.com/rogerio-castellano/inventory-dashboard/internal/http/handlers"
	"github.com/rogerio-castellano/inventory-dashboard/internal/inventory"
	"github.com/rogerio-castellano/inventory-dashboard/internal/metrics"
	"github.com/rogerio-castellano/inventory-dashboard/internal/models"
	"github.com/rogerio-castellano/inventory-dashboard/internal/repo"
)

const testSecret = "test-secret"

type testEnv struct {
	router   http.Handler
	products *repo.InMemoryProductRepository
	issuer   *auth.Issuer
	token    string
}

// newTestEnv wires the full router over in-memory stores with one admin and one staff user.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	products := repo.NewInMemoryProductRepository()
	users := repo.NewInMemoryUserRepository()
	issuer := auth.NewIssuer(testSecret, time.Hour)
	authSvc := auth.NewAuthService(users, issuer)

	ctx := context.Background()
	if _, err := authSvc.CreateUser(ctx, "admin", "secret", models.RoleAdmin); err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	if _, err := authSvc.CreateUser(ctx, "clerk", "secret", models.RoleStaff); err != nil {
		t.Fatalf("seed staff: %v", err)
	}

	m := metrics.New()
	analyticsSvc := analytics.NewService(products, nil, 0, zap.NewNop())
	engine := inventory.NewEngine(products, zap.NewNop(),
		inventory.WithInvalidator(analyticsSvc),
		inventory.WithAlerts(alert.NewMemoryRecorder()),
		inventory.WithMetrics(m),
	)

	router := api.NewRouter(api.Deps{
		Server:  handlers.NewServer(engine, analyticsSvc, authSvc, zap.NewNop(), false),
		Issuer:  issuer,
		Metrics: m,
	})

	env := &testEnv{router: router, products: products, issuer: issuer}
	token, err := env.login("admin", "secret")
	if err != nil {
		t.Fatalf("error generating token: %v", err)
	}
	env.token = token
	return env
}

func (e *testEnv) login(username, password string) (string, error) {
	body, _ := json.Marshal(handlers.CredentialsRequest{Username: username, Password: password})
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		return "", fmt.Errorf("login returned %d", w.Code)
	}
	var resp handlers.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func (e *testEnv) do(method, path string, payload any) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		_ = json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Authorization", "Bearer "+e.token)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) createProduct(t *testing.T, in inventory.CreateInput) models.Product {
	t.Helper()
	w := e.do(http.MethodPost, "/products", in)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
	}
	var p models.Product
	if err := json.NewDecoder(w.Body).Decode(&p); err != nil {
		t.Fatalf("error decoding product: %v", err)
	}
	return p
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) handlers.ErrorResponse {
	t.Helper()
	var resp handlers.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding error response: %v", err)
	}
	return resp
}

func multipartCSV(csvContent string, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, _ := writer.CreateFormFile("file", filename)
	_, _ = part.Write([]byte(csvContent))

	writer.Close()
	return &buf, writer.FormDataContentType()
}
