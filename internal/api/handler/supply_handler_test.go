package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/osmss/inventory-system/internal/core/domain"
	"github.com/osmss/inventory-system/internal/core/ports"
)

// stubSupplyService records calls so tests can assert the handler never
// reaches the service on validation failures.
type stubSupplyService struct {
	updateCalls int
	createCalls int
	item        *domain.Item
	err         error
}

func (s *stubSupplyService) CreateItem(_ context.Context, _ ports.CreateItemInput) (*domain.Item, error) {
	s.createCalls++
	return s.item, s.err
}

func (s *stubSupplyService) UpdateStock(_ context.Context, _ ports.UpdateStockInput) (*domain.Item, error) {
	s.updateCalls++
	return s.item, s.err
}

func (s *stubSupplyService) ListItems(_ context.Context) ([]domain.Item, error) {
	if s.item == nil {
		return nil, s.err
	}
	return []domain.Item{*s.item}, s.err
}

func (s *stubSupplyService) ItemNames(_ context.Context) ([]string, error) {
	return []string{"Staples"}, s.err
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestUpdateStockHandler_MissingReasonRejectedBeforeService(t *testing.T) {
	svc := &stubSupplyService{}
	h := NewSupplyHandler(svc)

	body := `{"pieces": 50, "status": "High", "box": 4, "action": "Stock In", "userID": 7}`
	c, _ := newTestContext(t, http.MethodPut, "/update-item/1", body)
	c.SetParamNames("id")
	c.SetParamValues("1")

	err := h.UpdateStock(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got: %v", err)
	}
	if msg, _ := httpErr.Message.(string); msg != "The reason field is required" {
		t.Errorf("expected first-failing-field message, got %q", msg)
	}
	if svc.updateCalls != 0 {
		t.Errorf("service must not be called on validation failure, got %d calls", svc.updateCalls)
	}
}

func TestUpdateStockHandler_RejectsUnknownAction(t *testing.T) {
	svc := &stubSupplyService{}
	h := NewSupplyHandler(svc)

	body := `{"pieces": 50, "status": "High", "box": 4, "action": "Transfer", "reason": "move", "userID": 7}`
	c, _ := newTestContext(t, http.MethodPut, "/update-item/1", body)
	c.SetParamNames("id")
	c.SetParamValues("1")

	err := h.UpdateStock(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown action, got: %v", err)
	}
	if svc.updateCalls != 0 {
		t.Errorf("service must not be called, got %d calls", svc.updateCalls)
	}
}

func TestUpdateStockHandler_ZeroPiecesIsValid(t *testing.T) {
	svc := &stubSupplyService{item: &domain.Item{ID: 1, Name: "Staples", Status: domain.StatusLow}}
	h := NewSupplyHandler(svc)

	// A present zero must pass the required check.
	body := `{"pieces": 0, "status": "Low", "box": 0, "action": "Stock Out", "reason": "audit", "userID": 7}`
	c, rec := newTestContext(t, http.MethodPut, "/update-item/1", body)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.UpdateStock(c); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if svc.updateCalls != 1 {
		t.Errorf("expected one service call, got %d", svc.updateCalls)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp["message"] != "Item updated successfully" {
		t.Errorf("unexpected message: %v", resp["message"])
	}
}

func TestUpdateStockHandler_NonNumericIDIsNotFound(t *testing.T) {
	svc := &stubSupplyService{}
	h := NewSupplyHandler(svc)

	body := `{"pieces": 50, "status": "High", "box": 4, "action": "Stock In", "reason": "restock", "userID": 7}`
	c, _ := newTestContext(t, http.MethodPut, "/update-item/abc", body)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := h.UpdateStock(c); err != domain.ErrItemNotFound {
		t.Fatalf("expected ErrItemNotFound, got: %v", err)
	}
	if svc.updateCalls != 0 {
		t.Errorf("service must not be called, got %d calls", svc.updateCalls)
	}
}

func TestCreateHandler_MissingNameRejected(t *testing.T) {
	svc := &stubSupplyService{}
	h := NewSupplyHandler(svc)

	body := `{"pieces": 10, "unit": "box", "status": "Low"}`
	c, _ := newTestContext(t, http.MethodPost, "/create-item", body)

	err := h.Create(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got: %v", err)
	}
	if msg, _ := httpErr.Message.(string); msg != "The name field is required" {
		t.Errorf("expected name message, got %q", msg)
	}
	if svc.createCalls != 0 {
		t.Errorf("service must not be called, got %d calls", svc.createCalls)
	}
}

func TestCreateHandler_Success(t *testing.T) {
	svc := &stubSupplyService{item: &domain.Item{ID: 1, Name: "Sticky Notes", Pieces: 25, Status: domain.StatusModerate, Box: 2}}
	h := NewSupplyHandler(svc)

	body := `{"name": "Sticky Notes", "pieces": 25, "unit": "box", "status": "whatever"}`
	c, rec := newTestContext(t, http.MethodPost, "/create-item", body)

	if err := h.Create(c); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Item added successfully") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}
