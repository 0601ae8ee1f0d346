package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	inventoryEntity "supplysense/model/entity/inventory"
	"supplysense/model/testdb"
)

func testServer(t *testing.T) *echo.Echo {
	t.Helper()
	t.Setenv("AUTH_TYPE", "basic")
	t.Setenv("API_USER", "planner")
	t.Setenv("API_PASS", "secret")
	db := testdb.Open(t)
	db.Create(&inventoryEntity.InventoryRecord{Item: "Oil", Warehouse: "main", OnHand: 900, Safety: 100})
	return NewServer(db)
}

func TestHealth(t *testing.T) {
	e := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /health status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" || body["db"] != "ok" {
		t.Errorf("health = %v", body)
	}
	if rec.Header().Get("X-Request-Duration-ms") == "" {
		t.Error("missing X-Request-Duration-ms header")
	}
}

func TestAPIRequiresAuth(t *testing.T) {
	e := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/balance", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("without credentials status = %d, want 401", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/balance", nil)
	req.SetBasicAuth("planner", "secret")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("with credentials status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var rep struct {
		Rows []struct {
			Item   string `json:"item"`
			Action string `json:"action"`
		} `json:"rows"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &rep); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rep.Rows) != 1 || rep.Rows[0].Action != "reduce_batch" {
		t.Errorf("rows = %+v", rep.Rows)
	}
}

func TestGraphQLIsPublic(t *testing.T) {
	e := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/playground", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("GET /playground status = %d, want 200", rec.Code)
	}
}

func TestRateLimiter(t *testing.T) {
	e := echo.New()
	e.Use(rateLimiter(1))
	e.GET("/x", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	codes := map[int]int{}
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		codes[rec.Code]++
	}
	if codes[http.StatusTooManyRequests] == 0 {
		t.Errorf("codes = %v, want some 429", codes)
	}
}
