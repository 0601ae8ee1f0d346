package inventory

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	inventoryEntity "supplysense/model/entity/inventory"
	"supplysense/model/testdb"
)

func send(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestInventoryImportAndList(t *testing.T) {
	e := echo.New()
	RegisterInventoryRoutes(e.Group("/api"), testdb.Open(t))

	rec := send(e, http.MethodPost, "/api/inventory/import",
		`{"items":[{"Product":"Milk","Stock":40,"warehouse":"chennai","shelf":"A1"},{"item":"Rice","on_hand":"12"}]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("import status = %d, body %s", rec.Code, rec.Body.String())
	}
	var res struct {
		Imported int      `json:"imported"`
		Warnings []string `json:"warnings"`
	}
	json.Unmarshal(rec.Body.Bytes(), &res)
	if res.Imported != 2 || len(res.Warnings) != 1 {
		t.Errorf("result = %+v", res)
	}
	if rec.Header().Get("X-Request-Duration-ms") == "" {
		t.Error("missing duration header")
	}

	rec = send(e, http.MethodGet, "/api/inventory", "")
	var rows []inventoryEntity.InventoryRecord
	json.Unmarshal(rec.Body.Bytes(), &rows)
	if len(rows) != 2 || rows[0].OnHand != 40 || rows[1].Warehouse != "main" {
		t.Errorf("rows = %+v", rows)
	}
}

func TestGenericImport(t *testing.T) {
	e := echo.New()
	RegisterInventoryRoutes(e.Group("/api"), testdb.Open(t))

	rec := send(e, http.MethodPost, "/api/import/supply_pool", `{"items":[{"source":"ABC","item":"Milk","available_qty":30}]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	rec = send(e, http.MethodGet, "/api/inventory/pool?item=Milk", "")
	var pool []inventoryEntity.SupplyPoolEntry
	json.Unmarshal(rec.Body.Bytes(), &pool)
	if len(pool) != 1 || pool[0].AvailableQty != 30 {
		t.Errorf("pool = %+v", pool)
	}

	if rec := send(e, http.MethodPost, "/api/import/users", `{"items":[{"a":1}]}`); rec.Code != http.StatusBadRequest {
		t.Errorf("unknown table = %d, want 400", rec.Code)
	}
	if rec := send(e, http.MethodPost, "/api/inventory/import", `{"items":[]}`); rec.Code != http.StatusBadRequest {
		t.Errorf("empty items = %d, want 400", rec.Code)
	}
}
