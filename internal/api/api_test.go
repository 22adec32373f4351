package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dokonepal/doko/internal/auth"
	"github.com/dokonepal/doko/internal/kvstore"
	"github.com/dokonepal/doko/internal/models"
	"github.com/dokonepal/doko/internal/service"
	"github.com/dokonepal/doko/internal/store"
	"github.com/dokonepal/doko/internal/testutil"
	"github.com/dokonepal/doko/internal/timeline"
)

// testEnv sets up an in-memory store, SQLite index, service, and router.
// authEnabled=false means open mode.
func testEnv(t *testing.T, authEnabled bool) (*service.Service, http.Handler) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mem := kvstore.NewMemory()
	db := testutil.TestDB(t)

	st := store.New(mem, logger)
	sched := timeline.NewSchedule(timeline.DefaultWindowStart, timeline.DefaultWindowEnd)
	mgr := auth.NewManager(mem, logger, 30*time.Minute)
	svc := service.New(st, db, sched, mgr, nil, logger)
	if err := st.Load(); err != nil {
		t.Fatal(err)
	}
	svc.ReindexActivity()

	return svc, NewRouter(svc, authEnabled, "test", nil)
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListGroceries_Seed(t *testing.T) {
	_, router := testEnv(t, false)

	w := doJSON(t, router, http.MethodGet, "/groceries", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp GroceryListResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Total != 8 {
		t.Errorf("total = %d, want seed 8", resp.Total)
	}
}

func TestListGroceries_SearchAndCategory(t *testing.T) {
	_, router := testEnv(t, false)

	w := doJSON(t, router, http.MethodGet, "/groceries?q=basmati", nil, "")
	var resp GroceryListResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Total != 1 || resp.Groceries[0].Name != "Organic Basmati Rice" {
		t.Errorf("search = %+v", resp)
	}

	w = doJSON(t, router, http.MethodGet, "/groceries?category=Vegetables", nil, "")
	resp = GroceryListResponse{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Total != 2 {
		t.Errorf("category filter total = %d, want 2", resp.Total)
	}
}

func TestCreateAndGetGrocery(t *testing.T) {
	_, router := testEnv(t, false)

	body := map[string]any{
		"name": "Paneer", "category": "Dairy", "price": 250, "quantity": 10, "unit": "kg",
	}
	w := doJSON(t, router, http.MethodPost, "/groceries", body, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", w.Code, w.Body.String())
	}
	var created models.Grocery
	_ = json.Unmarshal(w.Body.Bytes(), &created)
	if created.ID == "" {
		t.Fatal("no id assigned")
	}

	w = doJSON(t, router, http.MethodGet, "/groceries/"+created.ID, nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}
	var got models.Grocery
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if got.Name != "Paneer" {
		t.Errorf("name = %q", got.Name)
	}
}

func TestCreateGrocery_Invalid(t *testing.T) {
	_, router := testEnv(t, false)

	w := doJSON(t, router, http.MethodPost, "/groceries", map[string]any{"category": "Dairy"}, "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing name status = %d, want 400", w.Code)
	}

	w = doJSON(t, router, http.MethodPost, "/groceries", map[string]any{"name": "X", "category": "Dairy", "price": -5}, "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("negative price status = %d, want 400", w.Code)
	}
}

func TestUpdateGrocery_NotFound(t *testing.T) {
	_, router := testEnv(t, false)
	body := map[string]any{"name": "X", "category": "Dairy"}
	w := doJSON(t, router, http.MethodPut, "/groceries/ghost", body, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestDeleteGrocery_UnknownID(t *testing.T) {
	_, router := testEnv(t, false)
	w := doJSON(t, router, http.MethodDelete, "/groceries/ghost", nil, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestWireframeViewRecordsActivity(t *testing.T) {
	svc, router := testEnv(t, false)

	records := svc.Store.Wireframes()
	w := doJSON(t, router, http.MethodGet, "/wireframes/"+records[0].ID, nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	recent := svc.Store.RecentActivity(1)
	if recent[0].Kind != models.ActivityWireframeViewed {
		t.Errorf("latest activity = %q, want wireframe_viewed", recent[0].Kind)
	}
}

func TestDashboardEndpoint(t *testing.T) {
	_, router := testEnv(t, false)

	w := doJSON(t, router, http.MethodGet, "/stats/dashboard", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var d Dashboard
	_ = json.Unmarshal(w.Body.Bytes(), &d)
	if d.Groceries.TotalItems != 8 || d.Wireframes.TotalWireframes != 3 {
		t.Errorf("dashboard = %+v", d)
	}
}

func TestTimelineEndpoint(t *testing.T) {
	_, router := testEnv(t, false)

	w := doJSON(t, router, http.MethodGet, "/timeline?today=2025-07-11", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var layout timeline.Layout
	_ = json.Unmarshal(w.Body.Bytes(), &layout)
	if layout.TotalDays != 98 {
		t.Errorf("TotalDays = %d, want 98", layout.TotalDays)
	}
	if len(layout.Phases) != 6 {
		t.Errorf("phases = %d, want 6", len(layout.Phases))
	}

	w = doJSON(t, router, http.MethodGet, "/timeline?today=bogus", nil, "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad date status = %d, want 400", w.Code)
	}
}

func TestAppendAndResetTimeline(t *testing.T) {
	_, router := testEnv(t, false)

	body := AppendTaskRequest{Name: "Security Review", Start: "2025-08-10", End: "2025-08-17", Priority: "high", Assignee: "Team"}
	w := doJSON(t, router, http.MethodPost, "/timeline/tasks", body, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("append status = %d, body = %s", w.Code, w.Body.String())
	}
	var task models.Task
	_ = json.Unmarshal(w.Body.Bytes(), &task)
	if task.ID != 18 {
		t.Errorf("id = %d, want 18", task.ID)
	}

	// End before start is rejected.
	body = AppendTaskRequest{Name: "Backwards", Start: "2025-08-17", End: "2025-08-10"}
	w = doJSON(t, router, http.MethodPost, "/timeline/tasks", body, "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("backwards dates status = %d, want 400", w.Code)
	}

	w = doJSON(t, router, http.MethodPost, "/timeline/reset", nil, "")
	if w.Code != http.StatusNoContent {
		t.Errorf("reset status = %d, want 204", w.Code)
	}
}

func TestActivityEndpoints(t *testing.T) {
	_, router := testEnv(t, false)

	w := doJSON(t, router, http.MethodGet, "/activity?limit=2", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp ActivityResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if len(resp.Activity) != 2 {
		t.Errorf("activity = %d entries, want 2", len(resp.Activity))
	}

	// Seed activity is mirrored into the index and searchable.
	w = doJSON(t, router, http.MethodGet, "/activity/search?q=basmati", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("search status = %d", w.Code)
	}
	resp = ActivityResponse{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if len(resp.Activity) != 1 {
		t.Errorf("search = %d entries, want 1", len(resp.Activity))
	}
}

func TestExportEndpoint(t *testing.T) {
	_, router := testEnv(t, false)

	w := doJSON(t, router, http.MethodGet, "/export", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var doc service.ExportDocument
	_ = json.Unmarshal(w.Body.Bytes(), &doc)
	if doc.Metadata.Exporter != "anonymous" {
		t.Errorf("exporter = %q, want anonymous in open mode", doc.Metadata.Exporter)
	}
	if len(doc.Groceries) != 8 {
		t.Errorf("groceries = %d, want 8", len(doc.Groceries))
	}
}

func TestAuthFlow(t *testing.T) {
	_, router := testEnv(t, true)

	// No token: rejected.
	w := doJSON(t, router, http.MethodGet, "/groceries", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated status = %d, want 401", w.Code)
	}

	// Bad credentials: rejected.
	w = doJSON(t, router, http.MethodPost, "/auth/login", LoginRequest{Username: "demo", Password: "wrong"}, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad login status = %d, want 401", w.Code)
	}

	// Login as a regular user.
	w = doJSON(t, router, http.MethodPost, "/auth/login", LoginRequest{Username: "demo", Password: "demo123"}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, body = %s", w.Code, w.Body.String())
	}
	var sess LoginResponse
	_ = json.Unmarshal(w.Body.Bytes(), &sess)
	if sess.Role != auth.RoleUser {
		t.Errorf("role = %q, want user", sess.Role)
	}

	// Reads work with the token.
	w = doJSON(t, router, http.MethodGet, "/groceries", nil, sess.Token)
	if w.Code != http.StatusOK {
		t.Errorf("authenticated read = %d, want 200", w.Code)
	}

	// Grocery mutations need the admin role.
	body := map[string]any{"name": "Paneer", "category": "Dairy", "price": 250, "quantity": 10}
	w = doJSON(t, router, http.MethodPost, "/groceries", body, sess.Token)
	if w.Code != http.StatusForbidden {
		t.Errorf("non-admin create = %d, want 403", w.Code)
	}

	// Admin can mutate.
	w = doJSON(t, router, http.MethodPost, "/auth/login", LoginRequest{Username: "admin", Password: "admin123"}, "")
	if w.Code != http.StatusOK {
		t.Fatal("admin login failed")
	}
	var adminSess LoginResponse
	_ = json.Unmarshal(w.Body.Bytes(), &adminSess)
	w = doJSON(t, router, http.MethodPost, "/groceries", body, adminSess.Token)
	if w.Code != http.StatusCreated {
		t.Errorf("admin create = %d, want 201, body = %s", w.Code, w.Body.String())
	}

	// Logout invalidates the token.
	w = doJSON(t, router, http.MethodPost, "/auth/logout", nil, adminSess.Token)
	if w.Code != http.StatusNoContent {
		t.Errorf("logout = %d, want 204", w.Code)
	}
	w = doJSON(t, router, http.MethodGet, "/groceries", nil, adminSess.Token)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("read after logout = %d, want 401", w.Code)
	}
}
