package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lightningcath-stock-api/internal/cache"
	"lightningcath-stock-api/internal/catalog"
	"lightningcath-stock-api/internal/handler"
	"lightningcath-stock-api/internal/mailer"
	"lightningcath-stock-api/internal/middleware"
	"lightningcath-stock-api/internal/repository"
	"lightningcath-stock-api/internal/service"
)

const testAdminKey = "test-admin-key"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	repo := repository.NewMemoryStockRepository(nil)
	c := cache.NewMemoryCache()
	t.Cleanup(func() { c.Close() })

	view := service.NewStockView(repo, c, time.Minute, nil)
	editor := service.NewStockEditor(repo, nil)
	tokens := service.NewTokenService(c, testAdminKey, time.Hour, nil)
	rfq := service.NewRFQService(mailer.NewLogMailer(nil), "vendor@example.com", "portal@example.com", nil)

	r := New(Config{
		Handler:        handler.New("test"),
		StockHandler:   handler.NewStockHandler(view),
		RFQHandler:     handler.NewRFQHandler(rfq),
		AdminHandler:   handler.NewAdminHandler(editor, view, tokens),
		AuthMiddleware: middleware.NewAdminAuth(tokens),
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Warning string          `json:"warning"`
	Meta    *struct {
		Total   int  `json:"total"`
		Showing int  `json:"showing"`
		Live    bool `json:"live"`
	} `json:"meta"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decode(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	defer resp.Body.Close()
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	return env
}

func login(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	resp, err := http.Post(srv.URL+"/api/v1/admin/login", "application/json",
		strings.NewReader(`{"key":"`+testAdminKey+`"}`))
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d", resp.StatusCode)
	}
	env := decode(t, resp)
	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil || data.Token == "" {
		t.Fatalf("no token in login response: %v", err)
	}
	return data.Token
}

func adminReq(t *testing.T, srv *httptest.Server, token, method, path, contentType, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	if err != nil {
		t.Fatalf("bad request: %v", err)
	}
	req.Header.Set("X-Admin-Token", token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func TestPublicStockListing(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/stock?search=pebax")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	env := decode(t, resp)
	if !env.Success || env.Meta == nil {
		t.Fatalf("envelope = %+v", env)
	}
	if env.Meta.Total != len(catalog.SeedStock()) {
		t.Errorf("meta.total = %d", env.Meta.Total)
	}
	if env.Meta.Live {
		t.Error("seed data must report live=false")
	}
	if env.Meta.Showing == 0 || env.Meta.Showing >= env.Meta.Total {
		t.Errorf("filter did not narrow the listing: showing %d of %d",
			env.Meta.Showing, env.Meta.Total)
	}
}

func TestPublicCSVExport(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/stock/export/csv")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "text/csv") {
		t.Errorf("Content-Type = %q", ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
		t.Errorf("Content-Disposition = %q", cd)
	}
}

func TestAdminRoutesRequireSession(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		method string
		path   string
	}{
		{method: http.MethodGet, path: "/api/v1/admin/stock"},
		{method: http.MethodPost, path: "/api/v1/admin/stock"},
		{method: http.MethodPost, path: "/api/v1/admin/stock/undo"},
		{method: http.MethodGet, path: "/api/v1/admin/stats"},
	}

	for _, tt := range tests {
		req, _ := http.NewRequest(tt.method, srv.URL+tt.path, nil)
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("%s %s status = %d, want 401", tt.method, tt.path, resp.StatusCode)
		}
	}

	// Garbage token is also rejected.
	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/admin/stock", nil)
	req.Header.Set("X-Admin-Token", "lcp_bogus")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("bogus token status = %d, want 401", resp.StatusCode)
	}
}

func TestAdminLoginRejectsWrongKey(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/v1/admin/login", "application/json",
		strings.NewReader(`{"key":"wrong"}`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestAdminLogoutAcceptsBearerToken(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv)

	// Logout carrying the token only as Authorization: Bearer.
	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/api/v1/admin/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("logout request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("logout status = %d, want 204", resp.StatusCode)
	}

	// The session is revoked for both header forms.
	resp = adminReq(t, srv, token, http.MethodGet, "/api/v1/admin/stock", "", "")
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("revoked token via X-Admin-Token status = %d, want 401", resp.StatusCode)
	}
	req, _ = http.NewRequest(http.MethodGet, srv.URL+"/api/v1/admin/stock", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("revoked token via Bearer status = %d, want 401", resp.StatusCode)
	}
}

func TestAdminCRUDFlow(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv)

	// Add
	resp := adminReq(t, srv, token, http.MethodPost, "/api/v1/admin/stock", "application/json",
		`{"id":"test-1","category":"Resin","description":"Test item","quantity":5}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("add status = %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Duplicate add
	resp = adminReq(t, srv, token, http.MethodPost, "/api/v1/admin/stock", "application/json",
		`{"id":"test-1","description":"Duplicate"}`)
	env := decode(t, resp)
	if resp.StatusCode != http.StatusConflict || env.Error == nil || env.Error.Code != "DUPLICATE_ID" {
		t.Fatalf("duplicate add = %d %+v", resp.StatusCode, env.Error)
	}

	// Inline quantity edit
	resp = adminReq(t, srv, token, http.MethodPatch, "/api/v1/admin/stock/test-1/quantity", "application/json",
		`{"quantity":"Coming Soon!"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("quantity patch status = %d", resp.StatusCode)
	}
	resp.Body.Close()

	// The public view sees the committed change.
	pubResp, err := http.Get(srv.URL + "/api/v1/stock?search=test-1")
	if err != nil {
		t.Fatalf("public request failed: %v", err)
	}
	pubEnv := decode(t, pubResp)
	if pubEnv.Meta == nil || pubEnv.Meta.Showing != 1 || !pubEnv.Meta.Live {
		t.Errorf("public view after edit: %+v", pubEnv.Meta)
	}

	// Undo twice (quantity edit, then add), third undo is rejected.
	for i := 0; i < 2; i++ {
		resp = adminReq(t, srv, token, http.MethodPost, "/api/v1/admin/stock/undo", "", "")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("undo %d status = %d", i, resp.StatusCode)
		}
		resp.Body.Close()
	}
	resp = adminReq(t, srv, token, http.MethodPost, "/api/v1/admin/stock/undo", "", "")
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("undo on empty stack status = %d, want 409", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestAdminImportCSV(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv)

	csv := "ID,Category,Material Family,Description,Quantity,Notes,Exp ID (MIN),Rec ID (MAX),Rec Wall,Shrink Ratio,Length,Material,ID Spec,WT,OD Ref\n" +
		`imp-1,Resin,Pebax,"Imported item",7,""`

	resp := adminReq(t, srv, token, http.MethodPost, "/api/v1/admin/stock/import", "text/csv", csv)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("import status = %d", resp.StatusCode)
	}
	env := decode(t, resp)
	var data struct {
		Imported int `json:"imported"`
		Total    int `json:"total"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("bad import response: %v", err)
	}
	if data.Imported != 1 || data.Total != len(catalog.SeedStock())+1 {
		t.Errorf("import response = %+v", data)
	}

	// Malformed CSV is rejected as a parse failure.
	resp = adminReq(t, srv, token, http.MethodPost, "/api/v1/admin/stock/import", "text/csv",
		"ID,Category\nonly-two-columns,x")
	env = decode(t, resp)
	if resp.StatusCode != http.StatusBadRequest || env.Error == nil || env.Error.Code != "PARSE_FAILURE" {
		t.Errorf("malformed import = %d %+v", resp.StatusCode, env.Error)
	}
}

func TestRFQValidationOverHTTP(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/v1/rfq", "application/json",
		strings.NewReader(`{"companyName":"Acme"}`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	env := decode(t, resp)
	if resp.StatusCode != http.StatusBadRequest || env.Error == nil || env.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("rfq validation = %d %+v", resp.StatusCode, env.Error)
	}
}

func TestStatusEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/status")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
	if id := resp.Header.Get("X-Request-ID"); id == "" {
		t.Error("missing X-Request-ID header")
	}
}
