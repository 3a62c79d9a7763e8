package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/erazemk/najdeno/internal/describe"
	"github.com/erazemk/najdeno/internal/fixtures"
	"github.com/erazemk/najdeno/internal/model"
	"github.com/erazemk/najdeno/internal/store"
)

const testJWTSecret = "test-secret"

func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	st := store.New(fixtures.Users(), fixtures.Categories(), fixtures.Items())
	session := describe.NewSession(describe.New(context.Background(), "", ""))
	router := NewRouter(st, session, testJWTSecret)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func loginAs(t *testing.T, server *httptest.Server, role model.Role) string {
	t.Helper()
	body, _ := json.Marshal(map[string]model.Role{"role": role})
	resp, err := http.Post(server.URL+"/api/login", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login failed: %d", resp.StatusCode)
	}

	var loginResp struct {
		Token string     `json:"token"`
		User  model.User `json:"user"`
	}
	json.NewDecoder(resp.Body).Decode(&loginResp)
	if loginResp.Token == "" {
		t.Fatal("empty token from login")
	}
	if loginResp.User.Role != role {
		t.Fatalf("expected role %q, got %q", role, loginResp.User.Role)
	}
	return loginResp.Token
}

func authRequest(method, url, token string, body any) (*http.Request, error) {
	var bodyReader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(data)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		return nil, err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func getItems(t *testing.T, server *httptest.Server, params string) []model.Item {
	t.Helper()
	resp, err := http.Get(server.URL + "/api/items" + params)
	if err != nil {
		t.Fatalf("list items: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list items: status %d", resp.StatusCode)
	}

	var items []model.Item
	json.NewDecoder(resp.Body).Decode(&items)
	return items
}

func TestLoginUnknownRole(t *testing.T) {
	server := setupTestServer(t)

	body, _ := json.Marshal(map[string]string{"role": "Superuser"})
	resp, err := http.Post(server.URL+"/api/login", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown role, got %d", resp.StatusCode)
	}
}

func TestItemsListFilterAndSort(t *testing.T) {
	server := setupTestServer(t)

	all := getItems(t, server, "")
	if len(all) != 6 {
		t.Fatalf("expected 6 seeded items, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].ReportedAt.Before(all[i].ReportedAt) {
			t.Fatal("items not sorted by report date descending")
		}
	}

	if got := getItems(t, server, "?q=wallet"); len(got) != 1 || got[0].Name != "Brown Leather Wallet" {
		t.Errorf("q=wallet: unexpected result %+v", got)
	}

	// Electronics.
	if got := getItems(t, server, "?category=1"); len(got) != 2 {
		t.Errorf("category=1: expected 2 items, got %d", len(got))
	}

	if got := getItems(t, server, "?q=blue&category=4"); len(got) != 1 || got[0].Name != "Blue Jacket" {
		t.Errorf("combined filter: unexpected result %+v", got)
	}
}

func TestItemCreateFlow(t *testing.T) {
	server := setupTestServer(t)

	// Refused: missing location.
	req, _ := authRequest("POST", server.URL+"/api/items", "", map[string]any{
		"name": "Wallet", "category_id": 1, "status": model.StatusFound,
	})
	resp, _ := http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for missing location, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Refused: Claimed is not a submittable initial status.
	req, _ = authRequest("POST", server.URL+"/api/items", "", map[string]any{
		"name": "Wallet", "category_id": 1, "location": "Lobby", "status": model.StatusClaimed,
	})
	resp, _ = http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for Claimed status, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Accepted.
	req, _ = authRequest("POST", server.URL+"/api/items", "", map[string]any{
		"name": "Wallet", "category_id": 1, "location": "Lobby", "status": model.StatusFound,
	})
	resp, _ = http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var created model.Item
	json.NewDecoder(resp.Body).Decode(&created)
	resp.Body.Close()

	if created.ID == 0 {
		t.Error("expected a fresh item id")
	}
	if created.UserID != fixtures.DefaultUserID {
		t.Errorf("anonymous report should belong to the default user, got %d", created.UserID)
	}

	all := getItems(t, server, "")
	if len(all) != 7 {
		t.Errorf("expected 7 items after report, got %d", len(all))
	}
}

func TestStatusUpdateAuthorization(t *testing.T) {
	server := setupTestServer(t)
	body := map[string]model.Status{"status": model.StatusClaimed}

	// No role selected.
	req, _ := authRequest("PUT", server.URL+"/api/items/1/status", "", body)
	resp, _ := http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Regular user.
	userToken := loginAs(t, server, model.RoleUser)
	req, _ = authRequest("PUT", server.URL+"/api/items/1/status", userToken, body)
	resp, _ = http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("expected 403 for regular user, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Admin.
	adminToken := loginAs(t, server, model.RoleAdmin)
	req, _ = authRequest("PUT", server.URL+"/api/items/1/status", adminToken, body)
	resp, _ = http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", resp.StatusCode)
	}
	var updated model.Item
	json.NewDecoder(resp.Body).Decode(&updated)
	resp.Body.Close()
	if updated.Status != model.StatusClaimed {
		t.Errorf("expected status Claimed, got %q", updated.Status)
	}

	// Unknown item: nothing changes.
	req, _ = authRequest("PUT", server.URL+"/api/items/9999/status", adminToken, body)
	resp, _ = http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 for unknown item, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestCategoriesFlow(t *testing.T) {
	server := setupTestServer(t)
	adminToken := loginAs(t, server, model.RoleAdmin)

	// Case-insensitive duplicate of seeded "Electronics".
	req, _ := authRequest("POST", server.URL+"/api/categories", adminToken, map[string]string{"name": "electronics"})
	resp, _ := http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("expected 409 for duplicate category, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	req, _ = authRequest("POST", server.URL+"/api/categories", adminToken, map[string]string{"name": "Bags"})
	resp, _ = http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	listResp, _ := http.Get(server.URL + "/api/categories")
	var categories []model.Category
	json.NewDecoder(listResp.Body).Decode(&categories)
	listResp.Body.Close()
	if len(categories) != 7 {
		t.Errorf("expected 7 categories, got %d", len(categories))
	}
}

func TestDescribeEndpoint(t *testing.T) {
	server := setupTestServer(t)

	// Refused without all three inputs.
	req, _ := authRequest("POST", server.URL+"/api/describe", "", map[string]any{"name": "Phone"})
	resp, _ := http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for incomplete request, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	req, _ = authRequest("POST", server.URL+"/api/describe", "", map[string]any{
		"name": "Phone", "category_id": 1, "location": "Park",
	})
	resp, _ = http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var got struct {
		Description string `json:"description"`
	}
	json.NewDecoder(resp.Body).Decode(&got)
	resp.Body.Close()

	// Offline mode embeds the inputs; category 1 resolves to Electronics.
	for _, want := range []string{"Phone", "Electronics", "Park"} {
		if !strings.Contains(got.Description, want) {
			t.Errorf("description %q missing %q", got.Description, want)
		}
	}
}

func TestStatsEndpoint(t *testing.T) {
	server := setupTestServer(t)

	// Admin only.
	req, _ := authRequest("GET", server.URL+"/api/stats", "", nil)
	resp, _ := http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	adminToken := loginAs(t, server, model.RoleAdmin)
	req, _ = authRequest("GET", server.URL+"/api/stats", adminToken, nil)
	resp, _ = http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var summary struct {
		Total   int `json:"total"`
		Lost    int `json:"lost"`
		Found   int `json:"found"`
		Claimed int `json:"claimed"`
	}
	json.NewDecoder(resp.Body).Decode(&summary)
	resp.Body.Close()

	if summary.Total != 6 || summary.Lost != 3 || summary.Found != 3 || summary.Claimed != 0 {
		t.Errorf("unexpected summary: %+v", summary)
	}
}

func TestItemImageEndpoint(t *testing.T) {
	server := setupTestServer(t)

	resp, _ := http.Get(server.URL + "/api/items/1/image")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200 for item with photo, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("expected image/png, got %q", ct)
	}
	resp.Body.Close()

	resp, _ = http.Get(server.URL + "/api/items/3/image")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 for item without photo, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}
