//go:build e2e

package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/acuestore/apiserver/config"
	"github.com/acuestore/apiserver/internal/server"
)

const serverPort = 18080

func TestMain(m *testing.M) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	dataDir, err := os.MkdirTemp("", "acuestore-e2e-")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create data dir: %v\n", err)
		os.Exit(1)
	}

	// Force the file backend so the suite needs no external services.
	os.Unsetenv("DATABASE_URL")
	os.Unsetenv("SQLITE_PATH")
	os.Setenv("DATA_DIR", dataDir)
	os.Setenv("SERVER_PORT", fmt.Sprintf("%d", serverPort))
	os.Setenv("SESSION_SECRET", "e2e-session-secret")
	os.Setenv("ADMIN_USER", "admin")
	os.Setenv("ADMIN_PRIMARY_PIN", "291210")
	os.Setenv("ADMIN_SECURITY_PIN", "505")
	os.Setenv("ADMIN_SECURITY_ANSWER", "fluffy")

	cfg := config.LoadConfig()
	// The default selector would still pick SQLite at its default path; the
	// file backend is the one under test here.
	cfg.Storage.SQLitePath = ""

	srv, err := server.New(ctx, cfg, zerolog.Nop())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to construct server: %v\n", err)
		os.RemoveAll(dataDir)
		os.Exit(1)
	}

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "server stopped: %v\n", err)
		}
	}()

	baseURL := fmt.Sprintf("http://localhost:%d", serverPort)
	if err := waitForHealth(ctx, baseURL+"/healthz"); err != nil {
		fmt.Fprintf(os.Stderr, "server not healthy: %v\n", err)
		_ = srv.Shutdown()
		os.RemoveAll(dataDir)
		os.Exit(1)
	}

	code := m.Run()

	_ = srv.Shutdown()
	os.RemoveAll(dataDir)
	os.Exit(code)
}

func waitForHealth(ctx context.Context, url string) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		resp, err := http.Get(url)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(200 * time.Millisecond)
	}
}

func TestCatalogLifecycle(t *testing.T) {
	baseURL := fmt.Sprintf("http://localhost:%d", serverPort)

	// The first boot seeds the built-in catalog.
	apps, err := listApps(t, baseURL)
	if err != nil {
		t.Fatalf("list apps: %v", err)
	}
	if len(apps) == 0 {
		t.Fatalf("expected seeded catalog, got none")
	}

	token, err := operatorSession(t, baseURL)
	if err != nil {
		t.Fatalf("operator session: %v", err)
	}

	appID := fmt.Sprintf("e2e-app-%d", time.Now().UnixNano())
	created, err := createApp(t, baseURL, token, appID)
	if err != nil {
		t.Fatalf("create app: %v", err)
	}
	if created.ID != appID {
		t.Fatalf("unexpected app id: %q", created.ID)
	}

	if err := addBadge(t, baseURL, token, appID, "trending"); err != nil {
		t.Fatalf("add badge: %v", err)
	}

	fetched, err := getApp(t, baseURL, appID)
	if err != nil {
		t.Fatalf("get app: %v", err)
	}
	if len(fetched.Badges) != 1 || fetched.Badges[0] != "trending" {
		t.Fatalf("unexpected badges: %v", fetched.Badges)
	}

	if err := deleteApp(t, baseURL, token, appID); err != nil {
		t.Fatalf("delete app: %v", err)
	}
	if _, err := getApp(t, baseURL, appID); err == nil {
		t.Fatalf("expected deleted app to be missing")
	}
}

func TestAccountLifecycle(t *testing.T) {
	baseURL := fmt.Sprintf("http://localhost:%d", serverPort)
	username := fmt.Sprintf("user_%d", time.Now().UnixNano())

	if err := register(t, baseURL, username, "testpass123"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := login(t, baseURL, username, "testpass123", http.StatusOK); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := login(t, baseURL, username, "wrongpass", http.StatusUnauthorized); err != nil {
		t.Fatalf("login with wrong password: %v", err)
	}

	token, err := operatorSession(t, baseURL)
	if err != nil {
		t.Fatalf("operator session: %v", err)
	}
	if err := setBanned(t, baseURL, token, username, true); err != nil {
		t.Fatalf("ban user: %v", err)
	}
	if err := login(t, baseURL, username, "testpass123", http.StatusForbidden); err != nil {
		t.Fatalf("login while banned: %v", err)
	}
}

type appResponse struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Badges []string `json:"badges"`
}

func doRequest(t *testing.T, method, url, token string, payload any, want int, out any) error {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		msg, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%s %s status %d: %s", method, url, resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func listApps(t *testing.T, baseURL string) ([]appResponse, error) {
	var apps []appResponse
	err := doRequest(t, http.MethodGet, baseURL+"/apps", "", nil, http.StatusOK, &apps)
	return apps, err
}

func getApp(t *testing.T, baseURL, id string) (appResponse, error) {
	var app appResponse
	err := doRequest(t, http.MethodGet, baseURL+"/apps/"+id, "", nil, http.StatusOK, &app)
	return app, err
}

func operatorSession(t *testing.T, baseURL string) (string, error) {
	payload := map[string]string{
		"username":        "admin",
		"primary_pin":     "291210",
		"security_pin":    "505",
		"security_answer": "fluffy",
	}
	var parsed struct {
		Token string `json:"token"`
	}
	if err := doRequest(t, http.MethodPost, baseURL+"/admin/session", "", payload, http.StatusOK, &parsed); err != nil {
		return "", err
	}
	if parsed.Token == "" {
		return "", fmt.Errorf("missing token in session response")
	}
	return parsed.Token, nil
}

func createApp(t *testing.T, baseURL, token, id string) (appResponse, error) {
	payload := map[string]any{
		"id":           id,
		"name":         "E2E App",
		"developer":    "E2E Suite",
		"category":     "productivity",
		"rating":       4.0,
		"description":  "Created during the end-to-end run.",
		"icon":         "fas fa-vial",
		"download_url": "https://example.com/" + id,
	}
	var app appResponse
	err := doRequest(t, http.MethodPost, baseURL+"/admin/apps", token, payload, http.StatusCreated, &app)
	return app, err
}

func addBadge(t *testing.T, baseURL, token, id, badgeType string) error {
	payload := map[string]string{"badge_type": badgeType}
	return doRequest(t, http.MethodPost, baseURL+"/admin/apps/"+id+"/badges", token, payload, http.StatusOK, nil)
}

func deleteApp(t *testing.T, baseURL, token, id string) error {
	return doRequest(t, http.MethodDelete, baseURL+"/admin/apps/"+id, token, nil, http.StatusOK, nil)
}

func register(t *testing.T, baseURL, username, password string) error {
	payload := map[string]string{"username": username, "password": password}
	return doRequest(t, http.MethodPost, baseURL+"/auth/register", "", payload, http.StatusCreated, nil)
}

func login(t *testing.T, baseURL, username, password string, want int) error {
	payload := map[string]string{"username": username, "password": password}
	return doRequest(t, http.MethodPost, baseURL+"/auth/login", "", payload, want, nil)
}

func setBanned(t *testing.T, baseURL, token, username string, banned bool) error {
	payload := map[string]bool{"banned": banned}
	return doRequest(t, http.MethodPut, baseURL+"/admin/users/"+username+"/ban", token, payload, http.StatusOK, nil)
}
