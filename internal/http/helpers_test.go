package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"tradeyard/internal/config"
	"tradeyard/internal/http/handlers"
	"tradeyard/internal/repos"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	return newTestAppCfg(t, config.Config{JWTSecret: "test-secret", TestCompatMode: false})
}

func newTestAppCfg(t *testing.T, cfg config.Config) *fiber.App {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return handlers.NewApp(db, cfg)
}

// envelope covers both the success and the error response shapes.
type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Error     string          `json:"error"`
	Timestamp string          `json:"timestamp"`
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, envelope) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			t.Fatalf("decode %s %s: %v (%s)", method, path, err, raw)
		}
	}
	return resp, env
}

func decodeData(t *testing.T, env envelope, out any) {
	t.Helper()
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("decode data: %v (%s)", err, env.Data)
	}
}

func login(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()
	resp, env := doJSON(t, app, "POST", "/api/auth/login", "", map[string]string{
		"email": email, "password": password,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login %s: status %d (%s)", email, resp.StatusCode, env.Error)
	}
	var data struct {
		Token string `json:"token"`
	}
	decodeData(t, env, &data)
	if data.Token == "" {
		t.Fatalf("login %s: empty token", email)
	}
	return data.Token
}

func loginBuyer(t *testing.T, app *fiber.App) string {
	return login(t, app, "buyer@tradeyard.test", "Passw0rd!")
}

func loginSeller(t *testing.T, app *fiber.App) string {
	return login(t, app, "seller@tradeyard.test", "Passw0rd!")
}

func loginAdmin(t *testing.T, app *fiber.App) string {
	return login(t, app, "admin@tradeyard.test", "Passw0rd!")
}

// registerSeller creates a second seller account through the API and returns
// its token.
func registerSeller(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	resp, env := doJSON(t, app, "POST", "/api/auth/register", "", map[string]string{
		"email": email, "password": "Passw0rd!", "name": "Second Seller",
		"role": "SELLER", "companyName": "Nordic Fasteners",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register seller: status %d (%s)", resp.StatusCode, env.Error)
	}
	var data struct {
		Token string `json:"token"`
	}
	decodeData(t, env, &data)
	return data.Token
}
