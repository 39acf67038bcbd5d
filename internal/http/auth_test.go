package handlers_test

import (
	"net/http"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"tradeyard/internal/config"
	"tradeyard/internal/repos"
)

func TestSeededPasswordsAreHashed(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	var hashes []string
	if err := db.Select(&hashes, `SELECT password_hash FROM users`); err != nil {
		t.Fatalf("select hashes: %v", err)
	}
	if len(hashes) == 0 {
		t.Fatal("no users seeded")
	}
	for _, h := range hashes {
		if strings.Contains(h, "Passw0rd!") {
			t.Fatal("hash contains plaintext password")
		}
		if !strings.HasPrefix(h, "$2") {
			t.Fatalf("unexpected hash format: %s", h)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(h), []byte("Passw0rd!")); err != nil {
			t.Fatalf("seed hash does not validate known password: %v", err)
		}
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	app := newTestApp(t)
	resp, env := doJSON(t, app, "POST", "/api/auth/register", "", map[string]string{
		"email": "short@example.com", "password": "abc",
		"name": "Shorty", "role": "BUYER", "companyName": "Short Co",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if !strings.Contains(env.Error, "between 8 and 72") {
		t.Fatalf("error %q does not mention length bounds", env.Error)
	}
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	app := newTestApp(t)
	body := map[string]string{
		"email": "dup@example.com", "password": "Passw0rd!",
		"name": "Dup", "role": "BUYER", "companyName": "Dup Co",
	}
	if resp, env := doJSON(t, app, "POST", "/api/auth/register", "", body); resp.StatusCode != http.StatusCreated {
		t.Fatalf("first register: status %d (%s)", resp.StatusCode, env.Error)
	}
	resp, env := doJSON(t, app, "POST", "/api/auth/register", "", body)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate register: status %d, want 409", resp.StatusCode)
	}
	if env.Error == "" {
		t.Fatal("duplicate register: empty error message")
	}
}

func TestRegisterDuplicateMaskedInCompatMode(t *testing.T) {
	app := newTestAppCfg(t, config.Config{JWTSecret: "test-secret", TestCompatMode: true})
	body := map[string]string{
		"email": "dup2@example.com", "password": "Passw0rd!",
		"name": "Dup", "role": "BUYER", "companyName": "Dup Co",
	}
	if resp, _ := doJSON(t, app, "POST", "/api/auth/register", "", body); resp.StatusCode != http.StatusCreated {
		t.Fatalf("first register: status %d", resp.StatusCode)
	}
	resp, env := doJSON(t, app, "POST", "/api/auth/register", "", body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("masked duplicate: status %d, want 200", resp.StatusCode)
	}
	if !env.Success {
		t.Fatal("masked duplicate should report success")
	}
}

func TestLoginAndMe(t *testing.T) {
	app := newTestApp(t)

	// wrong password
	resp, _ := doJSON(t, app, "POST", "/api/auth/login", "", map[string]string{
		"email": "buyer@tradeyard.test", "password": "wrong-password",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("bad creds: status %d, want 401", resp.StatusCode)
	}

	token := loginBuyer(t, app)
	resp, env := doJSON(t, app, "GET", "/api/auth/me", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("me: status %d (%s)", resp.StatusCode, env.Error)
	}
	var me struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	decodeData(t, env, &me)
	if me.Email != "buyer@tradeyard.test" || me.Role != "BUYER" {
		t.Fatalf("me = %+v", me)
	}
}

func TestForgotPasswordDoesNotEnumerate(t *testing.T) {
	app := newTestApp(t)
	for _, email := range []string{"buyer@tradeyard.test", "nobody@tradeyard.test"} {
		resp, env := doJSON(t, app, "POST", "/api/auth/forgot-password", "", map[string]string{"email": email})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("forgot %s: status %d", email, resp.StatusCode)
		}
		if !env.Success {
			t.Fatalf("forgot %s: expected success envelope", email)
		}
	}
}

func TestChangePassword(t *testing.T) {
	app := newTestApp(t)
	token := loginBuyer(t, app)

	resp, env := doJSON(t, app, "POST", "/api/auth/change-password", token, map[string]string{
		"currentPassword": "wrong", "newPassword": "N3wPassw0rd!",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("wrong current password: status %d (%s)", resp.StatusCode, env.Error)
	}

	resp, _ = doJSON(t, app, "POST", "/api/auth/change-password", token, map[string]string{
		"currentPassword": "Passw0rd!", "newPassword": "N3wPassw0rd!",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("change password: status %d", resp.StatusCode)
	}
	// old password no longer works
	resp, _ = doJSON(t, app, "POST", "/api/auth/login", "", map[string]string{
		"email": "buyer@tradeyard.test", "password": "Passw0rd!",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("old password still valid: status %d", resp.StatusCode)
	}
	login(t, app, "buyer@tradeyard.test", "N3wPassw0rd!")
}
