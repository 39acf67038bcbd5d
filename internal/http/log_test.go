package handlers_test

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"
	"testing"

	"tradeyard/internal/repos"
)

// Audit records are written mid-handler, before the response status is
// final, so they must not claim one.
func TestAuditRecordsOmitResponseStatus(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	app := newTestApp(t)
	buyer := loginBuyer(t, app)
	addToCart(t, app, buyer, repos.SeedProductVise, 1)
	resp, _ := doJSON(t, app, "POST", "/api/orders", buyer, map[string]string{
		"shippingAddress": "Dock 3",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("checkout: status %d", resp.StatusCode)
	}

	sawCheckout := false
	for _, line := range strings.Split(buf.String(), "\n") {
		i := strings.Index(line, "{")
		if i < 0 {
			continue
		}
		var entry map[string]any
		if err := json.Unmarshal([]byte(line[i:]), &entry); err != nil {
			continue
		}
		if _, ok := entry["status"]; ok {
			t.Fatalf("log entry claims a response status: %s", line[i:])
		}
		if entry["action"] == "orders.create" {
			sawCheckout = true
		}
	}
	if !sawCheckout {
		t.Fatal("no audit record for the checkout")
	}
}
