package upload

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

type captured struct {
	method, path, auth, hash, date string
	body                           []byte
}

func newServer(t *testing.T, failFirst int) (*httptest.Server, func() []captured) {
	t.Helper()
	var (
		mu   sync.Mutex
		reqs []captured
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		reqs = append(reqs, captured{
			method: r.Method,
			path:   r.URL.Path,
			auth:   r.Header.Get("Authorization"),
			hash:   r.Header.Get("x-amz-content-sha256"),
			date:   r.Header.Get("x-amz-date"),
			body:   b,
		})
		n := len(reqs)
		mu.Unlock()
		if n <= failFirst {
			http.Error(w, "slow down", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)
	return srv, func() []captured {
		mu.Lock()
		defer mu.Unlock()
		return append([]captured(nil), reqs...)
	}
}

func newClient(t *testing.T, endpoint string) *Client {
	t.Helper()
	c, err := New(Config{Endpoint: endpoint, Bucket: "runs", Prefix: "/missions/", AccessKeyID: "AK", SecretAccessKey: "SK"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return c
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "session-abc.jsonl.zst")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestRecording_SignedPut(t *testing.T) {
	srv, reqs := newServer(t, 0)
	c := newClient(t, srv.URL)
	p := writeFile(t, "payload")

	key, err := c.Recording(context.Background(), p, nil, nil)
	if err != nil {
		t.Fatalf("Recording: %v", err)
	}
	if key != "missions/session-abc.jsonl.zst" {
		t.Fatalf("key=%q", key)
	}
	if len(reqs()) != 1 {
		t.Fatalf("requests=%d", len(reqs()))
	}
	r := reqs()[0]
	sum := sha256.Sum256([]byte("payload"))
	if r.method != http.MethodPut || r.path != "/runs/missions/session-abc.jsonl.zst" || string(r.body) != "payload" {
		t.Fatalf("request=%+v", r)
	}
	if r.hash != hex.EncodeToString(sum[:]) || r.date != "20260301T120000Z" {
		t.Fatalf("hash=%s date=%s", r.hash, r.date)
	}
	if !strings.HasPrefix(r.auth, "AWS4-HMAC-SHA256 Credential=AK/20260301/auto/s3/aws4_request, SignedHeaders=host;x-amz-content-sha256;x-amz-date, Signature=") {
		t.Fatalf("auth=%s", r.auth)
	}
}

func TestRecording_RetriesThenSucceeds(t *testing.T) {
	srv, reqs := newServer(t, 2)
	c := newClient(t, srv.URL)
	p := writeFile(t, "x")

	var slept []time.Duration
	sleep := func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}
	if _, err := c.Recording(context.Background(), p, sleep, nil); err != nil {
		t.Fatalf("Recording: %v", err)
	}
	if len(reqs()) != 3 || len(slept) != 2 || slept[0] != 200*time.Millisecond || slept[1] != 800*time.Millisecond {
		t.Fatalf("requests=%d slept=%v", len(reqs()), slept)
	}
}

func TestRecording_GivesUp(t *testing.T) {
	srv, reqs := newServer(t, 100)
	c := newClient(t, srv.URL)
	p := writeFile(t, "x")
	noSleep := func(context.Context, time.Duration) error { return nil }
	if _, err := c.Recording(context.Background(), p, noSleep, nil); err == nil || !strings.Contains(err.Error(), "status 503") {
		t.Fatalf("err=%v", err)
	}
	if len(reqs()) != maxAttempts {
		t.Fatalf("requests=%d", len(reqs()))
	}
}

func TestDeriveSigningKey(t *testing.T) {
	// Published SigV4 derivation example.
	got := hex.EncodeToString(deriveSigningKey("wJalrXUtnFEMI/K7MDENG+bPxRfiCYEXAMPLEKEY", "20120215", "us-east-1", "iam"))
	if got != "f4780e2d9f65fa895f9c67b32ce1baf0b0d8a43505a000a1a9e090d414db404d" {
		t.Fatalf("signing key=%s", got)
	}
}

func TestConfigFromEnv(t *testing.T) {
	env := map[string]string{
		"MISSIONLOOP_UPLOAD_ENDPOINT":          "r2.example.com",
		"MISSIONLOOP_UPLOAD_BUCKET":            "runs",
		"MISSIONLOOP_UPLOAD_ACCESS_KEY_ID":     "AK",
		"MISSIONLOOP_UPLOAD_SECRET_ACCESS_KEY": "SK",
	}
	cfg, ok := ConfigFromEnv(func(k string) string { return env[k] })
	if !ok || cfg.Bucket != "runs" {
		t.Fatalf("cfg=%+v ok=%v", cfg, ok)
	}
	c, err := New(cfg)
	if err != nil || c.endpoint != "https://r2.example.com" || c.region != "auto" {
		t.Fatalf("client=%+v err=%v", c, err)
	}
	if _, ok := ConfigFromEnv(func(string) string { return "" }); ok {
		t.Fatalf("empty env should disable upload")
	}
	if _, err := New(Config{Endpoint: "x"}); err == nil {
		t.Fatalf("expected missing credentials error")
	}
}

func TestNormalizeObjectKey(t *testing.T) {
	cases := map[string]string{
		"/a/b":       "a/b",
		"a\\b":       "a/b",
		"../../x":    "x",
		"  ":         "",
		"a/./b/../c": "a/c",
	}
	for in, want := range cases {
		if got := normalizeObjectKey(in); got != want {
			t.Fatalf("normalizeObjectKey(%q)=%q want %q", in, got, want)
		}
	}
}
