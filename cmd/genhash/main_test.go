package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestRun_HashesGivenKey(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-key", "s3cret", "-cost", "4"}, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := out.String()
	if strings.Contains(text, "ADMIN_KEY=") {
		t.Fatalf("given key must not be echoed: %q", text)
	}
	hash := strings.TrimSpace(strings.TrimPrefix(text, "ADMIN_KEY_HASH="))
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret")); err != nil {
		t.Fatalf("hash mismatch: %v", err)
	}
}

func TestRun_GeneratesKey(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-cost", "4"}, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected key and hash lines, got %q", out.String())
	}
	key := strings.TrimPrefix(lines[0], "ADMIN_KEY=")
	hash := strings.TrimPrefix(lines[1], "ADMIN_KEY_HASH=")
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)); err != nil {
		t.Fatalf("hash mismatch: %v", err)
	}
}

func TestRun_Errors(t *testing.T) {
	origGen := generateToken
	t.Cleanup(func() { generateToken = origGen })
	generateToken = func(int) (string, error) { return "", errors.New("rand failed") }

	if err := run(nil, &bytes.Buffer{}); err == nil {
		t.Fatal("expected generate error")
	}
	if err := run([]string{"-unknown"}, &bytes.Buffer{}); err == nil {
		t.Fatal("expected flag error")
	}
	if err := run([]string{"-key", "k", "-cost", "99"}, &bytes.Buffer{}); err == nil {
		t.Fatal("expected bcrypt cost error")
	}
}
