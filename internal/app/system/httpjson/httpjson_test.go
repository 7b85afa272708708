package httpjson

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDecode_IgnoresUnknownFields(t *testing.T) {
	var dst struct {
		Email string `json:"email"`
	}
	body := `{"email":"a@example.com","extra":"from the gateway callback"}`
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	rec := httptest.NewRecorder()

	if err := Decode(rec, req, &dst); err != nil {
		t.Fatalf("Decode rejected a body with unknown fields: %v", err)
	}
	if dst.Email != "a@example.com" {
		t.Errorf("email: got %q", dst.Email)
	}
}

func TestDecode_EmptyBody(t *testing.T) {
	var dst struct{}
	req := httptest.NewRequest("POST", "/", strings.NewReader(""))
	rec := httptest.NewRecorder()

	err := Decode(rec, req, &dst)
	if err == nil {
		t.Fatal("Decode accepted an empty body")
	}
	if err.Error() != "request body is required" {
		t.Errorf("error: got %q", err.Error())
	}
}

func TestDecode_MalformedJSON(t *testing.T) {
	var dst struct{}
	req := httptest.NewRequest("POST", "/", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	if err := Decode(rec, req, &dst); err == nil {
		t.Fatal("Decode accepted malformed JSON")
	}
}
