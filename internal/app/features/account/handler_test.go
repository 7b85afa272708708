package account_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sevasetu/sevahub/internal/app/features/account"
	donationstore "github.com/sevasetu/sevahub/internal/app/store/donations"
	userstore "github.com/sevasetu/sevahub/internal/app/store/users"
	"github.com/sevasetu/sevahub/internal/app/system/auth"
	"github.com/sevasetu/sevahub/internal/domain/models"
	"github.com/sevasetu/sevahub/internal/testutil"
	"go.uber.org/zap"
)

func newHandler(t *testing.T) (*account.Handler, *auth.Manager, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	am := auth.NewManager("test-signing-secret", zap.NewNop())
	h := account.NewHandler(userstore.New(db), donationstore.New(db), am, zap.NewNop())
	return h, am, testutil.NewFixtures(t, db)
}

func register(t *testing.T, h *account.Handler, name, email, password string) *httptest.ResponseRecorder {
	t.Helper()
	req := testutil.NewJSONRequest(t, "POST", "/auth/register", map[string]any{
		"name":     name,
		"email":    email,
		"password": password,
	})
	rec := httptest.NewRecorder()
	h.HandleRegister(rec, req)
	return rec
}

func TestHandleRegister(t *testing.T) {
	h, am, _ := newHandler(t)

	rec := register(t, h, "Priya Nair", "Priya@Example.com", "correct-horse")

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want 201 (body %s)", rec.Code, rec.Body.String())
	}

	var resp struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	testutil.DecodeJSON(t, rec, &resp)

	if resp.User.Email != "priya@example.com" {
		t.Errorf("email not normalized: %q", resp.User.Email)
	}
	if resp.User.Role != models.RoleUser {
		t.Errorf("role: got %q, want user", resp.User.Role)
	}

	// The issued token must round-trip through the manager's codec.
	su, err := am.Tokens().Parse(resp.Token)
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if su.Email != "priya@example.com" || su.Role != models.RoleUser {
		t.Errorf("token claims: %+v", su)
	}

	// The password hash must never appear in the response.
	if rec.Body.String() == "" || resp.User.PasswordHash != "" {
		t.Error("password hash leaked in response")
	}
}

func TestHandleRegister_DuplicateEmail(t *testing.T) {
	h, _, _ := newHandler(t)

	if rec := register(t, h, "First", "same@example.com", "password-one"); rec.Code != http.StatusCreated {
		t.Fatalf("first register: got %d", rec.Code)
	}
	if rec := register(t, h, "Second", "Same@Example.com", "password-two"); rec.Code != http.StatusConflict {
		t.Errorf("duplicate register: got %d, want 409", rec.Code)
	}
}

func TestHandleRegister_Validation(t *testing.T) {
	h, _, _ := newHandler(t)

	cases := []struct {
		name  string
		body  map[string]any
	}{
		{"missing name", map[string]any{"email": "a@b.com", "password": "long-enough"}},
		{"bad email", map[string]any{"name": "A", "email": "nope", "password": "long-enough"}},
		{"short password", map[string]any{"name": "A", "email": "a@b.com", "password": "short"}},
	}
	for _, tc := range cases {
		req := testutil.NewJSONRequest(t, "POST", "/auth/register", tc.body)
		rec := httptest.NewRecorder()
		h.HandleRegister(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: got %d, want 400", tc.name, rec.Code)
		}
	}
}

func TestHandleLogin(t *testing.T) {
	h, _, _ := newHandler(t)
	register(t, h, "Dev Singh", "dev@example.com", "opensesame1")

	req := testutil.NewJSONRequest(t, "POST", "/auth/login", map[string]any{
		"email":    "Dev@Example.com",
		"password": "opensesame1",
	})
	rec := httptest.NewRecorder()
	h.HandleLogin(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Token == "" {
		t.Error("token missing from login response")
	}
}

func TestHandleLogin_WrongPassword(t *testing.T) {
	h, _, _ := newHandler(t)
	register(t, h, "Dev Singh", "dev@example.com", "opensesame1")

	for _, body := range []map[string]any{
		{"email": "dev@example.com", "password": "wrong-password"},
		{"email": "ghost@example.com", "password": "whatever123"},
	} {
		req := testutil.NewJSONRequest(t, "POST", "/auth/login", body)
		rec := httptest.NewRecorder()
		h.HandleLogin(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("login %v: got %d, want 401", body["email"], rec.Code)
		}
	}
}

func TestServeMe_WithDonationHistory(t *testing.T) {
	h, _, fx := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	rec := register(t, h, "Donor", "donor@example.com", "longpassword")
	var created struct {
		User models.User `json:"user"`
	}
	testutil.DecodeJSON(t, rec, &created)

	fx.CreateCompletedDonation(ctx, 500, "Donor", "donor@example.com", "pay_me1")
	fx.CreateCompletedDonation(ctx, 250, "Donor", "donor@example.com", "pay_me2")
	fx.CreateCompletedDonation(ctx, 999, "Other", "other@example.com", "pay_other")

	req := httptest.NewRequest("GET", "/auth/me", nil)
	req = testutil.WithUser(req, testutil.TestUser{
		ID:    created.User.ID.Hex(),
		Name:  "Donor",
		Email: "donor@example.com",
		Role:  models.RoleUser,
	})
	out := httptest.NewRecorder()
	h.ServeMe(out, req)

	if out.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body %s)", out.Code, out.Body.String())
	}

	var resp struct {
		User      models.User       `json:"user"`
		Donations []models.Donation `json:"donations"`
	}
	testutil.DecodeJSON(t, out, &resp)

	if resp.User.Email != "donor@example.com" {
		t.Errorf("user email: got %q", resp.User.Email)
	}
	if len(resp.Donations) != 2 {
		t.Errorf("donation history: got %d rows, want 2", len(resp.Donations))
	}
}
