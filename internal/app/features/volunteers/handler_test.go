package volunteers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sevasetu/sevahub/internal/app/features/volunteers"
	volunteerstore "github.com/sevasetu/sevahub/internal/app/store/volunteers"
	"github.com/sevasetu/sevahub/internal/domain/models"
	"github.com/sevasetu/sevahub/internal/testutil"
	"go.uber.org/zap"
)

func newHandler(t *testing.T) (*volunteers.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return volunteers.NewHandler(volunteerstore.New(db), zap.NewNop()), testutil.NewFixtures(t, db)
}

func TestHandleApply(t *testing.T) {
	h, _ := newHandler(t)

	req := testutil.NewJSONRequest(t, "POST", "/volunteers", map[string]any{
		"name":     "Kiran Rao",
		"email":    "Kiran@Example.com",
		"interest": "teaching",
	})
	rec := httptest.NewRecorder()

	h.HandleApply(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want 201 (body %s)", rec.Code, rec.Body.String())
	}

	var resp struct {
		Volunteer models.Volunteer `json:"volunteer"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Volunteer.Status != models.VolunteerPending {
		t.Errorf("status: got %q, want pending", resp.Volunteer.Status)
	}
	if resp.Volunteer.Email != "kiran@example.com" {
		t.Errorf("email not normalized: %q", resp.Volunteer.Email)
	}
}

func TestHandleApply_BadEmail(t *testing.T) {
	h, _ := newHandler(t)

	req := testutil.NewJSONRequest(t, "POST", "/volunteers", map[string]any{
		"name":  "Kiran",
		"email": "not-an-email",
	})
	rec := httptest.NewRecorder()

	h.HandleApply(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}

func TestServeList_StatusFilter(t *testing.T) {
	h, fx := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	v := fx.CreateVolunteer(ctx, "A", "a@example.com")
	fx.CreateVolunteer(ctx, "B", "b@example.com")

	if err := h.Store.UpdateStatus(ctx, v.ID, models.VolunteerApproved); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}

	req := httptest.NewRequest("GET", "/volunteers?status=approved", nil)
	req = testutil.WithUser(req, testutil.AdminUser())
	rec := httptest.NewRecorder()

	h.ServeList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}

	var resp struct {
		Volunteers []models.Volunteer `json:"volunteers"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if len(resp.Volunteers) != 1 || resp.Volunteers[0].Status != models.VolunteerApproved {
		t.Errorf("filtered list: %+v", resp.Volunteers)
	}
}

func TestServeList_BadStatusFilter(t *testing.T) {
	h, _ := newHandler(t)

	req := httptest.NewRequest("GET", "/volunteers?status=unknown", nil)
	req = testutil.WithUser(req, testutil.AdminUser())
	rec := httptest.NewRecorder()

	h.ServeList(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}

func TestHandleUpdateStatus(t *testing.T) {
	h, fx := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	v := fx.CreateVolunteer(ctx, "C", "c@example.com")

	req := testutil.NewJSONRequest(t, "PUT", "/volunteers/"+v.ID.Hex()+"/status",
		map[string]any{"status": "rejected"})
	req = testutil.WithChiURLParam(req, "id", v.ID.Hex())
	req = testutil.WithUser(req, testutil.AdminUser())
	rec := httptest.NewRecorder()

	h.HandleUpdateStatus(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	got, err := h.Store.GetByID(ctx, v.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Status != models.VolunteerRejected {
		t.Errorf("status: got %q, want rejected", got.Status)
	}
}
