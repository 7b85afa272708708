package newsletter_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/sevasetu/sevahub/internal/app/features/newsletter"
	newsletterstore "github.com/sevasetu/sevahub/internal/app/store/newsletters"
	subscriberstore "github.com/sevasetu/sevahub/internal/app/store/subscribers"
	"github.com/sevasetu/sevahub/internal/app/system/mailer"
	"github.com/sevasetu/sevahub/internal/domain/models"
	"github.com/sevasetu/sevahub/internal/testutil"
	"go.uber.org/zap"
)

// recorderSender captures sends and can fail selected addresses.
type recorderSender struct {
	mu      sync.Mutex
	sent    []mailer.Email
	failFor map[string]bool
}

func (r *recorderSender) Send(e mailer.Email) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failFor[e.To] {
		return errors.New("mailbox unavailable")
	}
	r.sent = append(r.sent, e)
	return nil
}

func newHandler(t *testing.T) (*newsletter.Handler, *testutil.Fixtures, *recorderSender) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	sender := &recorderSender{failFor: map[string]bool{}}
	h := newsletter.NewHandler(
		subscriberstore.New(db),
		newsletterstore.New(db),
		sender,
		"SevaHub",
		zap.NewNop(),
	)
	return h, testutil.NewFixtures(t, db), sender
}

func TestHandleSubscribe(t *testing.T) {
	h, _, _ := newHandler(t)

	req := testutil.NewJSONRequest(t, "POST", "/newsletter/subscribe",
		map[string]any{"email": "Reader@Example.com"})
	rec := httptest.NewRecorder()

	h.HandleSubscribe(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want 201 (body %s)", rec.Code, rec.Body.String())
	}

	var resp struct {
		Subscriber models.Subscriber `json:"subscriber"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Subscriber.Email != "reader@example.com" {
		t.Errorf("email not normalized: %q", resp.Subscriber.Email)
	}
	if !resp.Subscriber.Active {
		t.Error("subscriber not active")
	}
}

func TestHandleSubscribe_Duplicate(t *testing.T) {
	h, fx, _ := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateSubscriber(ctx, "taken@example.com", true)

	req := testutil.NewJSONRequest(t, "POST", "/newsletter/subscribe",
		map[string]any{"email": "taken@example.com"})
	rec := httptest.NewRecorder()

	h.HandleSubscribe(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}

func TestHandleSubscribe_BadEmail(t *testing.T) {
	h, _, _ := newHandler(t)

	req := testutil.NewJSONRequest(t, "POST", "/newsletter/subscribe",
		map[string]any{"email": "not-an-email"})
	rec := httptest.NewRecorder()

	h.HandleSubscribe(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}

func TestHandleUnsubscribe(t *testing.T) {
	h, fx, _ := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateSubscriber(ctx, "leaving@example.com", true)

	req := testutil.NewJSONRequest(t, "POST", "/newsletter/unsubscribe",
		map[string]any{"email": "leaving@example.com"})
	rec := httptest.NewRecorder()

	h.HandleUnsubscribe(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}

	active, err := h.Subscribers.ListActive(ctx)
	if err != nil {
		t.Fatalf("ListActive failed: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("active subscribers after unsubscribe: got %d, want 0", len(active))
	}
}

func TestHandleSend(t *testing.T) {
	h, fx, sender := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateSubscriber(ctx, "a@example.com", true)
	fx.CreateSubscriber(ctx, "b@example.com", true)
	fx.CreateSubscriber(ctx, "gone@example.com", false) // inactive, must be skipped

	req := testutil.NewJSONRequest(t, "POST", "/newsletter/send", map[string]any{
		"subject": "Monthly update",
		"body":    "<p>Hello from the field</p>",
	})
	req = testutil.WithUser(req, testutil.AdminUser())
	rec := httptest.NewRecorder()

	h.HandleSend(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	var resp struct {
		DispatchID string `json:"dispatch_id"`
		Attempted  int    `json:"attempted"`
		Sent       int    `json:"sent"`
	}
	testutil.DecodeJSON(t, rec, &resp)

	if resp.Attempted != 2 || resp.Sent != 2 {
		t.Errorf("counts: attempted %d sent %d, want 2/2", resp.Attempted, resp.Sent)
	}
	if resp.DispatchID == "" {
		t.Error("dispatch_id missing")
	}
	if len(sender.sent) != 2 {
		t.Errorf("emails delivered: got %d, want 2", len(sender.sent))
	}
	for _, e := range sender.sent {
		if e.To == "gone@example.com" {
			t.Error("inactive subscriber received the newsletter")
		}
	}

	// One history record per dispatch.
	rows, total, err := h.History.List(ctx, 0, 10)
	if err != nil {
		t.Fatalf("history List failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("history records: got %d, want 1", total)
	}
	if rows[0].AttemptedCount != 2 || rows[0].SentCount != 2 {
		t.Errorf("history counts: %+v", rows[0])
	}
}

func TestHandleSend_PartialFailure(t *testing.T) {
	h, fx, sender := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateSubscriber(ctx, "good@example.com", true)
	fx.CreateSubscriber(ctx, "bad@example.com", true)
	sender.failFor["bad@example.com"] = true

	req := testutil.NewJSONRequest(t, "POST", "/newsletter/send", map[string]any{
		"subject": "Update",
		"body":    "<p>Body</p>",
	})
	req = testutil.WithUser(req, testutil.AdminUser())
	rec := httptest.NewRecorder()

	h.HandleSend(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (one failure must not abort)", rec.Code)
	}

	var resp struct {
		Attempted int `json:"attempted"`
		Sent      int `json:"sent"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Attempted != 2 || resp.Sent != 1 {
		t.Errorf("counts: attempted %d sent %d, want 2/1", resp.Attempted, resp.Sent)
	}

	rows, _, err := h.History.List(ctx, 0, 10)
	if err != nil || len(rows) != 1 {
		t.Fatalf("history List failed: %v (%d rows)", err, len(rows))
	}
	if rows[0].AttemptedCount != 2 || rows[0].SentCount != 1 {
		t.Errorf("history counts: attempted %d sent %d, want 2/1",
			rows[0].AttemptedCount, rows[0].SentCount)
	}
}

func TestHandleSend_SanitizesBody(t *testing.T) {
	h, fx, sender := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateSubscriber(ctx, "only@example.com", true)

	req := testutil.NewJSONRequest(t, "POST", "/newsletter/send", map[string]any{
		"subject": "Update",
		"body":    `<p>Safe</p><script>alert("x")</script>`,
	})
	req = testutil.WithUser(req, testutil.AdminUser())
	rec := httptest.NewRecorder()

	h.HandleSend(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d (body %s)", rec.Code, rec.Body.String())
	}
	if len(sender.sent) != 1 {
		t.Fatalf("emails delivered: got %d", len(sender.sent))
	}
	if strings.Contains(sender.sent[0].HTMLBody, "<script>") {
		t.Errorf("body not sanitized: %q", sender.sent[0].HTMLBody)
	}
}

func TestHandleSend_NoSubscribers(t *testing.T) {
	h, _, _ := newHandler(t)

	req := testutil.NewJSONRequest(t, "POST", "/newsletter/send", map[string]any{
		"subject": "Update",
		"body":    "<p>Body</p>",
	})
	req = testutil.WithUser(req, testutil.AdminUser())
	rec := httptest.NewRecorder()

	h.HandleSend(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}
