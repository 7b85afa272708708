package payment_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/sevasetu/sevahub/internal/app/features/payment"
	donationstore "github.com/sevasetu/sevahub/internal/app/store/donations"
	"github.com/sevasetu/sevahub/internal/app/system/gateway"
	"github.com/sevasetu/sevahub/internal/app/system/indexes"
	"github.com/sevasetu/sevahub/internal/app/system/mailer"
	"github.com/sevasetu/sevahub/internal/domain/models"
	"github.com/sevasetu/sevahub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const testKeySecret = "test_key_secret"

// stubGateway returns a canned order without talking to the real gateway.
type stubGateway struct {
	fail bool
}

func (s *stubGateway) CreateOrder(amount float64, currency string) (gateway.Order, error) {
	if s.fail {
		return gateway.Order{}, errors.New("gateway down")
	}
	if currency == "" {
		currency = gateway.DefaultCurrency
	}
	return gateway.Order{
		OrderID:  "order_stub_001",
		Amount:   int64(amount * 100),
		Currency: currency,
		Receipt:  "rcpt_test",
	}, nil
}

// recorderSender captures outbound email for assertions.
type recorderSender struct {
	mu   sync.Mutex
	sent []mailer.Email
}

func (r *recorderSender) Send(e mailer.Email) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, e)
	return nil
}

func newHandler(t *testing.T) (*payment.Handler, *donationstore.Store, *recorderSender) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	donations := donationstore.New(db)
	sender := &recorderSender{}
	h := payment.NewHandler(&stubGateway{}, "rzp_test_key", testKeySecret,
		donations, sender, "SevaHub", zap.NewNop())
	return h, donations, sender
}

func TestHandleCreateOrder(t *testing.T) {
	h, _, _ := newHandler(t)

	req := testutil.NewJSONRequest(t, "POST", "/payment/create-order",
		map[string]any{"amount": 500.0})
	rec := httptest.NewRecorder()

	h.HandleCreateOrder(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	var resp struct {
		OrderID  string `json:"order_id"`
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
		KeyID    string `json:"key_id"`
	}
	testutil.DecodeJSON(t, rec, &resp)

	if resp.OrderID != "order_stub_001" {
		t.Errorf("order_id: got %q", resp.OrderID)
	}
	if resp.Amount != 50000 {
		t.Errorf("amount: got %d, want 50000 paise", resp.Amount)
	}
	if resp.KeyID != "rzp_test_key" {
		t.Errorf("key_id: got %q", resp.KeyID)
	}
}

func TestHandleCreateOrder_BadAmount(t *testing.T) {
	h, _, _ := newHandler(t)

	for _, amount := range []float64{0, -10} {
		req := testutil.NewJSONRequest(t, "POST", "/payment/create-order",
			map[string]any{"amount": amount})
		rec := httptest.NewRecorder()

		h.HandleCreateOrder(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("amount %v: status got %d, want 400", amount, rec.Code)
		}
	}
}

func TestHandleCreateOrder_GatewayDown(t *testing.T) {
	h, _, _ := newHandler(t)
	h.Gateway = &stubGateway{fail: true}

	req := testutil.NewJSONRequest(t, "POST", "/payment/create-order",
		map[string]any{"amount": 100.0})
	rec := httptest.NewRecorder()

	h.HandleCreateOrder(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status: got %d, want 502", rec.Code)
	}
}

func verifyBody(orderID, paymentID string, amount float64) map[string]any {
	return map[string]any{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
		"razorpay_signature":  gateway.Sign(orderID, paymentID, testKeySecret),
		"amount":              amount,
		"donor_name":          "Asha Patel",
		"donor_email":         "asha@example.com",
	}
}

func TestHandleVerify_ValidSignature(t *testing.T) {
	h, donations, _ := newHandler(t)

	donorID := primitive.NewObjectID()
	body := verifyBody("order_abc", "pay_xyz", 1000)
	body["user_id"] = donorID.Hex()

	req := testutil.NewJSONRequest(t, "POST", "/payment/verify", body)
	rec := httptest.NewRecorder()

	h.HandleVerify(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	var resp struct {
		Message    string `json:"message"`
		DonationID string `json:"donation_id"`
	}
	testutil.DecodeJSON(t, rec, &resp)

	if resp.DonationID == "" {
		t.Fatal("donation_id missing from response")
	}
	id, err := primitive.ObjectIDFromHex(resp.DonationID)
	if err != nil {
		t.Fatalf("donation_id not a valid ObjectID: %v", err)
	}

	ctx, cancel := testutil.TestContext()
	defer cancel()
	d, err := donations.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if d.Status != models.DonationCompleted {
		t.Errorf("status: got %q, want completed", d.Status)
	}
	if d.TransactionID != "pay_xyz" {
		t.Errorf("transaction_id: got %q", d.TransactionID)
	}
	if d.DonorName != "Asha Patel" {
		t.Errorf("donor_name: got %q", d.DonorName)
	}
	if d.UserID == nil || *d.UserID != donorID {
		t.Errorf("user_id: got %v, want %s", d.UserID, donorID.Hex())
	}
}

func TestHandleVerify_BadUserID(t *testing.T) {
	h, donations, _ := newHandler(t)

	body := verifyBody("order_abc", "pay_xyz", 1000)
	body["user_id"] = "not-an-object-id"

	req := testutil.NewJSONRequest(t, "POST", "/payment/verify", body)
	rec := httptest.NewRecorder()

	h.HandleVerify(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}

	ctx, cancel := testutil.TestContext()
	defer cancel()
	_, total, err := donations.List(ctx, 0, 10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 0 {
		t.Errorf("donations after rejected user_id: got %d, want 0", total)
	}
}

func TestHandleVerify_InvalidSignature(t *testing.T) {
	h, donations, _ := newHandler(t)

	body := verifyBody("order_abc", "pay_xyz", 1000)
	body["razorpay_signature"] = "0000000000000000000000000000000000000000000000000000000000000000"

	req := testutil.NewJSONRequest(t, "POST", "/payment/verify", body)
	rec := httptest.NewRecorder()

	h.HandleVerify(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}

	var resp struct {
		Error string `json:"error"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Error != "Invalid payment signature" {
		t.Errorf("error: got %q, want %q", resp.Error, "Invalid payment signature")
	}

	// No donation must be written for a rejected signature.
	ctx, cancel := testutil.TestContext()
	defer cancel()
	rows, total, err := donations.List(ctx, 0, 10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 0 || len(rows) != 0 {
		t.Errorf("donations after rejected verify: got %d, want 0", total)
	}
}

func TestHandleVerify_SignatureForDifferentPayment(t *testing.T) {
	h, _, _ := newHandler(t)

	// Signature is valid for pay_other, submitted with pay_xyz.
	body := verifyBody("order_abc", "pay_xyz", 1000)
	body["razorpay_signature"] = gateway.Sign("order_abc", "pay_other", testKeySecret)

	req := testutil.NewJSONRequest(t, "POST", "/payment/verify", body)
	rec := httptest.NewRecorder()

	h.HandleVerify(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}

func TestHandleVerify_Replay(t *testing.T) {
	h, donations, _ := newHandler(t)

	first := httptest.NewRecorder()
	h.HandleVerify(first, testutil.NewJSONRequest(t, "POST", "/payment/verify",
		verifyBody("order_abc", "pay_once", 750)))
	if first.Code != http.StatusOK {
		t.Fatalf("first verify: got %d (body %s)", first.Code, first.Body.String())
	}

	second := httptest.NewRecorder()
	h.HandleVerify(second, testutil.NewJSONRequest(t, "POST", "/payment/verify",
		verifyBody("order_abc", "pay_once", 750)))
	if second.Code != http.StatusOK {
		t.Fatalf("replayed verify: got %d (body %s)", second.Code, second.Body.String())
	}

	var r1, r2 struct {
		DonationID string `json:"donation_id"`
	}
	testutil.DecodeJSON(t, first, &r1)
	testutil.DecodeJSON(t, second, &r2)
	if r1.DonationID != r2.DonationID {
		t.Errorf("replay produced a different donation: %s vs %s", r1.DonationID, r2.DonationID)
	}

	ctx, cancel := testutil.TestContext()
	defer cancel()
	_, total, err := donations.List(ctx, 0, 10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 1 {
		t.Errorf("donations after replay: got %d, want 1", total)
	}
}

func TestHandleVerify_MissingFields(t *testing.T) {
	h, _, _ := newHandler(t)

	req := testutil.NewJSONRequest(t, "POST", "/payment/verify",
		map[string]any{"amount": 100.0})
	rec := httptest.NewRecorder()

	h.HandleVerify(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}
