package mailer

import (
	"strings"
	"testing"
	"time"
)

func TestBuildReceiptEmail(t *testing.T) {
	e := BuildReceiptEmail(ReceiptData{
		SiteName:      "SevaHub",
		DonorName:     "Asha Patel",
		Amount:        500,
		Currency:      "INR",
		TransactionID: "pay_NXhUPqzK3WfJQd",
		DonatedAt:     time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
	})

	if !strings.Contains(e.Subject, "SevaHub") {
		t.Errorf("subject missing site name: %q", e.Subject)
	}
	if !strings.Contains(e.TextBody, "Asha Patel") {
		t.Errorf("text body missing donor name")
	}
	if !strings.Contains(e.TextBody, "INR 500.00") {
		t.Errorf("text body missing formatted amount: %q", e.TextBody)
	}
	if !strings.Contains(e.HTMLBody, "pay_NXhUPqzK3WfJQd") {
		t.Errorf("html body missing transaction id")
	}
	if !strings.Contains(e.TextBody, "14 March 2026") {
		t.Errorf("text body missing formatted date: %q", e.TextBody)
	}
}

func TestBuildReceiptEmail_EscapesHTML(t *testing.T) {
	e := BuildReceiptEmail(ReceiptData{
		SiteName:  "SevaHub",
		DonorName: `<script>alert("x")</script>`,
		Amount:    100,
		Currency:  "INR",
		DonatedAt: time.Now(),
	})

	if strings.Contains(e.HTMLBody, "<script>") {
		t.Error("donor name was not HTML-escaped in the receipt body")
	}
}
