package gateway

import (
	"strings"
	"testing"
)

const testSecret = "rzp_test_secret_0123456789"

func TestVerifySignature_Match(t *testing.T) {
	orderID := "order_NXhT4mBoLmQxFG"
	paymentID := "pay_NXhUPqzK3WfJQd"

	sig := Sign(orderID, paymentID, testSecret)
	if !VerifySignature(orderID, paymentID, sig, testSecret) {
		t.Error("expected a signature produced with the correct secret to verify")
	}
}

func TestVerifySignature_WrongSecret(t *testing.T) {
	sig := Sign("order_a", "pay_b", "some-other-secret")
	if VerifySignature("order_a", "pay_b", sig, testSecret) {
		t.Error("signature from a different secret must not verify")
	}
}

// mutate flips one character of s at index i.
func mutate(s string, i int) string {
	b := []byte(s)
	if b[i] == 'a' {
		b[i] = 'b'
	} else {
		b[i] = 'a'
	}
	return string(b)
}

func TestVerifySignature_MutatedIDs(t *testing.T) {
	orderID := "order_NXhT4mBoLmQxFG"
	paymentID := "pay_NXhUPqzK3WfJQd"
	sig := Sign(orderID, paymentID, testSecret)

	// Any single-character mutation of either id must fail verification.
	for i := 0; i < len(orderID); i++ {
		if VerifySignature(mutate(orderID, i), paymentID, sig, testSecret) {
			t.Errorf("verification passed with order id mutated at index %d", i)
		}
	}
	for i := 0; i < len(paymentID); i++ {
		if VerifySignature(orderID, mutate(paymentID, i), sig, testSecret) {
			t.Errorf("verification passed with payment id mutated at index %d", i)
		}
	}
}

func TestVerifySignature_TamperedSignature(t *testing.T) {
	orderID := "order_NXhT4mBoLmQxFG"
	paymentID := "pay_NXhUPqzK3WfJQd"
	sig := Sign(orderID, paymentID, testSecret)

	for i := 0; i < len(sig); i++ {
		if VerifySignature(orderID, paymentID, mutate(sig, i), testSecret) {
			t.Errorf("verification passed with signature mutated at index %d", i)
		}
	}
}

func TestVerifySignature_EmptyInputs(t *testing.T) {
	if VerifySignature("", "", "", testSecret) {
		t.Error("empty signature must not verify")
	}
	if VerifySignature("order_a", "pay_b", "", testSecret) {
		t.Error("missing signature must not verify")
	}
}

func TestSign_SeparatorMatters(t *testing.T) {
	// "ab|c" and "a|bc" concatenate to different signed strings even though
	// the raw characters are the same.
	if Sign("ab", "c", testSecret) == Sign("a", "bc", testSecret) {
		t.Error("separator must bind the order/payment boundary")
	}
}

func TestSign_HexEncoded(t *testing.T) {
	sig := Sign("order_a", "pay_b", testSecret)
	if len(sig) != 64 {
		t.Errorf("signature length: got %d, want 64 hex chars", len(sig))
	}
	if strings.ToLower(sig) != sig {
		t.Errorf("signature should be lowercase hex: %q", sig)
	}
}
