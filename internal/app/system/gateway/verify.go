// internal/app/system/gateway/verify.go
package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// VerifySignature checks that a payment callback was signed by the gateway.
//
// The gateway signs the string "<order_id>|<payment_id>" with HMAC-SHA256
// keyed by the shared key secret and sends the hex digest alongside the
// payment. The comparison is constant-time; plain string equality here would
// be a timing-attack surface.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// Sign computes the signature the gateway would produce for an order/payment
// pair. Exposed for tests and for simulating callbacks in development.
func Sign(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}
