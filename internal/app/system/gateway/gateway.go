// internal/app/system/gateway/gateway.go

// Package gateway wraps the Razorpay payment gateway: order creation before
// payment, and HMAC signature verification of the callback afterwards.
package gateway

import (
	"fmt"
	"math"
	"time"

	razorpay "github.com/razorpay/razorpay-go"
	"go.uber.org/zap"
)

// DefaultCurrency is used when a caller does not supply a currency code.
const DefaultCurrency = "INR"

// Order is the subset of the gateway's order object the client needs to
// launch the checkout.
type Order struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"` // smallest currency unit
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// OrderCreator creates a gateway order for an amount. The payment feature
// depends on this interface so tests can substitute a stub.
type OrderCreator interface {
	CreateOrder(amount float64, currency string) (Order, error)
}

// Client is the production OrderCreator backed by the Razorpay SDK.
type Client struct {
	rz    *razorpay.Client
	keyID string
	log   *zap.Logger
}

// New builds a gateway client from the key pair.
func New(keyID, keySecret string, log *zap.Logger) *Client {
	return &Client{
		rz:    razorpay.NewClient(keyID, keySecret),
		keyID: keyID,
		log:   log,
	}
}

// KeyID returns the public key identifier the client embeds in the checkout.
func (c *Client) KeyID() string {
	return c.keyID
}

// CreateOrder reserves an order with the gateway. The amount is converted to
// the smallest currency unit (×100) and tagged with a timestamp-derived
// receipt string. No retry is attempted; failures surface to the caller.
func (c *Client) CreateOrder(amount float64, currency string) (Order, error) {
	if currency == "" {
		currency = DefaultCurrency
	}
	receipt := fmt.Sprintf("rcpt_%d", time.Now().Unix())
	paise := subunits(amount)

	data := map[string]interface{}{
		"amount":   paise,
		"currency": currency,
		"receipt":  receipt,
	}
	body, err := c.rz.Order.Create(data, nil)
	if err != nil {
		return Order{}, fmt.Errorf("gateway order create: %w", err)
	}

	id, _ := body["id"].(string)
	if id == "" {
		return Order{}, fmt.Errorf("gateway order create: response missing order id")
	}

	c.log.Info("gateway order created",
		zap.String("order_id", id),
		zap.Int64("amount", paise),
		zap.String("currency", currency))

	return Order{OrderID: id, Amount: paise, Currency: currency, Receipt: receipt}, nil
}

// subunits converts a major-unit amount to the smallest currency unit.
// Rounded, not truncated: 10.55*100 is 1054.999... in binary floating point.
func subunits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
