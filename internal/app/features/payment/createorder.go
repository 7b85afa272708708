// internal/app/features/payment/createorder.go
package payment

import (
	"net/http"

	"github.com/sevasetu/sevahub/internal/app/system/httpjson"
	"go.uber.org/zap"
)

// createOrderRequest is the JSON body for POST /payment/create-order.
type createOrderRequest struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency,omitempty"`
}

// createOrderResponse is everything the client needs to launch the checkout.
type createOrderResponse struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"` // smallest currency unit
	Currency string `json:"currency"`
	KeyID    string `json:"key_id"`
}

// HandleCreateOrder handles POST /payment/create-order. It reserves an order
// with the gateway for the requested amount; no donation record is written
// until the payment is verified.
func (h *Handler) HandleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Amount <= 0 {
		httpjson.Error(w, http.StatusBadRequest, "amount must be a positive number")
		return
	}

	order, err := h.Gateway.CreateOrder(req.Amount, req.Currency)
	if err != nil {
		h.Log.Error("create gateway order failed",
			zap.Float64("amount", req.Amount),
			zap.Error(err))
		httpjson.Error(w, http.StatusBadGateway, "payment gateway unavailable")
		return
	}

	httpjson.Write(w, http.StatusOK, createOrderResponse{
		OrderID:  order.OrderID,
		Amount:   order.Amount,
		Currency: order.Currency,
		KeyID:    h.KeyID,
	})
}
