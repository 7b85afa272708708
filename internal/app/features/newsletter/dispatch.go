// internal/app/features/newsletter/dispatch.go
package newsletter

import (
	"context"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sevasetu/sevahub/internal/app/system/httpjson"
	"github.com/sevasetu/sevahub/internal/app/system/mailer"
	"github.com/sevasetu/sevahub/internal/app/system/paging"
	"github.com/sevasetu/sevahub/internal/app/system/sanitize"
	"github.com/sevasetu/sevahub/internal/app/system/timeouts"
	"github.com/sevasetu/sevahub/internal/domain/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// sendConcurrency caps parallel SMTP sends during a dispatch.
const sendConcurrency = 8

// sendRequest is the JSON body for POST /newsletter/send.
type sendRequest struct {
	Subject string `json:"subject"`
	Body    string `json:"body"` // HTML, sanitized before sending
}

// HandleSend handles POST /newsletter/send (admin). The issue is sent to
// every active subscriber with bounded concurrency; individual failures are
// logged and counted but do not abort the dispatch. One history record is
// written per dispatch with both the attempted and successful counts.
func (h *Handler) HandleSend(w http.ResponseWriter, r *http.Request) {
	var req sendRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	req.Subject = strings.TrimSpace(req.Subject)
	if req.Subject == "" || strings.TrimSpace(req.Body) == "" {
		httpjson.Error(w, http.StatusBadRequest, "subject and body are required")
		return
	}
	body := sanitize.HTML(req.Body)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Dispatch())
	defer cancel()

	subs, err := h.Subscribers.ListActive(ctx)
	if err != nil {
		h.Log.Error("load subscribers for dispatch failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}
	if len(subs) == 0 {
		httpjson.Error(w, http.StatusBadRequest, "there are no active subscribers")
		return
	}

	dispatchID := uuid.NewString()
	started := time.Now().UTC()

	var sent atomic.Int64
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(sendConcurrency)
	for _, sub := range subs {
		sub := sub
		g.Go(func() error {
			err := h.Mail.Send(mailer.Email{
				To:       sub.Email,
				Subject:  req.Subject,
				HTMLBody: body,
			})
			if err != nil {
				// One bad address must not sink the rest of the dispatch.
				h.Log.Warn("newsletter send failed",
					zap.String("dispatch_id", dispatchID),
					zap.String("to", sub.Email),
					zap.Error(err))
				return nil
			}
			sent.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	record, err := h.History.Record(ctx, models.NewsletterHistory{
		DispatchID:     dispatchID,
		Subject:        req.Subject,
		Body:           body,
		AttemptedCount: len(subs),
		SentCount:      int(sent.Load()),
		SentAt:         started,
	})
	if err != nil {
		// The mail went out; losing the audit record is not worth a 500.
		h.Log.Error("record newsletter history failed",
			zap.String("dispatch_id", dispatchID),
			zap.Error(err))
	}

	h.Log.Info("newsletter dispatched",
		zap.String("dispatch_id", dispatchID),
		zap.Int("attempted", len(subs)),
		zap.Int64("sent", sent.Load()),
		zap.Duration("took", time.Since(started)))

	httpjson.Write(w, http.StatusOK, map[string]any{
		"message":     "Newsletter dispatched",
		"dispatch_id": dispatchID,
		"attempted":   len(subs),
		"sent":        sent.Load(),
		"history":     record,
	})
}

// ServeHistory handles GET /newsletter/history (admin).
func (h *Handler) ServeHistory(w http.ResponseWriter, r *http.Request) {
	page := paging.Parse(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rows, total, err := h.History.List(ctx, page.Skip(), page.Limit64())
	if err != nil {
		h.Log.Error("list newsletter history failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]any{
		"history": rows,
		"meta":    page.MetaFor(total),
	})
}
