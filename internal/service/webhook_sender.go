package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"log/slog"

	"cadizaccesible/internal/config"
	"cadizaccesible/internal/domain"
	"cadizaccesible/pkg/e"
)

// StatusEventStream is the consuming side of the status-event queue.
type StatusEventStream interface {
	BRPop(ctx context.Context, timeout time.Duration) (domain.StatusChangedEvent, error)
}

// WebhookSender drains the status-event queue and delivers each applied
// transition to the configured webhook URL.
type WebhookSender struct {
	logger *slog.Logger
	cfg    config.WebhookConfig
	queue  StatusEventStream
	http   *http.Client
}

func NewWebhookSender(logger *slog.Logger, cfg config.WebhookConfig, q StatusEventStream) *WebhookSender {
	return &WebhookSender{
		logger: logger,
		cfg:    cfg,
		queue:  q,
		http:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (s *WebhookSender) Run(ctx context.Context) {
	s.logger.Info("webhookSender STARTED", slog.String("url", s.cfg.URL))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("webhookSender STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		event, err := s.queue.BRPop(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) {
				continue
			}
			if ctx.Err() != nil {
				return
			}
			s.logger.Error("BRPop failed", slog.Any("error", err))
			continue
		}

		if err := s.deliver(ctx, event); err != nil {
			s.logger.Error("webhook delivery failed",
				slog.String("incident_id", event.IncidentID),
				slog.Any("error", err),
			)
		}
	}
}

func (s *WebhookSender) deliver(ctx context.Context, event domain.StatusChangedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		s.logger.Warn("webhook non-2xx response",
			slog.Int("status", resp.StatusCode),
			slog.String("incident_id", event.IncidentID),
		)
	}
	return nil
}
