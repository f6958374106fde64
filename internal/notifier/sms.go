package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// SMSConfig describes a form-post SMS gateway.
type SMSConfig struct {
	URL      string
	Username string
	APIKey   string
	SenderID string
}

// smsResponse is the gateway's reply. Only the recipient statuses are read.
type smsResponse struct {
	SMSMessageData struct {
		Message    string `json:"Message"`
		Recipients []struct {
			StatusCode int    `json:"statusCode"`
			Number     string `json:"number"`
			Status     string `json:"status"`
			MessageID  string `json:"messageId"`
		} `json:"Recipients"`
	} `json:"SMSMessageData"`
}

type httpSMSSender struct {
	cfg    SMSConfig
	client *http.Client
	logger zerolog.Logger
}

// NewHTTPSMSSender creates an SMSSender posting to cfg.URL.
func NewHTTPSMSSender(cfg SMSConfig, logger zerolog.Logger) SMSSender {
	return &httpSMSSender{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger.With().Str("component", "sms").Logger(),
	}
}

func (s *httpSMSSender) SendOTP(ctx context.Context, phone string, otp int) error {
	data := url.Values{}
	data.Set("username", s.cfg.Username)
	data.Set("to", phone)
	data.Set("message", fmt.Sprintf("Your food-order one time password is %d", otp))
	if s.cfg.SenderID != "" {
		data.Set("from", s.cfg.SenderID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, strings.NewReader(data.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create SMS request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("apikey", s.cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error().Err(err).Str("phone", phone).Msg("sms request failed")
		return fmt.Errorf("failed to send SMS: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read SMS response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.logger.Error().Int("status", resp.StatusCode).Str("phone", phone).Msg("sms gateway rejected request")
		return fmt.Errorf("sms gateway returned status %d", resp.StatusCode)
	}

	var parsed smsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return fmt.Errorf("failed to decode SMS response: %w", err)
	}

	for _, r := range parsed.SMSMessageData.Recipients {
		if r.Status == "Success" || (r.StatusCode >= 200 && r.StatusCode < 300) {
			continue
		}
		return fmt.Errorf("sms to %s failed: %s", r.Number, r.Status)
	}

	s.logger.Info().Str("phone", phone).Msg("otp sms sent")
	return nil
}
