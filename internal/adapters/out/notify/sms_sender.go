// Package notify implements outbound notification senders backed by HTTP
// messaging gateways.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

const defaultRequestTimeout = 10 * time.Second

var _ ports.SMSSender = &GatewaySMSSender{}

type smsRequest struct {
	PhoneNumber string `json:"phone_number"`
	Message     string `json:"message"`
	MessageType string `json:"message_type"`
}

// GatewaySMSSender delivers SMS messages through an HTTP gateway. Messages
// are flagged transactional so the gateway bypasses marketing throttles.
type GatewaySMSSender struct {
	gatewayURL string
	client     *http.Client
}

func NewGatewaySMSSender(gatewayURL string) (*GatewaySMSSender, error) {
	if gatewayURL == "" {
		return nil, errs.NewValueIsRequiredError("gatewayURL")
	}
	return &GatewaySMSSender{
		gatewayURL: gatewayURL,
		client:     &http.Client{Timeout: defaultRequestTimeout},
	}, nil
}

func (s *GatewaySMSSender) SendSMS(ctx context.Context, phoneNumber string, message string) error {
	if phoneNumber == "" {
		return errs.NewValueIsRequiredError("phoneNumber")
	}
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}

	body, err := json.Marshal(smsRequest{
		PhoneNumber: phoneNumber,
		Message:     message,
		MessageType: "transactional",
	})
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("message", err)
	}

	return postJSON(ctx, s.client, s.gatewayURL, body, "sms gateway")
}

func postJSON(ctx context.Context, client *http.Client, url string, body []byte, collaborator string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errs.NewCollaboratorUnavailableErrorWithCause(collaborator, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return errs.NewCollaboratorUnavailableErrorWithCause(collaborator, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errs.NewCollaboratorUnavailableErrorWithCause(collaborator,
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}
	return nil
}
