package notify

import (
	"context"
	"encoding/json"
	"net/http"

	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

var _ ports.EmailSender = &GatewayEmailSender{}

type emailRequest struct {
	RecipientEmail string `json:"recipient_email"`
	Subject        string `json:"subject"`
	Body           string `json:"body"`
}

// GatewayEmailSender delivers email through an HTTP gateway.
type GatewayEmailSender struct {
	gatewayURL string
	client     *http.Client
}

func NewGatewayEmailSender(gatewayURL string) (*GatewayEmailSender, error) {
	if gatewayURL == "" {
		return nil, errs.NewValueIsRequiredError("gatewayURL")
	}
	return &GatewayEmailSender{
		gatewayURL: gatewayURL,
		client:     &http.Client{Timeout: defaultRequestTimeout},
	}, nil
}

func (s *GatewayEmailSender) SendEmail(ctx context.Context, email string, subject string, body string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if subject == "" {
		return errs.NewValueIsRequiredError("subject")
	}
	if body == "" {
		return errs.NewValueIsRequiredError("body")
	}

	payload, err := json.Marshal(emailRequest{
		RecipientEmail: email,
		Subject:        subject,
		Body:           body,
	})
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}

	return postJSON(ctx, s.client, s.gatewayURL, payload, "email gateway")
}
