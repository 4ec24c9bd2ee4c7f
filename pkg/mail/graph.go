package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
)

const maxErrorBody = 2048

type graphSender struct {
	url    string
	client *http.Client
}

func (s *graphSender) Send(ctx context.Context, token Token, msg Message) error {
	if msg.To == "" || msg.Subject == "" {
		return ErrInvalidMessage
	}
	if token.AccessToken == "" {
		return ErrTokenRejected
	}

	payload := sendMailRequest{
		Message: graphMessage{
			Subject: msg.Subject,
			Body:    graphBody{ContentType: "HTML", Content: msg.HTML},
		},
		SaveToSentItems: true,
	}
	var to graphRecipient
	to.EmailAddress.Address = msg.To
	payload.Message.ToRecipients = []graphRecipient{to}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("mail: marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("mail: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("client-request-id", uuid.NewString())

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("mail: send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusAccepted {
		return nil
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return ErrTokenRejected
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &SendError{StatusCode: resp.StatusCode, Body: string(raw)}
}
