package mail

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphSender_Send(t *testing.T) {
	var got sendMailRequest
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1.0/me/sendMail", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_, err := uuid.Parse(r.Header.Get("client-request-id"))
		assert.NoError(t, err)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	s := NewGraphSender(GraphConfig{BaseURL: srv.URL + "/"})
	err := s.Send(context.Background(), Token{AccessToken: "tok"}, Message{
		To:      "ana@example.com",
		Subject: "Alertas pendientes - 15/05/2024",
		HTML:    "<ul><li>x</li></ul>",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "Alertas pendientes - 15/05/2024", got.Message.Subject)
	assert.Equal(t, "HTML", got.Message.Body.ContentType)
	require.Len(t, got.Message.ToRecipients, 1)
	assert.Equal(t, "ana@example.com", got.Message.ToRecipients[0].EmailAddress.Address)
}

func TestGraphSender_Failures(t *testing.T) {
	tcs := map[string]struct {
		status int
		check  func(t *testing.T, err error)
	}{
		"unauthorized": {
			status: http.StatusUnauthorized,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrTokenRejected)
			},
		},
		"server error": {
			status: http.StatusServiceUnavailable,
			check: func(t *testing.T, err error) {
				var se *SendError
				require.True(t, errors.As(err, &se))
				assert.Equal(t, http.StatusServiceUnavailable, se.StatusCode)
				assert.Contains(t, se.Body, "busy")
			},
		},
		"ok is not accepted": {
			status: http.StatusOK,
			check: func(t *testing.T, err error) {
				var se *SendError
				assert.True(t, errors.As(err, &se))
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			calls := 0
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte("busy"))
			}))
			defer srv.Close()

			s := NewGraphSender(GraphConfig{BaseURL: srv.URL})
			err := s.Send(context.Background(), Token{AccessToken: "tok"}, Message{To: "a@b.c", Subject: "s"})
			require.Error(t, err)
			tc.check(t, err)
			assert.Equal(t, 1, calls, "no retries")
		})
	}
}

func TestGraphSender_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer srv.Close()

	s := NewGraphSender(GraphConfig{BaseURL: srv.URL, Timeout: 50 * time.Millisecond})
	err := s.Send(context.Background(), Token{AccessToken: "tok"}, Message{To: "a@b.c", Subject: "s"})
	assert.Error(t, err)
}

func TestGraphSender_InvalidMessage(t *testing.T) {
	s := NewGraphSender(GraphConfig{BaseURL: "http://127.0.0.1:1"})
	assert.ErrorIs(t, s.Send(context.Background(), Token{AccessToken: "tok"}, Message{Subject: "s"}), ErrInvalidMessage)
	assert.ErrorIs(t, s.Send(context.Background(), Token{}, Message{To: "a@b.c", Subject: "s"}), ErrTokenRejected)
}
