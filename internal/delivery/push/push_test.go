package push

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"satoru/config"
	"satoru/internal/domain/service"
	"satoru/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func rawMessage(data string) *Message {
	msg := &Message{}
	msg.Message.Data = data

	return msg
}

func encodedMessage(payload string) *Message {
	return rawMessage(base64.StdEncoding.EncodeToString([]byte(payload)))
}

func TestDecodeEvent(t *testing.T) {
	event, err := DecodeEvent(encodedMessage(`{"type":"document.uploaded","document_id":"d1","user_id":"u1"}`))

	require.NoError(t, err)
	assert.Equal(t, service.DocumentEventUploaded, event.Type)
	assert.Equal(t, "d1", event.DocumentID)
	assert.Equal(t, "u1", event.UserID)
}

func TestDecodeEvent_Malformed(t *testing.T) {
	tests := []struct {
		name string
		msg  *Message
	}{
		{name: "not base64", msg: rawMessage("%%%")},
		{name: "not json", msg: encodedMessage("hello")},
		{name: "no type", msg: encodedMessage(`{"document_id":"d1"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeEvent(tt.msg)

			assert.ErrorIs(t, err, ErrMalformedMessage)
		})
	}
}

func TestVerifier(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{PushAudience: "https://api.example.com/internal/pubsub/updates"}}

	newRequest := func(header string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/internal/pubsub/updates", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}

		return req
	}

	t.Run("disabled without audience", func(t *testing.T) {
		v := NewVerifier(&config.Config{PubSub: &config.PubSubConfig{}})

		assert.False(t, v.Enabled())
		assert.NoError(t, v.Verify(newRequest("")))
	})

	t.Run("accepts google issued token", func(t *testing.T) {
		v := NewVerifier(cfg)
		v.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			assert.Equal(t, "signed", token)
			assert.Equal(t, cfg.PubSub.PushAudience, audience)

			return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		}

		assert.NoError(t, v.Verify(newRequest("Bearer signed")))
	})

	t.Run("rejects", func(t *testing.T) {
		v := NewVerifier(cfg)
		v.validate = func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "evil.example.com"}, nil
		}

		assert.Error(t, v.Verify(newRequest("")))
		assert.Error(t, v.Verify(newRequest("Token abc")))
		assert.Error(t, v.Verify(newRequest("Bearer signed")))

		v.validate = func(context.Context, string, string) (*idtoken.Payload, error) {
			return nil, errors.New("bad signature")
		}
		assert.Error(t, v.Verify(newRequest("Bearer signed")))
	})
}
