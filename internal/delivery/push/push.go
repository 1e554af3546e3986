// Package push decodes and authenticates Pub/Sub push deliveries.
package push

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"satoru/config"
	"satoru/internal/domain/service"
	"satoru/internal/errors"

	"google.golang.org/api/idtoken"
)

// ErrMalformedMessage is returned when a push body or its payload cannot be decoded.
var ErrMalformedMessage = errors.New("malformed push message")

// Message is the envelope Pub/Sub POSTs to push endpoints.
type Message struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// DecodeEvent unwraps the base64 payload of a push message into a document event.
func DecodeEvent(msg *Message) (*service.DocumentEvent, error) {
	data, err := base64.StdEncoding.DecodeString(msg.Message.Data)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedMessage, err.Error())
	}

	var event service.DocumentEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(ErrMalformedMessage, err.Error())
	}
	if event.Type == "" {
		return nil, errors.Wrap(ErrMalformedMessage, "event has no type")
	}

	return &event, nil
}

type validateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// Verifier checks the OIDC token Pub/Sub attaches to authenticated push requests.
type Verifier struct {
	audience string
	validate validateFunc
}

// NewVerifier builds a verifier from the pubsub config. Verification is disabled
// when no push audience is configured.
func NewVerifier(cfg *config.Config) *Verifier {
	audience := ""
	if cfg.PubSub != nil {
		audience = cfg.PubSub.PushAudience
	}

	return &Verifier{audience: audience, validate: idtoken.Validate}
}

// Enabled reports whether requests are verified at all.
func (v *Verifier) Enabled() bool {
	return v.audience != ""
}

// Verify validates the bearer token of req against the configured audience.
// Reference: https://cloud.google.com/pubsub/docs/authenticate-push-subscriptions
func (v *Verifier) Verify(req *http.Request) error {
	if !v.Enabled() {
		return nil
	}

	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		return errors.New("invalid authorization header format")
	}

	payload, err := v.validate(req.Context(), token, v.audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
