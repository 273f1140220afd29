package payment

//go:generate go run go.uber.org/mock/mockgen -source=./payment.go -destination=./mocks/payment_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"medistay/config"
	"medistay/infras/otel"
	"medistay/shared/constant"
	"medistay/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	ModePayment      = "payment"
	ModeSubscription = "subscription"

	defaultTimeoutMS = 10000

	headerIdempotencyKey = "Idempotency-Key"
)

var (
	// ErrSessionCreation is returned when the processor answers 2xx but the
	// session carries no client secret. A falsy secret is never passed through.
	ErrSessionCreation = errors.New("payment session created without client secret")
)

// Session is the processor's checkout session as the service consumes it.
type Session struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
	URL          string `json:"url"`
}

type CreateSessionRequest struct {
	AmountCents   int64
	Currency      string
	Mode          string
	ProductName   string
	Reference     string
	CustomerEmail string

	// IdempotencyKey makes retries replay the same session instead of opening
	// a duplicate. Callers derive it from stable request identity; when empty
	// a random key is used and the request is not replayable.
	IdempotencyKey string
}

type Client interface {
	CreateSession(ctx context.Context, req CreateSessionRequest) (Session, error)
	GetSession(ctx context.Context, id string) (Session, error)
}

type clientImpl struct {
	http *http.Client
	cfg  *config.Config
	otel otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Client {
	timeout := cfg.External.Payment.TimeoutMS
	if timeout <= 0 {
		timeout = defaultTimeoutMS
	}

	return &clientImpl{
		http: &http.Client{Timeout: time.Duration(timeout) * time.Millisecond},
		cfg:  cfg,
		otel: otel,
	}
}

func (c *clientImpl) CreateSession(ctx context.Context, req CreateSessionRequest) (res Session, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".payment.CreateSession")
	defer scope.End()
	defer scope.TraceIfError(err)

	form := url.Values{}
	form.Set("mode", req.Mode)
	form.Set("ui_mode", "embedded")
	form.Set("currency", req.Currency)
	form.Set("amount", strconv.FormatInt(req.AmountCents, 10))
	form.Set("product_name", req.ProductName)
	form.Set("client_reference_id", req.Reference)
	form.Set("return_url", c.cfg.External.Payment.ReturnURL)

	if req.CustomerEmail != "" {
		form.Set("customer_email", req.CustomerEmail)
	}

	endpoint := c.cfg.External.Payment.APIBase + "/v1/checkout/sessions"

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return res, fmt.Errorf("failed to build session request: %w", err)
	}

	httpReq.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeFormURLEncoded)
	httpReq.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+c.cfg.External.Payment.SecretKey)
	idempotencyKey := req.IdempotencyKey
	if idempotencyKey == constant.Empty {
		idempotencyKey = uuid.NewString()
	}

	httpReq.Header.Set(headerIdempotencyKey, idempotencyKey)

	res, err = c.do(httpReq)
	if err != nil {
		return res, err
	}

	if res.ClientSecret == constant.Empty {
		log.Error().Str("session_id", res.ID).Msg("payment processor returned session without client secret")

		return res, ErrSessionCreation
	}

	return res, nil
}

func (c *clientImpl) GetSession(ctx context.Context, id string) (res Session, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".payment.GetSession")
	defer scope.End()
	defer scope.TraceIfError(err)

	endpoint := c.cfg.External.Payment.APIBase + "/v1/checkout/sessions/" + url.PathEscape(id)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return res, fmt.Errorf("failed to build session request: %w", err)
	}

	httpReq.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+c.cfg.External.Payment.SecretKey)

	return c.do(httpReq)
}

type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *clientImpl) do(req *http.Request) (Session, error) {
	var session Session

	resp, err := c.http.Do(req)
	if err != nil {
		return session, fmt.Errorf("payment request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return session, fmt.Errorf("failed to read payment response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var envelope errorEnvelope
		_ = json.Unmarshal(body, &envelope)

		message := envelope.Error.Message
		if message == constant.Empty {
			message = http.StatusText(resp.StatusCode)
		}

		log.Error().Int("status", resp.StatusCode).Str("message", message).Msg("payment processor rejected request")

		return session, failure.Upstream(resp.StatusCode, message) //nolint:wrapcheck
	}

	if err := json.Unmarshal(body, &session); err != nil {
		return session, fmt.Errorf("failed to decode payment response: %w", err)
	}

	return session, nil
}
