package chainclient

import (
	"context"
	"fmt"
	"time"

	"facilitator_balances/internal/domain/entity"
	"facilitator_balances/internal/pkg/metrics"

	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Request is the wire-format request a codec builds for one balance lookup:
// a JSON-RPC POST body for chain-style networks, or a bare GET for
// account-API networks.
type Request struct {
	Method string
	Body   []byte
}

// Codec knows how to build one balance request and parse one balance
// response for its protocol. ParseResponse returns the native balance as a
// decimal string scaled by the protocol's decimal exponent and formatted to
// four decimal places.
type Codec interface {
	Kind() entity.ProtocolKind
	BuildRequest(address string) (Request, error)
	ParseResponse(raw []byte) (string, error)

	// CallTimeout is the independent per-endpoint budget. One slow endpoint
	// must not block trying the next.
	CallTimeout() time.Duration
}

// rpcError is the JSON-RPC error payload shared by the chain-style codecs.
// Its presence in a response advances the fallback walk.
type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// Walker executes the endpoint fallback walk for every protocol: try the
// resolved endpoints in order, first well-formed success response wins, any
// failure advances to the next endpoint. Exhausting the list yields a
// NetworkUnavailable error for that network only, never a batch abort.
type Walker struct {
	client  *fasthttp.Client
	limiter *rate.Limiter
	codecs  map[entity.ProtocolKind]Codec
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewWalker creates a Walker dispatching to the given codecs. requestsPerSec
// bounds the total outbound request rate across all networks, keeping the
// service polite to public endpoints.
func NewWalker(codecs []Codec, requestsPerSec int, m *metrics.Metrics, logger *zap.Logger) *Walker {
	byKind := make(map[entity.ProtocolKind]Codec, len(codecs))
	for _, c := range codecs {
		byKind[c.Kind()] = c
	}
	return &Walker{
		client:  &fasthttp.Client{},
		limiter: rate.NewLimiter(rate.Limit(requestsPerSec), requestsPerSec),
		codecs:  byKind,
		metrics: m,
		logger:  logger.Named("BalanceFetcher"),
	}
}

// FetchBalance fetches the native balance for one network by walking its
// resolved endpoint list.
func (w *Walker) FetchBalance(ctx context.Context, desc entity.NetworkDescriptor, endpoints []string) (string, error) {
	codec, ok := w.codecs[desc.Kind]
	if !ok {
		return "", &entity.FetchError{
			Kind:      entity.FetchFatal,
			NetworkID: desc.ID,
			Err:       fmt.Errorf("no protocol client registered for kind %s", desc.Kind),
		}
	}

	req, err := codec.BuildRequest(desc.Address)
	if err != nil {
		w.logger.Error("Failed to build balance request",
			zap.String("network", desc.ID), zap.Error(err))
		w.metrics.IncNetworkUnavailable(desc.ID)
		return "", &entity.FetchError{Kind: entity.NetworkUnavailable, NetworkID: desc.ID, Err: err}
	}

	start := time.Now()
	defer func() {
		w.metrics.ObserveFetchDuration(desc.ID, time.Since(start))
	}()

	for _, endpoint := range endpoints {
		if ctx.Err() != nil {
			break
		}

		raw, kind, err := w.do(ctx, endpoint, req, codec.CallTimeout())
		if err != nil {
			w.logger.Warn("Endpoint attempt failed, advancing fallback walk",
				zap.String("network", desc.ID),
				zap.String("endpoint", endpoint),
				zap.String("reason", kind.String()),
				zap.Error(err))
			w.metrics.IncEndpointFailure(desc.ID, kind.String())
			continue
		}

		balance, err := codec.ParseResponse(raw)
		if err != nil {
			w.logger.Warn("Endpoint returned unusable response, advancing fallback walk",
				zap.String("network", desc.ID),
				zap.String("endpoint", endpoint),
				zap.String("reason", entity.MalformedResponse.String()),
				zap.Error(err))
			w.metrics.IncEndpointFailure(desc.ID, entity.MalformedResponse.String())
			continue
		}

		w.logger.Debug("Balance fetched",
			zap.String("network", desc.ID), zap.String("endpoint", endpoint))
		return balance, nil
	}

	w.metrics.IncNetworkUnavailable(desc.ID)
	return "", &entity.FetchError{
		Kind:      entity.NetworkUnavailable,
		NetworkID: desc.ID,
		Err:       fmt.Errorf("all %d endpoints exhausted", len(endpoints)),
	}
}

// do executes one HTTP call against a single endpoint under the codec's
// per-call budget, returning the response body on a 2xx answer.
func (w *Walker) do(ctx context.Context, url string, req Request, timeout time.Duration) ([]byte, entity.FetchErrorKind, error) {
	if err := w.limiter.Wait(ctx); err != nil {
		return nil, entity.EndpointUnreachable, err
	}

	httpReq := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(httpReq)
	httpReq.SetRequestURI(url)
	httpReq.Header.SetMethod(req.Method)
	httpReq.Header.SetContentType("application/json")
	if len(req.Body) > 0 {
		httpReq.SetBody(req.Body)
	}

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	deadline := time.Now().Add(timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	if err := w.client.DoDeadline(httpReq, resp, deadline); err != nil {
		return nil, entity.EndpointUnreachable, fmt.Errorf("request to %s failed: %w", url, err)
	}

	status := resp.StatusCode()
	if status < 200 || status >= 300 {
		return nil, entity.MalformedResponse, fmt.Errorf("unexpected status %d from %s", status, url)
	}

	// The response object is pooled; copy the body out before release.
	return append([]byte(nil), resp.Body()...), 0, nil
}
