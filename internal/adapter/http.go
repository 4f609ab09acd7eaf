package adapter

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// Peer endpoints.
const (
	LoginPath  = "/api/sync/login"
	IngestPath = "/api/sync/ingest"
)

// TraceIDHeader links the log lines of both nodes for one exchange.
const TraceIDHeader = "X-Trace-ID"

// HashHeader carries the hex HMAC-SHA256 of the uncompressed envelope.
const HashHeader = "HashSHA256"

type httpTransport struct {
	client      *resty.Client
	hashKey     string
	compression CompressionSource

	// tokens caches one session token per peer uuid.
	mu     sync.Mutex
	tokens map[string]string

	logger *logger.Logger
}

// NewHTTPTransport constructs the HTTP implementation of [Transport]. Each
// exchange is bounded by adapterCfg.RequestTimeout.
func NewHTTPTransport(adapterCfg config.Adapter, appCfg config.App, compression CompressionSource, logger *logger.Logger) Transport {
	client := resty.New().
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("User-Agent", "go-sync-keeper")

	return &httpTransport{
		client:      client,
		hashKey:     appCfg.HashKey,
		compression: compression,
		tokens:      make(map[string]string),
		logger:      logger,
	}
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrNoAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Send implements [Transport]. A rejected token is dropped and the
// exchange is retried once with a fresh login, unless the peer has
// disabled us.
func (t *httpTransport) Send(ctx context.Context, server *models.RemoteServer, env *models.SyncTransmission) (*models.SyncTransmissionResponse, error) {
	log := logger.FromContext(ctx)

	baseURL, err := normalizeBaseURL(server.Address)
	if err != nil {
		return nil, fail(models.TransmissionStateInvalidServer, err)
	}

	payload, err := xml.Marshal(env)
	if err != nil {
		return nil, fail(models.TransmissionStateCreationFailed, err)
	}
	body, compressed, err := t.encodeBody(ctx, payload)
	if err != nil {
		return nil, fail(models.TransmissionStateCreationFailed, err)
	}

	resp, err := t.post(ctx, server, baseURL, payload, body, compressed)
	if errors.Is(err, ErrUnauthorized) && !errors.Is(err, ErrDisabledByPeer) {
		log.Debug().
			Str("func", "httpTransport.Send").
			Str("server_uuid", server.UUID).
			Msg("session token rejected, logging in again")
		t.forget(server.UUID)
		resp, err = t.post(ctx, server, baseURL, payload, body, compressed)
	}
	if err != nil {
		log.Err(err).
			Str("func", "httpTransport.Send").
			Str("server_uuid", server.UUID).
			Str("transmission_uuid", env.UUID).
			Msg("transmission failed")
		return nil, err
	}

	var out models.SyncTransmissionResponse
	if err = xml.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fail(models.TransmissionStateResponseNotUnderstood, fmt.Errorf("%w: %w", ErrInvalidResponse, err))
	}
	if out.SyncSourceUUID != "" && out.SyncSourceUUID != server.UUID {
		return nil, fail(models.TransmissionStateInvalidServer,
			fmt.Errorf("%w: expected %s, got %s", ErrWrongPeer, server.UUID, out.SyncSourceUUID))
	}
	return &out, nil
}

func (t *httpTransport) post(ctx context.Context, server *models.RemoteServer, baseURL string,
	payload, body []byte, compressed bool) (*resty.Response, error) {
	token, err := t.token(ctx, server, baseURL)
	if err != nil {
		return nil, err
	}

	req := t.request(ctx).
		SetHeader("Content-Type", "application/xml").
		SetHeader("Accept", "application/xml").
		SetHeader("Authorization", "Bearer "+token).
		SetBody(body)
	if t.hashKey != "" {
		req.SetHeader(HashHeader, utils.HashString(string(payload), t.hashKey))
	}
	if compressed {
		req.SetHeader("Content-Encoding", "gzip")
	}

	resp, err := req.Post(baseURL + IngestPath)
	if err != nil {
		return nil, mapNetworkError(err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// token returns the cached session token for server, logging in when
// there is none.
func (t *httpTransport) token(ctx context.Context, server *models.RemoteServer, baseURL string) (string, error) {
	t.mu.Lock()
	token, ok := t.tokens[server.UUID]
	t.mu.Unlock()
	if ok {
		return token, nil
	}

	resp, err := t.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.PeerCredentials{Username: server.Username, Password: server.Password}).
		Post(baseURL + LoginPath)
	if err != nil {
		return "", mapNetworkError(err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token, err = utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return "", fail(models.TransmissionStateAuthFailed, err)
	}

	t.mu.Lock()
	t.tokens[server.UUID] = token
	t.mu.Unlock()
	return token, nil
}

func (t *httpTransport) request(ctx context.Context) *resty.Request {
	req := t.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(TraceIDHeader, traceID)
	}
	return req
}

func (t *httpTransport) forget(serverUUID string) {
	t.mu.Lock()
	delete(t.tokens, serverUUID)
	t.mu.Unlock()
}

func (t *httpTransport) encodeBody(ctx context.Context, payload []byte) ([]byte, bool, error) {
	if t.compression == nil || !t.compression.CompressionEnabled(ctx) {
		return payload, false, nil
	}

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(payload); err != nil {
		return nil, false, err
	}
	if err := zw.Close(); err != nil {
		return nil, false, err
	}
	return buf.Bytes(), true, nil
}
