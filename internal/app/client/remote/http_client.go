package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/exp/slog"

	"ridejournal/internal/domain/record"
)

const userAgent = "RideJournal-Client/1.0"

type HTTPClient struct {
	client  *http.Client
	log     *slog.Logger
	baseURL string
	retries int

	initialInterval time.Duration
}

// NewHTTPClient создает клиент API. retries - число повторов при сетевой
// ошибке или 5xx; ответы 4xx не повторяются.
func NewHTTPClient(baseURL string, timeout time.Duration, retries int, log *slog.Logger) *HTTPClient {
	client := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	return &HTTPClient{
		client:          client,
		log:             log.With("component", "http_client"),
		baseURL:         strings.TrimRight(baseURL, "/"),
		retries:         retries,
		initialInterval: 300 * time.Millisecond,
	}
}

// Client возвращает используемый *http.Client (нужен тестам для httpmock)
func (h *HTTPClient) Client() *http.Client {
	return h.client
}

// HealthCheck проверяет доступность сервера
func (h *HTTPClient) HealthCheck(ctx context.Context) error {
	return h.do(ctx, http.MethodGet, "/api/health", nil, nil)
}

func (h *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: ошибка маршалинга тела запроса: %v", record.ErrRejected, err)
		}
		payload = data
	}

	op := method + " " + path
	attempt := 0

	call := func() error {
		attempt++

		var reqBody io.Reader
		if payload != nil {
			reqBody = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
		if err != nil {
			return backoff.Permanent(&record.TransportError{Op: op, Err: err})
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", userAgent)
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		h.log.Debug("sending request", "method", method, "url", req.URL.String(), "attempt", attempt)

		resp, err := h.client.Do(req)
		if err != nil {
			terr := &record.TransportError{Op: op, Err: err}
			if ctx.Err() != nil {
				return backoff.Permanent(terr)
			}
			return terr
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return &record.TransportError{Op: op, StatusCode: resp.StatusCode, Err: err}
		}

		switch {
		case resp.StatusCode == http.StatusNotFound:
			return backoff.Permanent(fmt.Errorf("%s: %w", op, record.ErrNotFound))
		case resp.StatusCode >= http.StatusInternalServerError:
			return &record.TransportError{Op: op, StatusCode: resp.StatusCode, Err: errors.New(problemMessage(data, resp.StatusCode))}
		case resp.StatusCode >= http.StatusBadRequest:
			return backoff.Permanent(fmt.Errorf("%w: %s", record.ErrRejected, problemMessage(data, resp.StatusCode)))
		}

		if out != nil {
			if err := json.Unmarshal(data, out); err != nil {
				return backoff.Permanent(&record.TransportError{
					Op:         op,
					StatusCode: resp.StatusCode,
					Err:        fmt.Errorf("malformed response: %w", err),
				})
			}
		}
		return nil
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = h.initialInterval
	exp.Multiplier = 2
	exp.MaxElapsedTime = 0
	policy := backoff.WithContext(backoff.WithMaxRetries(exp, uint64(h.retries)), ctx)

	err := backoff.RetryNotify(call, policy, func(err error, wait time.Duration) {
		h.log.Debug("request failed, retrying", "op", op, "wait", wait, "error", err)
	})
	if err != nil && !errors.Is(err, record.ErrNotFound) && !errors.Is(err, record.ErrRejected) && !record.IsTransport(err) {
		// ошибка контекста из backoff
		err = &record.TransportError{Op: op, Err: err}
	}
	return err
}

// problemMessage достает текст ошибки из ответа: huma отдает problem+json
// с полем detail и списком errors, старый сервер - {"error": "..."}.
func problemMessage(body []byte, status int) string {
	var problem struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
		Errors []struct {
			Message  string `json:"message"`
			Location string `json:"location"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(body, &problem); err != nil {
		return fmt.Sprintf("статус %d", status)
	}

	msg := problem.Detail
	if msg == "" {
		msg = problem.Error
	}
	if msg == "" {
		msg = fmt.Sprintf("статус %d", status)
	}
	for _, e := range problem.Errors {
		field := strings.TrimPrefix(e.Location, "body.")
		if field != "" {
			msg += "; " + field + ": " + e.Message
		} else {
			msg += "; " + e.Message
		}
	}
	return msg
}
