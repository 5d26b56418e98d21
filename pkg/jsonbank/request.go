package jsonbank

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// params is a request body for POST, or query parameters for GET.
type params map[string]any

// request describes one call to the API.
type request struct {
	method         string
	url            string
	body           params
	requirePublic  bool
	requirePrivate bool
}

// rawResponse is a fully read HTTP response.
type rawResponse struct {
	statusCode int
	status     string
	body       []byte
}

func (r *rawResponse) ok() bool {
	return r.statusCode >= 200 && r.statusCode < 300
}

// dispatch issues exactly one HTTP request. Missing required keys fail before
// anything is sent, and transport failures become CodeDefault errors.
func (c *Client) dispatch(ctx context.Context, r request) (*rawResponse, error) {
	httpReq, err := c.buildRequest(ctx, r)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.logger.Debug("request failed", "method", r.method, "url", r.url, "error", err)
		return nil, newError(CodeDefault, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newError(CodeDefault, err.Error())
	}

	status := resp.Status
	if status == "" {
		status = fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	c.logger.Debug("request completed",
		"method", r.method,
		"url", r.url,
		"status", resp.StatusCode,
		"elapsed", time.Since(start),
	)

	return &rawResponse{
		statusCode: resp.StatusCode,
		status:     status,
		body:       body,
	}, nil
}

// buildRequest creates the HTTP request for r and attaches the required keys.
func (c *Client) buildRequest(ctx context.Context, r request) (*http.Request, error) {
	headers := http.Header{}
	headers.Set("Content-Type", "application/json")

	if r.requirePublic {
		if !c.keys.Has(PublicKey) {
			return nil, newError(CodeBadRequest, "Public key is not set")
		}
		headers.Set(PublicKey.header(), c.keys.Get(PublicKey))
	}
	if r.requirePrivate {
		if !c.keys.Has(PrivateKey) {
			return nil, newError(CodeBadRequest, "Private key is not set")
		}
		headers.Set(PrivateKey.header(), c.keys.Get(PrivateKey))
	}

	target := r.url
	var bodyReader io.Reader

	switch r.method {
	case http.MethodGet:
		if len(r.body) > 0 {
			u, err := url.Parse(target)
			if err != nil {
				return nil, newError(CodeDefault, err.Error())
			}
			q := u.Query()
			for k, v := range r.body {
				q.Set(k, fmt.Sprint(v))
			}
			u.RawQuery = q.Encode()
			target = u.String()
		}
	case http.MethodPost:
		body := r.body
		if body == nil {
			body = params{}
		}
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, newError(CodeDefault, err.Error())
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq, err := http.NewRequestWithContext(ctx, r.method, target, bodyReader)
	if err != nil {
		return nil, newError(CodeDefault, err.Error())
	}
	httpReq.Header = headers

	return httpReq, nil
}
