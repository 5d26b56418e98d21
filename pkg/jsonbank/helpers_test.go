package jsonbank

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/mock"
)

const (
	testPublicKey  = "pub-test-key"
	testPrivateKey = "prv-test-key"
)

// mockDoer records every request the client sends.
type mockDoer struct {
	mock.Mock
}

func (m *mockDoer) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Response), args.Error(1)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     fmt.Sprintf("%d %s", status, http.StatusText(status)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func apiError(code, message string) string {
	return fmt.Sprintf(`{"error":{"code":%q,"message":%q}}`, code, message)
}

func newMockClient(keys Keys) (*Client, *mockDoer) {
	doer := new(mockDoer)
	client := New(&Config{
		Host:       "https://jsonbank.test",
		Keys:       keys,
		HTTPClient: doer,
		FS:         afero.NewMemMapFs(),
		Logger:     hclog.NewNullLogger(),
	})
	return client, doer
}

func newServerClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := New(&Config{
		Host:       server.URL,
		Keys:       Keys{Public: testPublicKey, Private: testPrivateKey},
		HTTPClient: server.Client(),
		FS:         afero.NewMemMapFs(),
		Logger:     hclog.NewNullLogger(),
	})
	return client, server
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}
