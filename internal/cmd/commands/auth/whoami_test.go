package auth

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsonbankio/jsonbank-go/internal/cmd/base"
	"github.com/jsonbankio/jsonbank-go/internal/config"
)

func newWhoami(t *testing.T, status int, body string) (*WhoamiCommand, *cli.MockUi) {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/authenticate", r.URL.Path)
		assert.Equal(t, "pub", r.Header.Get("jsb-pub-key"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)

	t.Setenv(config.EnvHost, server.URL)
	t.Setenv(config.EnvPublicKey, "pub")

	ui := cli.NewMockUi()
	return &WhoamiCommand{Command: base.NewCommand(hclog.NewNullLogger(), ui)}, ui
}

func TestWhoamiCommand(t *testing.T) {
	cmd, ui := newWhoami(t, http.StatusOK,
		`{"authenticated":true,"username":"jsonbank","apiKey":{"title":"sdk","projects":["sdk-test"]}}`)

	code := cmd.Run(nil)

	require.Equal(t, 0, code, ui.ErrorWriter.String())
	assert.Contains(t, ui.OutputWriter.String(), `"username": "jsonbank"`)
	assert.Contains(t, ui.OutputWriter.String(), `"sdk-test"`)
}

func TestWhoamiCommand_NotAccepted(t *testing.T) {
	cmd, ui := newWhoami(t, http.StatusOK, `{"authenticated":false,"username":"","apiKey":{"title":"","projects":[]}}`)

	assert.Equal(t, 1, cmd.Run(nil))
	assert.Contains(t, ui.ErrorWriter.String(), "key was not accepted")
}

func TestWhoamiCommand_ServerError(t *testing.T) {
	cmd, ui := newWhoami(t, http.StatusUnauthorized, `{"error":{"code":"invalid_key","message":"Invalid public key"}}`)

	assert.Equal(t, 1, cmd.Run(nil))
	assert.Contains(t, ui.ErrorWriter.String(), "[invalid_key] Invalid public key")
}
