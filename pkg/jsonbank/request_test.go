package jsonbank

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDispatch_MissingKeys(t *testing.T) {
	tests := []struct {
		name    string
		keys    Keys
		req     request
		message string
	}{
		{
			name:    "public key required",
			keys:    Keys{Private: testPrivateKey},
			req:     request{method: http.MethodGet, url: "https://jsonbank.test/v1/file/x", requirePublic: true},
			message: "Public key is not set",
		},
		{
			name:    "private key required",
			keys:    Keys{Public: testPublicKey},
			req:     request{method: http.MethodPost, url: "https://jsonbank.test/v1/file/x", requirePrivate: true},
			message: "Private key is not set",
		},
		{
			name:    "no keys at all",
			req:     request{method: http.MethodDelete, url: "https://jsonbank.test/v1/file/x", requirePrivate: true},
			message: "Private key is not set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, doer := newMockClient(tt.keys)

			resp, err := client.dispatch(context.Background(), tt.req)

			require.Error(t, err)
			assert.Nil(t, resp)
			assert.Equal(t, &Error{Code: CodeBadRequest, Message: tt.message}, err)
			doer.AssertNotCalled(t, "Do", mock.Anything)
		})
	}
}

func TestDispatch_Headers(t *testing.T) {
	client, doer := newMockClient(Keys{Public: testPublicKey, Private: testPrivateKey})
	doer.On("Do", mock.Anything).Return(jsonResponse(http.StatusOK, `{}`), nil).Once()
	doer.On("Do", mock.Anything).Return(jsonResponse(http.StatusOK, `{}`), nil).Once()

	_, err := client.dispatch(context.Background(), request{
		method:        http.MethodGet,
		url:           "https://jsonbank.test/v1/file/x",
		requirePublic: true,
	})
	require.NoError(t, err)

	_, err = client.dispatch(context.Background(), request{
		method: http.MethodGet,
		url:    "https://jsonbank.test/f/x",
	})
	require.NoError(t, err)

	doer.AssertNumberOfCalls(t, "Do", 2)

	authed := doer.Calls[0].Arguments.Get(0).(*http.Request)
	assert.Equal(t, "application/json", authed.Header.Get("Content-Type"))
	assert.Equal(t, testPublicKey, authed.Header.Get("jsb-pub-key"))
	assert.Empty(t, authed.Header.Get("jsb-prv-key"))

	public := doer.Calls[1].Arguments.Get(0).(*http.Request)
	assert.Equal(t, "application/json", public.Header.Get("Content-Type"))
	assert.Empty(t, public.Header.Get("jsb-pub-key"))
	assert.Empty(t, public.Header.Get("jsb-prv-key"))
}

func TestDispatch_BodyByMethod(t *testing.T) {
	client, doer := newMockClient(Keys{Public: testPublicKey, Private: testPrivateKey})
	doer.On("Do", mock.Anything).Return(jsonResponse(http.StatusOK, `{}`), nil).Times(4)

	ctx := context.Background()
	body := params{"stats": true, "name": "a"}

	_, err := client.dispatch(ctx, request{method: http.MethodGet, url: "https://jsonbank.test/v1/folder/p/f", body: body})
	require.NoError(t, err)
	_, err = client.dispatch(ctx, request{method: http.MethodPost, url: "https://jsonbank.test/v1/file/x", body: body})
	require.NoError(t, err)
	_, err = client.dispatch(ctx, request{method: http.MethodPost, url: "https://jsonbank.test/v1/authenticate"})
	require.NoError(t, err)
	_, err = client.dispatch(ctx, request{method: http.MethodDelete, url: "https://jsonbank.test/v1/file/x", body: body})
	require.NoError(t, err)

	get := doer.Calls[0].Arguments.Get(0).(*http.Request)
	assert.Equal(t, "true", get.URL.Query().Get("stats"))
	assert.Equal(t, "a", get.URL.Query().Get("name"))
	assert.Equal(t, "/v1/folder/p/f", get.URL.Path)
	assert.Nil(t, get.Body)

	post := doer.Calls[1].Arguments.Get(0).(*http.Request)
	postBody, err := io.ReadAll(post.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"stats":true,"name":"a"}`, string(postBody))
	assert.Empty(t, post.URL.RawQuery)

	empty := doer.Calls[2].Arguments.Get(0).(*http.Request)
	emptyBody, err := io.ReadAll(empty.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(emptyBody))

	del := doer.Calls[3].Arguments.Get(0).(*http.Request)
	assert.Nil(t, del.Body)
	assert.Empty(t, del.URL.RawQuery)
}

func TestDispatch_TransportError(t *testing.T) {
	client, doer := newMockClient(Keys{})
	doer.On("Do", mock.Anything).Return(nil, errors.New("dial tcp: connection refused")).Once()

	resp, err := client.dispatch(context.Background(), request{method: http.MethodGet, url: "https://jsonbank.test/f/x"})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, CodeDefault, ErrorCode(err))
	assert.Equal(t, "dial tcp: connection refused", err.Error())
	doer.AssertExpectations(t)
}

func TestDispatch_CancelledContext(t *testing.T) {
	client, _ := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{}`)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetContentAsString(ctx, "p/a.json")
	require.Error(t, err)
	assert.Equal(t, CodeDefault, ErrorCode(err))
	assert.Contains(t, err.Error(), "context canceled")
}
