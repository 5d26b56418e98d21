package jsonbank

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const authBody = `{
	"authenticated": true,
	"username": "jsonbank",
	"apiKey": {"title": "sdk-test", "projects": ["sdk-test", "other"]}
}`

func TestAuthenticate(t *testing.T) {
	client, _ := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/authenticate", r.URL.Path)
		assert.Equal(t, testPublicKey, r.Header.Get("jsb-pub-key"))
		writeJSON(w, http.StatusOK, authBody)
	})

	assert.False(t, client.IsAuthenticated())
	_, err := client.GetUsername()
	assert.Equal(t, CodeNotAuthenticated, ErrorCode(err))

	identity, err := client.Authenticate(context.Background())
	require.NoError(t, err)
	assert.True(t, identity.Authenticated)
	assert.Equal(t, "jsonbank", identity.Username)
	assert.Equal(t, "sdk-test", identity.APIKey.Title)
	assert.Equal(t, []string{"sdk-test", "other"}, identity.APIKey.Projects)

	assert.True(t, client.IsAuthenticated())
	username, err := client.GetUsername()
	require.NoError(t, err)
	assert.Equal(t, "jsonbank", username)

	// Callers get copies.
	identity.APIKey.Projects[0] = "changed"
	cached, ok := client.Identity()
	require.True(t, ok)
	assert.Equal(t, "sdk-test", cached.APIKey.Projects[0])
}

func TestAuthenticate_NotAuthenticatedFlag(t *testing.T) {
	client, doer := newMockClient(Keys{Public: testPublicKey})
	doer.On("Do", mock.Anything).Return(jsonResponse(http.StatusOK, `{"authenticated":false,"username":"u","apiKey":{"title":"t","projects":[]}}`), nil).Once()

	_, err := client.Authenticate(context.Background())
	require.NoError(t, err)

	assert.False(t, client.IsAuthenticated())
	username, err := client.GetUsername()
	require.NoError(t, err)
	assert.Equal(t, "u", username)
}

func TestAuthenticate_FailureKeepsState(t *testing.T) {
	client, doer := newMockClient(Keys{Public: testPublicKey})
	doer.On("Do", mock.Anything).Return(jsonResponse(http.StatusUnauthorized, apiError("invalid_key", "Invalid public key")), nil).Once()

	_, err := client.Authenticate(context.Background())

	require.Error(t, err)
	assert.Equal(t, "invalid_key", ErrorCode(err))
	_, ok := client.Identity()
	assert.False(t, ok)
}

func TestAuthenticate_Concurrent(t *testing.T) {
	client, _ := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, authBody)
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := client.Authenticate(context.Background())
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			client.IsAuthenticated()
			_, _ = client.GetUsername()
		}()
	}
	wg.Wait()

	assert.True(t, client.IsAuthenticated())
}
