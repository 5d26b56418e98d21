package jsonbank

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeEndpoints(t *testing.T) {
	tests := []struct {
		host   string
		v1     string
		public string
	}{
		{"https://api.jsonbank.io", "https://api.jsonbank.io/v1", "https://api.jsonbank.io"},
		{"http://localhost:2223", "http://localhost:2223/v1", "http://localhost:2223"},
		{"not a url", "not a url/v1", "not a url"},
		{"", "/v1", ""},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			e := MakeEndpoints(tt.host)
			assert.Equal(t, tt.v1, e.V1)
			assert.Equal(t, tt.public, e.Public)
		})
	}
}

func TestClient_SetHost(t *testing.T) {
	client := NewWithoutConfig()
	assert.Equal(t, DefaultHost, client.Host())
	assert.Equal(t, DefaultHost+"/v1", client.Endpoints().V1)

	for _, host := range []string{"http://localhost:2223", "https://staging.jsonbank.io", "x"} {
		client.SetHost(host)
		assert.Equal(t, host, client.Host())
		assert.Equal(t, host+"/v1", client.Endpoints().V1)
		assert.Equal(t, host, client.Endpoints().Public)
		assert.Equal(t, host+"/f/a.json", client.publicURL("f", "a.json"))
		assert.Equal(t, host+"/v1/file/a.json", client.v1URL("file", "a.json"))
	}
}

func TestKeys(t *testing.T) {
	keys := Keys{Public: "pub"}

	assert.True(t, keys.Has(PublicKey))
	assert.False(t, keys.Has(PrivateKey))
	assert.Equal(t, "pub", keys.Get(PublicKey))
	assert.Equal(t, "", keys.Get(PrivateKey))
	assert.Equal(t, "jsb-pub-key", PublicKey.header())
	assert.Equal(t, "jsb-prv-key", PrivateKey.header())
	assert.Equal(t, "private", PrivateKey.String())
}

func TestResourcePath(t *testing.T) {
	assert.Equal(t, "p/a.json", resourcePath("p", "", "a.json"))
	assert.Equal(t, "p/folder/a.json", resourcePath("p", "folder", "a.json"))
	assert.Equal(t, "p/a/b/c", resourcePath("p", "a/b", "c"))
}
