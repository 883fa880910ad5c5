package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Envelope mirrors the API response shape for decoding in tests
type Envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// AssertStatusCode verifies the HTTP response status code
func AssertStatusCode(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	assert.Equal(t, expected, resp.StatusCode, "unexpected status code")
}

// DecodeEnvelope reads the response body into an Envelope
func DecodeEnvelope(t *testing.T, resp *http.Response) Envelope {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")

	var env Envelope
	err = json.Unmarshal(body, &env)
	require.NoError(t, err, "failed to unmarshal response: %s", string(body))
	return env
}

// DecodeData unmarshals the envelope's data field into v
func DecodeData(t *testing.T, env Envelope, v interface{}) {
	t.Helper()
	require.NotEmpty(t, env.Data, "envelope has no data field")
	require.NoError(t, json.Unmarshal(env.Data, v), "failed to unmarshal data: %s", string(env.Data))
}

// AssertEnvelope verifies the status code and the envelope's status flag
// and message in one call
func AssertEnvelope(t *testing.T, resp *http.Response, expectedCode int, expectedStatus bool, expectedMessage string) Envelope {
	t.Helper()

	assert.Equal(t, expectedCode, resp.StatusCode, "unexpected status code")
	env := DecodeEnvelope(t, resp)
	assert.Equal(t, expectedStatus, env.Status, "unexpected envelope status")
	if expectedMessage != "" {
		assert.Equal(t, expectedMessage, env.Message, "unexpected envelope message")
	}
	return env
}
