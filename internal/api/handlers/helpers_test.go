package handlers_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertBodyJSON compares a huma response body to want, ignoring the
// $schema link huma adds to object responses.
func assertBodyJSON(t *testing.T, want, got string) {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(got), &body))
	delete(body, "$schema")

	stripped, err := json.Marshal(body)
	require.NoError(t, err)
	assert.JSONEq(t, want, string(stripped))
}
