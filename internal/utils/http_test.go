package utils

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_Success(t *testing.T) {
	rec := httptest.NewRecorder()

	n, err := WriteJSON(rec, map[string]string{"status": "ok"}, 201)
	require.NoError(t, err)
	assert.Positive(t, n)

	assert.Equal(t, 201, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestWriteJSON_MarshalError(t *testing.T) {
	rec := httptest.NewRecorder()

	// channels are not JSON-serializable
	_, err := WriteJSON(rec, make(chan int), 200)
	require.Error(t, err)
	assert.Equal(t, 500, rec.Code)
}

func TestWriteMessage_Shape(t *testing.T) {
	rec := httptest.NewRecorder()

	_, err := WriteMessage(rec, "Invalid credentials", 401)
	require.NoError(t, err)

	assert.Equal(t, 401, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Invalid credentials", body["message"])
}
