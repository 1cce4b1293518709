package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"esign-webhook-gateway/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	return c, w
}

func TestAck(t *testing.T) {
	c, w := newTestContext()
	id := uuid.New()

	Ack(c, id, "Webhook processed successfully")

	assert.Equal(t, http.StatusOK, w.Code)

	var body AckResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, id.String(), body.ContractID)
	assert.Equal(t, "Webhook processed successfully", body.Message)
}

func TestError_AppError(t *testing.T) {
	c, w := newTestContext()

	Error(c, apperror.ErrWorkspaceNotResolved())

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Could not determine workspace", body["error"])
	assert.NotContains(t, body, "message")
}

func TestError_Unknown(t *testing.T) {
	c, w := newTestContext()

	Error(c, fmt.Errorf("pg: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body["error"])
	assert.Equal(t, "pg: connection refused", body["message"])
}

func TestError_InternalAppError(t *testing.T) {
	c, w := newTestContext()

	Error(c, apperror.InternalError(fmt.Errorf("history insert failed")))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body["error"])
	assert.NotEmpty(t, body["message"])
}
