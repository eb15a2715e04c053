package logger_test

import (
	"net/http/httptest"
	"testing"

	"recipeshare-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWithContextAuthenticated tests that the viewer identity and request ID
// land on the entry
func TestWithContextAuthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hook := test.NewGlobal()
	defer hook.Reset()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set("request_id", "req-1")
	c.Set("email", "alice@test.com")

	logger.WithContext(c).Info("hello")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "alice@test.com", entry.Data["user"])
	assert.Equal(t, "req-1", entry.Data["request_id"])
}

// TestWithContextUsernameFallback tests that the username fills in when no
// email is on the context
func TestWithContextUsernameFallback(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hook := test.NewGlobal()
	defer hook.Reset()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set("username", "alice")

	logger.WithContext(c).Info("hello")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "alice", entry.Data["user"])
}

// TestWithContextAnonymous tests that missing credentials log as anonymous
func TestWithContextAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hook := test.NewGlobal()
	defer hook.Reset()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	logger.WithContext(c).Info("hello")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "anonymous", entry.Data["user"])
	assert.NotContains(t, entry.Data, "request_id")
}

// TestWithFieldsChaining tests that added fields accumulate on the entry
func TestWithFieldsChaining(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	logger.New().
		WithField("component", "shopping-list").
		WithFields(map[string]interface{}{"items": 3}).
		Info("built")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "shopping-list", entry.Data["component"])
	assert.Equal(t, 3, entry.Data["items"])
}
