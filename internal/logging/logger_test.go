package logging

import (
	"bytes"
	"context"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	})
	return &buf
}

func TestRequestID(t *testing.T) {
	assert.Equal(t, "", RequestID(context.Background()))

	ctx := WithRequestID(context.Background(), "abc123")
	assert.Equal(t, "abc123", RequestID(ctx))
}

func TestLogger(t *testing.T) {
	t.Run("includes request id", func(t *testing.T) {
		buf := captureLog(t)
		logger := NewLogger(WithRequestID(context.Background(), "rid-1"))

		logger.LogInfof("add", "id=%s", "todo-1")
		assert.Equal(t, "[info] request_id=rid-1 operation=add id=todo-1\n", buf.String())
	})

	t.Run("falls back to unknown", func(t *testing.T) {
		buf := captureLog(t)
		logger := NewLogger(context.Background())

		logger.LogError("list", errors.New("boom"))
		assert.Equal(t, "[error] request_id=unknown operation=list error=boom\n", buf.String())
	})

	t.Run("warn", func(t *testing.T) {
		buf := captureLog(t)
		NewLogger(context.Background()).LogWarnf("toggle", "id=%s not found", "x")
		assert.Equal(t, "[warn] request_id=unknown operation=toggle id=x not found\n", buf.String())
	})
}
