package logging

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Verbose(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true)

	log.Debug("reading file", String("path", "greeting.txt"), Int("bytes", 5))

	out := buf.String()
	assert.Contains(t, out, "DEBUG")
	assert.Contains(t, out, "reading file")
	assert.Contains(t, out, `"path": "greeting.txt"`)
	assert.Contains(t, out, `"bytes": 5`)
}

func TestNew_QuietDropsDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)

	log.Debug("hidden", Error(errors.New("boom")))

	assert.Empty(t, buf.String())
	assert.NoError(t, log.Sync())
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true).With(String("cmd", "cat"))

	log.Debug("done", Bool("ok", true))

	assert.Contains(t, buf.String(), `"cmd": "cat"`)
	assert.Contains(t, buf.String(), `"ok": true`)
}

func TestContext(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true)

	ctx := log.WithContext(context.Background())
	assert.Same(t, log, FromContext(ctx))

	assert.NotNil(t, FromContext(context.Background()))
	//nolint:staticcheck // nil context is handled
	assert.NotNil(t, FromContext(nil))
}
