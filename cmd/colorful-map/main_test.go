package main

import (
	"bytes"
	"fmt"
	"os"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWarnWriter(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true, DisableColors: true})
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetFormatter(&log.TextFormatter{})
	})

	n, err := fmt.Fprintf(warnWriter{}, "layer %q feature %d: skipped: %v\n", "roads", 3, "kind is required")
	require.NoError(t, err)
	assert.Equal(t, 51, n)

	out := buf.String()
	assert.Contains(t, out, "level=warning")
	assert.Contains(t, out, `layer \"roads\" feature 3: skipped: kind is required`)
	assert.NotContains(t, out, `required\n`)
}
