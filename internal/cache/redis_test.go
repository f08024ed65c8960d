package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPayloadKey(t *testing.T) {
	assert.Equal(t, "perf:decode-json:latency", payloadKey("decode-json", "latency"))
}

func TestNewPayloadCacheBadURL(t *testing.T) {
	_, err := NewPayloadCache(t.Context(), "not-a-url", 0)
	assert.Error(t, err)
}
