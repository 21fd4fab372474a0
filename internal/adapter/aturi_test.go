package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseATURI_Valid(t *testing.T) {
	got, err := ParseATURI("at://did:plc:abc123/app.bsky.feed.like/3l3qo2vuowo2b")
	require.NoError(t, err)

	assert.Equal(t, "did:plc:abc123", got.Authority)
	assert.Equal(t, "app.bsky.feed.like", got.Collection)
	assert.Equal(t, "3l3qo2vuowo2b", got.RKey)
	assert.Equal(t, "at://did:plc:abc123/app.bsky.feed.like/3l3qo2vuowo2b", got.String())
}

func TestParseATURI_Invalid(t *testing.T) {
	cases := []string{
		"",
		"https://example.org/x/y",
		"at://did:plc:abc123",
		"at://did:plc:abc123/app.bsky.feed.like",
		"at:///app.bsky.feed.like/rkey",
		"at://did:plc:abc123//rkey",
	}
	for _, raw := range cases {
		_, err := ParseATURI(raw)
		assert.Error(t, err, "expected error for %q", raw)
	}
}
