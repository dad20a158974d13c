package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServerVersion(t *testing.T) {
	info := "# Server\r\nredis_version:7.2.4\r\nredis_git_sha1:00000000\r\n"
	assert.Equal(t, "7.2.4", ServerVersion(info))
	assert.Empty(t, ServerVersion("# Server\r\n"))
}

func TestSupportsGetDel(t *testing.T) {
	cases := map[string]bool{
		"7.2.4":  true,
		"6.2.0":  true,
		"6.0.16": false,
		"5.0.7":  false,
		"":       true,
		"weird":  true,
	}
	for version, want := range cases {
		assert.Equal(t, want, SupportsGetDel(version), version)
	}
}

func TestKeyUsesNormalizedPrefix(t *testing.T) {
	assert.Equal(t, "shop:flash:abc", (&Redis{Prefix: normalizePrefix("shop")}).Key("flash", "abc"))
	assert.Equal(t, "storefront:flash", (&Redis{Prefix: normalizePrefix(" ")}).Key("flash"))
}
