package attack

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vegeta "github.com/tsenart/vegeta/v12/lib"
)

func TestCreateTargeter(t *testing.T) {
	tr := CreateTargeter("http://localhost:3000", "tok", "bypass")

	var first, second vegeta.Target
	require.NoError(t, tr(&first))
	require.NoError(t, tr(&second))

	assert.Equal(t, http.MethodPost, first.Method)
	assert.Equal(t, "http://localhost:3000/api/links", first.URL)
	assert.Equal(t, "Bearer tok", first.Header.Get("Authorization"))
	assert.Equal(t, "bypass", first.Header.Get(bypassHeader))
	assert.Contains(t, string(first.Body), `"originalUrl":"https://example.com/load/`)
	assert.NotEqual(t, string(first.Body), string(second.Body))
}

func TestRedirectTargeter(t *testing.T) {
	tr := RedirectTargeter("http://localhost:3000", []string{"abc123"}, "")

	var tgt vegeta.Target
	require.NoError(t, tr(&tgt))
	assert.Equal(t, http.MethodGet, tgt.Method)
	assert.Equal(t, "http://localhost:3000/abc123", tgt.URL)
	assert.Nil(t, tgt.Header)
}

func TestMixedTargeter_Ratio(t *testing.T) {
	t.Run("never create", func(t *testing.T) {
		tr := MixedTargeter("http://x", "tok", []string{"a"}, 0, "")
		for range 50 {
			var tgt vegeta.Target
			require.NoError(t, tr(&tgt))
			assert.Equal(t, http.MethodGet, tgt.Method)
		}
	})

	t.Run("always create", func(t *testing.T) {
		tr := MixedTargeter("http://x", "tok", []string{"a"}, 1, "")
		for range 50 {
			var tgt vegeta.Target
			require.NoError(t, tr(&tgt))
			assert.Equal(t, http.MethodPost, tgt.Method)
		}
	})
}

func TestTargeter_RequiresCodes(t *testing.T) {
	for _, typ := range []string{"redirect", "mixed"} {
		_, err := Targeter(&Config{Type: typ})
		assert.Error(t, err, typ)
	}

	_, err := Targeter(&Config{Type: "create"})
	assert.NoError(t, err)

	_, err = Targeter(&Config{Type: "soak"})
	assert.ErrorContains(t, err, "unknown attack type")
}
