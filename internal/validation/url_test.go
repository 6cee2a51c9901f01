package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"shortlinks/internal/validation"
)

func TestURLValidator_AcceptsAbsoluteURLs(t *testing.T) {
	v := validation.NewURLValidator(2048, false)

	for _, u := range []string{
		"https://example.com",
		"http://example.com/path?q=1#frag",
		"HTTPS://Example.com:8443/x",
		"ftp://files.example.com/a.zip",
		"mailto:ops@example.com",
		"tel:+15551234567",
		"myapp://open/settings",
		"http://127.0.0.1:8080/",
		"http://10.0.0.5/intranet",
		"http://[::1]/",
		"http://localhost/",
	} {
		assert.NoError(t, v.ValidateURL(u), u)
	}
}

func TestURLValidator_Rejects(t *testing.T) {
	v := validation.NewURLValidator(2048, false)

	tests := []struct {
		name    string
		url     string
		wantErr error
		message string
	}{
		{"empty", "", validation.ErrEmptyURL, "url is required"},
		{"blank", "  \t", validation.ErrEmptyURL, "url is required"},
		{"bare word", "not-a-url", validation.ErrInvalidURLFormat, "invalid url format"},
		{"host without scheme", "example.com/page", validation.ErrInvalidURLFormat, "invalid url format"},
		{"scheme without host", "https://", validation.ErrInvalidURLFormat, "invalid url format"},
		{"relative path", "/api/links", validation.ErrInvalidURLFormat, "invalid url format"},
		{"bad escape", "http://example.com/%zz", validation.ErrInvalidURLFormat, "invalid url format"},
		{"javascript", "javascript:alert(1)", validation.ErrUnsafeProtocol, "url protocol not allowed"},
		{"javascript mixed case", "JavaScript:alert(1)", validation.ErrUnsafeProtocol, "url protocol not allowed"},
		{"data", "data:text/html,<b>hi</b>", validation.ErrUnsafeProtocol, "url protocol not allowed"},
		{"file", "file:///etc/passwd", validation.ErrUnsafeProtocol, "url protocol not allowed"},
		{"blob", "blob:https://example.com/6f1c", validation.ErrUnsafeProtocol, "url protocol not allowed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateURL(tt.url)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.EqualError(t, err, tt.message)
		})
	}
}

func TestURLValidator_MaxLength(t *testing.T) {
	v := validation.NewURLValidator(40, false)

	assert.NoError(t, v.ValidateURL("https://example.com/"+strings.Repeat("a", 20)))
	assert.ErrorIs(t, v.ValidateURL("https://example.com/"+strings.Repeat("a", 21)), validation.ErrURLTooLong)
}

func TestURLValidator_BlockPrivateIPs(t *testing.T) {
	v := validation.NewURLValidator(2048, true)

	tests := []struct {
		url     string
		blocked bool
	}{
		{"http://127.0.0.1:8080/", true},
		{"http://10.0.0.5/intranet", true},
		{"http://172.31.255.255/", true},
		{"http://192.168.1.1/", true},
		{"http://169.254.169.254/latest/meta-data", true},
		{"http://100.64.0.1/", true},
		{"http://198.51.100.7/", true},
		{"http://0.0.0.0/", true},
		{"http://[::1]:3000/", true},
		{"http://[fe80::1]/", true},
		{"http://[::ffff:10.0.0.1]/", true},
		{"http://8.8.8.8/", false},
		{"http://[2001:4860:4860::8888]/", false},
		{"http://localhost/", false},
		{"https://internal.corp/", false},
		{"mailto:ops@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			err := v.ValidateURL(tt.url)
			if tt.blocked {
				assert.ErrorIs(t, err, validation.ErrPrivateIPNotAllowed)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
