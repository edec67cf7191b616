package intl_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/polarisui/polaris/intl"
)

func TestExtractLanguageFromHTTPRequest(t *testing.T) {
	req := httptest.NewRequest("GET", "/?lang=sw", nil)
	req.Header.Set("Accept-Language", "en-US;q=0.9, fr")

	assert.Equal(t, []string{"sw", "en-US", "fr"}, intl.ExtractLanguageFromHTTPRequest(req))

	bare := httptest.NewRequest("GET", "/", nil)
	assert.Empty(t, intl.ExtractLanguageFromHTTPRequest(bare))
}
