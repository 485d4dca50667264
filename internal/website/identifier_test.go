package website

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentifier(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"index.html", "INDEX_HTML"},
		{"app.js.gz", "APP_JS_GZ"},
		{"css/site-v2.css", "CSS_SITE_V2_CSS"},
		{"fonts/Roboto.woff2", "FONTS_ROBOTO_WOFF2"},
		{"ünïcode.txt", "_N_CODE_TXT"},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Identifier(c.in), "Identifier(%q)", c.in)
	}
}

func TestIdentifierDeterministicAndCaseInsensitive(t *testing.T) {
	assert.Equal(t, Identifier("App.Js"), Identifier("app.js"))
	assert.Equal(t, Identifier("a/b/c.html"), Identifier("a/b/c.html"))
}

func TestCheckIdentifiersCollision(t *testing.T) {
	site := &Site{Assets: []Asset{
		{StoredPath: "a-b.css"},
		{StoredPath: "a_b.css"},
	}}
	err := site.CheckIdentifiers()
	assert.ErrorContains(t, err, "collision")
	assert.ErrorContains(t, err, "a-b.css")
	assert.ErrorContains(t, err, "a_b.css")
}

func TestCheckIdentifiersLeadingDigit(t *testing.T) {
	site := &Site{Assets: []Asset{
		{StoredPath: "404.html"},
	}}
	err := site.CheckIdentifiers()
	assert.ErrorContains(t, err, "not a valid C identifier")
}

func TestCheckIdentifiersOK(t *testing.T) {
	site := &Site{Assets: []Asset{
		{StoredPath: "index.html"},
		{StoredPath: "app.js.gz"},
		{StoredPath: "app.js"}, // distinct symbol thanks to the stored-name policy
	}}
	assert.NoError(t, site.CheckIdentifiers())
}
