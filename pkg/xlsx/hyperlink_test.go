package xlsx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLink(t *testing.T) {
	link, ok := ExtractLink("Fix here: [advisory](https://example.com/x)")
	require.True(t, ok)
	assert.Equal(t, Link{
		Display: "advisory",
		URL:     "https://example.com/x",
		Text:    "Fix here: advisory",
	}, link)
}

func TestExtractLink_FirstMatchOnly(t *testing.T) {
	link, ok := ExtractLink("[one](https://a.example) then [two](https://b.example) end")
	require.True(t, ok)
	assert.Equal(t, "one", link.Display)
	assert.Equal(t, "https://a.example", link.URL)
	assert.Equal(t, "one then [two](https://b.example) end", link.Text)
}

func TestExtractLink_NoMatch(t *testing.T) {
	for _, text := range []string{
		"plain text",
		"brackets [only] here",
		"parens (only) here",
		"empty [](https://x.example)",
		"empty target [text]()",
		"N/A",
	} {
		_, ok := ExtractLink(text)
		assert.False(t, ok, text)
	}
}

func TestExtractLink_Multiline(t *testing.T) {
	link, ok := ExtractLink("Package: lodash\nLink: [CVE-1](https://nvd.nist.gov/vuln/detail/CVE-1)\n")
	require.True(t, ok)
	assert.Equal(t, "Package: lodash\nLink: CVE-1\n", link.Text)
	assert.Equal(t, "https://nvd.nist.gov/vuln/detail/CVE-1", link.URL)
}
