package placeholder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "single placeholder",
			text:     "Dobrý den <jmeno>",
			expected: []string{"jmeno"},
		},
		{
			name:     "duplicates kept once in first-seen order",
			text:     "<a> x <b> <a>",
			expected: []string{"a", "b"},
		},
		{
			name:     "no placeholders",
			text:     "plain text without markers",
			expected: nil,
		},
		{
			name:     "nested brackets never match",
			text:     "a <<b> c",
			expected: []string{"b"},
		},
		{
			name:     "czech names with underscores",
			text:     "Akce <nazev_akce> dne <datum_konani>",
			expected: []string{"nazev_akce", "datum_konani"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Extract(tt.text))
		})
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "markers become entities",
			text:     "Cena: <cena_celkem> Kč",
			expected: "Cena: &lt;cena_celkem&gt; Kč",
		},
		{
			name:     "stray bracket passes through",
			text:     "5 < 10",
			expected: "5 < 10",
		},
		{
			name:     "repeated marker encoded everywhere",
			text:     "<a> and <a>",
			expected: "&lt;a&gt; and &lt;a&gt;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Encode(tt.text))
		})
	}
}

func TestDecode(t *testing.T) {
	assert.Equal(t, "Cena: <cena_celkem> Kč", Decode("Cena: &lt;cena_celkem&gt; Kč"))

	// double-encoded bodies decode all the way back to markers
	assert.Equal(t, "<a>", Decode("&amp;lt;a&amp;gt;"))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	bodies := []string{
		"Dobrý den,\n\ninformujeme Vás o akci <nazev_akce>\nDatum: <datum_konani>",
		"<a> <b> <a>",
		"no markers at all",
	}

	for _, body := range bodies {
		assert.Equal(t, body, Decode(Encode(body)))
	}
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "a,b,c", Join([]string{"a", "b", "c"}))
	assert.Equal(t, "", Join(nil))
}
