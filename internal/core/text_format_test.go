package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "plain", input: "A widget", expected: "A widget"},
		{name: "markup removed", input: "A <b>bold</b> widget", expected: "A bold widget"},
		{name: "whitespace collapsed", input: "  A\n\twidget   library \n", expected: "A widget library"},
		{name: "markup spanning lines", input: "A <a\nhref=\"x\">link</a>", expected: "A link"},
		{name: "only markup", input: "<br/>", expected: ""},
		{name: "unclosed bracket kept", input: "a < b", expected: "a < b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeText(tt.input))
		})
	}
}

func TestNormalizeTextIsIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"<p>Widget</p>\n\n<p>Second</p>",
		"a <<b>c> d",
		"x <a\nb> y",
		"tab\tand nbsp",
		"<<<>>>",
		"version 1.2. Next",
	}
	for _, input := range inputs {
		once := NormalizeText(input)
		assert.Equal(t, once, NormalizeText(once), "input %q", input)
	}
}

func TestFormatDescription(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "single sentence", input: "A widget library", expected: "A widget library"},
		{name: "two sentences", input: "A. B", expected: "A.\n B"},
		{name: "trailing period only", input: "A widget library.", expected: "A widget library."},
		{name: "version numbers do not split", input: "Supports v1.2.3 and later", expected: "Supports v1.2.3 and later"},
		{
			name:     "only first split point",
			input:    "Widget library. Provides parts. Also tools.",
			expected: "Widget library.\n Provides parts. Also tools.",
		},
		{
			name:     "markup and whitespace before split",
			input:    "<p>Widget\n   library.</p>\n  Provides   parts.",
			expected: "Widget library.\n Provides parts.",
		},
		{name: "empty", input: "", expected: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDescription(tt.input))
		})
	}
}

func TestFormatDescriptionWithoutSplitPointEqualsNormalized(t *testing.T) {
	inputs := []string{"", "widget", "a.b.c", "ends with dot.", "<i>x</i>\n y", "multi\n\nline"}
	for _, input := range inputs {
		normalized := NormalizeText(input)
		if strings.Contains(normalized, ". ") {
			t.Fatalf("input %q unexpectedly contains a split point", input)
		}
		assert.Equal(t, normalized, FormatDescription(input))
	}
}

func TestPortName(t *testing.T) {
	assert.Equal(t, "my-widget", PortName("My_Widget"))
	assert.Equal(t, "widget", PortName(" widget "))
}
