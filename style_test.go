package promptline_test

import (
	"testing"

	"github.com/fwojciec/promptline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec string
		want promptline.Style
	}{
		{
			name: "empty specification is a plain style",
			spec: "",
			want: promptline.Style{},
		},
		{
			name: "blank specification is a plain style",
			spec: " \t\n ",
			want: promptline.Style{},
		},
		{
			name: "all attributes in mixed case",
			spec: "bOlD ItAlIc uNdErLiNe GrEeN diMMeD",
			want: promptline.Style{
				Bold:       true,
				Italic:     true,
				Underline:  true,
				Dimmed:     true,
				Foreground: promptline.Named(promptline.Green),
			},
		},
		{
			name: "background before attributes",
			spec: "bg:#050505 underline fg:120",
			want: promptline.Style{
				Underline:  true,
				Foreground: promptline.Fixed(120),
				Background: promptline.RGB(5, 5, 5),
			},
		},
		{
			name: "last color on each channel wins",
			spec: "bg:120 bg:125 bg:127 fg:127 122 125",
			want: promptline.Style{
				Foreground: promptline.Fixed(125),
				Background: promptline.Fixed(127),
			},
		},
		{
			name: "repeated attributes are idempotent",
			spec: "bold bold BOLD",
			want: promptline.Style{Bold: true},
		},
		{
			name: "uppercase channel prefix",
			spec: "BG:bright-blue FG:#FFFFFF",
			want: promptline.Style{
				Foreground: promptline.RGB(255, 255, 255),
				Background: promptline.Fixed(12),
			},
		},
		{
			name: "tokens separated by runs of whitespace",
			spec: "  red\t\tbold \n",
			want: promptline.Style{
				Bold:       true,
				Foreground: promptline.Named(promptline.Red),
			},
		},
		{
			name: "attribute behind a channel prefix still applies",
			spec: "bg:bold",
			want: promptline.Style{Bold: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := promptline.ParseStyle(tt.spec)

			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestParseStyle_Nullified(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec string
	}{
		{"none alone", "none"},
		{"none after attributes", "bold none"},
		{"none before attributes", "none bold"},
		{"none at the end of a full style", "fg:red bg:green bold none"},
		{"none at the start of a full style", "none fg:red bg:green bold"},
		{"none with channel prefix", "fg:none"},
		{"uppercase none", "NONE"},
		{"garbage", "djklgfhjkldhlhk;j"},
		{"unknown token among valid ones", "bold orange underline"},
		{"short hex color", "fg:#12345"},
		{"out of range fixed color", "bg:256"},
		{"empty channel", "fg:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Nil(t, promptline.ParseStyle(tt.spec))
		})
	}
}

func TestParseStyle_StopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	t.Run("trailing garbage after none", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, promptline.ParseStyle("none djklgfhjkldhlhk;j"))
		assert.Nil(t, promptline.ParseStyle("bold none #zz"))
	})

	t.Run("leading none suppresses everything after it", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, promptline.ParseStyle("none bold italic #"))
	})

	t.Run("nullification is order independent", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, promptline.ParseStyle("bold none"), promptline.ParseStyle("none bold"))
	})
}

func TestParseStyle_CaseInsensitive(t *testing.T) {
	t.Parallel()

	a := promptline.ParseStyle("BOLD green")
	b := promptline.ParseStyle("bold GREEN")

	require.NotNil(t, a)
	assert.Equal(t, a, b)
}

func TestParseStyle_DistinctResults(t *testing.T) {
	t.Parallel()

	a := promptline.ParseStyle("bold")
	b := promptline.ParseStyle("bold")
	require.NotNil(t, a)
	require.NotNil(t, b)

	a.Italic = true

	assert.False(t, b.Italic, "each call returns an independent value")
}

func TestStyle_String(t *testing.T) {
	t.Parallel()

	t.Run("plain style is empty", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, promptline.Style{}.String())
	})

	t.Run("attributes come before colors", func(t *testing.T) {
		t.Parallel()

		style := promptline.Style{
			Dimmed:     true,
			Bold:       true,
			Background: promptline.RGB(5, 5, 5),
			Foreground: promptline.Named(promptline.Green),
		}

		assert.Equal(t, "bold dimmed fg:green bg:#050505", style.String())
	})

	t.Run("parses back to the same style", func(t *testing.T) {
		t.Parallel()

		for _, spec := range []string{
			"bg:#050505 underline fg:120",
			"bOlD ItAlIc uNdErLiNe GrEeN diMMeD",
			"bright-red bg:bright-white",
			"",
		} {
			style := promptline.ParseStyle(spec)
			require.NotNil(t, style, spec)

			assert.Equal(t, style, promptline.ParseStyle(style.String()), spec)
		}
	})
}
