package forward

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single word", "npm", []string{"npm"}},
		{"two words", "corepack pnpm", []string{"corepack", "pnpm"}},
		{"extra whitespace", "  npm \t --silent  ", []string{"npm", "--silent"}},
		{"single quotes", "'/opt/my tools/npm' -s", []string{"/opt/my tools/npm", "-s"}},
		{"double quotes", `"C:\Program Files\nodejs\npm.cmd"`, []string{`C:\Program Files\nodejs\npm.cmd`}},
		{"escaped quote in double quotes", `npm "a \"b\""`, []string{"npm", `a "b"`}},
		{"backslash space", `/opt/my\ tools/npm`, []string{"/opt/my tools/npm"}},
		{"backslash in single quotes", `'a\b'`, []string{`a\b`}},
		{"empty quoted arg", `npm ''`, []string{"npm", ""}},
		{"adjacent quotes join", `np"m"'x'`, []string{"npmx"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitErrors(t *testing.T) {
	for _, input := range []string{"", "   ", "'npm", `"npm`, `npm\`} {
		got, err := Split(input)
		assert.Error(t, err, "Split(%q) = %q", input, got)
	}
}
