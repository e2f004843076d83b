package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinesFor(t *testing.T) {
	require.Equal(t, 1, LinesFor(0, 80))
	require.Equal(t, 1, LinesFor(80, 80))
	require.Equal(t, 2, LinesFor(81, 80))
	require.Equal(t, 3, LinesFor(25, 10))
	require.Equal(t, 1, LinesFor(10, 0))
}

func TestClearPreviousLines(t *testing.T) {
	var buf bytes.Buffer
	ClearPreviousLines(&buf, 10)
	out := buf.String()
	require.Equal(t, 2, strings.Count(out, "\x1b[2K"))
	require.Equal(t, 1, strings.Count(out, "\x1b[1A"))
}
