package cleanup

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirm_Answers(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"  YES  \n", true},
		{"y\r\n", true},
		{"n\n", false},
		{"no\n", false},
		{"yep\n", false},
		{"\n", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			confirmed, err := Confirm(context.Background(), "Eliminate 2 target(s)? [y/N]: ", strings.NewReader(tt.input), &out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, confirmed)
			assert.Equal(t, "Eliminate 2 target(s)? [y/N]: ", out.String())
		})
	}
}

func TestConfirm_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	confirmed, err := Confirm(ctx, "Continue? [y/N] ", blockingReader{}, &out)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, confirmed)
}

func TestReadLine_ReadsFirstLineOnly(t *testing.T) {
	line, err := readLine(context.Background(), strings.NewReader("first\nsecond\n"))
	require.NoError(t, err)
	assert.Equal(t, "first", line)
}

// blockingReader never returns, like an idle terminal.
type blockingReader struct{}

func (blockingReader) Read([]byte) (int, error) {
	select {}
}
