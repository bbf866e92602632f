package link

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMailbox(t *testing.T) {
	var box Mailbox

	_, ok := box.Take()
	require.False(t, ok)

	box.Put("first")
	line, ok := box.Take()
	require.True(t, ok)
	require.Equal(t, "first", line)

	// take clears the slot
	_, ok = box.Take()
	require.False(t, ok)

	// only the latest line matters
	box.Put("old")
	box.Put("new")
	line, ok = box.Take()
	require.True(t, ok)
	require.Equal(t, "new", line)
}

func receive(t *testing.T, input string) (string, bool) {
	t.Helper()
	var box Mailbox
	rx := NewReceiver(strings.NewReader(input), &box)
	require.Equal(t, io.EOF, rx.Run(context.Background()))
	return box.Take()
}

func TestReceiver(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect string
		none   bool
	}{
		{name: "simple line", input: "b90\n", expect: "b90"},
		{name: "crlf terminator", input: "d30\r\n", expect: "d30"},
		{name: "partial line never exposed", input: "b9", none: true},
		{name: "latest of two lines", input: "b90\nd30\n", expect: "d30"},
		{name: "empty line", input: "\n", expect: ""},
		{
			name:   "oversized line truncates",
			input:  strings.Repeat("a", 100) + "\n",
			expect: strings.Repeat("a", RXBufSize-1),
		},
		{
			name:   "overflow does not bleed into next line",
			input:  strings.Repeat("a", 100) + "\np5\n",
			expect: "p5",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			line, ok := receive(t, tc.input)
			if tc.none {
				require.False(t, ok)
				return
			}
			require.True(t, ok)
			require.Equal(t, tc.expect, line)
		})
	}
}

func TestReceiverCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var box Mailbox
	rx := NewReceiver(strings.NewReader("b90\n"), &box)
	require.Equal(t, context.Canceled, rx.Run(ctx))
}
