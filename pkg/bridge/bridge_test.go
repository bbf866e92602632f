package bridge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/rig.go/pkg/link"
)

func TestNormalizeLine(t *testing.T) {
	testCases := []struct {
		name    string
		payload string
		expect  string
		drop    bool
	}{
		{name: "plain command", payload: "b90", expect: "b90"},
		{name: "terminated command", payload: "p-10\n", expect: "p-10"},
		{name: "crlf terminated", payload: "d30\r\n", expect: "d30"},
		{name: "first line only", payload: "d30\nb90\n", expect: "d30"},
		{name: "empty payload dropped", payload: "", drop: true},
		{name: "bare newline dropped", payload: "\n", drop: true},
		{
			name:    "oversized payload bounded",
			payload: "e" + strings.Repeat("1", 100),
			expect:  ("e" + strings.Repeat("1", 100))[:link.RXBufSize-1],
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			line, ok := NormalizeLine([]byte(tc.payload))
			if tc.drop {
				require.False(t, ok)
				return
			}
			require.True(t, ok)
			require.Equal(t, tc.expect, line)
		})
	}
}
