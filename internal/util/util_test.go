package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	cases := map[int64]string{
		0:               "0 B",
		512:             "512 B",
		1024:            "1.0 KB",
		1536:            "1.5 KB",
		5<<20 + 1:       "5.0 MB",
		5 << 20:         "5.0 MB",
		3 * 1024 << 20:  "3.0 GB",
		6 * 1024 * 1024: "6.0 MB",
	}

	for in, want := range cases {
		assert.Equal(t, want, FormatBytes(in), "FormatBytes(%d)", in)
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{in: 0, want: "0ms"},
		{in: 850 * time.Millisecond, want: "850ms"},
		{in: 45 * time.Second, want: "45s"},
		{in: 59*time.Second + 500*time.Millisecond, want: "1m0s"},
		{in: 2*time.Minute + 30*time.Second, want: "2m30s"},
		{in: time.Hour + 30*time.Minute, want: "1h30m"},
	}

	for _, tc := range cases {
		t.Run(tc.in.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, FormatDuration(tc.in))
		})
	}
}
