package sizefmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want string
	}{
		{"zero", 0, "0.0 B"},
		{"small", 500, "500.0 B"},
		{"just below KB", 1023, "1023.0 B"},
		{"exactly one KB", 1024, "1.0 KB"},
		{"two KB", 2048, "2.0 KB"},
		{"fractional KB", 1536, "1.5 KB"},
		{"one MB", 1 << 20, "1.0 MB"},
		{"one GB", 1 << 30, "1.0 GB"},
		{"one TB", 1 << 40, "1.0 TB"},
		{"beyond TB stays TB", 1 << 50, "1024.0 TB"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Format(tc.n))
		})
	}
}
