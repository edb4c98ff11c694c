package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Five Ways to Stretch a Small Ad Budget", "five-ways-to-stretch-a-small-ad-budget"},
		{"  Leading & trailing!  ", "leading-trailing"},
		{"Already-slugged-title", "already-slugged-title"},
		{"100% organic reach?", "100-organic-reach"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Slugify(tt.in), "input %q", tt.in)
	}
}
