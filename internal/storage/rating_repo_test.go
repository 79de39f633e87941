package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	cases := []struct {
		name   string
		scores []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"single", []float64{4}, 4},
		{"two raters", []float64{4, 5}, 4.5},
		{"re-rated first user", []float64{3, 5}, 4},
		{"bounds", []float64{1, 5}, 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, Mean(tc.scores), 1e-9)
		})
	}
}
