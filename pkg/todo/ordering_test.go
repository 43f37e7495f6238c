package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextTopIndex(t *testing.T) {
	tests := []struct {
		name string
		min  int64
		ok   bool
		want int64
	}{
		{name: "empty partition", min: 0, ok: false, want: 0},
		{name: "below zero minimum", min: 0, ok: true, want: -1},
		{name: "below negative minimum", min: -4, ok: true, want: -5},
		{name: "below positive minimum", min: 7, ok: true, want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nextTopIndex(tt.min, tt.ok))
		})
	}
}

func TestNextBottomIndex(t *testing.T) {
	tests := []struct {
		name string
		max  int64
		ok   bool
		want int64
	}{
		{name: "empty partition", max: 0, ok: false, want: 0},
		{name: "above zero maximum", max: 0, ok: true, want: 1},
		{name: "above negative maximum", max: -4, ok: true, want: -3},
		{name: "above positive maximum", max: 7, ok: true, want: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nextBottomIndex(tt.max, tt.ok))
		})
	}
}

func TestTopInsertionStrictlyDecreasing(t *testing.T) {
	svc := newTestService(t)
	day := testDay()

	prev := int64(1)
	for i := 0; i < 5; i++ {
		created := mustAdd(t, svc, AddParams{Title: "item", ScheduledFor: &day})
		assert.Less(t, created.OrderIndex, prev)
		prev = created.OrderIndex
	}
}
