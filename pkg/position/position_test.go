package position_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/walteh/go-adoc-refs/pkg/position"
)

func TestGetLineAndColumn(t *testing.T) {
	text := "abc\ndef\nghi"

	tests := []struct {
		name     string
		pos      position.RawPosition
		wantLine int
		wantCol  int
	}{
		{"start of text", position.NewBasicPosition("abc", 0), 0, 0},
		{"second line", position.NewBasicPosition("def", 4), 1, 0},
		{"third line", position.NewBasicPosition("ghi", 8), 2, 0},
		{"mid line", position.NewBasicPosition("hi", 9), 2, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, col := tt.pos.GetLineAndColumn(text)
			assert.Equal(t, tt.wantLine, line)
			assert.Equal(t, tt.wantCol, col)
		})
	}
}

func TestHasRangeOverlapWith(t *testing.T) {
	a := position.NewBasicPosition("abcd", 0)
	b := position.NewBasicPosition("cdef", 2)
	c := position.NewBasicPosition("xy", 10)

	assert.True(t, a.HasRangeOverlapWith(b))
	assert.True(t, b.HasRangeOverlapWith(a))
	assert.False(t, a.HasRangeOverlapWith(c))

	// zero-length positions overlap when inside the other range
	zero := position.NewBasicPosition("", 2)
	assert.True(t, zero.HasRangeOverlapWith(a))
	assert.False(t, zero.HasRangeOverlapWith(c))
}

func TestGetRange(t *testing.T) {
	text := "abc\ndef"
	r := position.NewBasicPosition("def", 4).GetRange(text)
	assert.Equal(t, position.Place{Line: 1, Character: 0}, r.Start)
	assert.Equal(t, position.Place{Line: 1, Character: 3}, r.End)
}
