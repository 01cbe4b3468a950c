package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newService(count, height int) *Service {
	s := NewService()
	s.SetCountFunction(func() int { return count })
	s.SetViewportHeight(height)
	return s
}

func TestNavigate(t *testing.T) {
	tests := []struct {
		name       string
		start      int
		direction  Direction
		wantCursor int
		wantMoved  bool
	}{
		{"down", 0, DirectionDown, 1, true},
		{"down at end", 19, DirectionDown, 19, false},
		{"up at start", 0, DirectionUp, 0, false},
		{"page down", 0, DirectionPageDown, 4, true},
		{"page up clamps", 2, DirectionPageUp, 0, true},
		{"end", 3, DirectionEnd, 19, true},
		{"home", 7, DirectionHome, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newService(20, 5)
			s.MoveToIndex(tt.start)

			moved := s.Navigate(tt.direction)

			assert.Equal(t, tt.wantMoved, moved)
			assert.Equal(t, tt.wantCursor, s.GetCursor())
		})
	}
}

func TestViewportFollowsCursor(t *testing.T) {
	s := newService(20, 5)

	s.MoveToIndex(12)
	assert.Equal(t, 8, s.GetViewportOffset())

	s.MoveToIndex(3)
	assert.Equal(t, 3, s.GetViewportOffset())

	s.Reset()
	assert.Equal(t, 0, s.GetCursor())
	assert.Equal(t, 0, s.GetViewportOffset())
}

func TestEmptyList(t *testing.T) {
	s := newService(0, 5)

	s.MoveToIndex(4)
	assert.Equal(t, 0, s.GetCursor())
	assert.False(t, s.Navigate(DirectionDown))
}

func TestEnsureVisibleAfterShrink(t *testing.T) {
	count := 20
	s := NewService()
	s.SetCountFunction(func() int { return count })
	s.SetViewportHeight(5)
	s.MoveToIndex(15)

	count = 3
	s.EnsureVisible()
	assert.Equal(t, 2, s.GetCursor())
	assert.Equal(t, 2, s.GetViewportOffset())
}
