package navigation

// Service keeps a cursor inside a list of lines and a viewport that follows it
type Service struct {
	state   *State
	countFn func() int // Function to get the number of lines
}

// NewService creates a new navigation service
func NewService() *Service {
	return &Service{
		state: &State{
			Cursor:         0,
			ViewportOffset: 0,
			ViewportHeight: 10, // Default, will be updated
		},
	}
}

// SetCountFunction sets the function that reports how many lines exist
func (s *Service) SetCountFunction(fn func() int) {
	s.countFn = fn
}

// GetCursor returns current cursor position
func (s *Service) GetCursor() int {
	return s.state.Cursor
}

// GetViewportOffset returns current viewport offset
func (s *Service) GetViewportOffset() int {
	return s.state.ViewportOffset
}

// GetViewportHeight returns current viewport height
func (s *Service) GetViewportHeight() int {
	return s.state.ViewportHeight
}

// SetViewportHeight updates viewport height
func (s *Service) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	s.state.ViewportHeight = height
	s.ensureVisible()
}

// Navigate handles navigation in a direction and reports whether the cursor moved
func (s *Service) Navigate(direction Direction) bool {
	oldCursor := s.state.Cursor

	switch direction {
	case DirectionUp:
		s.moveUp()
	case DirectionDown:
		s.moveDown()
	case DirectionPageUp:
		s.pageUp()
	case DirectionPageDown:
		s.pageDown()
	case DirectionHome:
		s.moveToStart()
	case DirectionEnd:
		s.moveToEnd()
	}

	return oldCursor != s.state.Cursor
}

// MoveToIndex moves cursor to specific index
func (s *Service) MoveToIndex(index int) {
	s.state.Cursor = s.clampIndex(index)
	s.ensureVisible()
}

// EnsureVisible scrolls the viewport so the cursor is inside it
func (s *Service) EnsureVisible() {
	s.state.Cursor = s.clampIndex(s.state.Cursor)
	s.ensureVisible()
}

// Reset puts cursor and viewport back at the top
func (s *Service) Reset() {
	s.moveToStart()
}

// Internal navigation methods
func (s *Service) moveUp() {
	if s.state.Cursor > 0 {
		s.state.Cursor--
		s.ensureVisible()
	}
}

func (s *Service) moveDown() {
	if s.state.Cursor < s.maxIndex() {
		s.state.Cursor++
		s.ensureVisible()
	}
}

func (s *Service) pageUp() {
	pageSize := s.state.ViewportHeight - 1
	if pageSize < 1 {
		pageSize = 1
	}
	s.state.Cursor = s.clampIndex(s.state.Cursor - pageSize)

	// Also scroll viewport up
	s.state.ViewportOffset -= pageSize
	if s.state.ViewportOffset < 0 {
		s.state.ViewportOffset = 0
	}
	s.ensureVisible()
}

func (s *Service) pageDown() {
	pageSize := s.state.ViewportHeight - 1
	if pageSize < 1 {
		pageSize = 1
	}
	s.state.Cursor = s.clampIndex(s.state.Cursor + pageSize)
	s.ensureVisible()
}

func (s *Service) moveToStart() {
	s.state.Cursor = 0
	s.state.ViewportOffset = 0
}

func (s *Service) moveToEnd() {
	s.state.Cursor = s.maxIndex()
	s.ensureVisible()
}

// Helper methods
func (s *Service) maxIndex() int {
	if s.countFn == nil {
		return 0
	}
	if n := s.countFn(); n > 0 {
		return n - 1
	}
	return 0
}

func (s *Service) clampIndex(index int) int {
	if index < 0 {
		return 0
	}
	if last := s.maxIndex(); index > last {
		return last
	}
	return index
}

func (s *Service) ensureVisible() {
	if s.state.Cursor < s.state.ViewportOffset {
		s.state.ViewportOffset = s.state.Cursor
	} else if s.state.Cursor >= s.state.ViewportOffset+s.state.ViewportHeight {
		s.state.ViewportOffset = s.state.Cursor - s.state.ViewportHeight + 1
	}
}
