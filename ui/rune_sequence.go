package ui

const initialRune = 'A'

// runeSequence hands out A, B, C, ... skipping the draw key.
type runeSequence struct {
	currentRune rune
}

func (s *runeSequence) next() rune {
	if s.currentRune == 0 {
		s.currentRune = initialRune
	}
	if s.currentRune == drawKey {
		s.currentRune++
	}
	currentRune := s.currentRune
	s.currentRune++
	return currentRune
}
