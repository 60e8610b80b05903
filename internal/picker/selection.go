package picker

import "github.com/lorenzo-frittoli/wifi-cli/internal/nmcli"

// Selection tracks which entry of the current network list is highlighted.
// The index is clamped at both ends, never wrapped, so it stays inside
// [0, len-1] for any non-empty list.
type Selection struct {
	index int
}

// MoveUp moves the highlight one entry up, stopping at the first entry.
func (s *Selection) MoveUp() {
	if s.index > 0 {
		s.index--
	}
}

// MoveDown moves the highlight one entry down, stopping at the last entry.
// Must not be called with length 0.
func (s *Selection) MoveDown(length int) {
	if s.index < length-1 {
		s.index++
	}
}

// Clamp re-bounds the index after a fresh scan has replaced the list.
func (s *Selection) Clamp(length int) {
	if length == 0 {
		s.index = 0
		return
	}
	if s.index > length-1 {
		s.index = length - 1
	}
}

// Index returns the highlighted offset.
func (s *Selection) Index() int { return s.index }

// Current returns the highlighted entry. The index invariant keeps it in
// range for any non-empty list.
func (s *Selection) Current(list []nmcli.Network) nmcli.Network {
	return list[s.index]
}
