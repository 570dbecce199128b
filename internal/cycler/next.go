package cycler

import (
	"fmt"
	"strconv"
	"strings"
)

// Selection is the outcome of choosing the next profile.
type Selection struct {
	Profiles []int // the ordered index range [0, count)
	Position int   // position of the current profile in Profiles
	Next     int   // profile index to activate
}

// NextProfile picks the profile after current among count enabled profiles.
// current is the raw text reported by the device tool.
func NextProfile(current string, count int) (Selection, error) {
	if count < 1 {
		return Selection{}, fmt.Errorf("%w: %d enabled profiles", ErrProfileCount, count)
	}

	value, err := strconv.Atoi(strings.TrimSpace(current))
	if err != nil {
		return Selection{}, fmt.Errorf("%w: %q is not an integer", ErrInvalidCurrentProfile, current)
	}

	profiles := make([]int, count)
	for i := range profiles {
		profiles[i] = i
	}

	position := -1
	for i, p := range profiles {
		if p == value {
			position = i
			break
		}
	}
	if position < 0 {
		return Selection{}, fmt.Errorf("%w: %d is outside %v", ErrInvalidCurrentProfile, value, profiles)
	}

	return Selection{
		Profiles: profiles,
		Position: position,
		Next:     profiles[(position+1)%len(profiles)],
	}, nil
}
