package model

// Display names for firmware profile slots.
const (
	ProfileNameWork      = "WORK"
	ProfileNameGaming    = "GAMING"
	ProfileNameUndefined = "UNDEFINED"
)

var profileNames = map[int]string{
	0: ProfileNameWork,
	1: ProfileNameGaming,
}

// ProfileName returns the display label for a profile index. known is false
// when the index has no entry and ProfileNameUndefined is returned instead.
func ProfileName(index int) (name string, known bool) {
	if name, ok := profileNames[index]; ok {
		return name, true
	}
	return ProfileNameUndefined, false
}
