package cycler

// State is the progress marker of a single cycle run.
type State string

const (
	StateStart               State = "start"
	StateDeviceDiscovered    State = "device_discovered"
	StateProfileCountKnown   State = "profile_count_known"
	StateCurrentProfileKnown State = "current_profile_known"
	StateNextProfileComputed State = "next_profile_computed"
	StateActivated           State = "activated"
	StateReported            State = "reported"
	StateFailed              State = "failed"
)
