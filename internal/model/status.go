package model

// LoadStatus represents the state of the one-shot lineup fetch
type LoadStatus string

const (
	// LoadStatusIdle means no fetch has been issued yet
	LoadStatusIdle LoadStatus = "Idle"

	// LoadStatusLoading means the GET request is in flight
	LoadStatusLoading LoadStatus = "Loading"

	// LoadStatusReady means the artist list was decoded successfully
	LoadStatusReady LoadStatus = "Ready"

	// LoadStatusError means the fetch or decode failed and the list stays empty
	LoadStatusError LoadStatus = "Error"
)

// String returns the string representation of LoadStatus
func (ls LoadStatus) String() string {
	return string(ls)
}

// IsFinished returns true if the fetch has completed, successfully or not
func (ls LoadStatus) IsFinished() bool {
	return ls == LoadStatusReady || ls == LoadStatusError
}
