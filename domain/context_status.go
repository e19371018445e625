package domain

// ContextStatus is the outcome of the pre-start validation.
type ContextStatus int

const (
	ContextUnknown ContextStatus = iota
	ContextReady
	ContextNotInChannel
	ContextTooFewOccupants
)

func (s ContextStatus) String() string {
	switch s {
	case ContextReady:
		return "READY"
	case ContextNotInChannel:
		return "NOT_IN_CHANNEL"
	case ContextTooFewOccupants:
		return "TOO_FEW_OCCUPANTS"
	default:
		return "UNKNOWN"
	}
}
