package models

// Connectivity is the backend reachability state. It starts Unknown and is
// transitioned only by the health check; a failed chat call never changes it.
type Connectivity int

const (
	ConnUnknown Connectivity = iota
	ConnConnected
	ConnDisconnected
)

func (c Connectivity) String() string {
	switch c {
	case ConnConnected:
		return "connected"
	case ConnDisconnected:
		return "disconnected"
	default:
		return "unknown"
	}
}
