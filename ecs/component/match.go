package component

type MatchPhase int

const (
	MatchPlaying MatchPhase = iota
	MatchEnded
)

func (p MatchPhase) String() string {
	switch p {
	case MatchPlaying:
		return "playing"
	case MatchEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Match is the singleton state of the running game. Winner is 0 until the
// match ends.
type Match struct {
	Phase  MatchPhase
	Winner int
	Frame  int
	Hits   int
}

var MatchComponent = NewComponent[Match]()
