package utils

// Points awarded per prediction.
const (
	ExactPoints  = 3
	WinnerPoints = 1
)

// Outcome classifies a prediction once the real result is compared to it.
type Outcome string

const (
	OutcomeExact   Outcome = "exact"
	OutcomeWinner  Outcome = "winner"
	OutcomeWrong   Outcome = "wrong"
	OutcomePending Outcome = "pending"
)

// Side is the result of a match seen from the home team.
type Side int

const (
	SideAway Side = -1
	SideDraw Side = 0
	SideHome Side = 1
)

func (s Side) String() string {
	switch s {
	case SideHome:
		return "home"
	case SideAway:
		return "away"
	default:
		return "draw"
	}
}

// Result returns which side won a scoreline.
func Result(home, away int) Side {
	switch {
	case home > away:
		return SideHome
	case home < away:
		return SideAway
	default:
		return SideDraw
	}
}

// Evaluate scores a predicted scoreline against the actual one. A missing actual
// score means the match has not been played yet.
func Evaluate(predictedHome, predictedAway int, actualHome, actualAway *int) (int, Outcome) {
	if actualHome == nil || actualAway == nil {
		return 0, OutcomePending
	}

	if predictedHome == *actualHome && predictedAway == *actualAway {
		return ExactPoints, OutcomeExact
	}

	if Result(predictedHome, predictedAway) == Result(*actualHome, *actualAway) {
		return WinnerPoints, OutcomeWinner
	}

	return 0, OutcomeWrong
}
