package schedule

// Policy groups the tunable scheduling rules: the hard/soft toggle for the
// adjacent-team rule, the fixture-pair separation, and the weights of the
// objective terms. Weights are relative; only their ratios matter.
type Policy struct {
	// AdjacentTeamsHard makes "consecutive teams of a club never play
	// non-mutual fixtures on the same date" a hard constraint. When false
	// the rule becomes a soft penalty of AdjacentTeamsWeight instead.
	AdjacentTeamsHard   bool
	AdjacentTeamsWeight int

	// PairSeparationDays is the minimum spacing between the two legs of a
	// reverse-fixture pair.
	PairSeparationDays int

	// TeamSpacingTarget spreads a team's own matches: any two of them closer
	// than this many days cost TeamSpacingWeight.
	TeamSpacingTarget int
	TeamSpacingWeight int

	// DivisionSpreadWeight rewards each distinct date a division plays on.
	DivisionSpreadWeight int

	// VenueSpreadWeight rewards each distinct date used by a (venue,
	// weekday) group, or penalizes it for venues that prefer empty days.
	VenueSpreadWeight int

	// MaxStreak bounds home/away runs: two same-type fixtures of a team
	// within 7*MaxStreak days cost HomeAwayWeight.
	MaxStreak      int
	HomeAwayWeight int
}

// DefaultPolicy mirrors the league's customary rules: hard adjacent-team
// constraint and seven weeks between the legs of a pair.
func DefaultPolicy() Policy {
	return Policy{
		AdjacentTeamsHard:    true,
		AdjacentTeamsWeight:  50,
		PairSeparationDays:   49,
		TeamSpacingTarget:    14,
		TeamSpacingWeight:    1,
		DivisionSpreadWeight: 1,
		VenueSpreadWeight:    1,
		MaxStreak:            2,
		HomeAwayWeight:       1,
	}
}
