package schedule

import (
	"github.com/samber/lo"

	"github.com/nottschess/leaguegen/internal/league"
)

// postObjective assembles the weighted soft terms: spread each team's own
// matches, spread division and venue activity over many dates (or
// concentrate it for venues that prefer empty days), and keep home and away
// fixtures interleaved. On a non-optimizing backend this is a no-op.
func (s *Scheduler) postObjective() {
	if !s.solver.Optimizes() {
		return
	}
	s.spaceTeams()
	s.spreadDivisions()
	s.spreadVenues()
	s.alternateHomeAway()
}

func (s *Scheduler) spaceTeams() {
	if s.policy.TeamSpacingWeight <= 0 {
		return
	}
	for _, t := range s.league.Teams() {
		fixtures := t.Fixtures()
		for i := range fixtures {
			for j := i + 1; j < len(fixtures); j++ {
				s.solver.PenalizeWithin(
					s.vars[fixtures[i].ID], s.vars[fixtures[j].ID],
					s.policy.TeamSpacingTarget, s.policy.TeamSpacingWeight)
			}
		}
	}
}

func (s *Scheduler) spreadDivisions() {
	if s.policy.DivisionSpreadWeight <= 0 {
		return
	}
	for _, d := range s.league.Divisions {
		vars := s.varsOf(d.Fixtures)
		for _, day := range s.groupDays(d.Fixtures) {
			s.solver.RewardValueUsed(vars, day, s.policy.DivisionSpreadWeight)
		}
	}
}

func (s *Scheduler) spreadVenues() {
	if s.policy.VenueSpreadWeight <= 0 {
		return
	}
	for _, vw := range s.league.VenuesWeekdays() {
		group := lo.Filter(vw.Venue.Fixtures(), func(f *league.Fixture, _ int) bool {
			return f.Weekday() == vw.Weekday
		})
		if len(group) == 0 {
			continue
		}
		vars := s.varsOf(group)
		for _, day := range s.groupDays(group) {
			if vw.Venue.MinimizeEmptyDays {
				s.solver.PenalizeValueUsed(vars, day, s.policy.VenueSpreadWeight)
			} else {
				s.solver.RewardValueUsed(vars, day, s.policy.VenueSpreadWeight)
			}
		}
	}
}

// alternateHomeAway penalizes two same-type fixtures of a team falling
// within 7*MaxStreak days of each other, the tightest witnesses of a
// home/away run longer than the allowed streak.
func (s *Scheduler) alternateHomeAway() {
	if s.policy.HomeAwayWeight <= 0 || s.policy.MaxStreak <= 0 {
		return
	}
	window := 7 * s.policy.MaxStreak
	for _, t := range s.league.Teams() {
		home := lo.Filter(t.Fixtures(), func(f *league.Fixture, _ int) bool { return f.Home == t })
		away := lo.Filter(t.Fixtures(), func(f *league.Fixture, _ int) bool { return f.Home != t })
		for _, sameType := range [][]*league.Fixture{home, away} {
			for i := range sameType {
				for j := i + 1; j < len(sameType); j++ {
					s.solver.PenalizeWithin(
						s.vars[sameType[i].ID], s.vars[sameType[j].ID],
						window, s.policy.HomeAwayWeight)
				}
			}
		}
	}
}
