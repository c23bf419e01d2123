package schedule

import (
	"sort"

	"github.com/samber/lo"

	"github.com/nottschess/leaguegen/internal/league"
	"github.com/nottschess/leaguegen/internal/oracle"
)

func (s *Scheduler) postConstraints() {
	s.oneMatchPerDayPerTeam()
	s.venueCapacity()
	s.firstMeetings()
	s.adjacentTeams()
	s.pairSeparation()
	s.onlyWhen()
}

// oneMatchPerDayPerTeam: a team's fixture dates are pairwise distinct.
func (s *Scheduler) oneMatchPerDayPerTeam() {
	for _, t := range s.league.Teams() {
		s.solver.Distinct(s.varsOf(t.Fixtures()))
	}
}

// venueCapacity: per (venue, weekday) group, at most MaxMatchesPerDay
// fixtures on any one date the group can reach.
func (s *Scheduler) venueCapacity() {
	for _, vw := range s.league.VenuesWeekdays() {
		group := lo.Filter(vw.Venue.Fixtures(), func(f *league.Fixture, _ int) bool {
			return f.Weekday() == vw.Weekday
		})
		if len(group) <= vw.Venue.MaxMatchesPerDay {
			continue
		}
		vars := s.varsOf(group)
		for _, day := range s.groupDays(group) {
			s.solver.AtMostAt(vars, day, vw.Venue.MaxMatchesPerDay)
		}
	}
}

// firstMeetings: for every club with several teams in a division, the first
// match of those teams is between themselves. Teams are processed in
// declaration order; each team's candidates are its home fixtures against a
// clubmate, preferring a partner not yet claimed. The chosen fixture must
// precede every other fixture of both teams, previously chosen first
// meetings excepted.
func (s *Scheduler) firstMeetings() {
	claimed := make(map[*league.Team]bool)
	chosen := make(map[*league.Fixture]bool)
	for _, t := range s.league.Teams() {
		if claimed[t] {
			continue
		}
		claimed[t] = true
		candidates := lo.Filter(t.Fixtures(), func(f *league.Fixture, _ int) bool {
			return f.Home == t && f.SameClub()
		})
		if len(candidates) == 0 {
			continue
		}
		first := candidates[0]
		if preferred, ok := lo.Find(candidates, func(f *league.Fixture) bool {
			return !claimed[f.Away]
		}); ok {
			first = preferred
		}
		chosen[first] = true
		claimed[first.Away] = true

		var others []oracle.Var
		seen := make(map[int]bool)
		for _, u := range []*league.Team{first.Home, first.Away} {
			for _, f := range u.Fixtures() {
				if chosen[f] || seen[f.ID] {
					continue
				}
				seen[f.ID] = true
				others = append(others, s.vars[f.ID])
			}
		}
		s.solver.Before(s.vars[first.ID], others)
	}
}

// adjacentTeams: consecutive teams of a club must not play non-mutual
// fixtures on the same date. Hard or soft per policy.
func (s *Scheduler) adjacentTeams() {
	for _, c := range s.league.Clubs() {
		for i := 0; i+1 < len(c.Teams); i++ {
			t1, t2 := c.Teams[i], c.Teams[i+1]
			for _, f1 := range t1.Fixtures() {
				if f1.Between(t1, t2) {
					continue
				}
				for _, f2 := range t2.Fixtures() {
					if f2.Between(t1, t2) {
						continue
					}
					if s.policy.AdjacentTeamsHard {
						s.solver.NotEqual(s.vars[f1.ID], s.vars[f2.ID])
					} else {
						s.solver.PenalizeEqual(s.vars[f1.ID], s.vars[f2.ID], s.policy.AdjacentTeamsWeight)
					}
				}
			}
		}
	}
}

// pairSeparation: the two legs of a reverse-fixture pair are played at
// least PairSeparationDays apart.
func (s *Scheduler) pairSeparation() {
	for _, pair := range s.league.FixturePairs() {
		s.solver.MinSeparation(s.vars[pair[0].ID], s.vars[pair[1].ID], s.policy.PairSeparationDays)
	}
}

// onlyWhen: every home date of a constrained club coincides with a home
// date of the reference club.
func (s *Scheduler) onlyWhen() {
	for _, rel := range s.league.OnlyWhen {
		witnesses := s.varsOf(s.clubHomeFixtures(rel.Reference))
		for _, f := range s.clubHomeFixtures(rel.Club) {
			s.solver.Covered(s.vars[f.ID], witnesses)
		}
	}
}

func (s *Scheduler) clubHomeFixtures(c *league.Club) []*league.Fixture {
	var out []*league.Fixture
	for _, t := range c.Teams {
		for _, f := range t.Fixtures() {
			if f.Home == t {
				out = append(out, f)
			}
		}
	}
	return out
}

func (s *Scheduler) varsOf(fixtures []*league.Fixture) []oracle.Var {
	return lo.Map(fixtures, func(f *league.Fixture, _ int) oracle.Var {
		return s.vars[f.ID]
	})
}

// groupDays is the union of the group's fixture domains, ascending. Pinned
// fixtures can sit outside the group's natural weekday grid, so the union is
// taken over actual domains rather than possibleDays.
func (s *Scheduler) groupDays(group []*league.Fixture) []int {
	seen := make(map[int]bool)
	var days []int
	for _, f := range group {
		for _, d := range s.domains[f.ID] {
			if !seen[d] {
				seen[d] = true
				days = append(days, d)
			}
		}
	}
	sort.Ints(days)
	return days
}
