package league

import (
	"fmt"
	"strings"
)

// Division is a group of teams playing a full round-robin: every ordered pair
// of distinct teams meets exactly once, so each unordered pair produces a
// first leg and a reverse leg.
type Division struct {
	Name     string
	Teams    []*Team
	Fixtures []*Fixture

	// Pairs partitions Fixtures into reverse-fixture pairs, one per unordered
	// team pair, in declaration order of the first leg.
	Pairs [][2]*Fixture
}

// NewDivision builds the division and generates its round-robin fixture set.
func NewDivision(name string, teams []*Team) *Division {
	var fixtures []*Fixture
	for _, home := range teams {
		for _, away := range teams {
			if home != away {
				fixtures = append(fixtures, NewFixture(home, away))
			}
		}
	}
	d := &Division{Name: name, Teams: teams, Fixtures: fixtures}
	d.Pairs = pairFixtures(fixtures)
	return d
}

// AssembleDivision rebuilds a division from an explicit fixture list, as read
// from a persisted document. The list must be a full round-robin over teams;
// fixture order (and any pinned dates) is preserved.
func AssembleDivision(name string, teams []*Team, fixtures []*Fixture) (*Division, error) {
	inDivision := make(map[*Team]bool, len(teams))
	for _, t := range teams {
		if inDivision[t] {
			return nil, fmt.Errorf("division %q: duplicate team %q", name, t.Name)
		}
		inDivision[t] = true
	}
	seen := make(map[[2]*Team]bool, len(fixtures))
	for _, f := range fixtures {
		if f.Home == f.Away {
			return nil, fmt.Errorf("division %q: fixture %q pits a team against itself", name, f.Name())
		}
		if !inDivision[f.Home] || !inDivision[f.Away] {
			return nil, fmt.Errorf("division %q: fixture %q references a team outside the division", name, f.Name())
		}
		key := [2]*Team{f.Home, f.Away}
		if seen[key] {
			return nil, fmt.Errorf("division %q: duplicate fixture %q", name, f.Name())
		}
		seen[key] = true
	}
	if want := len(teams) * (len(teams) - 1); len(fixtures) != want {
		return nil, fmt.Errorf("division %q: %d fixtures, want %d for a full round-robin", name, len(fixtures), want)
	}
	d := &Division{Name: name, Teams: teams, Fixtures: fixtures}
	d.Pairs = pairFixtures(fixtures)
	return d, nil
}

func pairFixtures(fixtures []*Fixture) [][2]*Fixture {
	var pairs [][2]*Fixture
	paired := make(map[*Fixture]bool, len(fixtures))
	for i, f := range fixtures {
		if paired[f] {
			continue
		}
		for _, g := range fixtures[i+1:] {
			if !paired[g] && f.SamePair(g) {
				pairs = append(pairs, [2]*Fixture{f, g})
				paired[f], paired[g] = true, true
				break
			}
		}
	}
	return pairs
}

func (d *Division) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "= %s =\nTeams:\n", d.Name)
	names := make([]string, len(d.Teams))
	for i, t := range d.Teams {
		names[i] = t.Name
	}
	for _, n := range sortedCopy(names) {
		fmt.Fprintf(&b, "    %s\n", n)
	}
	b.WriteString("\nFixtures:\n")
	for _, f := range ByDate(d.Fixtures) {
		fmt.Fprintf(&b, "    %s\n", f)
	}
	return b.String()
}
