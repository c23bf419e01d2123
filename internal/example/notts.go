// Package example builds hardcoded example leagues, used by the save
// command to bootstrap an editable document.
package example

import (
	"fmt"

	"github.com/nottschess/leaguegen/internal/league"
)

// Names of the available example leagues.
const NottsName = "notts"

// Build returns the named example league.
func Build(name string) (*league.League, error) {
	switch name {
	case NottsName:
		return Notts202425()
	default:
		return nil, fmt.Errorf("example: unknown example %q", name)
	}
}

// Notts202425 is the Nottinghamshire league, season 2024/25: five divisions,
// twelve clubs, ten venues, running 1 September to 15 May.
func Notts202425() (*league.League, error) {
	bramcote := league.NewVenue("Bramcote Memorial Hall")
	brownCow := league.NewVenue("Brown Cow")
	coronation := league.NewVenue("Coronation Social Club")
	embankment := league.NewVenue("The Embankment Pub")
	gonerby := league.NewVenue("Great Gonerby Social Club")
	legion := league.NewVenue("Royal British Legion Club")
	monica := league.NewVenue("Monica Partridge Building")
	poacher := league.NewVenue("The Lincolnshire Poacher")
	railway := league.NewVenue("The Railway Club")
	wolds := league.NewVenue("The Wolds Pub")

	ashfield := league.NewClub("Ashfield", coronation, league.Wednesday)
	beeston := league.NewClub("Beeston", bramcote, league.Tuesday)
	central := league.NewClub("Nottingham Central", embankment, league.Tuesday)
	gambit := league.NewClub("Gambit", poacher, league.Tuesday)
	grantham := league.NewClub("Grantham", gonerby, league.Wednesday)
	mansfield := league.NewClub("Mansfield", brownCow, league.Thursday)
	newark := league.NewClub("Newark", railway, league.Monday)
	nomads := league.NewClub("Nomads", embankment, league.Monday)
	radcliffe := league.NewClub("Radcliffe & Bingham", legion, league.Monday)
	university := league.NewClub("University", monica, league.Wednesday)
	westBridgford := league.NewClub("West Bridgford", wolds, league.Monday)
	westNottingham := league.NewClub("West Nottingham", bramcote, league.Tuesday)

	div1 := league.NewDivision("Division 1", []*league.Team{
		gambit.NewTeam(), gambit.NewTeam(), grantham.NewTeam(), nomads.NewTeam(),
		mansfield.NewTeam(), newark.NewTeam(), university.NewTeam(), westBridgford.NewTeam(),
	})
	div2 := league.NewDivision("Division 2", []*league.Team{
		ashfield.NewTeam(), ashfield.NewTeam(), beeston.NewTeam(), grantham.NewTeam(),
		nomads.NewTeam(), radcliffe.NewTeam(), westBridgford.NewTeam(), westNottingham.NewTeam(),
	})
	div3 := league.NewDivision("Division 3", []*league.Team{
		central.NewNamedTeam("Central 1"), gambit.NewTeam(), gambit.NewTeam(), gambit.NewTeam(),
		newark.NewTeam(), university.NewTeam(), radcliffe.NewTeam(), westNottingham.NewTeam(),
	})
	div4 := league.NewDivision("Division 4", []*league.Team{
		ashfield.NewTeam(), ashfield.NewTeam(), gambit.NewTeam(), grantham.NewTeam(),
		nomads.NewTeam(), westBridgford.NewTeam(), westNottingham.NewTeam(),
	})
	div5 := league.NewDivision("Division 5", []*league.Team{
		radcliffe.NewTeam(), radcliffe.NewTeam(), newark.NewTeam(), grantham.NewTeam(),
		gambit.NewTeam(), central.NewNamedTeam("Central 2"), beeston.NewTeam(),
	})

	return league.New("Notts League 2024/25",
		league.Date(2024, 9, 1), league.Date(2025, 5, 15),
		league.EmptyCalendar(),
		[]*league.Division{div1, div2, div3, div4, div5})
}
