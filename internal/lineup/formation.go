package lineup

import "github.com/omarshaarawi/coachrank/internal/models"

// LineupSize is the number of players in a complete lineup.
const LineupSize = 11

// maxOutfield is the number of outfield players a lineup can hold.
const maxOutfield = 10

type Formation struct {
	Name        string
	Defenders   int
	Midfielders int
	Forwards    int
}

// Formations is the fixed catalog, in evaluation order.
var Formations = []Formation{
	{Name: "3-4-3", Defenders: 3, Midfielders: 4, Forwards: 3},
	{Name: "3-5-2", Defenders: 3, Midfielders: 5, Forwards: 2},
	{Name: "4-3-3", Defenders: 4, Midfielders: 3, Forwards: 3},
	{Name: "4-4-2", Defenders: 4, Midfielders: 4, Forwards: 2},
	{Name: "4-5-1", Defenders: 4, Midfielders: 5, Forwards: 1},
	{Name: "5-3-2", Defenders: 5, Midfielders: 3, Forwards: 2},
	{Name: "5-4-1", Defenders: 5, Midfielders: 4, Forwards: 1},
}

// Count returns how many players of role the formation fields.
func (f Formation) Count(role models.Role) int {
	switch role {
	case models.RoleGoalkeeper:
		return 1
	case models.RoleDefender:
		return f.Defenders
	case models.RoleMidfielder:
		return f.Midfielders
	case models.RoleForward:
		return f.Forwards
	default:
		return 0
	}
}

// MatchFormation reports the catalog formation with exactly the given outfield
// counts.
func MatchFormation(defenders, midfielders, forwards int) (Formation, bool) {
	for _, f := range Formations {
		if f.Defenders == defenders && f.Midfielders == midfielders && f.Forwards == forwards {
			return f, true
		}
	}
	return Formation{}, false
}

// IsCatalogFormation reports whether name is one of the seven catalog shapes.
func IsCatalogFormation(name string) bool {
	for _, f := range Formations {
		if f.Name == name {
			return true
		}
	}
	return false
}
