package models

import "strings"

type Role int

const (
	RoleUnknown Role = iota
	RoleGoalkeeper
	RoleDefender
	RoleMidfielder
	RoleForward
)

// Roles lists the known roles in lineup order.
var Roles = []Role{RoleGoalkeeper, RoleDefender, RoleMidfielder, RoleForward}

func (r Role) String() string {
	switch r {
	case RoleGoalkeeper:
		return "GK"
	case RoleDefender:
		return "DEF"
	case RoleMidfielder:
		return "MID"
	case RoleForward:
		return "FWD"
	default:
		return "Unknown"
	}
}

func (r Role) Known() bool {
	return r >= RoleGoalkeeper && r <= RoleForward
}

func (r Role) IsOutfield() bool {
	return r == RoleDefender || r == RoleMidfielder || r == RoleForward
}

// ParseRole maps a data-access role code to a Role. Unrecognized codes yield
// RoleUnknown.
func ParseRole(code string) Role {
	roles := map[string]Role{
		"P": RoleGoalkeeper, "POR": RoleGoalkeeper, "G": RoleGoalkeeper, "GK": RoleGoalkeeper, "GOALKEEPER": RoleGoalkeeper,
		"D": RoleDefender, "DEF": RoleDefender, "DEFENDER": RoleDefender,
		"C": RoleMidfielder, "CEN": RoleMidfielder, "M": RoleMidfielder, "MID": RoleMidfielder, "MIDFIELDER": RoleMidfielder,
		"A": RoleForward, "ATT": RoleForward, "F": RoleForward, "FWD": RoleForward, "FORWARD": RoleForward,
	}
	if role, ok := roles[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return role
	}
	return RoleUnknown
}

type Section int

const (
	SectionStarter Section = iota
	SectionBench
)

func (s Section) String() string {
	if s == SectionBench {
		return "Bench"
	}
	return "Starter"
}

// ParseSection reports false for codes that are neither starter nor bench.
func ParseSection(code string) (Section, bool) {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "starter", "s", "t", "titolare":
		return SectionStarter, true
	case "bench", "b", "p", "panchina":
		return SectionBench, true
	default:
		return SectionStarter, false
	}
}

// PlayerRecord is one line of a roster submission for a team on a matchday.
// RawScore decides whether the player took the field; AdjustedScore is what
// counts towards points. A nil score means no rating was recorded.
type PlayerRecord struct {
	Team          string
	Matchday      int
	Name          string
	Role          Role
	Section       Section
	Order         int
	RawScore      *float64
	AdjustedScore *float64
}

// Played reports whether the player has a positive raw rating.
func (p PlayerRecord) Played() bool {
	return p.RawScore != nil && *p.RawScore > 0
}

// Points returns the adjusted rating, zero when absent.
func (p PlayerRecord) Points() float64 {
	if p.AdjustedScore == nil {
		return 0
	}
	return *p.AdjustedScore
}

// Scored reports whether the player has a positive adjusted rating.
func (p PlayerRecord) Scored() bool {
	return p.AdjustedScore != nil && *p.AdjustedScore > 0
}

// Score is a convenience for building nullable ratings.
func Score(v float64) *float64 {
	return &v
}
