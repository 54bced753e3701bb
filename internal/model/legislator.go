package model

import (
	"strings"

	"github.com/rotisserie/eris"
)

// Chamber identifies one of the two legislative bodies
type Chamber string

const (
	ChamberHouse  Chamber = "House"
	ChamberSenate Chamber = "Senate"
)

// Chambers lists both chambers in display order
var Chambers = []Chamber{ChamberHouse, ChamberSenate}

// ParseChamber accepts a chamber selector ("H", "S", "house", "senate"), case-insensitive
func ParseChamber(s string) (Chamber, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "H", "HOUSE":
		return ChamberHouse, nil
	case "S", "SENATE":
		return ChamberSenate, nil
	}
	return "", eris.Errorf("unknown chamber %q (use H for House, S for Senate)", s)
}

// MemberTitle returns the form of address for a member of this chamber
func (c Chamber) MemberTitle() string {
	if c == ChamberHouse {
		return "Representative"
	}
	return "Senator"
}

// Party is the party affiliation derived from a one-letter code
type Party string

const (
	PartyDemocratic Party = "Democratic"
	PartyRepublican Party = "Republican"
	// PartyUnknown covers any code other than D or R
	PartyUnknown Party = "Unknown"
)

// PartyFromCode maps a roster party code to a Party
func PartyFromCode(code string) Party {
	switch strings.TrimSpace(code) {
	case "D":
		return PartyDemocratic
	case "R":
		return PartyRepublican
	}
	return PartyUnknown
}

// Legislator is one extracted roster record
type Legislator struct {
	State      string `yaml:"state"`
	DataSource string `yaml:"data_source"`

	Name     string  `yaml:"name"`
	Chamber  Chamber `yaml:"chamber"`
	District string  `yaml:"district"`
	Party    Party   `yaml:"party"`
	Image    string  `yaml:"image,omitempty"`
	Email    string  `yaml:"email,omitempty"`
	Webpage  string  `yaml:"webpage,omitempty"`
	Title    string  `yaml:"title,omitempty"`
	Address  string  `yaml:"address,omitempty"`
	Phone    string  `yaml:"phone,omitempty"`
	Fax      string  `yaml:"fax,omitempty"`

	// SocialHandles maps platform name (e.g. "twitter") to handle
	SocialHandles map[string]string `yaml:"social_handles,omitempty"`
}

// NewLegislator creates an empty record for the given jurisdiction and source
func NewLegislator(state, dataSource string) *Legislator {
	return &Legislator{
		State:         state,
		DataSource:    dataSource,
		SocialHandles: make(map[string]string),
	}
}
