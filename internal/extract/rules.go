package extract

import (
	"regexp"

	"github.com/ppiankov/legisearch/internal/model"
)

var (
	// "Lastname, Firstname (D) Majority Leader"
	leaderRegex = regexp.MustCompile(`(.+),(.+)\s+\(([A-Z]+)\)\s+(.+)`)
	// "Lastname, Firstname (D)"
	regularRegex = regexp.MustCompile(`(.+),(.+)\s+\(([A-Z]+)\)`)
	// Name lines wrapped across rows carry an extra comma
	multiCommasRegex = regexp.MustCompile(`,.+,`)
	// "https://www.twitter.com/sen..." -> ("twitter", "sen...")
	socialRegex = regexp.MustCompile(`\.*/*(\w+)\.com/(.+)`)
)

// Override pins fields for one legislator where the roster page is known to be wrong
type Override struct {
	SocialHandles map[string]string `yaml:"social_handles,omitempty"`
}

// DefaultOverrides is keyed by final display name
func DefaultOverrides() map[string]Override {
	return map[string]Override{
		"Mike Gabbard": {SocialHandles: map[string]string{"youtube": "senmikegabbard"}},
	}
}

// Rules carries every jurisdiction-specific constant the extractor uses
type Rules struct {
	State         string
	DataSource    string
	LinkBase      string
	AddressSuffix string
	EmailDomain   string
	EmailPrefix   map[model.Chamber]string

	EmailSanitizer  Chain
	HandleSanitizer Chain

	// Overrides run after generic extraction
	Overrides map[string]Override
}

// DefaultRules builds rules from configuration
func DefaultRules(src model.SourceConfig, j model.JurisdictionConfig) Rules {
	return Rules{
		State:         j.State,
		DataSource:    src.URL,
		LinkBase:      src.BaseURL,
		AddressSuffix: j.AddressSuffix,
		EmailDomain:   j.EmailDomain,
		EmailPrefix: map[model.Chamber]string{
			model.ChamberHouse:  j.HousePrefix,
			model.ChamberSenate: j.SenatePrefix,
		},
		EmailSanitizer:  RemovalChain(" iii", "jr.", " ", "-"),
		HandleSanitizer: RemovalChain("user", "channel", "playlists", "photos", "/", "@"),
		Overrides:       DefaultOverrides(),
	}
}
