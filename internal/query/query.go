// Package query answers seat lookups against a built roster and renders them
// as plain text.
package query

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/ppiankov/legisearch/internal/model"
	"github.com/ppiankov/legisearch/internal/roster"
)

// Result is the outcome of a lookup. A miss is not an error.
type Result struct {
	Found      bool
	Chamber    model.Chamber
	District   string
	Legislator *model.Legislator
}

// Lookup finds the legislator holding (chamber, district)
func Lookup(r *roster.Roster, chamber model.Chamber, district string) Result {
	district = strings.TrimSpace(district)
	leg, ok := r.Lookup(chamber, district)
	return Result{
		Found:      ok,
		Chamber:    chamber,
		District:   district,
		Legislator: leg,
	}
}

// Render writes the human-readable answer for res
func Render(w io.Writer, res Result) error {
	if !res.Found {
		_, err := fmt.Fprintf(w, "\nNo legislator found for %s District %s\n", res.Chamber, res.District)
		return err
	}

	leg := res.Legislator
	b := &strings.Builder{}
	fmt.Fprintf(b, "\n%s represents %s District %s.\n", leg.Name, res.Chamber, res.District)
	fmt.Fprintf(b, "Here is the information available on the %s...\n\n", res.Chamber.MemberTitle())

	for _, f := range fields(leg) {
		if f.value == "" {
			continue
		}
		fmt.Fprintf(b, "%s: %s\n", f.label, f.value)
	}

	if len(leg.SocialHandles) > 0 {
		b.WriteString("Social Handles:\n")
		for _, platform := range sortedPlatforms(leg.SocialHandles) {
			fmt.Fprintf(b, "  %s: @%s\n", titleCase(platform), leg.SocialHandles[platform])
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

type field struct {
	label string
	value string
}

// fields lists the displayable attributes in display order; chamber,
// district, state and data source are bookkeeping and never shown.
func fields(leg *model.Legislator) []field {
	return []field{
		{"Name", leg.Name},
		{"Party", string(leg.Party)},
		{"Image", leg.Image},
		{"Email", leg.Email},
		{"Webpage", leg.Webpage},
		{"Title", leg.Title},
		{"Address", leg.Address},
		{"Phone", leg.Phone},
		{"Fax", leg.Fax},
	}
}

func sortedPlatforms(handles map[string]string) []string {
	platforms := make([]string, 0, len(handles))
	for p := range handles {
		platforms = append(platforms, p)
	}
	sort.Strings(platforms)
	return platforms
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
