package extract

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ppiankov/legisearch/internal/model"
	"go.uber.org/zap"
)

// NameLine is the parsed form of a member's name anchor text
type NameLine struct {
	First string
	Last  string
	Title string
	Party model.Party
	Code  string // raw party code as it appeared in parentheses
}

// DisplayName renders "First Last"
func (n NameLine) DisplayName() string {
	return strings.TrimSpace(n.First + " " + n.Last)
}

// ContactInfo is the parsed address block
type ContactInfo struct {
	Address string
	Phone   string
	Fax     string
}

// RecordExtractor turns one roster fragment into a Legislator
type RecordExtractor struct {
	rules Rules
	base  *url.URL
}

// NewRecordExtractor creates an extractor for the given rules
func NewRecordExtractor(rules Rules) *RecordExtractor {
	base, err := url.Parse(rules.LinkBase)
	if err != nil {
		zap.L().Warn("invalid link base, profile links left unresolved",
			zap.String("base", rules.LinkBase), zap.Error(err))
		base = nil
	}
	return &RecordExtractor{rules: rules, base: base}
}

// Extract parses a single member fragment
func (e *RecordExtractor) Extract(item *goquery.Selection) (*model.Legislator, error) {
	leg := model.NewLegislator(e.rules.State, e.rules.DataSource)

	anchor := item.ChildrenFiltered("a").First()
	if anchor.Length() == 0 {
		return nil, parseError("name", "", "fragment has no member anchor")
	}
	if href, ok := anchor.Attr("href"); ok {
		leg.Webpage = e.resolve(href)
	}
	if src, ok := anchor.ChildrenFiltered("img").First().Attr("src"); ok {
		leg.Image = e.resolve(src)
	}

	name, err := e.ParseName(textContent(anchor))
	if err != nil {
		return nil, err
	}
	leg.Name = name.DisplayName()
	leg.Title = name.Title
	leg.Party = name.Party
	if leg.Party == model.PartyUnknown {
		zap.L().Warn("unrecognized party code", zap.String("name", leg.Name), zap.String("code", name.Code))
	}

	districtLine := textContent(item.ChildrenFiltered("div").ChildrenFiltered("a").First())
	leg.Chamber, leg.District, err = e.ParseDistrict(districtLine)
	if err != nil {
		return nil, err
	}

	leg.Email = e.Email(leg.Chamber, name.Last)

	address := item.ChildrenFiltered("div").ChildrenFiltered("address").First()
	if address.Length() > 0 {
		contact := e.ParseContact(textContent(address))
		leg.Address = contact.Address
		leg.Phone = contact.Phone
		leg.Fax = contact.Fax

		address.Next().ChildrenFiltered("a").Each(func(_ int, link *goquery.Selection) {
			href, _ := link.Attr("href")
			platform, handle, ok := e.ParseSocialLink(href)
			if !ok {
				zap.L().Debug("skipping social link", zap.String("name", leg.Name), zap.String("href", href))
				return
			}
			leg.SocialHandles[platform] = handle
		})
	}

	e.applyOverrides(leg)

	return leg, nil
}

// ParseName runs the name-line heuristics: comma repair, then leader, then regular member
func (e *RecordExtractor) ParseName(raw string) (NameLine, error) {
	text := strings.TrimSpace(raw)

	if multiCommasRegex.MatchString(text) {
		var parts []string
		for _, p := range strings.Split(lineBreaks.Replace(text), ",") {
			parts = append(parts, strings.TrimSpace(p))
		}
		text = fmt.Sprintf("%s, %s", strings.Join(parts[:2], " "), parts[len(parts)-1])
	}

	var line NameLine
	var groups []string
	if m := leaderRegex.FindStringSubmatch(text); m != nil {
		groups = trimAll(m[1:])
		line.Title = groups[len(groups)-1]
		groups = groups[:len(groups)-1]
	} else if m := regularRegex.FindStringSubmatch(text); m != nil {
		groups = trimAll(m[1:])
	} else {
		return NameLine{}, parseError("name", text, "matches neither leader nor member pattern")
	}

	line.Code = groups[len(groups)-1]
	line.Party = model.PartyFromCode(line.Code)
	groups = groups[:len(groups)-1]

	line.Last = groups[0]
	line.First = strings.Join(groups[1:], " ")
	return line, nil
}

// ParseDistrict splits "House District 17" into chamber and district
func (e *RecordExtractor) ParseDistrict(raw string) (model.Chamber, string, error) {
	text := strings.TrimSpace(raw)

	parts := strings.Split(text, "District")
	if len(parts) != 2 {
		return "", "", parseError("district", text, "expected exactly one \"District\" token")
	}

	prefix := strings.TrimSpace(parts[0])
	district := strings.TrimSpace(parts[1])
	if prefix == "" || district == "" {
		return "", "", parseError("district", text, "missing chamber or district number")
	}

	if prefix[0] == 'H' {
		return model.ChamberHouse, district, nil
	}
	return model.ChamberSenate, district, nil
}

// Email synthesizes the chamber mailbox from the last name
func (e *RecordExtractor) Email(chamber model.Chamber, lastName string) string {
	user := e.rules.EmailSanitizer.Apply(strings.ToLower(lastName))
	return e.rules.EmailPrefix[chamber] + user + "@" + e.rules.EmailDomain
}

// ParseContact reads street, phone and fax rows from an address block
func (e *RecordExtractor) ParseContact(raw string) ContactInfo {
	var info ContactInfo

	lines := nonEmptyLines(raw)
	if len(lines) > 0 {
		info.Address = lines[0] + ", " + e.rules.AddressSuffix
	}
	if len(lines) > 1 {
		info.Phone = afterLastColon(lines[1])
	}
	if len(lines) > 2 {
		info.Fax = afterLastColon(lines[2])
	}
	return info
}

// ParseSocialLink maps a profile href to (platform, handle)
func (e *RecordExtractor) ParseSocialLink(href string) (string, string, bool) {
	m := socialRegex.FindStringSubmatch(strings.ToLower(href))
	if m == nil {
		return "", "", false
	}
	return m[1], e.rules.HandleSanitizer.Apply(m[2]), true
}

func (e *RecordExtractor) applyOverrides(leg *model.Legislator) {
	o, ok := e.rules.Overrides[leg.Name]
	if !ok {
		return
	}
	for platform, handle := range o.SocialHandles {
		leg.SocialHandles[platform] = handle
	}
}

func (e *RecordExtractor) resolve(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" || e.base == nil {
		return ref
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return e.base.ResolveReference(u).String()
}

func trimAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.TrimSpace(s)
	}
	return out
}
