// Package roster holds the in-memory chamber -> district index of legislators.
package roster

import (
	"sort"
	"strconv"

	"github.com/ppiankov/legisearch/internal/model"
)

// Key identifies a seat
type Key struct {
	Chamber  model.Chamber
	District string
}

// Roster indexes legislators by chamber, then district. It is built once
// and read afterwards; it does no locking.
type Roster struct {
	members map[model.Chamber]map[string]*model.Legislator
	emails  map[string][]Key
}

// New creates an empty roster with both chambers present
func New() *Roster {
	r := &Roster{
		members: make(map[model.Chamber]map[string]*model.Legislator),
		emails:  make(map[string][]Key),
	}
	for _, c := range model.Chambers {
		r.members[c] = make(map[string]*model.Legislator)
	}
	return r
}

// Insert stores leg at (chamber, district), replacing any earlier record.
// The replaced record, if any, is returned.
func (r *Roster) Insert(leg *model.Legislator) *model.Legislator {
	seats, ok := r.members[leg.Chamber]
	if !ok {
		seats = make(map[string]*model.Legislator)
		r.members[leg.Chamber] = seats
	}

	key := Key{Chamber: leg.Chamber, District: leg.District}
	prev := seats[leg.District]
	if prev != nil {
		r.dropEmail(prev.Email, key)
	}
	seats[leg.District] = leg

	if leg.Email != "" {
		r.emails[leg.Email] = append(r.emails[leg.Email], key)
	}
	return prev
}

// Lookup returns the record for a seat
func (r *Roster) Lookup(chamber model.Chamber, district string) (*model.Legislator, bool) {
	leg, ok := r.members[chamber][district]
	return leg, ok
}

// SharedEmail returns the other seats whose synthesized email equals leg's
func (r *Roster) SharedEmail(leg *model.Legislator) []Key {
	var others []Key
	for _, k := range r.emails[leg.Email] {
		if k.Chamber != leg.Chamber || k.District != leg.District {
			others = append(others, k)
		}
	}
	return others
}

// Len counts records across both chambers
func (r *Roster) Len() int {
	n := 0
	for _, seats := range r.members {
		n += len(seats)
	}
	return n
}

// Members lists a chamber's records ordered by district
func (r *Roster) Members(chamber model.Chamber) []*model.Legislator {
	seats := r.members[chamber]
	out := make([]*model.Legislator, 0, len(seats))
	for _, leg := range seats {
		out = append(out, leg)
	}
	sort.Slice(out, func(i, j int) bool {
		return districtLess(out[i].District, out[j].District)
	})
	return out
}

func (r *Roster) dropEmail(email string, key Key) {
	keys := r.emails[email]
	for i, k := range keys {
		if k == key {
			keys = append(keys[:i], keys[i+1:]...)
			break
		}
	}
	if len(keys) == 0 {
		delete(r.emails, email)
		return
	}
	r.emails[email] = keys
}

// districtLess orders numeric districts numerically and falls back to string order
func districtLess(a, b string) bool {
	ai, aErr := strconv.Atoi(a)
	bi, bErr := strconv.Atoi(b)
	switch {
	case aErr == nil && bErr == nil:
		return ai < bi
	case aErr == nil:
		return true
	case bErr == nil:
		return false
	}
	return a < b
}
