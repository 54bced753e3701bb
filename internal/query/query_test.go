package query

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ppiankov/legisearch/internal/model"
	"github.com/ppiankov/legisearch/internal/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoster() *roster.Roster {
	r := roster.New()

	smith := model.NewLegislator("hi", "https://www.capitol.hawaii.gov/members/legislators.aspx")
	smith.Name = "Jane Smith"
	smith.Chamber = model.ChamberHouse
	smith.District = "5"
	smith.Party = model.PartyDemocratic
	smith.Email = "repsmith@capitol.hawaii.gov"
	smith.Title = "Speaker"
	smith.Address = "123 Main St, 415 S Beretania St, Honolulu, HI 96813"
	smith.Phone = "555-1111"
	smith.Fax = "555-2222"
	smith.SocialHandles["twitter"] = "repjanesmith"
	smith.SocialHandles["facebook"] = "repjanesmith"
	r.Insert(smith)

	ward := model.NewLegislator("hi", "src")
	ward.Name = "Gene Ward"
	ward.Chamber = model.ChamberSenate
	ward.District = "17"
	ward.Party = model.PartyRepublican
	r.Insert(ward)

	return r
}

func TestLookup(t *testing.T) {
	r := testRoster()

	res := Lookup(r, model.ChamberHouse, "5")
	require.True(t, res.Found)
	assert.Equal(t, "Jane Smith", res.Legislator.Name)

	res = Lookup(r, model.ChamberSenate, "5")
	assert.False(t, res.Found)
	assert.Nil(t, res.Legislator)
	assert.Equal(t, "5", res.District)
}

func TestRender_Found(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, Lookup(testRoster(), model.ChamberHouse, "5")))

	want := strings.Join([]string{
		"",
		"Jane Smith represents House District 5.",
		"Here is the information available on the Representative...",
		"",
		"Name: Jane Smith",
		"Party: Democratic",
		"Email: repsmith@capitol.hawaii.gov",
		"Title: Speaker",
		"Address: 123 Main St, 415 S Beretania St, Honolulu, HI 96813",
		"Phone: 555-1111",
		"Fax: 555-2222",
		"Social Handles:",
		"  Facebook: @repjanesmith",
		"  Twitter: @repjanesmith",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestRender_OmitsEmptyFields(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, Lookup(testRoster(), model.ChamberSenate, "17")))

	out := buf.String()
	assert.Contains(t, out, "Here is the information available on the Senator...")
	assert.Contains(t, out, "Party: Republican")
	assert.NotContains(t, out, "Phone:")
	assert.NotContains(t, out, "Social Handles:")
	assert.NotContains(t, out, "District: ")
	assert.NotContains(t, out, "State:")
}

func TestRender_Miss(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, Lookup(testRoster(), model.ChamberHouse, "99")))
	assert.Equal(t, "\nNo legislator found for House District 99\n", buf.String())
}
