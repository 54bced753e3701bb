package console

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/ppiankov/legisearch/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadChamber_Reprompts(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("x\nhouse\n s \n"), &out)

	chamber, err := p.ReadChamber()
	require.NoError(t, err)
	assert.Equal(t, model.ChamberSenate, chamber)
	assert.Equal(t, 2, strings.Count(out.String(), "Please enter valid input (H for House, S for Senate)."))
	assert.Equal(t, 3, strings.Count(out.String(), "(H/S): "))
}

func TestReadChamber_CaseInsensitive(t *testing.T) {
	p := NewPrompter(strings.NewReader("h\nH\n"), io.Discard)

	for i := 0; i < 2; i++ {
		chamber, err := p.ReadChamber()
		require.NoError(t, err)
		assert.Equal(t, model.ChamberHouse, chamber)
	}
}

func TestReadDistrict_Reprompts(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("seventeen\n\n17\n"), &out)

	district, err := p.ReadDistrict()
	require.NoError(t, err)
	assert.Equal(t, 17, district)
	assert.Equal(t, 2, strings.Count(out.String(), "Please enter a valid numeric district number."))
}

func TestAskAnother(t *testing.T) {
	tests := []struct {
		input string
		want  bool
		retry int
	}{
		{"yes\n", true, 0},
		{"Y\n", true, 0},
		{"NO\n", false, 0},
		{"maybe\nn\n", false, 1},
		{"later\nsure\ny", true, 2},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var out bytes.Buffer
			got, err := NewPrompter(strings.NewReader(tt.input), &out).AskAnother()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.retry, strings.Count(out.String(), "Please enter 'yes' or 'no'."))
		})
	}
}

func TestPrompter_EOF(t *testing.T) {
	p := NewPrompter(strings.NewReader("bogus\n"), io.Discard)

	_, err := p.ReadChamber()
	assert.ErrorIs(t, err, io.EOF)

	_, err = p.ReadDistrict()
	assert.ErrorIs(t, err, io.EOF)

	_, err = p.AskAnother()
	assert.ErrorIs(t, err, io.EOF)
}

func TestBar(t *testing.T) {
	assert.Equal(t, strings.Repeat("-", 50), Bar(0, 10))
	assert.Equal(t, strings.Repeat("█", 25)+strings.Repeat("-", 25), Bar(5, 10))
	assert.Equal(t, strings.Repeat("█", 50), Bar(10, 10))
	assert.Equal(t, strings.Repeat("█", 16)+strings.Repeat("-", 34), Bar(1, 3))
	assert.Equal(t, strings.Repeat("-", 50), Bar(0, 0))
}

func TestProgressBar_Update(t *testing.T) {
	var out bytes.Buffer
	NewProgressBar(&out).Update(3, 76)

	assert.True(t, strings.HasPrefix(out.String(), "\rProcessing: ["))
	assert.True(t, strings.HasSuffix(out.String(), "] 3 of 76 legislators"))
}

func TestTypewriter(t *testing.T) {
	var out bytes.Buffer
	var pauses []time.Duration

	tw := NewTypewriter(&out, 30*time.Millisecond)
	tw.sleep = func(d time.Duration) { pauses = append(pauses, d) }

	n, err := tw.Write([]byte("Aloha ō"))
	require.NoError(t, err)
	assert.Equal(t, len("Aloha ō"), n)
	assert.Equal(t, "Aloha ō", out.String())
	assert.Len(t, pauses, 7)
	assert.Equal(t, 30*time.Millisecond, pauses[0])
}

func TestTypewriter_NoDelay(t *testing.T) {
	var out bytes.Buffer
	tw := NewTypewriter(&out, 0)
	tw.sleep = func(time.Duration) { t.Fatal("sleep called with zero delay") }

	_, err := tw.Write([]byte("plain"))
	require.NoError(t, err)
	assert.Equal(t, "plain", out.String())
}

func TestGreeting(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "stop looking up legislators in Hawaii, it's late! GET SOME SLEEP!"},
		{2, "stop looking up legislators in Hawaii, it's late! GET SOME SLEEP!"},
		{3, "have a great day!"},
		{11, "have a great day!"},
		{12, "enjoy the rest of your day!"},
		{16, "enjoy the rest of your day!"},
		{17, "have a great night!"},
		{21, "have a great night!"},
		{22, "stop looking up legislators in Hawaii, it's late! GET SOME SLEEP!"},
		{23, "stop looking up legislators in Hawaii, it's late! GET SOME SLEEP!"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Greeting(tt.hour), "hour %d", tt.hour)
	}
}
