// Package console holds the terminal side of the interactive search:
// prompts, the progress bar, typewriter output and the closing greeting.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ppiankov/legisearch/internal/model"
)

const (
	chamberPrompt  = "\nWould you like data on a member of the House or Senate? (H/S): "
	chamberInvalid = "\nPlease enter valid input (H for House, S for Senate).\n"
	districtPrompt = "Enter the number of the district you're interested in (e.g., '17'): "
	districtRetry  = "Please enter a valid numeric district number.\n"
	anotherPrompt  = "\nInterested in any other districts? (yes/no): "
	anotherInvalid = "Please enter 'yes' or 'no'.\n"
)

// Prompter reads answers line by line, reprompting until one is valid.
// Every method returns io.EOF once input is exhausted.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter reading from in and prompting on out
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// ReadChamber asks for H or S, case-insensitive
func (p *Prompter) ReadChamber() (model.Chamber, error) {
	for {
		answer, err := p.ask(chamberPrompt)
		if err != nil {
			return "", err
		}
		switch strings.ToUpper(answer) {
		case "H":
			return model.ChamberHouse, nil
		case "S":
			return model.ChamberSenate, nil
		}
		if _, err := io.WriteString(p.out, chamberInvalid); err != nil {
			return "", err
		}
	}
}

// ReadDistrict asks for an integer district number
func (p *Prompter) ReadDistrict() (int, error) {
	for {
		answer, err := p.ask(districtPrompt)
		if err != nil {
			return 0, err
		}
		if n, convErr := strconv.Atoi(answer); convErr == nil {
			return n, nil
		}
		if _, err := io.WriteString(p.out, districtRetry); err != nil {
			return 0, err
		}
	}
}

// AskAnother asks whether to look up another district
func (p *Prompter) AskAnother() (bool, error) {
	for {
		answer, err := p.ask(anotherPrompt)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		}
		if _, err := io.WriteString(p.out, anotherInvalid); err != nil {
			return false, err
		}
	}
}

// ask prints prompt and returns the trimmed answer. A final line without a
// newline still counts as an answer.
func (p *Prompter) ask(prompt string) (string, error) {
	if _, err := fmt.Fprint(p.out, prompt); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
