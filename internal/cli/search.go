package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/ppiankov/legisearch/internal/console"
	"github.com/ppiankov/legisearch/internal/model"
	"github.com/ppiankov/legisearch/internal/pipeline"
	"github.com/ppiankov/legisearch/internal/query"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// searchCmd represents the interactive search; it is also what the bare
// root command runs
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Interactively look up legislators by chamber and district",
	Long: `Search fetches the current roster once, then repeatedly asks for a
chamber (H or S) and a district number and prints who holds that seat.

Example:
  legisearch search
  legisearch search --type-delay 0`,
	Args: cobra.NoArgs,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	s := &session{
		cfg:   cfg,
		in:    cmd.InOrStdin(),
		out:   cmd.OutOrStdout(),
		now:   time.Now,
		sleep: time.Sleep,
		build: pipeline.NewPipeline(cfg).BuildRoster,
	}
	return s.run(cmd.Context())
}

type buildFunc func(ctx context.Context, progress pipeline.ProgressFunc) (*pipeline.BuildResult, error)

// session is one interactive run: gather, answer queries, say goodbye
type session struct {
	cfg   *model.Config
	in    io.Reader
	out   io.Writer
	now   func() time.Time
	sleep func(time.Duration)
	build buildFunc
}

func (s *session) run(ctx context.Context) error {
	fmt.Fprintln(s.out, "Aloha and welcome to Hawaii State Legislator Search Tool!")
	fmt.Fprintln(s.out, "Currently gathering information on Hawaii legislators...")

	result, err := s.build(ctx, console.NewProgressBar(s.out).Update)
	if err != nil {
		fmt.Fprintln(s.out)
		return eris.Wrap(err, "gather legislators")
	}
	fmt.Fprintln(s.out, "\nLegislative data collected!")
	s.reportSkipped(result)

	prompter := console.NewPrompter(s.in, s.out)
	typed := console.NewTypewriter(s.out, s.cfg.Output.TypeDelay)

	for {
		chamber, err := prompter.ReadChamber()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}

		district, err := prompter.ReadDistrict()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}

		res := query.Lookup(result.Roster, chamber, strconv.Itoa(district))
		if err := query.Render(typed, res); err != nil {
			return err
		}

		again, err := prompter.AskAnother()
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if !again {
			break
		}
	}

	fmt.Fprint(typed, "\nThank you for using the Hawaii State Legislator Search Tool.\n")
	s.sleep(s.cfg.Output.Pause)
	fmt.Fprintf(typed, "Aloha, and %s\n", console.Greeting(s.now().Hour()))
	s.sleep(s.cfg.Output.Pause)
	return nil
}

func (s *session) reportSkipped(result *pipeline.BuildResult) {
	if len(result.Skipped) == 0 {
		return
	}
	zap.L().Warn("some roster entries could not be parsed",
		zap.Int("skipped", len(result.Skipped)),
		zap.Int("fragments", result.Fragments),
	)
	if s.cfg.Output.Verbose {
		for _, sk := range result.Skipped {
			fmt.Fprintf(os.Stderr, "  skipped entry %d: %v\n", sk.Index+1, sk.Err)
		}
	}
}
