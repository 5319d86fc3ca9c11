package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/dockyard/internal/application/arrangement"
	"github.com/bnema/dockyard/internal/cli"
	"github.com/bnema/dockyard/internal/cli/script"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/layout"
	"github.com/bnema/dockyard/internal/logging"
)

var (
	replayCheck    bool
	replayFailFast bool
	replayQuiet    bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <script.toml>...",
	Short: "Replay intent scripts and print the resulting arrangements",
	Long: `Replay one or more TOML intent scripts, each against a fresh arrangement
store, and print the final layout of every script in argument order.

Scripts run concurrently, up to replay.parallelism at a time. Node ids are
numbered per script so the output is stable.

Example script:

  [[step]]
  op = "register"
  panel = "scene"

  [[step]]
  op = "register"
  panel = "assets"

  [[step]]
  op = "dock"
  panel = "assets"
  zone = "left"

Examples:
  dockyard replay editor.toml
  dockyard replay --check scripts/*.toml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().BoolVar(&replayCheck, "check", false, "validate the arrangement after every step")
	replayCmd.Flags().BoolVar(&replayFailFast, "fail-fast", false, "cancel remaining scripts after the first failure")
	replayCmd.Flags().BoolVarP(&replayQuiet, "quiet", "q", false, "print only failures")
}

// replayResult is the outcome of one script.
type replayResult struct {
	path  string
	name  string
	steps int
	snap  entity.Arrangement
	err   error
}

func runReplay(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	results := replayAll(app.Ctx(), app, args, app.Config.Replay.Parallelism)
	return renderReplay(cmd.OutOrStdout(), styles.NewReplayRenderer(app.Theme), results)
}

// replayAll runs every script concurrently and returns results in argument
// order.
func replayAll(ctx context.Context, app *cli.App, paths []string, parallelism int) []replayResult {
	results := make([]replayResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}
	for i, path := range paths {
		g.Go(func() error {
			results[i] = replayOne(gctx, app, path)
			if replayFailFast {
				return results[i].err
			}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func replayOne(ctx context.Context, app *cli.App, path string) replayResult {
	res := replayResult{path: path, name: path}
	log := logging.FromContext(ctx).With().Str("script", path).Logger()

	s, err := script.ParseFile(path)
	if err != nil {
		res.err = err
		return res
	}
	res.name = s.Name
	res.steps = len(s.Steps)

	// Each script numbers its nodes from 1.
	engine := layout.New(layout.WithIDGenerator(layout.NewSequence().Next))
	store := app.NewStore(arrangement.WithEngine(engine))

	runner := script.NewRunner(store, script.WithCheck(replayCheck))
	if err := runner.Run(log.WithContext(ctx), s); err != nil {
		log.Debug().Err(err).Msg("script failed")
		res.err = err
		return res
	}

	res.snap = store.Snapshot()
	log.Debug().Int("steps", res.steps).Msg("script replayed")
	return res
}

func renderReplay(out io.Writer, renderer *styles.ReplayRenderer, results []replayResult) error {
	var failed int
	for _, r := range results {
		if r.err != nil {
			failed++
			fmt.Fprint(out, renderer.RenderFailure(r.path, r.err))
			continue
		}
		if replayQuiet {
			continue
		}
		fmt.Fprint(out, renderer.RenderHeader(r.name, r.steps))
		fmt.Fprintln(out, renderer.Outline().RenderArrangement(r.snap))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d scripts failed", failed, len(results))
	}
	return nil
}
