// Package climb wires the height map parser, graph layout and path queries
// into the two questions asked of a map: how far is the summit from the
// marked start, and how far is it from the best lowest square.
package climb

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/hillclimb/gridgraph"
	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/pathfind"
)

// Option configures Load and Read.
type Option func(*config)

type config struct {
	logger    *slog.Logger
	grid      gridgraph.GridOptions
	reverse   bool
	heuristic bool
}

// WithLogger sets the logger used for debug diagnostics. Logs are discarded by default.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMaxClimb overrides the largest elevation gain allowed per step.
func WithMaxClimb(n int) Option {
	return func(c *config) { c.grid.MaxClimb = n }
}

// WithReverseSweep answers FromLowest with one search from the summit over
// the reversed graph instead of one search per lowest square.
func WithReverseSweep() Option {
	return func(c *config) { c.reverse = true }
}

// WithHeuristic guides FromOrigin with the Manhattan distance to the summit.
func WithHeuristic() Option {
	return func(c *config) { c.heuristic = true }
}

// Survey is a parsed and laid-out height map ready for queries.
// It is immutable; queries may be repeated and always agree.
type Survey struct {
	gg  *gridgraph.GridGraph
	cfg config
}

// Load parses input and lays it out as a graph.
// Parse failures unwrap to *heightmap.ParseError, layout failures to
// *gridgraph.BuildError or a gridgraph sentinel.
func Load(input string, opts ...Option) (*Survey, error) {
	grid, err := heightmap.Parse(input)
	if err != nil {
		return nil, err
	}
	return fromGrid(grid, opts)
}

// Read is Load over an io.Reader.
func Read(r io.Reader, opts ...Option) (*Survey, error) {
	grid, err := heightmap.Read(r)
	if err != nil {
		return nil, err
	}
	return fromGrid(grid, opts)
}

func fromGrid(grid *heightmap.Grid, opts []Option) (*Survey, error) {
	cfg := config{
		logger: slog.New(slog.DiscardHandler),
		grid:   gridgraph.DefaultGridOptions(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	gg, err := gridgraph.NewGridGraph(grid, cfg.grid)
	if err != nil {
		return nil, fmt.Errorf("climb: lay out height map: %w", err)
	}
	cfg.logger.Debug("Height map laid out.",
		"width", gg.Width,
		"height", gg.Height,
		"edges", gg.Graph().Size(),
		"candidates", len(gg.Candidates()),
		"origin", gg.Origin,
		"destination", gg.Destination,
	)

	return &Survey{gg: gg, cfg: cfg}, nil
}

// Layout exposes the underlying graph layout.
func (s *Survey) Layout() *gridgraph.GridGraph { return s.gg }

// FromOrigin returns the fewest steps from the origin marker to the summit,
// or an error wrapping pathfind.ErrUnreachable.
func (s *Survey) FromOrigin(ctx context.Context) (int, error) {
	opts := []pathfind.Option{pathfind.WithContext(ctx)}
	if s.cfg.heuristic {
		opts = append(opts, pathfind.WithHeuristic(s.gg.Manhattan(s.gg.Destination)))
	}

	steps, err := pathfind.ShortestPath(s.gg.Graph(), s.gg.Origin, pathfind.Target(s.gg.Destination), opts...)
	if err != nil {
		s.cfg.logger.Debug("Origin query failed.", "error", err)
		return 0, err
	}
	s.cfg.logger.Debug("Origin query finished.", "steps", steps, "heuristic", s.cfg.heuristic)
	return steps, nil
}

// FromLowest returns the fewest steps from any lowest square to the summit.
// It fails with pathfind.ErrUnreachable only when no lowest square can make
// the climb.
func (s *Survey) FromLowest(ctx context.Context) (int, error) {
	var (
		steps int
		err   error
		mode  = "sweep"
	)
	if s.cfg.reverse {
		mode = "reverse"
		steps, err = pathfind.Nearest(s.gg.Graph(), s.gg.Destination, s.gg.Candidates(), pathfind.WithContext(ctx))
	} else {
		steps, err = pathfind.Sweep(s.gg.Graph(), s.gg.Candidates(), pathfind.Target(s.gg.Destination), pathfind.WithContext(ctx))
	}
	if err != nil {
		s.cfg.logger.Debug("Lowest query failed.", "mode", mode, "error", err)
		return 0, err
	}
	s.cfg.logger.Debug("Lowest query finished.", "mode", mode, "steps", steps)
	return steps, nil
}
