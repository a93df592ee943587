// Package negamax exactly solves Othello endgames with at most MaxEmpties
// empty squares, searching the remaining empties as the depth budget.
package negamax

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/remolino/game"
	"github.com/domino14/remolino/zobrist"
)

// thanks Wikipedia:
/*
function negamax(node, depth, α, β, color) is
    if depth = 0 or node is a terminal node then
        return color × the heuristic value of node

    childNodes := generateMoves(node)
    value := −∞
    foreach child in childNodes do
        value := max(value, −negamax(child, depth − 1, −β, −α, −color))
        α := max(α, value)
        if α ≥ β then
            break (* cut-off *)
    return value
(* Initial call for Player A's root node *)
negamax(rootNode, depth, −∞, +∞, 1)
**/

const HugeNumber = int16(32767)

// MaxEmpties is the deepest position the exact solver accepts; anything
// larger must fall back to a heuristic evaluator.
const MaxEmpties = 16

// ScoreScale multiplies the terminal disc spread, so a one-disc win scores
// 100 and a 64-0 sweep scores 6400.
const ScoreScale = int16(100)

const (
	defaultTimeBudget        = 30 * time.Second
	defaultNodeCheckInterval = 10000
	defaultTTMemFraction     = 0.25
)

var (
	ErrTooManyEmpties = errors.New("too many empty squares for an exact solve")

	errTimeBudgetExceeded = errors.New("time budget exceeded")
)

// Solver owns all mutable search state for one solve at a time: the node
// counter, the clock, and the transposition table. Nothing is process-wide,
// so independent solvers never interfere.
type Solver struct {
	zobrist *zobrist.Zobrist
	rootPos game.Position

	transpositionTableOptim bool
	ttable                  *TranspositionTable
	ttMemFraction           float64
	tableSizeHint           int

	timeBudget        time.Duration
	nodeCheckInterval uint64
	deadline          time.Time

	principalVariation PVLine
	bestPVValue        int16

	requestedEmpties int
	nodes            atomic.Uint64

	logStream io.Writer
}

// Init initializes the solver for a root position.
func (s *Solver) Init(pos game.Position) error {
	s.rootPos = pos
	s.zobrist = &zobrist.Zobrist{}
	s.zobrist.Initialize()
	s.ttable = &TranspositionTable{}
	s.transpositionTableOptim = true
	s.ttMemFraction = defaultTTMemFraction
	s.timeBudget = defaultTimeBudget
	s.nodeCheckInterval = defaultNodeCheckInterval
	return nil
}

// SetTimeBudget bounds the wall time of one solve. A zero or negative
// budget expires at the first poll.
func (s *Solver) SetTimeBudget(d time.Duration) {
	s.timeBudget = d
}

// SetNodeCheckInterval controls how many nodes are searched between clock
// polls.
func (s *Solver) SetNodeCheckInterval(n uint64) {
	if n == 0 {
		n = 1
	}
	s.nodeCheckInterval = n
}

func (s *Solver) SetTranspositionTableOptim(tt bool) {
	s.transpositionTableOptim = tt
}

// SetTableSizeHint caps the transposition table at roughly the given byte
// size instead of a fraction of system memory.
func (s *Solver) SetTableSizeHint(bytes int) {
	s.tableSizeHint = bytes
}

// SetTTMemFraction sets the fraction of system memory the table may use
// when no explicit size hint is given.
func (s *Solver) SetTTMemFraction(f float64) {
	s.ttMemFraction = f
}

func (s *Solver) SetLogStream(w io.Writer) {
	s.logStream = w
}

func (s *Solver) Nodes() uint64 {
	return s.nodes.Load()
}

func (s *Solver) TTable() *TranspositionTable {
	return s.ttable
}

// Solve searches the root position to completion with empties as the depth
// budget and returns the exact spread ×ScoreScale for the side to move,
// along with the principal variation. If the time budget runs out the
// search is abandoned and the neutral score 0 is returned instead.
func (s *Solver) Solve(ctx context.Context, empties int) (int16, []game.Move, error) {
	if empties < 0 || empties > MaxEmpties {
		return 0, nil, ErrTooManyEmpties
	}
	tstart := time.Now()
	s.requestedEmpties = empties
	s.nodes.Store(0)
	s.deadline = tstart.Add(s.timeBudget)
	s.principalVariation = PVLine{}
	if s.transpositionTableOptim {
		if s.tableSizeHint > 0 {
			s.ttable.SetSizeHint(s.tableSizeHint)
		} else {
			s.ttable.Reset(s.ttMemFraction)
		}
	}
	log.Debug().Int("empties", empties).Str("pos", s.rootPos.String()).
		Msg("exact-solve-config")

	initialHashKey := s.zobrist.Hash(s.rootPos.Black, s.rootPos.White,
		s.rootPos.STM == game.White)

	g := &errgroup.Group{}
	done := make(chan bool)

	g.Go(func() error {
		ticker := time.NewTicker(1 * time.Second)
		defer ticker.Stop()
		var lastNodes uint64
		for {
			select {
			case <-done:
				return nil
			case <-ticker.C:
				nodes := s.nodes.Load()
				log.Debug().Uint64("nps", nodes-lastNodes).Msg("nodes-per-second")
				lastNodes = nodes
			}
		}
	})

	var val int16
	g.Go(func() error {
		pv := PVLine{}
		v, err := s.negamax(ctx, initialHashKey, s.rootPos, empties,
			-HugeNumber, HugeNumber, &pv)
		val = v
		s.principalVariation = pv
		done <- true
		return err
	})

	err := g.Wait()
	if err != nil {
		if errors.Is(err, errTimeBudgetExceeded) {
			log.Warn().Dur("time-budget", s.timeBudget).
				Uint64("nodes", s.nodes.Load()).
				Msg("time-budget-exceeded-returning-neutral")
			return 0, nil, nil
		}
		return 0, nil, err
	}
	s.bestPVValue = val

	log.Debug().
		Uint64("ttable-created", s.ttable.created.Load()).
		Uint64("ttable-lookups", s.ttable.lookups.Load()).
		Uint64("ttable-hits", s.ttable.hits.Load()).
		Uint64("ttable-clears", s.ttable.clears.Load()).
		Uint64("nodes", s.nodes.Load()).
		Float64("time-elapsed-sec", time.Since(tstart).Seconds()).
		Int16("val", val).
		Str("pv", s.principalVariation.NLBString()).
		Msg("solve-returning")

	return val, s.principalVariation.Moves, nil
}

func (s *Solver) negamax(ctx context.Context, nodeKey uint64, pos game.Position,
	depth int, α, β int16, pv *PVLine) (int16, error) {

	if n := s.nodes.Add(1); n%s.nodeCheckInterval == 0 {
		if ctx.Err() != nil {
			return 0, ctx.Err()
		}
		if time.Now().After(s.deadline) {
			return 0, errTimeBudgetExceeded
		}
	}

	alphaOrig := α
	if s.transpositionTableOptim {
		ttEntry := s.ttable.lookup(nodeKey)
		if ttEntry.valid() && int(ttEntry.depth()) >= depth {
			score := ttEntry.score
			flag := ttEntry.flag()
			if flag == TTExact {
				return score, nil
			} else if flag == TTLower {
				α = max(α, score)
			} else if flag == TTUpper {
				β = min(β, score)
			}
			if α >= β {
				return score, nil
			}
		}
	}

	if depth == 0 {
		return ScoreScale * int16(pos.SpreadFor(pos.STM)), nil
	}
	childPV := PVLine{}

	legal := pos.LegalMask()
	if legal == 0 {
		passed := pos.Pass()
		if passed.LegalMask() == 0 {
			// Neither side can move; count up.
			return ScoreScale * int16(pos.SpreadFor(pos.STM)), nil
		}
		// The turn passes without consuming an empty square.
		childKey := s.zobrist.AddPass(nodeKey)
		value, err := s.negamax(ctx, childKey, passed, depth, -β, -α, &childPV)
		if err != nil {
			return value, err
		}
		bestValue := -value
		pv.Update(game.PassMove(), childPV, bestValue)
		if s.transpositionTableOptim {
			s.storeEntry(nodeKey, bestValue, alphaOrig, β, depth)
		}
		return bestValue, nil
	}

	indent := 2 * (s.requestedEmpties - depth)
	if s.logStream != nil {
		fmt.Fprintf(s.logStream, "  %vplays:\n", strings.Repeat(" ", indent))
	}
	bestValue := -HugeNumber
	for m := legal; m != 0; m &= m - 1 {
		sq := m.Lsb()
		child, mv, err := pos.Apply(sq)
		if err != nil {
			return 0, err
		}
		if s.logStream != nil {
			fmt.Fprintf(s.logStream, "  %v- play: %v\n", strings.Repeat(" ", indent), mv.ShortDescription())
		}
		childKey := s.zobrist.AddMove(nodeKey, sq, mv.Flips, pos.STM)
		value, err := s.negamax(ctx, childKey, child, depth-1, -β, -α, &childPV)
		if err != nil {
			return value, err
		}
		if s.logStream != nil {
			fmt.Fprintf(s.logStream, "  %v  value: %v\n", strings.Repeat(" ", indent), value)
		}
		if -value > bestValue {
			bestValue = -value
			pv.Update(mv, childPV, bestValue)
		}
		α = max(α, bestValue)
		if s.logStream != nil {
			fmt.Fprintf(s.logStream, "  %v  α: %v\n", strings.Repeat(" ", indent), α)
			fmt.Fprintf(s.logStream, "  %v  β: %v\n", strings.Repeat(" ", indent), β)
		}
		if bestValue >= β {
			break // beta cut-off
		}
		childPV.Clear() // clear the child node's pv for the next child node
	}
	if s.transpositionTableOptim {
		s.storeEntry(nodeKey, bestValue, alphaOrig, β, depth)
	}
	return bestValue, nil
}

func (s *Solver) storeEntry(nodeKey uint64, score, alphaOrig, β int16, depth int) {
	var flag uint8
	if score <= alphaOrig {
		flag = TTUpper
	} else if score >= β {
		flag = TTLower
	} else {
		flag = TTExact
	}
	s.ttable.store(nodeKey, TableEntry{
		score:        score,
		flagAndDepth: flag<<6 + uint8(depth),
	})
}
