// remolino is the thin command-line adapter over the engine kernel: it
// parses two occupancy masks and a side flag, invokes one kernel operation,
// and prints the result. Process lifecycle, argument parsing, and logging
// live here; the kernel itself stays pure.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/remolino/bitboard"
	"github.com/domino14/remolino/config"
	"github.com/domino14/remolino/endgame/negamax"
	"github.com/domino14/remolino/game"
	"github.com/domino14/remolino/kernel"
)

var (
	GitVersion string
)

const usage = `usage: remolino [flags] <command> [args]

commands:
  legal     <black> <white> <side>           legal-move mask
  flips     <black> <white> <side> <square>  flip mask for a move
  potmob    <black> <white> <side>           potential-mobility heuristic
  stability <black> <white>                  stability proxy
  regions   <black> <white>                  parity regions and controllers
  solve     <black> <white> <side>           exact endgame score x100
  perft     <depth>                          movepath counts from the start position
  display   <black> <white> <side>           draw the board

masks are hex or decimal 64-bit integers; side is b or w; squares are
coordinates like e4.
`

func main() {
	cfg := config.DefaultConfig()
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}

	var logger zerolog.Logger
	if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
	logger.Debug().Msg("Debug logging is on")
	log.Debug().Str("version", GitVersion).Interface("config", cfg.SanitizedSettings()).
		Msg("loaded-config")

	if cfg.GetString(config.ConfigCPUProfile) != "" {
		f, err := os.Create(cfg.GetString(config.ConfigCPUProfile))
		if err != nil {
			panic("could not create CPU profile: " + err.Error())
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			panic("could not start CPU profile: " + err.Error())
		}
		defer pprof.StopCPUProfile()
	}

	if err := dispatch(&cfg, cfg.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if cfg.GetString(config.ConfigMemProfile) != "" {
		f, err := os.Create(cfg.GetString(config.ConfigMemProfile))
		if err != nil {
			panic("could not create memory profile: " + err.Error())
		}
		defer f.Close()
		memstats := &runtime.MemStats{}
		runtime.ReadMemStats(memstats)
		if err := pprof.WriteHeapProfile(f); err != nil {
			panic("could not write memory profile: " + err.Error())
		}
	}
}

func dispatch(cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no command given")
	}
	cmd, args := args[0], args[1:]
	switch cmd {
	case "legal":
		black, white, side, err := parseBoard(args)
		if err != nil {
			return err
		}
		fmt.Printf("%#016x\n", kernel.LegalMask(black, white, side))
	case "flips":
		if len(args) != 4 {
			return fmt.Errorf("flips wants 4 args")
		}
		black, white, side, err := parseBoard(args[:3])
		if err != nil {
			return err
		}
		sq, err := bitboard.ParseSquare(args[3])
		if err != nil {
			return err
		}
		fmt.Printf("%#016x\n", kernel.FlipMask(black, white, side, sq))
	case "potmob":
		black, white, side, err := parseBoard(args)
		if err != nil {
			return err
		}
		fmt.Println(kernel.PotentialMobility(black, white, side))
	case "stability":
		black, white, err := parseMasks(args)
		if err != nil {
			return err
		}
		fmt.Println(kernel.StabilityProxy(black, white))
	case "regions":
		black, white, err := parseMasks(args)
		if err != nil {
			return err
		}
		for _, r := range kernel.ParityRegions(black, white) {
			fmt.Printf("%#016x controller %d\n", r.Mask, r.Controller)
		}
	case "solve":
		black, white, side, err := parseBoard(args)
		if err != nil {
			return err
		}
		p := game.Position{Black: bitboard.Mask(black), White: bitboard.Mask(white), STM: side}
		empties := p.Empties()
		if empties > negamax.MaxEmpties {
			log.Warn().Int("empties", empties).Int("max", negamax.MaxEmpties).
				Msg("too-many-empties-returning-neutral")
			fmt.Println(0)
			return nil
		}
		s := new(negamax.Solver)
		if err := s.Init(p); err != nil {
			return err
		}
		s.SetTimeBudget(cfg.GetDuration(config.ConfigTimeBudget))
		s.SetNodeCheckInterval(cfg.GetUint64(config.ConfigNodeCheckInterval))
		if mb := cfg.GetInt(config.ConfigTTableSizeMB); mb > 0 {
			s.SetTableSizeHint(mb << 20)
		} else {
			s.SetTTMemFraction(cfg.GetFloat64(config.ConfigTTableMemFraction))
		}
		val, seq, err := s.Solve(context.Background(), empties)
		if err != nil {
			return err
		}
		fmt.Println(val)
		for _, m := range seq {
			fmt.Print(m.ShortDescription(), " ")
		}
		fmt.Println()
	case "perft":
		if len(args) != 1 {
			return fmt.Errorf("perft wants a depth")
		}
		depth, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		start := time.Now()
		p := game.StartPosition()
		for d := 1; d <= depth; d++ {
			fmt.Printf("%d: %d\n", d, game.Perft(p, d))
		}
		log.Info().Uint64("checksum", game.PerftChecksum(p, depth)).
			Float64("time-elapsed-sec", time.Since(start).Seconds()).
			Msg("perft-done")
	case "display":
		black, white, side, err := parseBoard(args)
		if err != nil {
			return err
		}
		p := game.Position{Black: bitboard.Mask(black), White: bitboard.Mask(white), STM: side}
		fmt.Print(p.ToDisplayText())
		fmt.Println("legal:", p.LegalMovesString())
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func parseBoard(args []string) (uint64, uint64, int, error) {
	if len(args) != 3 {
		return 0, 0, 0, fmt.Errorf("want <black> <white> <side>")
	}
	black, white, err := parseMasks(args[:2])
	if err != nil {
		return 0, 0, 0, err
	}
	side, err := parseSide(args[2])
	if err != nil {
		return 0, 0, 0, err
	}
	return black, white, side, nil
}

func parseMasks(args []string) (uint64, uint64, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("want <black> <white>")
	}
	black, err := parseMask(args[0])
	if err != nil {
		return 0, 0, err
	}
	white, err := parseMask(args[1])
	if err != nil {
		return 0, 0, err
	}
	if black&white != 0 {
		return 0, 0, fmt.Errorf("masks overlap on %#016x", black&white)
	}
	return black, white, nil
}

func parseMask(s string) (uint64, error) {
	m, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("bad mask %q: %w", s, err)
	}
	return m, nil
}

func parseSide(s string) (int, error) {
	switch strings.ToLower(s) {
	case "b", "x", "0":
		return game.Black, nil
	case "w", "o", "1":
		return game.White, nil
	}
	return 0, fmt.Errorf("bad side %q; want b or w", s)
}
