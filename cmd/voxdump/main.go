// Command voxdump inspects voxel shapes: it lists the registry, prints shape
// statistics, exports shapes as YAML documents, validates shape files and
// previews how a rebuild would assign voxels.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"sort"
	"time"

	"voxport/engine"
	"voxport/shapes"
	"voxport/sim"
	"voxport/voxel"
)

const usage = `usage: voxdump [-shapes dir] [-seed n] <command> [args]

commands:
  list                 registered shapes in slot order
  stats <shape>        voxel count, bounds and color histogram
  export <shape>       shape as a YAML document on stdout
  validate <file>...   check shape files against the schema
  plan <from> <to>     simulate a rebuild and report the assignment

<shape> is a name or a 1-based slot.`

// settleLimit bounds plan's simulated frames.
const settleLimit = 100000

var errUsage = errors.New("bad usage")

func main() {
	var (
		shapeDir = flag.String("shapes", "", "Directory of extra shape files.")
		seed     = flag.Int64("seed", 1, "Seed for rebuild delays.")
	)
	flag.Usage = func() { fmt.Fprintln(os.Stderr, usage) }
	flag.Parse()

	logger := log.New(os.Stderr, "[voxdump] ", 0)
	reg := shapes.Builtins()
	if *shapeDir != "" {
		names, err := shapes.LoadDir(reg, *shapeDir)
		if err != nil {
			logger.Fatalf("shapes: %v", err)
		}
		logger.Printf("loaded %d shapes from %s", len(names), *shapeDir)
	}

	if err := run(os.Stdout, reg, *seed, flag.Args()); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(2)
		}
		logger.Fatalf("%v", err)
	}
}

func run(w io.Writer, reg *shapes.Registry, seed int64, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, args := args[0], args[1:]
	switch cmd {
	case "list":
		return list(w, reg)
	case "stats":
		if len(args) != 1 {
			return errUsage
		}
		name, ds, err := resolve(reg, args[0])
		if err != nil {
			return err
		}
		return stats(w, name, ds)
	case "export":
		if len(args) != 1 {
			return errUsage
		}
		name, ds, err := resolve(reg, args[0])
		if err != nil {
			return err
		}
		out, err := shapes.Export(name, ds)
		if err != nil {
			return fmt.Errorf("export %s: %w", name, err)
		}
		_, err = w.Write(out)
		return err
	case "validate":
		if len(args) == 0 {
			return errUsage
		}
		return validate(w, args)
	case "plan":
		if len(args) != 2 {
			return errUsage
		}
		return plan(w, reg, seed, args[0], args[1])
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func resolve(reg *shapes.Registry, s string) (string, voxel.Dataset, error) {
	name, gen, ok := reg.Resolve(s)
	if !ok {
		return "", nil, fmt.Errorf("unknown shape %q", s)
	}
	return name, gen(), nil
}

func list(w io.Writer, reg *shapes.Registry) error {
	for i, name := range reg.Names() {
		_, gen, _ := reg.At(i)
		if _, err := fmt.Fprintf(w, "%2d  %-16s %6d\n", i+1, name, len(gen())); err != nil {
			return err
		}
	}
	return nil
}

func stats(w io.Writer, name string, ds voxel.Dataset) error {
	fmt.Fprintf(w, "shape:  %s\n", name)
	fmt.Fprintf(w, "voxels: %d\n", len(ds))
	lo, hi, ok := voxel.Bounds(ds)
	if !ok {
		return nil
	}
	fmt.Fprintf(w, "bounds: x %d..%d  y %d..%d  z %d..%d\n", lo[0], hi[0], lo[1], hi[1], lo[2], hi[2])

	type bucket struct {
		color uint32
		n     int
	}
	var hist []bucket
	for c, n := range voxel.Histogram(ds) {
		hist = append(hist, bucket{c, n})
	}
	sort.Slice(hist, func(i, j int) bool {
		if hist[i].n != hist[j].n {
			return hist[i].n > hist[j].n
		}
		return hist[i].color < hist[j].color
	})
	fmt.Fprintln(w, "colors:")
	for _, b := range hist {
		if _, err := fmt.Fprintf(w, "  #%06x %6d\n", b.color, b.n); err != nil {
			return err
		}
	}
	return nil
}

func validate(w io.Writer, paths []string) error {
	failed := 0
	for _, p := range paths {
		doc, err := shapes.LoadFile(p)
		if err == nil {
			var ds voxel.Dataset
			ds, err = doc.Build()
			if err == nil {
				fmt.Fprintf(w, "ok    %s: %s (%d voxels)\n", p, doc.Name, len(ds))
				continue
			}
		}
		failed++
		fmt.Fprintf(w, "FAIL  %s: %v\n", p, err)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files invalid", failed, len(paths))
	}
	return nil
}

// plan runs a headless rebuild from one shape into another on a fixed-step
// clock and reports the assignment and the frames until the scene settles.
func plan(w io.Writer, reg *shapes.Registry, seed int64, from, to string) error {
	fromName, src, err := resolve(reg, from)
	if err != nil {
		return err
	}
	toName, dst, err := resolve(reg, to)
	if err != nil {
		return err
	}

	clk := engine.NewStepClock(time.Unix(0, 0), 16*time.Millisecond)
	s := sim.New(nil, sim.Options{Clock: clk, Rand: rand.New(rand.NewSource(seed))})
	s.Load(src)
	s.Rebuild(dst)
	st := s.Stats()

	frames := 0
	for s.Kind() != sim.KindStable && frames < settleLimit {
		clk.Tick()
		s.Step()
		frames++
	}

	fmt.Fprintf(w, "%s (%d) -> %s (%d)\n", fromName, len(src), toName, len(dst))
	fmt.Fprintf(w, "claimed: %d\n", st.Claimed)
	fmt.Fprintf(w, "rubble:  %d\n", st.Rubble)
	fmt.Fprintf(w, "dropped: %d\n", st.Dropped)
	if s.Kind() != sim.KindStable {
		return fmt.Errorf("rebuild did not settle within %d frames", settleLimit)
	}
	fmt.Fprintf(w, "settled: %d frames (%s at 60Hz)\n", frames, time.Duration(frames)*time.Second/60)
	return nil
}
