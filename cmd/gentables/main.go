package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"

	"github.com/dustin/go-humanize"
	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"

	"github.com/hailam/bbtables/internal/crosscheck"
	"github.com/hailam/bbtables/internal/emit"
	"github.com/hailam/bbtables/internal/render"
	"github.com/hailam/bbtables/internal/storage"
	"github.com/hailam/bbtables/internal/tables"
)

var (
	format     = flag.String("format", "cpp", "output syntax: cpp or go")
	out        = flag.String("out", "-", "output file, - for stdout")
	pkg        = flag.String("pkg", "", "Go package or C++ namespace (default: tables, or potato for cpp)")
	comments   = flag.Bool("comments", false, "annotate each entry with its square(s)")
	only       = flag.String("tables", "", "comma-separated subset of tables to emit")
	verify     = flag.Bool("verify", false, "cross-check line tables against dragontoothmg")
	store      = flag.Bool("store", false, "save a snapshot of the generated tables")
	diff       = flag.Bool("diff", false, "report differences from the stored snapshot")
	dataDir    = flag.String("data", "", "snapshot database directory (default: platform data dir, or $"+storage.DataDirEnv+")")
	show       = flag.String("show", "", "print one mask, e.g. KnightMoves:e4 or Between:a1-h8")
	svgOut     = flag.String("svg", "", "write the -show mask as SVG")
	pngOut     = flag.String("png", "", "write the -show mask as PNG")
	pngSize    = flag.Int("png-size", 320, "PNG side length in pixels")
	atlas      = flag.String("atlas", "", "render every mask of a flat table into one PNG")
	atlasOut   = flag.String("atlas-out", "", "atlas output file (default: <table>.png)")
	verbosity  = flag.Int("v", 0, "log verbosity")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
)

func main() {
	flag.Parse()

	stdr.SetVerbosity(*verbosity)
	logger := stdr.New(log.New(os.Stderr, "gentables: ", log.LstdFlags))

	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		logger.Info("CPU profiling enabled", "path", profilePath)
	}

	if err := run(context.Background(), logger); err != nil {
		pprof.StopCPUProfile()
		log.Fatal(err)
	}
}

func run(ctx context.Context, logger logr.Logger) error {
	cat, err := tables.Generate()
	if err != nil {
		return fmt.Errorf("generate tables: %w", err)
	}
	logger.V(1).Info("generated tables", "names", cat.Names())

	if *verify {
		report, err := crosscheck.Check(cat, crosscheck.Dragontooth{})
		if err != nil {
			return err
		}
		if err := report.Err(); err != nil {
			return err
		}
		logger.Info("cross-check passed", "checked", report.Checked)
	}

	if *show != "" {
		if err := showMask(cat, logger); err != nil {
			return err
		}
	}

	if *atlas != "" {
		if err := writeAtlas(ctx, cat, logger); err != nil {
			return err
		}
	}

	if *store || *diff {
		if err := snapshot(cat, logger); err != nil {
			return err
		}
	}

	// Diagnostic runs emit nothing unless asked to.
	if (*show != "" || *atlas != "" || *diff) && !isFlagSet("out") {
		return nil
	}
	return emitTables(cat, logger)
}

func emitTables(cat *tables.Catalog, logger logr.Logger) error {
	f, err := emit.ParseFormat(*format)
	if err != nil {
		return err
	}
	named, err := selectTables(cat, *only)
	if err != nil {
		return err
	}

	opts := emit.Options{Package: *pkg, Comments: *comments, Source: "gentables"}
	if opts.Package == "" && f == emit.CPP {
		opts.Package = "potato"
	}

	var buf bytes.Buffer
	if err := emit.Write(&buf, f, named, opts); err != nil {
		return err
	}

	if *out == "-" {
		if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
			return err
		}
	} else if err := writeFile(*out, buf.Bytes()); err != nil {
		return err
	}

	logger.Info("emitted tables", "count", len(named), "format", f, "size", humanize.Bytes(uint64(buf.Len())), "out", *out)
	return nil
}

func showMask(cat *tables.Catalog, logger logr.Logger) error {
	sel, err := parseSelection(cat, *show)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "%s = 0x%016x (%d squares)%s", sel, sel.Mask.Uint64(), sel.Mask.PopCount(), sel.Mask)

	opts := render.DefaultOptions()
	opts.Origin = sel.Origin
	opts.Target = sel.Target

	if *svgOut != "" {
		var buf bytes.Buffer
		render.WriteSVG(&buf, sel.Mask, opts)
		if err := writeFile(*svgOut, buf.Bytes()); err != nil {
			return err
		}
		logger.Info("wrote svg", "path", *svgOut)
	}

	if *pngOut != "" {
		img, err := render.Rasterize(sel.Mask, opts, *pngSize)
		if err != nil {
			return err
		}
		if err := writePNGFile(*pngOut, img); err != nil {
			return err
		}
		logger.Info("wrote png", "path", *pngOut, "size", *pngSize)
	}
	return nil
}

func writeAtlas(ctx context.Context, cat *tables.Catalog, logger logr.Logger) error {
	n, err := cat.Lookup(*atlas)
	if err != nil {
		return err
	}
	if n.Shape != tables.Flat {
		return fmt.Errorf("atlas: %s is not a per-square table", n.Name)
	}

	img, err := render.Atlas(ctx, n.Flat(), render.DefaultOptions(), *pngSize/8, logger)
	if err != nil {
		return err
	}

	path := *atlasOut
	if path == "" {
		path = n.Name + ".png"
	}
	if err := writePNGFile(path, img); err != nil {
		return err
	}
	logger.Info("wrote atlas", "table", n.Name, "path", path)
	return nil
}

func snapshot(cat *tables.Catalog, logger logr.Logger) error {
	s, err := storage.Open(*dataDir, logger)
	if err != nil {
		return err
	}
	defer s.Close()

	if *diff {
		changes, err := s.Diff(cat)
		if err != nil {
			return err
		}
		for _, c := range changes {
			switch {
			case c.New:
				logger.Info("table has no snapshot", "table", c.Name)
			case c.Removed:
				logger.Info("table no longer generated", "table", c.Name)
			case c.Reshaped:
				logger.Info("table changed shape", "table", c.Name)
			default:
				n, _ := cat.Lookup(c.Name)
				described := make([]string, 0, len(c.Indexes))
				for _, i := range c.Indexes {
					described = append(described, n.Describe(i))
				}
				logger.Info("table changed", "table", c.Name, "entries", len(c.Indexes), "at", described)
			}
		}
		if len(changes) == 0 {
			logger.Info("tables match snapshot", "count", len(cat.Names()))
		}
	}

	if *store {
		if err := s.Save(cat); err != nil {
			return fmt.Errorf("save snapshot: %w", err)
		}
		for _, n := range cat.Tables() {
			logger.V(1).Info("stored", "table", n.Name, "fingerprint", fmt.Sprintf("%016x", storage.Fingerprint(n.Values())))
		}
		logger.Info("saved snapshot", "tables", len(cat.Names()))
	}
	return nil
}

func writePNGFile(path string, img image.Image) error {
	if err := mkdirFor(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.WritePNG(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func writeFile(path string, data []byte) error {
	if err := mkdirFor(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func mkdirFor(path string) error {
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0755)
}
