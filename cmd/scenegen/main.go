package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"

	"github.com/ivlev/scenegen/internal/config"
	"github.com/ivlev/scenegen/internal/director"
	"github.com/ivlev/scenegen/internal/engine"
	"github.com/ivlev/scenegen/internal/scene"
	"github.com/ivlev/scenegen/internal/source"
	"github.com/ivlev/scenegen/internal/system"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	for _, d := range []string{"input/scripts", "output"} {
		os.MkdirAll(d, 0755)
	}

	inputPtr := flag.String("input", "", "Scene script or directory of scripts (default: newest script in input/scripts/)")
	outputPtr := flag.String("output", "", "Document path for a single script (default: generated in -output-dir)")
	outputDirPtr := flag.String("output-dir", "output", "Directory for generated document names")
	overwritePtr := flag.Bool("overwrite", false, "Replace existing documents instead of failing")
	widthPtr := flag.Int("width", 1280, "Default canvas width")
	heightPtr := flag.Int("height", 720, "Default canvas height")
	fpsPtr := flag.Int("fps", 30, "Default canvas FPS")
	workersPtr := flag.Int("workers", runtime.NumCPU(), "Scripts built in parallel")
	presetPtr := flag.String("preset", "", "Canvas preset: 16:9, 9:16 (Shorts/TikTok), 4:5 (Instagram)")
	legacyIDsPtr := flag.Bool("legacy-ids", false, "Number actions from the shared object counter instead of their own")
	statsPtr := flag.Bool("stats", false, "Print a performance report")
	verbosePtr := flag.Bool("v", false, "Debug logging")
	demoPtr := flag.Bool("demo", false, "Write the greeting demo scene (default output: test.json) and exit")
	initPtr := flag.String("init", "", "Write the greeting demo as a YAML script to this path and exit")
	watchPtr := flag.Bool("watch", false, "Rebuild scripts into -output-dir whenever they change (always overwrites, excludes -output)")

	flag.Parse()

	level := slog.LevelWarn
	if *verbosePtr {
		level = slog.LevelDebug
	}
	scene.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := &config.Config{
		InputPath:    *inputPtr,
		OutputPath:   *outputPtr,
		OutputDir:    *outputDirPtr,
		Overwrite:    *overwritePtr,
		Width:        *widthPtr,
		Height:       *heightPtr,
		FPS:          *fpsPtr,
		Workers:      *workersPtr,
		Preset:       *presetPtr,
		LegacyIDs:    *legacyIDsPtr,
		Watch:        *watchPtr,
		ShowStats:    *statsPtr,
		BuildVersion: version,
	}
	if !cfg.ApplyPreset() {
		log.Fatalf("[-] Unknown preset %q", cfg.Preset)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[-] %v", err)
	}

	if *initPtr != "" {
		if err := director.WriteScript(director.DemoScript(), *initPtr); err != nil {
			log.Fatalf("[-] Failed to write script: %v", err)
		}
		fmt.Printf("[+++] Script written: %s\n", *initPtr)
		return
	}

	if *demoPtr {
		runDemo(cfg)
		return
	}

	if cfg.InputPath == "" {
		latest, err := system.FindLatestScript("input/scripts")
		if err != nil {
			log.Fatalf("[-] %v. Put a scene script into input/scripts/", err)
		}
		cfg.InputPath = latest
		fmt.Printf("[*] Selected script: %s\n", cfg.InputPath)
	}

	src, err := source.NewScriptSource(cfg.InputPath)
	if err != nil {
		log.Fatalf("[-] Failed to open scripts: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Println("--- [SCENEGEN] ---")
	fmt.Printf("[*] Scripts: %d | Canvas: %dx%d @ %d FPS\n", src.Count(), cfg.Width, cfg.Height, cfg.FPS)
	fmt.Println("------------------")

	project := engine.NewProject(cfg, src)
	if cfg.Watch {
		runWatch(ctx, project, cfg.InputPath)
		return
	}

	results, err := project.Run(ctx)
	if err != nil {
		exitOnError(err)
	}

	fmt.Printf("[+++] Done! %d document(s) written\n", len(results))
}

func runDemo(cfg *config.Config) {
	d := director.NewDirector(scene.Canvas{Width: cfg.Width, Height: cfg.Height, FPS: cfg.FPS})
	d.SharedIDs = cfg.LegacyIDs

	sc, err := d.Build(director.DemoScript())
	if err != nil {
		log.Fatalf("[-] Demo scene: %v", err)
	}

	out := cfg.OutputPath
	if out == "" {
		out = "test.json"
	}
	if err := sc.Persist(out, true); err != nil {
		exitOnError(err)
	}
	fmt.Printf("[+++] Demo scene written: %s\n", out)
}

func runWatch(ctx context.Context, project *engine.Project, input string) {
	dir := input
	if fi, err := os.Stat(input); err == nil && !fi.IsDir() {
		dir = filepath.Dir(input)
	}

	w, err := source.NewWatcher(dir)
	if err != nil {
		log.Fatalf("[-] Failed to watch %s: %v", dir, err)
	}
	defer w.Close()

	for i := 0; i < project.Source.Count(); i++ {
		if _, err := project.Rebuild(project.Source.Path(i)); err != nil {
			fmt.Printf("[!] %s: %v\n", project.Source.Path(i), err)
		}
	}

	fmt.Printf("[*] Watching %s (Ctrl+C to stop)\n", dir)
	if err := project.Watch(ctx, w.Events, w.Errors); err != nil {
		log.Fatalf("[-] %v", err)
	}
}

// exitOnError terminates the process. An existing output is reported as a
// warning, like any other failure it exits with status 1.
func exitOnError(err error) {
	if errors.Is(err, scene.ErrOutputExists) {
		fmt.Fprintf(os.Stderr, "WARNING: %v (use -overwrite to replace it)\n", err)
		os.Exit(1)
	}
	log.Fatalf("[-] %v", err)
}
