package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ivlev/scenegen/internal/config"
	"github.com/ivlev/scenegen/internal/director"
	"github.com/ivlev/scenegen/internal/scene"
	"github.com/ivlev/scenegen/internal/source"
	"github.com/ivlev/scenegen/internal/system"
)

// Project builds and persists the scene document of every script in Source.
type Project struct {
	Config   *config.Config
	Source   source.Source
	Director *director.Director

	now func() time.Time
}

// Result describes one generated document.
type Result struct {
	Script  string
	Output  string
	Objects int
	Actions int
}

func NewProject(cfg *config.Config, src source.Source) *Project {
	d := director.NewDirector(scene.Canvas{
		Width:  cfg.Width,
		Height: cfg.Height,
		FPS:    cfg.FPS,
	})
	d.SharedIDs = cfg.LegacyIDs

	return &Project{
		Config:   cfg,
		Source:   src,
		Director: d,
		now:      time.Now,
	}
}

// Run processes the scripts with up to Config.Workers in parallel. The first
// failure cancels the remaining scripts and is returned; an existing output
// without Config.Overwrite fails with scene.ErrOutputExists.
func (p *Project) Run(ctx context.Context) ([]Result, error) {
	start := p.now()
	count := p.Source.Count()
	if count == 0 {
		return nil, fmt.Errorf("no scene scripts to build")
	}
	if p.Config.OutputPath != "" && count > 1 {
		return nil, fmt.Errorf("an output path needs a single script, got %d", count)
	}

	workers := p.Config.Workers
	if workers <= 0 || workers > count {
		workers = count
	}

	results := make([]Result, count)
	var done atomic.Int32

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < count; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := p.buildOne(i, start)
			if err != nil {
				return fmt.Errorf("%s: %w", p.Source.Path(i), err)
			}
			results[i] = res
			fmt.Printf("[>] Ready: %d/%d %s\n", done.Add(1), count, res.Output)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if p.Config.ShowStats {
		hs, err := system.ReadHostStats()
		if err != nil {
			fmt.Printf("[!] Host stats unavailable: %v\n", err)
		}
		fmt.Print(Report(p.Config.BuildVersion, results, p.now().Sub(start), hs))
	}

	return results, nil
}

func (p *Project) buildOne(i int, start time.Time) (Result, error) {
	script, err := p.Source.Load(i)
	if err != nil {
		return Result{}, err
	}
	return p.persist(script, p.Source.Path(i), p.outputPath(i, start), p.Config.Overwrite)
}

func (p *Project) persist(script *director.Script, scriptPath, out string, overwrite bool) (Result, error) {
	sc, err := p.Director.Build(script)
	if err != nil {
		return Result{}, err
	}

	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return Result{}, err
		}
	}

	if err := sc.Persist(out, overwrite); err != nil {
		return Result{}, err
	}

	return Result{
		Script:  scriptPath,
		Output:  out,
		Objects: len(sc.Objects()),
		Actions: len(sc.Actions()),
	}, nil
}

// Watch rebuilds every script received on events into OutputDir until ctx
// is done or events is closed. Each script keeps one document, replaced on
// every rebuild. Broken scripts are reported and skipped.
func (p *Project) Watch(ctx context.Context, events <-chan string, errs <-chan error) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			fmt.Printf("[!] Watch error: %v\n", err)
		case path, ok := <-events:
			if !ok {
				return nil
			}
			if _, err := p.Rebuild(path); err != nil {
				fmt.Printf("[!] %s: %v\n", path, err)
			}
		}
	}
}

// Rebuild loads the script at path and replaces its document in OutputDir.
func (p *Project) Rebuild(path string) (Result, error) {
	script, err := director.LoadScript(path)
	if err != nil {
		return Result{}, err
	}
	res, err := p.persist(script, path, system.DocumentPath(path, p.Config.OutputDir), true)
	if err != nil {
		return Result{}, err
	}
	fmt.Printf("[>] Rebuilt: %s (%d objs, %d actions)\n", res.Output, res.Objects, res.Actions)
	return res, nil
}

func (p *Project) outputPath(i int, start time.Time) string {
	if p.Config.OutputPath != "" {
		return p.Config.OutputPath
	}
	return system.GenerateOutputPath(p.Source.Path(i), p.Config.OutputDir, start)
}

// Report formats the performance summary printed with -stats.
func Report(build string, results []Result, elapsed time.Duration, hs system.HostStats) string {
	objs, actions := 0, 0
	for _, r := range results {
		objs += r.Objects
		actions += r.Actions
	}
	return fmt.Sprintf(
		"--- [PERFORMANCE REPORT] ---\n"+
			"Build: %s\n"+
			"Total Time: %.2fs\n"+
			"Scripts: %d\n"+
			"Objects: %d | Actions: %d\n"+
			"Host: %s\n"+
			"----------------------------\n",
		build, elapsed.Seconds(), len(results), objs, actions, hs,
	)
}
