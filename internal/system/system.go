package system

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/ivlev/scenegen/internal/source"
)

// FindLatestScript returns the most recently modified YAML script in dir.
func FindLatestScript(dir string) (string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var latestFile string
	var latestTime time.Time

	for _, f := range files {
		if f.IsDir() {
			continue
		}
		if !source.IsScript(f.Name()) {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(latestTime) {
			latestTime = info.ModTime()
			latestFile = filepath.Join(dir, f.Name())
		}
	}

	if latestFile == "" {
		return "", fmt.Errorf("no scene scripts found in %s", dir)
	}

	return latestFile, nil
}

// GenerateOutputPath names the document for script inside outDir:
// the script base name with spaces replaced, plus a timestamp.
func GenerateOutputPath(script, outDir string, now time.Time) string {
	return filepath.Join(outDir, fmt.Sprintf("%s_%s.json", baseName(script), now.Format("2006-01-02_15-04-05")))
}

// DocumentPath is the stable document name for script used in watch mode.
func DocumentPath(script, outDir string) string {
	return filepath.Join(outDir, baseName(script)+".json")
}

func baseName(script string) string {
	base := filepath.Base(script)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return strings.ReplaceAll(name, " ", "_")
}

// HostStats describes the machine for the performance report.
type HostStats struct {
	LogicalCPUs int
	MemTotal    uint64
	MemUsedPct  float64
}

// ReadHostStats queries CPU and memory figures. Fields that cannot be read stay zero.
func ReadHostStats() (HostStats, error) {
	var hs HostStats
	n, cpuErr := cpu.Counts(true)
	if cpuErr == nil {
		hs.LogicalCPUs = n
	}
	vm, memErr := mem.VirtualMemory()
	if memErr == nil {
		hs.MemTotal = vm.Total
		hs.MemUsedPct = vm.UsedPercent
	}
	if cpuErr != nil {
		return hs, cpuErr
	}
	return hs, memErr
}

func (h HostStats) String() string {
	return fmt.Sprintf("CPUs: %d | RAM: %.1f GiB (%.0f%% used)",
		h.LogicalCPUs, float64(h.MemTotal)/(1<<30), h.MemUsedPct)
}
