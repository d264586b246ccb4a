//go:build windows

package debug

// Working set (RSS) logger for Windows, correlating native memory held by Tk
// photo images with Go heap growth.

import (
	"log/slog"
	"sync"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

// processMemoryCounters matches PROCESS_MEMORY_COUNTERS from psapi.
type processMemoryCounters struct {
	cb                         uint32
	PageFaultCount             uint32
	PeakWorkingSetSize         uintptr
	WorkingSetSize             uintptr
	QuotaPeakPagedPoolUsage    uintptr
	QuotaPagedPoolUsage        uintptr
	QuotaPeakNonPagedPoolUsage uintptr
	QuotaNonPagedPoolUsage     uintptr
	PagefileUsage              uintptr
	PeakPagefileUsage          uintptr
}

var (
	modPsapi                 = windows.NewLazySystemDLL("psapi.dll")
	procGetProcessMemoryInfo = modPsapi.NewProc("GetProcessMemoryInfo")
)

func workingSet() (rss, peak uint64, err error) {
	pmc := processMemoryCounters{cb: uint32(unsafe.Sizeof(processMemoryCounters{}))}
	r1, _, callErr := procGetProcessMemoryInfo.Call(uintptr(windows.CurrentProcess()), uintptr(unsafe.Pointer(&pmc)), uintptr(pmc.cb))
	if r1 == 0 {
		return 0, 0, callErr
	}
	return uint64(pmc.WorkingSetSize), uint64(pmc.PeakWorkingSetSize), nil
}

// StartMemLogger logs the process working set every interval until stop is
// called. A failing query is logged once and then suppressed.
func StartMemLogger(interval time.Duration, logger *slog.Logger) (stop func()) {
	if logger == nil {
		return func() {}
	}
	if interval <= 0 {
		interval = 2 * time.Second
	}
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		var errLogged bool
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
			}
			rss, peak, err := workingSet()
			if err != nil {
				if !errLogged {
					logger.Warn("memlog: GetProcessMemoryInfo failed", slog.String("err", err.Error()))
					errLogged = true
				}
				continue
			}
			logger.Info("memstats", slog.Uint64("rss", rss), slog.Uint64("rss_peak", peak))
		}
	}()
	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}
