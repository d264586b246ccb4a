package debug

// Runtime metrics logger. Started only when config.Debug is true.
// Emits goroutine count and stack/heap usage plus any registered gauges.

import (
	"log/slog"
	"runtime"
	"runtime/metrics"
	"sync"
	"time"
)

// Gauge contributes extra key/value pairs to each runtime sample.
type Gauge func() []any

// StartRuntimeLogger logs a runtime sample every interval until the returned
// stop func is called. Stop is idempotent.
func StartRuntimeLogger(interval time.Duration, logger *slog.Logger, gauges ...Gauge) (stop func()) {
	if logger == nil {
		return func() {}
	}
	if interval <= 0 {
		interval = time.Second
	}
	done := make(chan struct{})
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
		for {
			select {
			case <-done:
				return
			case <-t.C:
			}
			logger.Info("runtime", sample(samples, gauges)...)
		}
	}()
	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}

func sample(samples []metrics.Sample, gauges []Gauge) []any {
	metrics.Read(samples)
	var goroutines uint64
	if samples[0].Value.Kind() == metrics.KindUint64 {
		goroutines = samples[0].Value.Uint64()
	}
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	attrs := []any{
		slog.Uint64("goroutines", goroutines),
		slog.Uint64("stack_inuse", ms.StackInuse),
		slog.Uint64("heap_alloc", ms.HeapAlloc),
		slog.Uint64("num_gc", uint64(ms.NumGC)),
	}
	for _, p := range gauges {
		if p != nil {
			attrs = append(attrs, p()...)
		}
	}
	return attrs
}
