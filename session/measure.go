package session

import (
	"fmt"
	"runtime"
	"sync"
	"time"
)

// sampleInterval is the interval for sampling heap usage during a measurement.
const sampleInterval = 2 * time.Millisecond

// Stats is the result of a measurement.
type Stats struct {
	Elapsed   time.Duration
	Allocated uint64 // bytes allocated during the measurement
	Mallocs   uint64 // number of heap objects allocated during the measurement
	HeapInUse uint64 // bytes in use by the heap at the end of the measurement
	PeakHeap  uint64 // highest heap usage seen, sampled every sampleInterval
}

func (st Stats) String() string {
	return fmt.Sprintf("time %s, allocated %s in %d objects, peak heap %s, heap in use %s",
		st.Elapsed, formatBytes(st.Allocated), st.Mallocs, formatBytes(st.PeakHeap),
		formatBytes(st.HeapInUse))
}

// Measure calls f and reports the time it took and the memory it allocated.
// Peak heap usage is sampled while f runs, so short spikes between two
// samples may go unnoticed.
func Measure(f func() error) (Stats, error) {
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	peak := before.HeapInuse
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(sampleInterval)
		defer ticker.Stop()
		var ms runtime.MemStats
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				runtime.ReadMemStats(&ms)
				peak = max(peak, ms.HeapInuse)
			}
		}
	}()
	start := time.Now()
	err := f()
	elapsed := time.Since(start)
	close(stop)
	wg.Wait()
	runtime.ReadMemStats(&after)
	st := Stats{
		Elapsed:   elapsed,
		Allocated: after.TotalAlloc - before.TotalAlloc,
		Mallocs:   after.Mallocs - before.Mallocs,
		HeapInUse: after.HeapInuse,
		PeakHeap:  max(peak, after.HeapInuse),
	}
	tracer().Infof("measured: %s", st)
	return st, err
}

func formatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
