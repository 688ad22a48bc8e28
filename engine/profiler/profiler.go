package profiler

import (
	"log"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// Profiler tracks frame rate, memory statistics, and emulation counters for
// performance monitoring. Outputs stats to the log at a configurable interval.
// Log emission runs on a worker pool so a slow log sink never stalls the
// frame step path.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64

	// Emulation counters published by the pipeline, read at log time.
	emulatedCycles atomic.Uint64
	matOps         atomic.Uint64
	emulatedFrames atomic.Uint64

	logPool worker.DynamicWorkerPool
	taskID  int
}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to 1 second.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	return &Profiler{
		frameCount:     0,
		lastTime:       time.Now(),
		updateInterval: time.Second,
		memStats:       runtime.MemStats{},
		// A single worker keeps log lines ordered; the queue absorbs bursts.
		logPool: worker.NewDynamicWorkerPool(1, 16, 1*time.Second),
	}
}

// SetCounters publishes the pipeline's cumulative emulation counters so they
// appear in the next stats line. Safe to call from the frame step path.
//
// Parameters:
//   - emulatedCycles: total emulated CPU cycles so far
//   - matOps: total transform-stage matrix operations so far
//   - emulatedFrames: total frames stepped so far
func (p *Profiler) SetCounters(emulatedCycles, matOps, emulatedFrames uint64) {
	p.emulatedCycles.Store(emulatedCycles)
	p.matOps.Store(matOps)
	p.emulatedFrames.Store(emulatedFrames)
}

// Tick should be called once per frame to track frame timing.
// Submits a stats log line to the worker pool when the update interval has
// elapsed. Statistics include: FPS, emulation counters, heap usage,
// allocation rate, GC count/pause times, total memory.
//
// Returns:
//   - bool: true if stats were emitted this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.frameCount++
	currentTime := time.Now()
	elapsed := currentTime.Sub(p.lastTime)

	if elapsed >= p.updateInterval {
		fps := float64(p.frameCount) / elapsed.Seconds()

		runtime.ReadMemStats(&p.memStats)
		// Alloc: Bytes of allocated heap objects (live memory)
		// TotalAlloc: Cumulative bytes allocated for heap objects (increases forever, tracks churn)
		// Sys: Total bytes of memory obtained from the OS (actual process footprint)
		allocMB := float64(p.memStats.Alloc) / 1024 / 1024
		sysMB := float64(p.memStats.Sys) / 1024 / 1024

		// Calculate allocation rate (MB/sec)
		allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
		allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

		// Calculate GC pause stats (last pause and max recent pause)
		gcCount := p.memStats.NumGC
		var lastPauseUs, maxPauseUs uint64
		if gcCount > 0 {
			// PauseNs is a circular buffer of last 256 GC pauses
			lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000

			// Find max pause since last tick
			startIdx := p.lastGCCount
			if gcCount-startIdx > 256 {
				startIdx = gcCount - 256
			}
			for i := startIdx; i < gcCount; i++ {
				pause := p.memStats.PauseNs[i%256] / 1000
				if pause > maxPauseUs {
					maxPauseUs = pause
				}
			}
		}

		cycles := p.emulatedCycles.Load()
		matOps := p.matOps.Load()
		frames := p.emulatedFrames.Load()

		p.taskID++
		p.logPool.SubmitTask(worker.Task{
			ID: p.taskID,
			Do: func() (any, error) {
				log.Printf("[Profiler] FPS: %.2f | Frames: %d | Cycles: %d | MatOps: %d | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB",
					fps, frames, cycles, matOps, allocMB, allocRateMB, gcCount, lastPauseUs, maxPauseUs, sysMB)
				return nil, nil
			},
		})

		p.frameCount = 0
		p.lastTime = currentTime
		p.lastGCCount = gcCount
		p.lastTotalAlloc = p.memStats.TotalAlloc
		return true
	}

	return false
}
