package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/pprof"
	"time"
)

// MemorySampleRate How often to dump the memory to a file in HZ. Values of less than 1 are recommended to avoid
// having to sort through too many dump files
var MemorySampleRate = 0.5

type cpuProfiler struct {
	profileOutput *os.File
}

func startCPUProfiler(profilePath string) (*cpuProfiler, error) {
	profileOutput, err := os.Create(profilePath)
	if err != nil {
		return nil, err
	}
	if err = pprof.StartCPUProfile(profileOutput); err != nil {
		profileOutput.Close()
		return nil, err
	}
	return &cpuProfiler{profileOutput: profileOutput}, nil
}

func (p *cpuProfiler) stop() error {
	pprof.StopCPUProfile()
	return p.profileOutput.Close()
}

// memProfiler keeps heap profiles in memory while the command runs and writes them out once it is stopped
type memProfiler struct {
	dumpPath     string
	heapDumps    [][]byte
	stopSampling chan struct{}
	samplingDone chan struct{}
}

func startMemProfiler(dumpPath string, sampleRate float64) *memProfiler {
	p := &memProfiler{
		dumpPath:     dumpPath,
		stopSampling: make(chan struct{}),
		samplingDone: make(chan struct{}),
	}
	if sampleRate <= 0 {
		close(p.samplingDone)
		return p
	}

	go func() {
		defer close(p.samplingDone)
		ticker := time.NewTicker(time.Duration((1/sampleRate)*1000) * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-p.stopSampling:
				return
			case <-ticker.C:
				p.dumpMemoryProfile()
			}
		}
	}()
	return p
}

func (p *memProfiler) dumpMemoryProfile() {
	w := bytes.NewBuffer(nil)
	if err := pprof.WriteHeapProfile(w); err == nil {
		p.heapDumps = append(p.heapDumps, w.Bytes())
	}
}

func (p *memProfiler) stop() error {
	close(p.stopSampling)
	<-p.samplingDone
	p.dumpMemoryProfile()

	if err := os.MkdirAll(p.dumpPath, 0o755); err != nil {
		return err
	}
	var errs []error
	for dIdx, dump := range p.heapDumps {
		dumpFile := filepath.Join(p.dumpPath, fmt.Sprintf("mem-%d.mprof", dIdx))
		if err := os.WriteFile(dumpFile, dump, 0o644); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
