// Package rusage reports process CPU time and peak memory.
//
// The solve command prints these figures after a run so that the two DP
// strategies can be compared on large inputs.
package rusage

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Usage is a snapshot of resource consumption since process start.
type Usage struct {
	User   time.Duration // user CPU time
	System time.Duration // system CPU time
	PeakKB uint64        // peak memory in KiB
}

// CPU returns user plus system time.
func (u Usage) CPU() time.Duration { return u.User + u.System }

// PeakGB returns the peak memory in GiB.
func (u Usage) PeakGB() float64 { return float64(u.PeakKB) / (1 << 20) }

// String formats the snapshot the way the solve command reports it.
func (u Usage) String() string {
	return fmt.Sprintf("The total CPU time: %.3f s\nmemory: %f GB", u.CPU().Seconds(), u.PeakGB())
}

// Snapshot returns the current usage. Peak memory prefers VmPeak from
// /proc/self/status and falls back to the maximum resident set size.
func Snapshot() (Usage, error) {
	u, err := snapshot()
	if err != nil {
		return Usage{}, err
	}
	if peak, ok := vmPeak("/proc/self/status"); ok {
		u.PeakKB = peak
	}
	return u, nil
}

// vmPeak reads the VmPeak line of a /proc status file, in KiB.
func vmPeak(path string) (uint64, bool) {
	f, err := os.Open(path)
	if err != nil {
		return 0, false
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		rest, ok := strings.CutPrefix(sc.Text(), "VmPeak:")
		if !ok {
			continue
		}
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			return 0, false
		}
		v, err := strconv.ParseUint(fields[0], 10, 64)
		return v, err == nil
	}
	return 0, false
}
