//go:build unix

package rusage

import (
	"runtime"
	"time"

	"golang.org/x/sys/unix"
)

func snapshot() (Usage, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return Usage{}, err
	}
	peak := uint64(ru.Maxrss)
	if runtime.GOOS == "darwin" {
		peak /= 1024 // bytes on darwin
	}
	return Usage{
		User:   time.Duration(ru.Utime.Nano()),
		System: time.Duration(ru.Stime.Nano()),
		PeakKB: peak,
	}, nil
}
