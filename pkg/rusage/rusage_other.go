//go:build !unix

package rusage

import "github.com/matzehuels/mps/pkg/errors"

func snapshot() (Usage, error) {
	return Usage{}, errors.New(errors.ErrCodeUnsupported, "resource usage is not available on this platform")
}
