package cpp

import (
	"github.com/pkg/errors"
)

var (
	// ErrConfig reports an invalid or self-contradicting element configuration.
	ErrConfig = errors.New("invalid configuration")
	// ErrUsage reports a render or construction call that does not apply to
	// the element in its current state.
	ErrUsage = errors.New("invalid usage")
)

func configErrorf(name, format string, args ...any) error {
	return errors.Wrapf(ErrConfig, "%s: "+format, append([]any{name}, args...)...)
}

func usageErrorf(name, format string, args ...any) error {
	return errors.Wrapf(ErrUsage, "%s: "+format, append([]any{name}, args...)...)
}
