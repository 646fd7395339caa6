package cli

import "fmt"

type conversionFailedError struct {
	failed int
	total  int
}

func (e conversionFailedError) Error() string {
	return fmt.Sprintf("%d of %d entries failed to convert", e.failed, e.total)
}

func errConversionFailed(failed, total int) error {
	return conversionFailedError{failed: failed, total: total}
}

type noEntriesError struct{}

func (noEntriesError) Error() string {
	return "no entries: pass them as arguments, with --file, or on stdin"
}
