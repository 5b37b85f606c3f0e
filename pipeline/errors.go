package pipeline

import (
	"fmt"

	"github.com/tavernkeep/savecore/validate"
)

// ValidationFailedError aborts a Save when validate_before_save finds at
// least one Error-severity issue.
type ValidationFailedError struct {
	Issues []validate.Issue
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("pipeline: validation failed with %d error(s)", len(e.Issues))
}

// AtomicRenameFailedError reports that the final destination rename failed
// after the backup swap; Restored reports whether the original file was
// put back successfully.
type AtomicRenameFailedError struct {
	Inner    error
	Restored bool
}

func (e *AtomicRenameFailedError) Error() string {
	if e.Restored {
		return fmt.Sprintf("pipeline: atomic rename failed, original restored: %v", e.Inner)
	}
	return fmt.Sprintf("pipeline: atomic rename failed, original NOT restored: %v", e.Inner)
}

func (e *AtomicRenameFailedError) Unwrap() error { return e.Inner }

// VerificationFailedError reports that the written temp file failed the
// post-write integrity check; the temp file has already been removed.
type VerificationFailedError struct {
	Inner error
}

func (e *VerificationFailedError) Error() string {
	return fmt.Sprintf("pipeline: post-write verification failed: %v", e.Inner)
}

func (e *VerificationFailedError) Unwrap() error { return e.Inner }
