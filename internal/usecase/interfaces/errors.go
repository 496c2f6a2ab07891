package interfaces

import "errors"

// ErrConflict is returned by repositories when a conditional write loses
// against the stored state (item already exists, state changed underneath).
var ErrConflict = errors.New("conditional write conflict")
