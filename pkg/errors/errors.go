package errors

import "errors"

// ErrOptimisticLock signals that a record was modified by another operation
// since it was read. Callers should reload and retry.
var ErrOptimisticLock = errors.New("Der Datensatz wurde zwischenzeitlich geändert. Bitte neu laden und erneut versuchen.")
