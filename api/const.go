package api

import "errors"

// ErrorDuplicateKey operation cannot succeed because specified key is
// already present in the set.
var ErrorDuplicateKey = errors.New("duplicateKey")

// ErrorKeyMissing operation cannot succeed because specified key is
// missing in the set.
var ErrorKeyMissing = errors.New("keyMissing")
