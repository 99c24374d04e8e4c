package twisty

import "errors"

// Sentinel errors for the twisty package.
//
// The structural model itself has no recoverable errors: invalid raw
// indices and unknown construction tags are programming defects and
// panic. Sentinels exist only for the parsing boundary, where input
// comes from outside the program.
var (
	ErrUnknownColor = errors.New("twisty: unknown color")
)
