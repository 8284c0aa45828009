package worldpreset

import "errors"

// ErrConfiguration is the sentinel for §7's ConfigurationError kind:
// invalid world preset, missing required fields, or an unresolved
// named body. It is fatal at init and only recoverable by retrying
// with a corrected preset.
var ErrConfiguration = errors.New("configuration error")
