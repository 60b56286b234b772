package automation

import "errors"

var ErrUnsupported = errors.New("login automation is not supported on this platform")
