package tapes

import "errors"

var ErrBadDirection = errors.New("bad direction")
