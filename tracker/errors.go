package tracker

import "errors"

var (
	ErrMissingEffectTarget = errors.New("effect target is not set")
	ErrMissingViewpoint    = errors.New("viewpoint is not set")
)
