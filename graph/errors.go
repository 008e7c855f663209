package graph

import (
	"errors"
)

var (
	ErrInvalidIndex   = errors.New("location index out of range")
	ErrNegativeWeight = errors.New("negative edge weight")
	ErrInvalidFriend  = errors.New("invalid friend")
	ErrWeightOverflow = errors.New("edge weights exceed the distance range")
)
