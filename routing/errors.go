package routing

import (
	"errors"

	"github.com/ttpr0/go-citymap/graph"
)

var (
	ErrInvalidIndex       = graph.ErrInvalidIndex
	ErrNoReachablePickup  = errors.New("no friend can be picked up")
	ErrDisconnectedTarget = errors.New("target not reachable")
)
