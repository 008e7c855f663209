package graph

//*******************************************
// enums
//*******************************************

type Adjacency byte

const (
	ADJACENT_ROADS  Adjacency = 0
	ADJACENT_TRACKS Adjacency = 1
	ADJACENT_ALL    Adjacency = 2
)

func (self Adjacency) String() string {
	switch self {
	case ADJACENT_ROADS:
		return "roads"
	case ADJACENT_TRACKS:
		return "tracks"
	case ADJACENT_ALL:
		return "all"
	default:
		return "unknown"
	}
}

// Friends may ride at most this many tracks before the pickup.
const MAX_PICKUP_HOPS int32 = 2
