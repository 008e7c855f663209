package main

// Locations are pointers so that a missing one fails validation instead of
// defaulting to location 0.

type PlanRequest struct {
	City        string `json:"city" validate:"required"`
	Start       *int32 `json:"start" validate:"required,gte=0"`
	Destination *int32 `json:"destination" validate:"required,gte=0"`
}

type PathRequest struct {
	City  string `json:"city" validate:"required"`
	Start *int32 `json:"start" validate:"required,gte=0"`
	End   *int32 `json:"end" validate:"required,gte=0"`
}

type GraphRequest struct {
	City string `json:"city" validate:"required"`
}
