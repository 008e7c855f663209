package main

import (
	"github.com/ttpr0/go-citymap/routing"
	"github.com/ttpr0/go-citymap/structs"
)

type ErrorResponse struct {
	Request string `json:"request"`
	Error   any    `json:"error"`
}

func NewErrorResponse(request string, error any) ErrorResponse {
	return ErrorResponse{
		Request: request,
		Error:   error,
	}
}

type PlanResponse struct {
	City string `json:"city"`
	routing.Plan
}

type PathResponse struct {
	City      string  `json:"city"`
	Start     int32   `json:"start"`
	End       int32   `json:"end"`
	Distance  int32   `json:"distance"`
	Locations []int32 `json:"locations"`
}

type GraphResponse struct {
	City        string                     `json:"city"`
	Locations   int                        `json:"locations"`
	Roads       int                        `json:"roads"`
	Tracks      int                        `json:"tracks"`
	Annotations []structs.PickupAnnotation `json:"annotations"`
	Dump        string                     `json:"dump"`
}
