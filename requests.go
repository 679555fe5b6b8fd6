package main

type RouteRequest struct {
	// landmark names, matched case-insensitively
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

type LandmarksRequest struct {
	// include landmark coordinates instead of plain names
	Coordinates bool `json:"coordinates"`
}

type ReachableRequest struct {
	From  string  `json:"from" validate:"required"`
	Range float64 `json:"range" validate:"gte=0"`
}
