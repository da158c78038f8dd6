package models

// Request types

// next_pick is required for set
type PickSetRequest struct {
	PrevPicks string  `json:"prev_picks"`
	NextPick  *string `json:"next_pick"`
}

// next_pick may be omitted or null for add
type PickAddRequest struct {
	PrevPicks string  `json:"prev_picks"`
	NextPick  *string `json:"next_pick"`
}

// Response types

type DeletePatternResponse struct {
	Message string `json:"message"`
	Seq     int64  `json:"seq"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Domain types

// Pick associates a pattern of prior picks with the pick that followed it.
// NextPick is nil while the pattern is open.
type Pick struct {
	Seq       int64   `json:"seq"`
	PrevPicks string  `json:"prev_picks"`
	NextPick  *string `json:"next_pick"`
}

// IsOpen reports whether no successor has been recorded yet
func (p Pick) IsOpen() bool {
	return p.NextPick == nil
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
