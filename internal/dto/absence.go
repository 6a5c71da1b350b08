package dto

// ── absence requests ──

// SubmitAbsenceRequest creates a new absence request for the caller.
// Dates are whole days in YYYY-MM-DD form; the end date is inclusive.
type SubmitAbsenceRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date"   binding:"required"`
	Reason    string `json:"reason"     binding:"omitempty,max=500"`
}

// AbsenceListRequest optionally narrows the listing to a date window.
// Requests overlapping [start, end] are returned. Without a window the
// listing defaults to current and future requests only.
type AbsenceListRequest struct {
	StartDate string `form:"start"`
	EndDate   string `form:"end"`
	// AllSummary asks for every user's requests in reduced form so the
	// calendar can render day indicators without exposing other users'
	// reason texts to non-Management callers.
	AllSummary bool `form:"all_summary"`
}

// UpdateAbsenceStatusRequest decides an absence request.
type UpdateAbsenceStatusRequest struct {
	NewStatus string `json:"new_status" binding:"required"`
}

// ── absence responses ──

// UserRef is the resolved display identity of a requester or decider.
type UserRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AbsenceResponse is the full absence-request projection.
type AbsenceResponse struct {
	ID                   string   `json:"id"`
	StartDate            string   `json:"start_date"`
	EndDate              string   `json:"end_date"`
	Reason               string   `json:"reason,omitempty"`
	Status               string   `json:"status"`
	RequestedBy          UserRef  `json:"requested_by"`
	ApprovedOrRejectedBy *UserRef `json:"approved_or_rejected_by,omitempty"`
	CreatedAt            string   `json:"created_at"`
	UpdatedAt            string   `json:"updated_at"`
}

// AbsenceSummaryResponse is the reduced projection other users' requests are
// trimmed to for non-Management callers. It carries exactly the fields the
// calendar needs to compute per-day status indicators.
type AbsenceSummaryResponse struct {
	ID          string `json:"id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Status      string `json:"status"`
	RequestedBy string `json:"requested_by_name"`
}

// AbsenceListResponse is the listing payload. Exactly one of the caller's
// full records and the trimmed summaries of everyone else's.
type AbsenceListResponse struct {
	Requests  []AbsenceResponse        `json:"requests"`
	Summaries []AbsenceSummaryResponse `json:"summaries,omitempty"`
}
