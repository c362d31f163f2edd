package models

type SummaryResponse struct {
	SessionID string `json:"session_id"`
	Summary   string `json:"summary"`
}

type JobRequest struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

type JobResponse struct {
	SessionID string `json:"session_id"`
	Scraped   bool   `json:"scraped"`
}

type EvaluateRequest struct {
	SessionID string `json:"session_id"`
}

type EvaluateResponse struct {
	SessionID  string `json:"session_id"`
	Evaluation string `json:"evaluation"`
}

type SessionResponse struct {
	ID     string `json:"id"`
	HasCV  bool   `json:"has_cv"`
	HasJob bool   `json:"has_job"`
}
