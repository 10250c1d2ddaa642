package domain

// TestFailure represents a single failed or errored test case.
type TestFailure struct {
	TestName  string   `json:"test_name"`
	Kind      string   `json:"kind"` // "FAIL" or "ERROR"
	Message   string   `json:"message"`
	Traceback []string `json:"traceback"`
	File      string   `json:"file"`
	Line      int      `json:"line"`
	Resolved  bool     `json:"resolved,omitempty"` // Marked as resolved in the failure viewer
}
