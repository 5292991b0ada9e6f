package types

// OperationResponse is returned by every arithmetic tool
type OperationResponse struct {
	Status     string         `json:"status"`               // "success" on a computed result
	Operation  string         `json:"operation"`            // Tool name, e.g. "add"
	Operands   map[string]any `json:"operands"`             // Arguments after validation
	Result     any            `json:"result"`               // int for integer tools, float64 for divide
	Expression string         `json:"expression,omitempty"` // Human-readable form, e.g. "10 + 20 = 30"
}

// InfoResponse describes the library behind the server
type InfoResponse struct {
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	License     string   `json:"license"`
	Description string   `json:"description"`
	Server      string   `json:"server"`     // Server version, set at build time
	Operations  []string `json:"operations"` // Tools that compute results
}

// SmokeTestResponse reports a run of the consumer smoke test
type SmokeTestResponse struct {
	Status   string `json:"status"`
	Passed   bool   `json:"passed"`
	ExitCode int    `json:"exitCode"`
	Output   string `json:"output"` // Console output exactly as the consumer prints it
}
