package types

// QueryResult contains the rendered SQL and its parameters.
type QueryResult struct {
	SQL            string   `json:"sql"`
	Args           []any    `json:"args,omitempty"`            // Positional argument values, in placeholder order
	RequiredParams []string `json:"required_params,omitempty"` // Named parameters, in order of first use
}
