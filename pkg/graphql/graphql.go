// Package graphql wires the graphql-go runtime into the HTTP layer. Schemas
// are built at boot from graphql.Object roots; Handler exposes a schema at a
// single POST endpoint.
package graphql

import (
	"encoding/json"
	"net/http"

	"github.com/graphql-go/graphql"
)

// NewSchema creates a GraphQL schema from the provided root query object.
func NewSchema(query *graphql.Object) (graphql.Schema, error) {
	return graphql.NewSchema(graphql.SchemaConfig{
		Query: query,
	})
}

type request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Handler returns an http.HandlerFunc that executes queries against schema.
// Errors are reported in the standard GraphQL "errors" array with HTTP 200,
// per the GraphQL-over-HTTP convention.
func Handler(schema graphql.Schema) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"errors":[{"message":"invalid request body"}]}`, http.StatusBadRequest)
			return
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			OperationName:  req.OperationName,
			VariableValues: req.Variables,
			Context:        r.Context(),
		})

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result) //nolint:errcheck
	}
}
