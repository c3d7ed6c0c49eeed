package repository

import (
	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

func uuidExpressions(ids []uuid.UUID) []postgres.Expression {
	out := make([]postgres.Expression, len(ids))
	for i, id := range ids {
		out[i] = postgres.UUID(id)
	}
	return out
}

func stringExpressions(values []string) []postgres.Expression {
	out := make([]postgres.Expression, len(values))
	for i, v := range values {
		out[i] = postgres.String(v)
	}
	return out
}
