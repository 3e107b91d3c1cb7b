package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

const (
	orderByScore     = "score"
	orderByCreatedAt = "created_at"
	orderByUpdatedAt = "updated_at"
)

// validOrderBy whitelists ORDER BY columns to prevent SQL injection.
var validOrderBy = map[string]string{
	orderByScore:     "score DESC",
	orderByCreatedAt: "created_at DESC",
	orderByUpdatedAt: "updated_at DESC",
}

const defaultOrderBy = "created_at DESC"

const baseAnalysesSelect = `SELECT id, owner_id, COALESCE(identifier, ''), title, COALESCE(category, ''),
	score, rate_table_version, inputs, result, COALESCE(notes, ''),
	created_at, updated_at
FROM analyses`

const countAnalysesSelect = "SELECT COUNT(*) FROM analyses"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for an
// analysis query. It returns two SQL strings (one for the data query, one
// for the count query) and the positional parameters.
func (q *AnalysisQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	conditions := []string{"owner_id = $1"}
	args = append(args, q.OwnerID)
	paramIdx := 2

	if q.MinScore != nil {
		conditions = append(conditions, fmt.Sprintf("score >= $%d", paramIdx))
		args = append(args, *q.MinScore)
		paramIdx++
	}

	if q.MaxScore != nil {
		conditions = append(conditions, fmt.Sprintf("score <= $%d", paramIdx))
		args = append(args, *q.MaxScore)
		paramIdx++
	}

	if q.Category != nil {
		conditions = append(conditions, fmt.Sprintf("category = $%d", paramIdx))
		args = append(args, *q.Category)
		paramIdx++
	}

	if q.Identifier != nil {
		conditions = append(conditions, fmt.Sprintf("identifier = $%d", paramIdx))
		args = append(args, *q.Identifier)
		paramIdx++
	}

	whereClause := " WHERE " + strings.Join(conditions, " AND ")

	orderClause := defaultOrderBy
	if q.OrderBy != "" {
		if col, ok := validOrderBy[q.OrderBy]; ok {
			orderClause = col
		}
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseAnalysesSelect, whereClause, orderClause, limit, offset,
	)

	countSQL = countAnalysesSelect + whereClause

	return dataSQL, countSQL, args
}
