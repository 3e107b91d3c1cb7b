package store

// SQL statements for analysis persistence. Named-argument queries use
// pgx.NamedArgs at the call site.

const queryInsertAnalysis = `
INSERT INTO analyses (
	owner_id, identifier, title, category,
	score, rate_table_version, inputs, result, notes
) VALUES (
	@owner_id, @identifier, @title, @category,
	@score, @rate_table_version, @inputs, @result, @notes
)
RETURNING id, created_at, updated_at`

const queryGetAnalysis = baseAnalysesSelect + `
WHERE id = $1 AND owner_id = $2`

const queryUpdateAnalysisNotes = `
UPDATE analyses
SET notes = $3, updated_at = now()
WHERE id = $1 AND owner_id = $2`

const queryDeleteAnalysis = `
DELETE FROM analyses
WHERE id = $1 AND owner_id = $2`

const queryListAnalysesForRescore = baseAnalysesSelect + `
ORDER BY created_at ASC
LIMIT $1 OFFSET $2`

const queryUpdateAnalysisScore = `
UPDATE analyses
SET score = $2, rate_table_version = $3, result = $4, updated_at = now()
WHERE id = $1`
