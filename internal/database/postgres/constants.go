package postgres

// Queries
const (
	queryInsertRun = `
		INSERT INTO simulation_runs (id, mode, kind, workers, streams, runs, summaries, best_luck, started_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			summaries = EXCLUDED.summaries,
			best_luck = EXCLUDED.best_luck,
			completed_at = EXCLUDED.completed_at`

	queryDeleteHistogram = `DELETE FROM histogram_records WHERE run_id = $1`

	queryInsertHistogram = `
		INSERT INTO histogram_records (run_id, observed, count, frequency, estimated_probability)
		VALUES ($1, $2, $3, $4, $5)`

	queryUpsertBest = `
		INSERT INTO best_summaries (run_id, summary, luck, probability)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (run_id) DO UPDATE SET
			summary = EXCLUDED.summary,
			luck = EXCLUDED.luck,
			probability = EXCLUDED.probability`

	querySelectRun = `
		SELECT id, mode, kind, workers, streams, runs, summaries, best_luck, started_at, completed_at
		FROM simulation_runs WHERE id = $1`

	queryListRuns = `
		SELECT id, mode, kind, workers, streams, runs, summaries, best_luck, started_at, completed_at
		FROM simulation_runs ORDER BY started_at DESC, id LIMIT $1`

	querySelectHistogram = `
		SELECT observed, count, frequency, estimated_probability
		FROM histogram_records WHERE run_id = $1 ORDER BY observed`

	querySelectBest = `SELECT summary, luck, probability FROM best_summaries WHERE run_id = $1`

	queryRunExists = `SELECT EXISTS (SELECT 1 FROM simulation_runs WHERE id = $1)`
)
