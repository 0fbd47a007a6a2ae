package sqlite

// Timestamps are stored as RFC 3339 text so they sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Queries
const (
	queryInsertRun = `
		INSERT INTO simulation_runs (id, mode, kind, workers, streams, runs, summaries, best_luck, started_at, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			summaries = excluded.summaries,
			best_luck = excluded.best_luck,
			completed_at = excluded.completed_at`

	queryDeleteHistogram = `DELETE FROM histogram_records WHERE run_id = ?`

	queryInsertHistogram = `
		INSERT INTO histogram_records (run_id, observed, count, frequency, estimated_probability)
		VALUES (?, ?, ?, ?, ?)`

	queryUpsertBest = `
		INSERT INTO best_summaries (run_id, summary, luck, probability)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (run_id) DO UPDATE SET
			summary = excluded.summary,
			luck = excluded.luck,
			probability = excluded.probability`

	querySelectRun = `
		SELECT id, mode, kind, workers, streams, runs, summaries, best_luck, started_at, completed_at
		FROM simulation_runs WHERE id = ?`

	queryListRuns = `
		SELECT id, mode, kind, workers, streams, runs, summaries, best_luck, started_at, completed_at
		FROM simulation_runs ORDER BY started_at DESC, id LIMIT ?`

	querySelectHistogram = `
		SELECT observed, count, frequency, estimated_probability
		FROM histogram_records WHERE run_id = ? ORDER BY observed`

	querySelectBest = `SELECT summary, luck, probability FROM best_summaries WHERE run_id = ?`

	queryRunExists = `SELECT EXISTS (SELECT 1 FROM simulation_runs WHERE id = ?)`
)
