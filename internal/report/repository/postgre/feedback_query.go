package postgre

const (
	feedbackColumns = `id, created_at, created_by, wiki_id, report_date, hostname, status, hash`

	insertFeedbackQuery = `
		INSERT INTO citron_spam__feedback (` + feedbackColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	listFeedbacksQuery = `
		SELECT id, created_at, created_by, wiki_id, to_char(report_date, 'YYYY-MM-DD'), hostname, status, hash
		FROM citron_spam__feedback
		WHERE wiki_id = $1 AND ($2::text = '' OR report_date = NULLIF($2::text, '')::date)
		ORDER BY id ASC`
)
