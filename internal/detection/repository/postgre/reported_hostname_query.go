package postgre

const (
	reportedHostnameColumns = `id, created_at, wiki_id, username, page, revision_id, revision_timestamp, hostname, score, model_number`

	insertReportedHostnameQuery = `
		INSERT INTO citron_spam__reported_hostname (` + reportedHostnameColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	listReportedHostnamesQuery = `
		SELECT ` + reportedHostnameColumns + `
		FROM citron_spam__reported_hostname
		WHERE wiki_id = $1 AND created_at >= $2 AND created_at < $3
		ORDER BY id ASC`

	getReportedHostnamesQuery = `
		SELECT ` + reportedHostnameColumns + `
		FROM citron_spam__reported_hostname
		WHERE wiki_id = $1 AND created_at >= $2 AND created_at < $3
		ORDER BY id DESC
		LIMIT $4 OFFSET $5`

	countReportedHostnamesQuery = `
		SELECT COUNT(*)
		FROM citron_spam__reported_hostname
		WHERE wiki_id = $1 AND created_at >= $2 AND created_at < $3`

	existsReportedHostnameQuery = `
		SELECT EXISTS (
			SELECT 1
			FROM citron_spam__reported_hostname
			WHERE wiki_id = $1 AND created_at >= $2 AND created_at < $3
		)`
)
