package postgre

const (
	ignoredHostnameColumns = `id, created_at, wiki_id, hostname`

	// checkIgnoredHostnamesQuery keeps input order and duplicates.
	checkIgnoredHostnamesQuery = `
		SELECT input.hostname, EXISTS (
			SELECT 1
			FROM citron_spam__ignored_hostname ih
			WHERE ih.wiki_id = $1 AND ih.hostname = input.hostname
		) AS existed
		FROM unnest($2::text[]) WITH ORDINALITY AS input(hostname, position)
		ORDER BY input.position`

	existsIgnoredHostnameQuery = `
		SELECT EXISTS (
			SELECT 1
			FROM citron_spam__ignored_hostname
			WHERE wiki_id = $1 AND hostname = $2
		)`

	insertIgnoredHostnameQuery = `
		INSERT INTO citron_spam__ignored_hostname (` + ignoredHostnameColumns + `)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (wiki_id, hostname) DO NOTHING
		RETURNING ` + ignoredHostnameColumns

	getIgnoredHostnamesQuery = `
		SELECT ` + ignoredHostnameColumns + `
		FROM citron_spam__ignored_hostname
		WHERE wiki_id = $1
		ORDER BY id DESC
		LIMIT $2 OFFSET $3`

	countIgnoredHostnamesQuery = `
		SELECT COUNT(*)
		FROM citron_spam__ignored_hostname
		WHERE wiki_id = $1`
)
