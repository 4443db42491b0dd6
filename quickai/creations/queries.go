package creations

const (
	queryCreate = `
		INSERT INTO creations (user_id, prompt, content, type, publish)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	queryCountByUser = `
		SELECT COUNT(*) FROM creations WHERE user_id = $1
	`

	queryListByUser = `
		SELECT id, user_id, prompt, content, type, publish, created_at
		FROM creations
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	queryCountPublished = `
		SELECT COUNT(*) FROM creations WHERE publish = true
	`

	queryListPublished = `
		SELECT id, user_id, prompt, content, type, publish, created_at
		FROM creations
		WHERE publish = true
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
)
