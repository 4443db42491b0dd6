package users

const (
	queryEnsure = `
		INSERT INTO users (id, plan, free_usage)
		VALUES ($1, 'free', 0)
		ON CONFLICT (id) DO NOTHING
	`

	queryFindByID = `
		SELECT id, plan, free_usage, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	// single statement so concurrent increments never lose an update
	queryIncrementFreeUsage = `
		UPDATE users
		SET free_usage = free_usage + 1, updated_at = NOW()
		WHERE id = $1
		RETURNING free_usage
	`

	querySetPlan = `
		UPDATE users
		SET plan = $1, updated_at = NOW()
		WHERE id = $2
	`
)
