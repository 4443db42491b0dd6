package pipeline

import (
	"context"
	"errors"

	"codeberg.org/quickai/server/internal/logger"
	"codeberg.org/quickai/server/internal/quota"
	"codeberg.org/quickai/server/quickai/creations"
)

// runs metered actions: quota guard, external call, persist, usage update
type Pipeline struct {
	deps Dependencies
}

func New(deps Dependencies) *Pipeline {
	if deps.FreeUsageLimit <= 0 {
		deps.FreeUsageLimit = quota.FreeUsageLimit
	}

	return &Pipeline{deps: deps}
}

// executes one action for identity. it never returns an error: every failure
// is folded into an unsuccessful Result.
func (p *Pipeline) Run(ctx context.Context, identity Identity, action Action) Result {
	log := logger.FromContext(ctx).With(
		"user_id", identity.UserID,
		"plan", identity.Plan,
		"action", action.Kind(),
	)

	if !quota.Allow(identity.Plan, identity.FreeUsage, p.deps.FreeUsageLimit) {
		log.Info("free usage limit reached", "free_usage", identity.FreeUsage)
		return Result{Message: action.limitMessage(), LimitReached: true}
	}

	if err := action.validate(); err != nil {
		log.Debug("action rejected", "reason", err.Error())
		return failure(err)
	}

	out, err := action.invoke(ctx, &p.deps)
	if err != nil {
		log.Error("action failed", "error", err)
		return failure(err)
	}

	// a persistence failure discards the external result
	creation, err := p.deps.Creations.Create(ctx, creations.CreateRequest{
		UserID:  identity.UserID,
		Prompt:  out.prompt,
		Content: out.content,
		Type:    out.kind,
		Publish: out.publish,
	})
	if err != nil {
		log.Error("failed to persist creation", "error", err)
		return failure(err)
	}

	if !identity.Plan.IsPremium() {
		// the creation already exists, so a failed counter update is logged
		// rather than turned into a failed action
		if _, err := p.deps.Usage.IncrementFreeUsage(ctx, identity.UserID); err != nil {
			log.Error("failed to increment free usage", "error", err, "creation_id", creation.ID)
		}
	}

	log.Info("action completed", "creation_id", creation.ID)

	return Result{Success: true, Content: out.content, CreationID: creation.ID}
}

func failure(err error) Result {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return Result{Message: validationErr.Message}
	}

	return Result{Message: err.Error(), Err: err}
}
