package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/mconway/firefly-iii/internal/common"
	"github.com/mconway/firefly-iii/internal/models"
	"github.com/mconway/firefly-iii/internal/repositories"
	"github.com/mconway/firefly-iii/internal/services/ruleengine"
)

func checkDatabaseError(err error, code ...string) error {
	if errors.Is(err, common.ErrNoRows) || errors.Is(err, common.ErrDataNotFound) {
		if len(code) > 0 {
			return models.GetErrMap(code[0])
		}
		return common.ErrDataNotFound
	}

	return err
}

// categoryResolver backs set_category actions with the upserting category
// repository, so a rule can name a category that does not exist yet.
type categoryResolver struct {
	categories repositories.CategoryRepository
}

func (r categoryResolver) Resolve(ctx context.Context, userID int64, name string) (int64, error) {
	category, err := r.categories.GetOrCreateByName(ctx, userID, name)
	if err != nil {
		return 0, err
	}
	return category.ID, nil
}

// buildProcessors binds one processor per rule, up front. Any bind failure
// aborts before a single transaction is handled.
func buildProcessors(executor ruleengine.ActionExecutor, rules []models.Rule) ([]*ruleengine.Processor, error) {
	processors := make([]*ruleengine.Processor, 0, len(rules))
	for _, r := range rules {
		p := ruleengine.NewProcessor(executor)
		if err := p.Bind(r); err != nil {
			return nil, fmt.Errorf("bind rule %d: %w", r.ID, err)
		}
		processors = append(processors, p)
	}
	return processors, nil
}
