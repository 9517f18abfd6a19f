package job

import (
	"context"
	"errors"

	"github.com/mconway/firefly-iii/internal/common/flag"
	"github.com/mconway/firefly-iii/internal/common/log"
	"github.com/mconway/firefly-iii/internal/config"
	v1rulebatch "github.com/mconway/firefly-iii/internal/deliveries/job/v1/rulebatch"
	"github.com/mconway/firefly-iii/internal/services"

	"github.com/google/uuid"
)

type JobRoutes map[string]map[string]func(ctx context.Context, flag flag.Job) error

type Job struct {
	Routes JobRoutes
}

func New(cfg config.Config, srv *services.Services) *Job {
	v1group := "v1"

	jobRoutes := JobRoutes{
		v1group: v1rulebatch.Routes(srv.RuleBatch),
		// add other version routes
	}

	return &Job{jobRoutes}
}

func (j *Job) Start(ctx context.Context, flag flag.Job) {
	if fn, ok := j.Routes[flag.Version][flag.JobName]; ok {
		var err error
		ctx = log.ContextWithCorrelationID(ctx, uuid.NewString())

		defer func() {
			log.LogJob(ctx, flag.JobName, flag.Version, err)
		}()

		if err = fn(ctx, flag); err != nil {
			return
		}
	} else {
		log.LogJob(ctx, flag.JobName, flag.Version, errors.New("invalid version or job name"))
	}
}
