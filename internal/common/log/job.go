package log

import (
	"context"

	"go.uber.org/zap"
)

func LogJob(ctx context.Context, jobName, version string, err error) {
	field := []zap.Field{
		zap.String("job-name", jobName),
		zap.String("version", version),
	}
	if err != nil {
		field = append(field, zap.String("status", "fail"), zap.Error(err))
		Warn(ctx, "[JOB]", field...)
	} else {
		field = append(field, zap.String("status", "success"))
		Info(ctx, "[JOB]", field...)
	}
}
