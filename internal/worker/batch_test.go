package worker_test

import (
	"context"
	"domainfinder/internal/pipeline"
	mockpipeline "domainfinder/internal/pipeline/mock"
	"domainfinder/internal/worker"
	"domainfinder/pkg/domain"
	"domainfinder/pkg/logger"
	"domainfinder/pkg/serrors"
	"errors"
	"testing"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeJob(id int64, args worker.BatchArgs) *river.Job[worker.BatchArgs] {
	return &river.Job[worker.BatchArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   args,
	}
}

func TestBatchWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mockpipeline.NewMockRunner(ctrl)
	w := worker.NewBatchWorker(runner, time.Minute)

	runner.EXPECT().Run(gomock.Any(), pipeline.Request{
		Limit: 25,
		Sort:  domain.SortCriteria{By: "age", Order: "desc"},
	}).Return(&pipeline.Summary{RunID: "r-1", Processed: 25}, nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1, worker.BatchArgs{Limit: 25, SortBy: "age", SortOrder: "desc"})))
}

func TestBatchWorker_Work_OverlapCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mockpipeline.NewMockRunner(ctrl)
	w := worker.NewBatchWorker(runner, time.Minute)

	runner.EXPECT().Run(gomock.Any(), pipeline.Request{}).
		Return(nil, serrors.With(serrors.ErrConflict, "a batch is already running"))

	err := w.Work(context.Background(), makeJob(2, worker.BatchArgs{}))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestBatchWorker_Work_GenericErrorWrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mockpipeline.NewMockRunner(ctrl)
	w := worker.NewBatchWorker(runner, time.Minute)

	runErr := serrors.With(serrors.ErrUnavailable, "listing down")
	runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil, runErr)

	err := w.Work(context.Background(), makeJob(3, worker.BatchArgs{}))
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr, "did not expect JobCancelError")
	require.False(t, errors.Is(err, serrors.ErrConflict))
}

func TestBatchWorker_Timeout(t *testing.T) {
	w := worker.NewBatchWorker(nil, 30*time.Minute)
	require.Equal(t, 31*time.Minute, w.Timeout(makeJob(4, worker.BatchArgs{})))

	unbounded := worker.NewBatchWorker(nil, 0)
	require.Equal(t, time.Duration(-1), unbounded.Timeout(makeJob(5, worker.BatchArgs{})))
}

func TestBatchArgs_InsertOpts(t *testing.T) {
	args := worker.BatchArgs{}
	require.Equal(t, "domain_batch", args.Kind())

	opts := args.InsertOpts()
	require.Equal(t, 1, opts.MaxAttempts)
	require.Contains(t, opts.UniqueOpts.ByState, rivertype.JobStateRunning)
	require.NotContains(t, opts.UniqueOpts.ByState, rivertype.JobStateCompleted)
}
