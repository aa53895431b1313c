package schedule_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/flowy/internal/flow"
	"github.com/MrJamesThe3rd/flowy/internal/schedule"
	"github.com/MrJamesThe3rd/flowy/internal/scope"
)

func salarySchedule(owner scope.Scope, nextRun time.Time) *schedule.Schedule {
	return &schedule.Schedule{
		ID:          uuid.New(),
		Owner:       owner,
		Frequency:   flow.FrequencyMonthly,
		NextRunDate: nextRun,
		IsActive:    true,
		Template: flow.Template{
			Type:     flow.TypeIncome,
			Amount:   decimal.RequireFromString("3000"),
			Currency: "EUR",
			Category: "salary",
		},
	}
}

func TestEngine_ProcessDue(t *testing.T) {
	owner := scope.Personal(uuid.New())
	today := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

	t.Run("MonthlySalaryAdvancesOnePeriod", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := schedule.NewMockRepository(ctrl)
		flows := schedule.NewMockFlowCreator(ctrl)

		sched := salarySchedule(owner, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
		createdID := uuid.New()

		repo.EXPECT().
			ListDue(gomock.Any(), owner, today).
			Return([]*schedule.Schedule{sched}, nil)
		// The generated flow is dated at the run date, not today.
		flows.EXPECT().
			CreateFromTemplate(gomock.Any(), owner, sched.Template,
				time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), sched.ID).
			Return(&flow.Flow{ID: createdID}, nil)
		repo.EXPECT().
			Advance(gomock.Any(), sched.ID,
				time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)).
			Return(nil)

		result, err := schedule.NewEngine(repo, flows).ProcessDue(context.Background(), owner, today)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Processed)
		assert.Equal(t, []uuid.UUID{createdID}, result.CreatedFlows)
		assert.Empty(t, result.Errors)
	})

	t.Run("OneFailureDoesNotStopTheBatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := schedule.NewMockRepository(ctrl)
		flows := schedule.NewMockFlowCreator(ctrl)

		first := salarySchedule(owner, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
		second := salarySchedule(owner, time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC))
		third := salarySchedule(owner, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))

		repo.EXPECT().
			ListDue(gomock.Any(), owner, today).
			Return([]*schedule.Schedule{first, second, third}, nil)

		flows.EXPECT().
			CreateFromTemplate(gomock.Any(), owner, gomock.Any(), gomock.Any(), first.ID).
			Return(&flow.Flow{ID: uuid.New()}, nil)
		flows.EXPECT().
			CreateFromTemplate(gomock.Any(), owner, gomock.Any(), gomock.Any(), second.ID).
			Return(nil, errors.New("asset gone"))
		flows.EXPECT().
			CreateFromTemplate(gomock.Any(), owner, gomock.Any(), gomock.Any(), third.ID).
			Return(&flow.Flow{ID: uuid.New()}, nil)

		// Only the succeeding schedules advance.
		repo.EXPECT().
			Advance(gomock.Any(), first.ID, gomock.Any(), gomock.Any()).
			Return(nil)
		repo.EXPECT().
			Advance(gomock.Any(), third.ID, gomock.Any(), gomock.Any()).
			Return(nil)

		result, err := schedule.NewEngine(repo, flows).ProcessDue(context.Background(), owner, today)

		require.NoError(t, err)
		assert.Equal(t, 2, result.Processed)
		assert.Len(t, result.CreatedFlows, 2)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, second.ID, result.Errors[0].ScheduleID)
	})

	t.Run("AdvanceFailureSurfacesAsItemError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := schedule.NewMockRepository(ctrl)
		flows := schedule.NewMockFlowCreator(ctrl)

		sched := salarySchedule(owner, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))

		repo.EXPECT().
			ListDue(gomock.Any(), owner, today).
			Return([]*schedule.Schedule{sched}, nil)
		flows.EXPECT().
			CreateFromTemplate(gomock.Any(), owner, gomock.Any(), gomock.Any(), sched.ID).
			Return(&flow.Flow{ID: uuid.New()}, nil)
		repo.EXPECT().
			Advance(gomock.Any(), sched.ID, gomock.Any(), gomock.Any()).
			Return(errors.New("db error"))

		result, err := schedule.NewEngine(repo, flows).ProcessDue(context.Background(), owner, today)

		require.NoError(t, err)
		assert.Zero(t, result.Processed)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0].Error, "not advanced")
	})

	t.Run("NothingDue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := schedule.NewMockRepository(ctrl)
		flows := schedule.NewMockFlowCreator(ctrl)

		repo.EXPECT().
			ListDue(gomock.Any(), owner, today).
			Return(nil, nil)

		result, err := schedule.NewEngine(repo, flows).ProcessDue(context.Background(), owner, today)

		require.NoError(t, err)
		assert.Zero(t, result.Processed)
		assert.Empty(t, result.Errors)
	})

	t.Run("ListError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := schedule.NewMockRepository(ctrl)
		flows := schedule.NewMockFlowCreator(ctrl)

		repo.EXPECT().
			ListDue(gomock.Any(), owner, today).
			Return(nil, errors.New("db error"))

		result, err := schedule.NewEngine(repo, flows).ProcessDue(context.Background(), owner, today)

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

// A schedule that fell several periods behind converges one period per
// invocation without skipping or compounding.
func TestEngine_ProcessDueCatchesUpOnePeriodAtATime(t *testing.T) {
	owner := scope.Personal(uuid.New())
	today := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := schedule.NewMockRepository(ctrl)
	flows := schedule.NewMockFlowCreator(ctrl)
	engine := schedule.NewEngine(repo, flows)

	sched := salarySchedule(owner, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))

	runDates := []time.Time{
		time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	}

	for _, runDate := range runDates {
		repo.EXPECT().
			ListDue(gomock.Any(), owner, today).
			Return([]*schedule.Schedule{sched}, nil)
		flows.EXPECT().
			CreateFromTemplate(gomock.Any(), owner, gomock.Any(), runDate, sched.ID).
			Return(&flow.Flow{ID: uuid.New()}, nil)
		repo.EXPECT().
			Advance(gomock.Any(), sched.ID, runDate, sched.Frequency.Next(runDate)).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _, nextRun time.Time) error {
				sched.NextRunDate = nextRun
				return nil
			})

		result, err := engine.ProcessDue(context.Background(), owner, today)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Processed)
	}

	// Caught up: next run is past today.
	assert.True(t, sched.NextRunDate.After(today))
}

func TestSchedule_Due(t *testing.T) {
	owner := scope.Personal(uuid.New())
	today := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

	sched := salarySchedule(owner, today.AddDate(0, 0, -1))
	assert.True(t, sched.Due(today))

	sched.NextRunDate = today
	assert.True(t, sched.Due(today))

	sched.NextRunDate = today.AddDate(0, 0, 1)
	assert.False(t, sched.Due(today))

	sched.NextRunDate = today
	sched.IsActive = false
	assert.False(t, sched.Due(today))
}
