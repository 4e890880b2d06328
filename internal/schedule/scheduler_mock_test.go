package schedule_test

import (
	"testing"
	"time"

	"github.com/rxtech-lab/argo-market-strategy/internal/logger"
	"github.com/rxtech-lab/argo-market-strategy/internal/schedule"
	"github.com/rxtech-lab/argo-market-strategy/mocks"
	"github.com/rxtech-lab/argo-market-strategy/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSchedulerResolvesThroughInjectedClock(t *testing.T) {
	ctrl := gomock.NewController(t)
	fakeClock := mocks.NewMockClock(ctrl)

	start := time.Date(2024, 7, 1, 13, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	fakeClock.EXPECT().ResolveTimeOn("9:00am", gomock.Any()).Return(start, nil).AnyTimes()
	fakeClock.EXPECT().ResolveTimeOn("10:00am", gomock.Any()).Return(end, nil).AnyTimes()
	fakeClock.EXPECT().ResolveTimeOn("bogus", gomock.Any()).
		Return(time.Time{}, errors.New(errors.ErrCodeInvalidTimeToken, "invalid time token")).AnyTimes()

	handler := mocks.NewMockHandler(ctrl)
	entries := []schedule.Entry{
		{Time: "bogus", Name: "broken", Handler: handler},
		{Time: "9:00am-10:00am", Name: "morning", Handler: handler},
	}

	scheduler := schedule.NewScheduler(entries, fakeClock, logger.NewNopLogger())

	match := scheduler.Select(start.Add(30 * time.Minute))
	require.True(t, match.IsSome())
	assert.Equal(t, "morning", match.Unwrap().Name)

	assert.True(t, scheduler.Select(end).IsNone())
}
