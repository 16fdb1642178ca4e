//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"facility-booking/internal/domain/recurrence"
	"facility-booking/internal/domain/reservation"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/testutil/builder"
	"facility-booking/internal/usecase/commands"
	"facility-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSeries(f *reservationFixture, owner shared.Actor, n int) []*reservation.Reservation {
	series := builder.NewReservationBuilder(f.venue.ResourceID).
		On(f.venue.Court1).
		At(at(18), 2*time.Hour).
		With(func(b *builder.ReservationBuilder) { b.UserID = owner.UserID }).
		Series(n)
	f.uow.Store.Seed(series...)
	return series
}

func statuses(f *reservationFixture, rs []*reservation.Reservation) []reservation.Status {
	out := make([]reservation.Status, len(rs))
	for i, r := range rs {
		out[i] = f.uow.Store.Get(r.ID()).Status()
	}
	return out
}

func TestApplyGroupAction(t *testing.T) {
	ctx := context.Background()
	pending, approved, cancelled := reservation.StatusPending, reservation.StatusApproved, reservation.StatusCancelled

	t.Run("approve cascades over pending occurrences", func(t *testing.T) {
		f := newFixture(builder.NewVenue())
		series := seedSeries(f, member(), 3)

		res, err := f.groups().ApplyGroupAction(ctx, admin(), *series[0].GroupID(), reservation.ActionApprove, "")

		require.NoError(t, err)
		assert.True(t, res.Atomic)
		assert.Len(t, res.Changed, 3)
		assert.Empty(t, res.Skipped)
		assert.Equal(t, []reservation.Status{approved, approved, approved}, statuses(f, series))
		assert.Len(t, f.publisher.Changes, 3)
	})

	t.Run("elapsed occurrences are skipped by default", func(t *testing.T) {
		f := newFixture(builder.NewVenue())
		series := seedSeries(f, member(), 3)
		f.clock = clockAt(at(18).Add(time.Hour))

		res, err := f.groups().ApplyGroupAction(ctx, admin(), *series[0].GroupID(), reservation.ActionCancel, "")

		require.NoError(t, err)
		require.Len(t, res.Skipped, 1)
		assert.Equal(t, recurrence.ReasonElapsed, res.Skipped[0].Reason)
		assert.Equal(t, series[0].ID(), res.Skipped[0].ReservationID)
		assert.Equal(t, []reservation.Status{pending, cancelled, cancelled}, statuses(f, series))
	})

	t.Run("include elapsed policy", func(t *testing.T) {
		f := newFixture(builder.NewVenue())
		f.policy.Elapsed = recurrence.IncludeElapsed
		series := seedSeries(f, member(), 3)
		f.clock = clockAt(at(18).Add(time.Hour))

		res, err := f.groups().ApplyGroupAction(ctx, admin(), *series[0].GroupID(), reservation.ActionCancel, "")

		require.NoError(t, err)
		assert.Empty(t, res.Skipped)
		assert.Equal(t, []reservation.Status{cancelled, cancelled, cancelled}, statuses(f, series))
	})

	t.Run("terminal occurrences are left alone", func(t *testing.T) {
		f := newFixture(builder.NewVenue())
		series := seedSeries(f, member(), 3)
		held := f.uow.Store.Get(series[1].ID())
		require.NoError(t, held.Apply(reservation.ActionCancel, reservation.Note{}, day))
		f.uow.Store.Seed(held)

		res, err := f.groups().ApplyGroupAction(ctx, admin(), *series[0].GroupID(), reservation.ActionReject, "")

		require.NoError(t, err)
		require.Len(t, res.Skipped, 1)
		assert.Equal(t, recurrence.ReasonStatus, res.Skipped[0].Reason)
		assert.Equal(t, []reservation.Status{reservation.StatusRejected, cancelled, reservation.StatusRejected}, statuses(f, series))
	})

	t.Run("blocked approval changes nothing", func(t *testing.T) {
		f := newFixture(builder.NewVenue())
		series := seedSeries(f, member(), 3)
		blocker := builder.NewReservationBuilder(f.venue.ResourceID).On(f.venue.HallA).
			At(series[1].Interval().Start(), time.Hour).
			With(func(b *builder.ReservationBuilder) { b.Status = approved }).Build()
		f.uow.Store.Seed(blocker)

		_, err := f.groups().ApplyGroupAction(ctx, admin(), *series[0].GroupID(), reservation.ActionApprove, "")

		var conflict *commands.ConflictError
		require.True(t, errors.As(err, &conflict))
		assert.Equal(t, blocker.ID(), conflict.Blockers[0].ReservationID)
		assert.Equal(t, []reservation.Status{pending, pending, pending}, statuses(f, series))
		assert.Empty(t, f.publisher.Changes)
	})

	t.Run("storage failure rolls back earlier changes", func(t *testing.T) {
		f := newFixture(builder.NewVenue())
		series := seedSeries(f, member(), 3)
		f.uow.Store.FailUpdateOn = 2

		_, err := f.groups().ApplyGroupAction(ctx, admin(), *series[0].GroupID(), reservation.ActionCancel, "")

		assert.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
		assert.Equal(t, []reservation.Status{pending, pending, pending}, statuses(f, series))
	})

	t.Run("owner may cancel own series only", func(t *testing.T) {
		f := newFixture(builder.NewVenue())
		owner := member()
		series := seedSeries(f, owner, 2)
		groupID := *series[0].GroupID()

		_, err := f.groups().ApplyGroupAction(ctx, member(), groupID, reservation.ActionCancel, "")
		assert.ErrorIs(t, err, errs.ErrForbidden)

		_, err = f.groups().ApplyGroupAction(ctx, owner, groupID, reservation.ActionApprove, "")
		assert.ErrorIs(t, err, errs.ErrForbidden)

		_, err = f.groups().ApplyGroupAction(ctx, owner, groupID, reservation.ActionCancel, "")
		require.NoError(t, err)
		assert.Equal(t, []reservation.Status{cancelled, cancelled}, statuses(f, series))
	})

	t.Run("unknown group", func(t *testing.T) {
		f := newFixture(builder.NewVenue())
		_, err := f.groups().ApplyGroupAction(ctx, admin(), uuid.New(), reservation.ActionCancel, "")
		assert.ErrorIs(t, err, errs.ErrGroupNotFound)
	})
}
