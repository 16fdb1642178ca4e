//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"facility-booking/internal/domain/pricing"
	"facility-booking/internal/domain/recurrence"
	"facility-booking/internal/domain/reservation"
	"facility-booking/internal/domain/resource"
	"facility-booking/internal/pkg/clock"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/testutil/builder"
	"facility-booking/internal/testutil/fakes"
	"facility-booking/internal/usecase/commands"
	"facility-booking/internal/usecase/readmodel"
	"facility-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var day = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

func at(h int) time.Time { return day.Add(time.Duration(h) * time.Hour) }

type reservationFixture struct {
	venue     *builder.Venue
	uow       *fakes.UnitOfWork
	catalog   *fakes.Catalog
	publisher *fakes.Publisher
	clock     *clock.MockClock
	policy    shared.BookingPolicy
}

func newFixture(venue *builder.Venue, entries ...*readmodel.ResourceRM) *reservationFixture {
	if len(entries) == 0 {
		entries = []*readmodel.ResourceRM{venue.BuildReadModel()}
	}
	return &reservationFixture{
		venue:     venue,
		uow:       fakes.NewUnitOfWork(),
		catalog:   fakes.NewCatalog(entries...),
		publisher: &fakes.Publisher{},
		clock:     clock.NewMockClock(day.Add(-48 * time.Hour)),
		policy:    shared.BookingPolicy{Location: time.UTC, MaxOccurrences: 52, Elapsed: recurrence.SkipElapsed},
	}
}

func (f *reservationFixture) reservations() commands.ReservationCommands {
	return commands.NewReservationUseCase(f.uow, f.catalog, f.publisher, f.policy, f.clock, discardLogger())
}

func (f *reservationFixture) groups() commands.GroupCommands {
	return commands.NewGroupUseCase(f.uow, f.catalog, f.publisher, f.policy, f.clock, discardLogger())
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func member() shared.Actor {
	return shared.Actor{UserID: uuid.New(), Profile: pricing.RoleProfile{SystemRole: pricing.SystemRoleUser}}
}

func admin() shared.Actor {
	return shared.Actor{UserID: uuid.New(), Profile: pricing.RoleProfile{IsAdmin: true, SystemRole: pricing.SystemRoleAdmin}}
}

type CreateReservationSuite struct {
	suite.Suite
	f   *reservationFixture
	ctx context.Context
}

func (s *CreateReservationSuite) SetupTest() {
	s.f = newFixture(builder.NewVenue().WithHourlyDefault())
	s.ctx = context.Background()
}

func (s *CreateReservationSuite) input(unitID uuid.UUID, from, to int) commands.CreateReservationInput {
	return commands.CreateReservationInput{
		ResourceID: s.f.venue.ResourceID,
		UnitID:     &unitID,
		Start:      at(from),
		End:        at(to),
	}
}

func (s *CreateReservationSuite) TestSingleBookingIsPendingAndPriced() {
	in := s.input(s.f.venue.Court1, 10, 12)
	in.Note = "league match"

	res, err := s.f.reservations().CreateReservation(s.ctx, member(), in)

	s.Require().NoError(err)
	s.Require().Len(res.Reservations, 1)
	rm := res.Reservations[0]
	s.Equal("pending", rm.Status)
	s.Equal("Court 1", rm.UnitName)
	s.Equal("league match", rm.Note)
	s.Nil(res.GroupID)
	s.Equal("60", rm.Price.String())
	s.Equal("60", res.Total.String())
	s.Equal(pricing.ModelHourly, res.Pricing.Model)
	s.Equal(1, s.f.uow.Store.Len())
}

func (s *CreateReservationSuite) TestParentBookingBlocksChild() {
	hall := builder.NewReservationBuilder(s.f.venue.ResourceID).On(s.f.venue.HallA).At(at(10), 2*time.Hour).Build()
	s.f.uow.Store.Seed(hall)

	_, err := s.f.reservations().CreateReservation(s.ctx, member(), s.input(s.f.venue.Court1, 11, 12))

	s.Require().Error(err)
	s.True(errs.Is(err, errs.ErrReservationConflict))
	var conflict *commands.ConflictError
	s.Require().True(errors.As(err, &conflict))
	s.Require().Len(conflict.Blockers, 1)
	s.Equal(hall.ID(), conflict.Blockers[0].ReservationID)
	s.Equal("Hall A", conflict.Blockers[0].BlockingUnitName)
	s.Equal(resource.RelationAncestor, conflict.Blockers[0].Relation)
	s.Equal(1, s.f.uow.Store.Len())
}

func (s *CreateReservationSuite) TestSiblingUnitsDoNotBlock() {
	s.f.uow.Store.Seed(builder.NewReservationBuilder(s.f.venue.ResourceID).On(s.f.venue.Court1).At(at(10), 2*time.Hour).Build())

	_, err := s.f.reservations().CreateReservation(s.ctx, member(), s.input(s.f.venue.Court2, 10, 12))

	s.NoError(err)
	s.Equal(2, s.f.uow.Store.Len())
}

func (s *CreateReservationSuite) TestRejectedReservationFreesSlot() {
	s.f.uow.Store.Seed(builder.NewReservationBuilder(s.f.venue.ResourceID).On(s.f.venue.Court1).At(at(10), 2*time.Hour).
		With(func(b *builder.ReservationBuilder) { b.Status = reservation.StatusRejected }).Build())

	_, err := s.f.reservations().CreateReservation(s.ctx, member(), s.input(s.f.venue.Court1, 10, 12))

	s.NoError(err)
}

func (s *CreateReservationSuite) TestWholeUnitBookingForbidden() {
	rm := s.f.venue.BuildReadModel()
	rm.Units[0].AllowsWholeUnitBooking = false
	f := newFixture(s.f.venue, rm)

	_, err := f.reservations().CreateReservation(s.ctx, member(), s.input(s.f.venue.HallA, 10, 12))

	s.ErrorIs(err, errs.ErrWholeUnitBookingForbidden)
	s.Zero(f.uow.WithinCalls)
}

func (s *CreateReservationSuite) TestInputErrors() {
	uc := s.f.reservations()

	_, err := uc.CreateReservation(s.ctx, member(), s.input(s.f.venue.Court1, 12, 10))
	s.ErrorIs(err, errs.ErrInvalidInterval)

	_, err = uc.CreateReservation(s.ctx, member(), s.input(uuid.New(), 10, 12))
	s.ErrorIs(err, errs.ErrUnknownUnit)

	in := s.input(s.f.venue.Court1, 10, 12)
	in.ResourceID = uuid.New()
	_, err = uc.CreateReservation(s.ctx, member(), in)
	s.ErrorIs(err, errs.ErrResourceNotFound)

	in = s.input(s.f.venue.Court1, 10, 12)
	in.Recurrence = &commands.RecurrenceInput{Pattern: "daily", Until: at(24 * 30)}
	_, err = uc.CreateReservation(s.ctx, member(), in)
	s.ErrorIs(err, recurrence.ErrInvalidPattern)

	s.Zero(s.f.uow.Store.Len())
}

func (s *CreateReservationSuite) TestWholeResourceRequest() {
	s.f.uow.Store.Seed(builder.NewReservationBuilder(s.f.venue.ResourceID).On(s.f.venue.HallB).At(at(10), time.Hour).Build())

	in := s.input(s.f.venue.Court1, 9, 11)
	in.UnitID = nil
	_, err := s.f.reservations().CreateReservation(s.ctx, member(), in)

	var conflict *commands.ConflictError
	s.Require().True(errors.As(err, &conflict))
	s.Equal(resource.RelationWhole, conflict.Blockers[0].Relation)
}

func (s *CreateReservationSuite) TestWeeklySeriesSharesGroup() {
	in := s.input(s.f.venue.Court1, 18, 20)
	in.Recurrence = &commands.RecurrenceInput{Pattern: "weekly", Until: day.AddDate(0, 0, 21)}

	res, err := s.f.reservations().CreateReservation(s.ctx, member(), in)

	s.Require().NoError(err)
	s.Require().NotNil(res.GroupID)
	s.Require().Len(res.Reservations, 4)
	for i, rm := range res.Reservations {
		s.Equal(res.GroupID, rm.GroupID)
		s.True(rm.IsRecurring)
		s.Equal(at(18).AddDate(0, 0, 7*i), rm.StartTime)
	}
	s.Equal("240", res.Total.String())
	s.Equal(4, s.f.uow.Store.Len())
}

func (s *CreateReservationSuite) TestSeriesIsAllOrNothing() {
	third := at(18).AddDate(0, 0, 14)
	blocker := builder.NewReservationBuilder(s.f.venue.ResourceID).On(s.f.venue.HallA).At(third, time.Hour).Build()
	s.f.uow.Store.Seed(blocker)

	in := s.input(s.f.venue.Court1, 18, 20)
	in.Recurrence = &commands.RecurrenceInput{Pattern: "weekly", Until: day.AddDate(0, 0, 21)}
	_, err := s.f.reservations().CreateReservation(s.ctx, member(), in)

	var conflict *commands.ConflictError
	s.Require().True(errors.As(err, &conflict))
	s.Equal(third, conflict.Interval.Start())
	s.Equal(1, s.f.uow.Store.Len())
}

func (s *CreateReservationSuite) TestOverlappingOccurrencesOfOneSeriesConflict() {
	// ten-day bookings repeated weekly overlap each other
	in := commands.CreateReservationInput{
		ResourceID: s.f.venue.ResourceID,
		UnitID:     &s.f.venue.Court1,
		Start:      at(0),
		End:        at(24 * 10),
		Recurrence: &commands.RecurrenceInput{Pattern: "weekly", Until: day.AddDate(0, 0, 7)},
	}

	_, err := s.f.reservations().CreateReservation(s.ctx, member(), in)

	s.ErrorIs(err, errs.ErrReservationConflict)
	s.Zero(s.f.uow.Store.Len())
}

func (s *CreateReservationSuite) TestAmbiguousDefaultRule() {
	f := newFixture(builder.NewVenue().WithHourlyDefault().WithHourlyDefault())

	_, err := f.reservations().CreateReservation(s.ctx, member(), commands.CreateReservationInput{
		ResourceID: f.venue.ResourceID, UnitID: &f.venue.Court1, Start: at(10), End: at(11),
	})

	s.ErrorIs(err, errs.ErrAmbiguousDefaultRule)
}

func (s *CreateReservationSuite) TestMissingRateIsFreeWithReason() {
	v := builder.NewVenue().With(func(v *builder.Venue) {
		v.Rules = []readmodel.RuleRM{{ID: uuid.New(), Model: "daily"}}
	})
	f := newFixture(v)

	res, err := f.reservations().CreateReservation(s.ctx, member(), commands.CreateReservationInput{
		ResourceID: v.ResourceID, UnitID: &v.Court1, Start: at(10), End: at(11),
	})

	s.Require().NoError(err)
	s.True(res.Pricing.IsFree)
	s.Contains(res.Pricing.Reason, "daily")
	s.True(res.Total.IsZero())
}

func (s *CreateReservationSuite) TestAdminRulePrecedence() {
	f := newFixture(builder.NewVenue().WithHourlyDefault().WithAdminFree())

	res, err := f.reservations().CreateReservation(s.ctx, admin(), commands.CreateReservationInput{
		ResourceID: f.venue.ResourceID, UnitID: &f.venue.Court1, Start: at(10), End: at(12),
	})

	s.Require().NoError(err)
	s.True(res.Total.IsZero())
	s.Equal(pricing.ModelFree, res.Pricing.Model)
}

func TestCreateReservationSuite(t *testing.T) {
	suite.Run(t, new(CreateReservationSuite))
}

func TestChangeStatus(t *testing.T) {
	ctx := context.Background()

	seed := func(f *reservationFixture, mutate func(*builder.ReservationBuilder)) *reservation.Reservation {
		r := builder.NewReservationBuilder(f.venue.ResourceID).On(f.venue.Court1).At(at(10), time.Hour).With(mutate).Build()
		f.uow.Store.Seed(r)
		return r
	}
	noop := func(*builder.ReservationBuilder) {}

	t.Run("admin approves pending", func(t *testing.T) {
		f := newFixture(builder.NewVenue())
		r := seed(f, noop)

		res, err := f.reservations().ChangeStatus(ctx, admin(), r.ID(), reservation.ActionApprove, "see you there")

		require.NoError(t, err)
		assert.Equal(t, reservation.StatusPending, res.From)
		assert.Equal(t, "approved", res.Reservation.Status)
		assert.Equal(t, "see you there", res.Reservation.Note)
		assert.Equal(t, reservation.StatusApproved, f.uow.Store.Get(r.ID()).Status())
		require.Len(t, f.publisher.Changes, 1)
		assert.Equal(t, reservation.StatusApproved, f.publisher.Changes[0].To)
	})

	t.Run("only admins approve or reject", func(t *testing.T) {
		f := newFixture(builder.NewVenue())
		r := seed(f, noop)

		for _, a := range []reservation.Action{reservation.ActionApprove, reservation.ActionReject} {
			_, err := f.reservations().ChangeStatus(ctx, member(), r.ID(), a, "")
			assert.ErrorIs(t, err, errs.ErrForbidden)
		}
		assert.Equal(t, reservation.StatusPending, f.uow.Store.Get(r.ID()).Status())
	})

	t.Run("owner cancels, stranger cannot", func(t *testing.T) {
		f := newFixture(builder.NewVenue())
		owner := member()
		r := seed(f, func(b *builder.ReservationBuilder) { b.UserID = owner.UserID })

		_, err := f.reservations().ChangeStatus(ctx, member(), r.ID(), reservation.ActionCancel, "")
		assert.ErrorIs(t, err, errs.ErrForbidden)

		res, err := f.reservations().ChangeStatus(ctx, owner, r.ID(), reservation.ActionCancel, "")
		require.NoError(t, err)
		assert.Equal(t, "cancelled", res.Reservation.Status)
	})

	t.Run("invalid transition", func(t *testing.T) {
		f := newFixture(builder.NewVenue())
		r := seed(f, func(b *builder.ReservationBuilder) { b.Status = reservation.StatusRejected })

		_, err := f.reservations().ChangeStatus(ctx, admin(), r.ID(), reservation.ActionApprove, "")
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Empty(t, f.publisher.Changes)
	})

	t.Run("approval re-checks conflicts", func(t *testing.T) {
		f := newFixture(builder.NewVenue())
		r := seed(f, noop)
		whole := builder.NewReservationBuilder(f.venue.ResourceID).At(at(10), 30*time.Minute).
			With(func(b *builder.ReservationBuilder) { b.Status = reservation.StatusApproved }).Build()
		f.uow.Store.Seed(whole)

		_, err := f.reservations().ChangeStatus(ctx, admin(), r.ID(), reservation.ActionApprove, "")

		var conflict *commands.ConflictError
		require.True(t, errors.As(err, &conflict))
		assert.Equal(t, whole.ID(), conflict.Blockers[0].ReservationID)
		assert.Equal(t, reservation.StatusPending, f.uow.Store.Get(r.ID()).Status())
	})

	t.Run("publisher failure does not fail the change", func(t *testing.T) {
		f := newFixture(builder.NewVenue())
		f.publisher.Err = errs.New("redis down")
		r := seed(f, noop)

		_, err := f.reservations().ChangeStatus(ctx, admin(), r.ID(), reservation.ActionReject, "")
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusRejected, f.uow.Store.Get(r.ID()).Status())
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(builder.NewVenue())
		_, err := f.reservations().ChangeStatus(ctx, admin(), uuid.New(), reservation.ActionCancel, "")
		assert.ErrorIs(t, err, errs.ErrReservationNotFound)
	})
}

func clockAt(t time.Time) *clock.MockClock {
	return clock.NewMockClock(t)
}
