//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"facility-booking/internal/infra"
	"facility-booking/internal/infra/postgres"
	"facility-booking/internal/infra/readstore"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/pkg/pgconv"
	readstoremock "facility-booking/internal/testutil/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func viewRow(userID uuid.UUID, start time.Time, unitName string) postgres.ReservationViewRow {
	row := postgres.ReservationViewRow{
		Reservations: postgres.Reservations{
			ID:         uuid.New(),
			ResourceID: uuid.New(),
			UserID:     userID,
			StartTime:  pgconv.TimeToPgtype(start),
			EndTime:    pgconv.TimeToPgtype(start.Add(time.Hour)),
			Status:     "pending",
			Price:      pgconv.DecimalToNumeric(decimal.RequireFromString("30.00")),
			CreatedAt:  pgconv.TimeToPgtype(start.Add(-time.Hour)),
			UpdatedAt:  pgconv.TimeToPgtype(start.Add(-time.Hour)),
		},
	}
	if unitName != "" {
		row.UnitID = pgconv.UUIDToPgtype(uuid.New())
		row.UnitName = pgtype.Text{String: unitName, Valid: true}
	}
	return row
}

func TestReservationReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	row := viewRow(uuid.New(), time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC), "Court 1")

	testCases := []struct {
		name       string
		setupMock  func(*readstoremock.MockReservationViewQueries)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: reservation found",
			setupMock: func(mock *readstoremock.MockReservationViewQueries) {
				mock.EXPECT().GetReservationView(ctx, gomock.Any(), row.ID).Return(row, nil)
			},
		},
		{
			name: "error: reservation not found",
			setupMock: func(mock *readstoremock.MockReservationViewQueries) {
				mock.EXPECT().GetReservationView(ctx, gomock.Any(), row.ID).Return(postgres.ReservationViewRow{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockReservationViewQueries) {
				mock.EXPECT().GetReservationView(ctx, gomock.Any(), row.ID).Return(postgres.ReservationViewRow{}, errDBConnectionLost)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
			store := readstore.NewReservationReadStore(mockQueries, &mockDBTX{})
			tc.setupMock(mockQueries)

			result, err := store.FindByID(ctx, row.ID)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, row.ID, result.ID)
			assert.Equal(t, "Court 1", result.UnitName)
			assert.Equal(t, "30", result.Price.String())
			assert.Equal(t, "pending", result.Status)
		})
	}

	t.Run("not found maps to the domain sentinel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
		store := readstore.NewReservationReadStore(mockQueries, &mockDBTX{})
		mockQueries.EXPECT().GetReservationView(ctx, gomock.Any(), row.ID).Return(postgres.ReservationViewRow{}, pgx.ErrNoRows)

		_, err := store.FindByID(ctx, row.ID)
		assert.True(t, errs.Is(err, errs.ErrReservationNotFound))
	})
}

func TestReservationReadStore_ListByUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	start := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("first page has no keyset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
		store := readstore.NewReservationReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListReservationViewsByUser(ctx, gomock.Any(), postgres.ListReservationViewsByUserParams{
			UserID: userID,
			Limit:  21,
		}).Return([]postgres.ReservationViewRow{viewRow(userID, start, ""), viewRow(userID, start.Add(time.Hour), "Hall")}, nil)

		rows, err := store.ListByUser(ctx, userID, nil, uuid.Nil, 21)

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Nil(t, rows[0].UnitID)
		assert.Empty(t, rows[0].UnitName)
		assert.Equal(t, "Hall", rows[1].UnitName)
	})

	t.Run("later page passes the keyset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
		store := readstore.NewReservationReadStore(mockQueries, &mockDBTX{})
		afterID := uuid.New()

		mockQueries.EXPECT().ListReservationViewsByUser(ctx, gomock.Any(), postgres.ListReservationViewsByUserParams{
			UserID:     userID,
			AfterStart: pgconv.TimeToPgtype(start),
			AfterID:    afterID,
			Limit:      5,
		}).Return(nil, nil)

		rows, err := store.ListByUser(ctx, userID, &start, afterID, 5)

		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
		store := readstore.NewReservationReadStore(mockQueries, &mockDBTX{})
		mockQueries.EXPECT().ListReservationViewsByUser(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		_, err := store.ListByUser(ctx, userID, nil, uuid.Nil, 5)
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}
