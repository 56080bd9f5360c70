//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"riide-backend/internal/infra"
	"riide-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingReadStore struct {
	views map[uuid.UUID]*queries.BookingView
	err   error
}

func (f *fakeBookingReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	if f.err != nil {
		return nil, f.err
	}
	if view, ok := f.views[id]; ok {
		return view, nil
	}
	return nil, infra.WrapRepoErr("not found", errors.New("no rows"), infra.KindNotFound)
}

func (f *fakeBookingReadStore) ListByUser(_ context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	if f.err != nil {
		return nil, f.err
	}
	views := make([]*queries.BookingView, 0)
	for _, v := range f.views {
		if v.UserID == userID {
			views = append(views, v)
		}
	}
	return views, nil
}

func TestBookingQueriesGetByID(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	view := &queries.BookingView{ID: uuid.New(), UserID: ownerID}
	store := &fakeBookingReadStore{views: map[uuid.UUID]*queries.BookingView{view.ID: view}}
	q := queries.NewBookingQueries(store)

	t.Run("所有者は自分の予約を取得できる", func(t *testing.T) {
		got, err := q.GetByID(ctx, view.ID, ownerID)
		require.NoError(t, err)
		assert.Equal(t, view.ID, got.ID)
	})

	t.Run("他人の予約はErrBookingForbidden", func(t *testing.T) {
		_, err := q.GetByID(ctx, view.ID, uuid.New())
		assert.ErrorIs(t, err, queries.ErrBookingForbidden)
	})

	t.Run("存在しない予約はErrBookingNotFound", func(t *testing.T) {
		_, err := q.GetByID(ctx, uuid.New(), ownerID)
		assert.ErrorIs(t, err, queries.ErrBookingNotFound)
	})

	t.Run("システム取得は所有権を見ない", func(t *testing.T) {
		got, err := q.GetByIDSystem(ctx, view.ID)
		require.NoError(t, err)
		assert.Equal(t, view.ID, got.ID)
	})

	t.Run("ストア障害はErrBookingReads", func(t *testing.T) {
		broken := &fakeBookingReadStore{err: infra.WrapRepoErr("boom", errors.New("connection refused"))}
		brokenQ := queries.NewBookingQueries(broken)

		_, err := brokenQ.GetByID(ctx, view.ID, ownerID)
		assert.ErrorIs(t, err, queries.ErrBookingReads)
	})
}
