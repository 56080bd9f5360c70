//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"riide-backend/internal/domain/booking"
	"riide-backend/internal/domain/pricing"
	"riide-backend/internal/domain/user"
	"riide-backend/internal/infra"
	"riide-backend/internal/infra/db"
	"riide-backend/internal/pkg/clock"
	"riide-backend/internal/usecase/commands"
	"riide-backend/internal/usecase/queries"
	"riide-backend/internal/usecase/shared"
	"riide-backend/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

type fakeRateStore struct {
	rule *pricing.RateRule
}

func (f *fakeRateStore) FindByVehicleType(_ context.Context, vehicleType string) (*pricing.RateRule, error) {
	if f.rule == nil || vehicleType != f.rule.VehicleType {
		return nil, infra.WrapRepoErr("not found", errors.New("no rows"), infra.KindNotFound)
	}
	return f.rule, nil
}

type fakeExtrasStore struct {
	catalog map[string]pricing.Extra
}

func (f *fakeExtrasStore) Catalog(context.Context) (map[string]pricing.Extra, error) {
	return f.catalog, nil
}

type fakePromoStore struct {
	snaps map[string]*shared.PromoSnapshot
}

func (f *fakePromoStore) FindByCode(_ context.Context, code string) (*shared.PromoSnapshot, error) {
	if snap, ok := f.snaps[code]; ok {
		return snap, nil
	}
	return nil, infra.WrapRepoErr("not found", errors.New("no rows"), infra.KindNotFound)
}

// memStore holds committed state behind a fake unit of work. The store mutex
// is held for a whole transaction, so commits are serialized the same way the
// database serializes the conditional counter update.
type memStore struct {
	mu         sync.Mutex
	usageLimit int
	usedCount  int
	bookings   map[uuid.UUID]*booking.Booking
}

func newMemStore(limit, used int) *memStore {
	return &memStore{
		usageLimit: limit,
		usedCount:  used,
		bookings:   make(map[uuid.UUID]*booking.Booking),
	}
}

type txState struct {
	store      *memStore
	created    []*booking.Booking
	increments int
}

type fakeUoW struct {
	store         *memStore
	userCreateErr error
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	state := &txState{store: u.store}
	if err := fn(ctx, &fakeTx{state: state, userCreateErr: u.userCreateErr}); err != nil {
		return err
	}

	for _, b := range state.created {
		u.store.bookings[b.ID()] = b
	}
	u.store.usedCount += state.increments
	return nil
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

type fakeTx struct {
	state         *txState
	userCreateErr error
}

func (t *fakeTx) Bookings() shared.BookingRepository  { return &fakeBookingRepo{state: t.state} }
func (t *fakeTx) Promos() shared.PromoUsageRepository { return &fakePromoRepo{state: t.state} }
func (t *fakeTx) Users() shared.UserRepository        { return &fakeUserRepo{err: t.userCreateErr} }
func (t *fakeTx) DB() db.DBTX                         { return nil }

type fakeBookingRepo struct {
	state *txState
}

func (r *fakeBookingRepo) Create(_ context.Context, _ db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	r.state.created = append(r.state.created, b)
	return b.ID(), nil
}

type fakePromoRepo struct {
	state *txState
}

func (r *fakePromoRepo) TryIncrementUsage(_ context.Context, _ db.DBTX, _ uuid.UUID) (bool, error) {
	s := r.state
	if s.store.usedCount+s.increments >= s.store.usageLimit {
		return false, nil
	}
	s.increments++
	return true, nil
}

type fakeUserRepo struct {
	err error
}

func (r *fakeUserRepo) Create(_ context.Context, _ db.DBTX, u *user.User) (uuid.UUID, error) {
	if r.err != nil {
		return uuid.Nil, r.err
	}
	return u.ID(), nil
}

// storeBackedQueries reads committed bookings straight out of the mem store.
type storeBackedQueries struct {
	store *memStore
}

func (q *storeBackedQueries) GetByID(ctx context.Context, id, _ uuid.UUID) (*queries.BookingView, error) {
	return q.GetByIDSystem(ctx, id)
}

func (q *storeBackedQueries) GetByIDSystem(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()

	b, ok := q.store.bookings[id]
	if !ok {
		return nil, queries.ErrBookingNotFound
	}
	return toView(b), nil
}

func (q *storeBackedQueries) ListByUser(_ context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()

	views := make([]*queries.BookingView, 0)
	for _, b := range q.store.bookings {
		if b.IsOwnedBy(userID) {
			views = append(views, toView(b))
		}
	}
	return views, nil
}

func toView(b *booking.Booking) *queries.BookingView {
	quote := b.Quote()
	details := b.Details()
	return &queries.BookingView{
		ID:              b.ID(),
		UserID:          b.UserID(),
		ServiceType:     details.ServiceType.String(),
		VehicleType:     details.VehicleType,
		PickupLocation:  details.PickupLocation,
		Passengers:      details.Passengers,
		PaymentMethod:   details.PaymentMethod.String(),
		PromoCode:       quote.PromoCode,
		BasePrice:       quote.BasePrice,
		ExtrasPrice:     quote.ExtrasPrice,
		Subtotal:        quote.Subtotal,
		PaymentDiscount: quote.PaymentDiscount,
		PromoDiscount:   quote.PromoDiscount,
		TotalDiscount:   quote.TotalDiscount,
		TotalPrice:      quote.TotalPrice,
		Status:          b.Status().String(),
	}
}

type fixture struct {
	commands commands.BookingCommands
	store    *memStore
	promos   *fakePromoStore
}

func newFixture(store *memStore, promoSnap *shared.PromoSnapshot) *fixture {
	qb := builder.NewQuoteBuilder()
	promos := &fakePromoStore{snaps: map[string]*shared.PromoSnapshot{}}
	if promoSnap != nil {
		promos.snaps[promoSnap.Code] = promoSnap
	}

	cmds := commands.NewBookingCommands(
		&fakeRateStore{rule: qb.BuildRateRule()},
		&fakeExtrasStore{catalog: qb.BuildCatalog()},
		promos,
		&fakeUoW{store: store},
		&storeBackedQueries{store: store},
		clock.NewMockClock(testNow),
	)
	return &fixture{commands: cmds, store: store, promos: promos}
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("プロモ付き予約の確定", func(t *testing.T) {
		store := newMemStore(1000, 0)
		f := newFixture(store, builder.NewPromoBuilder().BuildSnapshot())

		view, err := f.commands.CreateBooking(ctx, uuid.New(), builder.NewBookingBuilder().BuildParams())
		require.NoError(t, err)

		assert.True(t, view.Subtotal.Equal(decimal.NewFromInt(95)))
		assert.True(t, view.TotalPrice.Equal(decimal.RequireFromString("61.75")))
		assert.Equal(t, "pending", view.Status)
		assert.Len(t, store.bookings, 1)
		assert.Equal(t, 1, store.usedCount)
	})

	t.Run("プロモなしはカウンタを進めない", func(t *testing.T) {
		store := newMemStore(1000, 0)
		f := newFixture(store, nil)

		view, err := f.commands.CreateBooking(ctx, uuid.New(), builder.NewBookingBuilder().WithoutPromo().BuildParams())
		require.NoError(t, err)

		assert.True(t, view.TotalPrice.Equal(decimal.RequireFromString("80.75")))
		assert.Equal(t, 0, store.usedCount)
	})

	t.Run("確定時の不適格プロモは拒否される", func(t *testing.T) {
		cases := []struct {
			name string
			b    *builder.PromoBuilder
		}{
			{name: "無効化済み", b: builder.NewPromoBuilder().Inactive()},
			{name: "上限到達", b: builder.NewPromoBuilder().Exhausted()},
			{name: "期限切れ", b: builder.NewPromoBuilder().WithWindow(
				time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
			)},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				store := newMemStore(1000, 0)
				f := newFixture(store, tc.b.BuildSnapshot())

				_, err := f.commands.CreateBooking(ctx, uuid.New(), builder.NewBookingBuilder().BuildParams())
				assert.ErrorIs(t, err, commands.ErrPromoInvalid)
				assert.Empty(t, store.bookings)
				assert.Equal(t, 0, store.usedCount)
			})
		}
	})

	t.Run("未知のプロモは拒否される", func(t *testing.T) {
		store := newMemStore(1000, 0)
		f := newFixture(store, nil)

		_, err := f.commands.CreateBooking(ctx, uuid.New(), builder.NewBookingBuilder().WithPromo("NOPE").BuildParams())
		assert.ErrorIs(t, err, commands.ErrPromoInvalid)
		assert.Empty(t, store.bookings)
	})

	t.Run("カウンタ競合に敗れたら予約ごとロールバック", func(t *testing.T) {
		// The snapshot still reports quota available, but the committed
		// counter has already hit the limit.
		snap := builder.NewPromoBuilder().WithUsage(10, 5).BuildSnapshot()
		store := newMemStore(10, 10)
		f := newFixture(store, snap)

		_, err := f.commands.CreateBooking(ctx, uuid.New(), builder.NewBookingBuilder().BuildParams())
		assert.ErrorIs(t, err, commands.ErrPromoInvalid)
		assert.Empty(t, store.bookings)
		assert.Equal(t, 10, store.usedCount)
	})

	t.Run("残枠ぶんだけが並行予約で当選する", func(t *testing.T) {
		const (
			limit      = 100
			used       = 97
			contenders = 20
		)
		snap := builder.NewPromoBuilder().WithUsage(limit, used).BuildSnapshot()
		store := newMemStore(limit, used)
		f := newFixture(store, snap)

		var wg sync.WaitGroup
		results := make(chan error, contenders)
		for i := 0; i < contenders; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := f.commands.CreateBooking(ctx, uuid.New(), builder.NewBookingBuilder().BuildParams())
				results <- err
			}()
		}
		wg.Wait()
		close(results)

		var wins, losses int
		for err := range results {
			if err == nil {
				wins++
			} else {
				assert.ErrorIs(t, err, commands.ErrPromoInvalid)
				losses++
			}
		}

		assert.Equal(t, limit-used, wins)
		assert.Equal(t, contenders-(limit-used), losses)
		assert.Equal(t, limit, store.usedCount)
		assert.Len(t, store.bookings, wins)
	})

	t.Run("未知の車種はErrRateNotFound", func(t *testing.T) {
		store := newMemStore(1000, 0)
		f := newFixture(store, nil)

		params := builder.NewBookingBuilder().WithoutPromo().BuildParams()
		params.VehicleType = "Hovercraft"

		_, err := f.commands.CreateBooking(ctx, uuid.New(), params)
		assert.ErrorIs(t, err, commands.ErrRateNotFound)
	})

	t.Run("非正の期間はErrInvalidDuration", func(t *testing.T) {
		store := newMemStore(1000, 0)
		f := newFixture(store, nil)

		zero := 0
		params := builder.NewBookingBuilder().WithoutPromo().BuildParams()
		params.DurationHours = &zero

		_, err := f.commands.CreateBooking(ctx, uuid.New(), params)
		assert.ErrorIs(t, err, commands.ErrInvalidDuration)
		assert.Empty(t, store.bookings)
	})

	t.Run("乗客0名はErrDomainValidation", func(t *testing.T) {
		store := newMemStore(1000, 0)
		f := newFixture(store, nil)

		_, err := f.commands.CreateBooking(ctx, uuid.New(), builder.NewBookingBuilder().WithoutPromo().WithPassengers(0).BuildParams())
		assert.ErrorIs(t, err, commands.ErrDomainValidation)
		assert.Empty(t, store.bookings)
	})
}
