package service_test

import (
	"context"
	"errors"
	"event-tracker-auth/internal/model"
	"event-tracker-auth/internal/repository"
	"event-tracker-auth/internal/security"
	"event-tracker-auth/internal/service"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const day = 24 * time.Hour

var t0 = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

var defaultPolicy = service.SessionPolicy{
	SlidingWindow: 7 * day,
	AbsoluteMax:   30 * day,
	ShortSession:  day,
}

func newRefreshTokenService() (*service.RefreshTokenService, *repository.MemoryRefreshTokenStore, *fakeClock) {
	store := repository.NewMemoryRefreshTokenStore()
	clock := &fakeClock{now: t0}
	return service.NewRefreshTokenService(store, clock, defaultPolicy), store, clock
}

func storedBySecret(t *testing.T, store *repository.MemoryRefreshTokenStore, secret string) *model.RefreshToken {
	t.Helper()
	token, err := store.FindByHash(context.Background(), security.HashSecret(secret))
	require.NoError(t, err)
	return token
}

var remember = model.ClientMetadata{UserAgent: "Mozilla/5.0", RememberMe: true}

func TestRefreshTokenService_IssueRememberMe(t *testing.T) {
	svc, store, _ := newRefreshTokenService()
	ctx := context.Background()

	short, err := svc.Issue(ctx, "u1", model.ClientMetadata{RememberMe: false})
	require.NoError(t, err)
	long, err := svc.Issue(ctx, "u1", remember)
	require.NoError(t, err)

	shortRow := storedBySecret(t, store, short)
	longRow := storedBySecret(t, store, long)
	require.NotNil(t, shortRow)
	require.NotNil(t, longRow)

	assert.True(t, t0.Add(day).Equal(shortRow.ExpiresAt))
	assert.True(t, t0.Add(7*day).Equal(longRow.ExpiresAt))
	assert.True(t, t0.Add(30*day).Equal(shortRow.AbsoluteExpiresAt))
	assert.True(t, t0.Add(30*day).Equal(longRow.AbsoluteExpiresAt))

	assert.True(t, longRow.IsActive)
	assert.True(t, t0.Equal(longRow.CreatedAt))
	require.NotNil(t, longRow.UserAgent)
	assert.Equal(t, "Mozilla/5.0", *longRow.UserAgent)
	assert.Nil(t, shortRow.UserAgent)
	assert.Nil(t, longRow.LastUsedAt)

	assert.NotEqual(t, short, long)
	assert.NotEqual(t, short, shortRow.TokenHash)
}

func TestRefreshTokenService_SlidingExtensionClampedToAbsoluteCap(t *testing.T) {
	svc, store, clock := newRefreshTokenService()
	ctx := context.Background()

	secret, err := svc.Issue(ctx, "u1", remember)
	require.NoError(t, err)

	clock.Set(t0.Add(6 * day))
	identity, err := svc.Validate(ctx, secret)
	require.NoError(t, err)
	require.NotNil(t, identity)
	assert.Equal(t, "u1", identity.UserID)

	row := storedBySecret(t, store, secret)
	assert.True(t, t0.Add(13*day).Equal(row.ExpiresAt))
	require.NotNil(t, row.LastUsedAt)
	assert.True(t, t0.Add(6*day).Equal(*row.LastUsedAt))

	for _, d := range []int{12, 18, 24} {
		clock.Set(t0.Add(time.Duration(d) * day))
		identity, err = svc.Validate(ctx, secret)
		require.NoError(t, err)
		require.NotNil(t, identity, "day %d", d)
	}

	clock.Set(t0.Add(29 * day))
	identity, err = svc.Validate(ctx, secret)
	require.NoError(t, err)
	require.NotNil(t, identity)

	row = storedBySecret(t, store, secret)
	assert.True(t, t0.Add(30*day).Equal(row.ExpiresAt))
	assert.True(t, t0.Add(30*day).Equal(row.AbsoluteExpiresAt))
}

func TestRefreshTokenService_ExpiryNeverExceedsAbsoluteCap(t *testing.T) {
	svc, store, clock := newRefreshTokenService()
	ctx := context.Background()

	secret, err := svc.Issue(ctx, "u1", remember)
	require.NoError(t, err)
	absolute := t0.Add(30 * day)

	for now := t0; !now.After(absolute); now = now.Add(13 * time.Hour) {
		clock.Set(now)
		identity, err := svc.Validate(ctx, secret)
		require.NoError(t, err)
		require.NotNil(t, identity)

		row := storedBySecret(t, store, secret)
		assert.False(t, row.ExpiresAt.After(absolute))
		assert.True(t, absolute.Equal(row.AbsoluteExpiresAt))
	}

	clock.Set(absolute.Add(time.Second))
	identity, err := svc.Validate(ctx, secret)
	require.NoError(t, err)
	assert.Nil(t, identity)
	assert.Nil(t, storedBySecret(t, store, secret))
}

func TestRefreshTokenService_AbsoluteExpiryWins(t *testing.T) {
	svc, store, clock := newRefreshTokenService()
	ctx := context.Background()
	secret := "absolute-expired-secret"

	require.NoError(t, store.Create(ctx, &model.RefreshToken{
		ID:                "id-1",
		TokenHash:         security.HashSecret(secret),
		UserID:            "u1",
		ExpiresAt:         t0.Add(2 * day),
		AbsoluteExpiresAt: t0.Add(day),
		IsActive:          true,
		CreatedAt:         t0,
	}))

	clock.Set(t0.Add(day + time.Hour))
	identity, err := svc.Validate(ctx, secret)

	require.NoError(t, err)
	assert.Nil(t, identity)
	found, err := store.FindByID(ctx, "id-1")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestRefreshTokenService_InactivityExpiry(t *testing.T) {
	svc, store, clock := newRefreshTokenService()
	ctx := context.Background()

	secret, err := svc.Issue(ctx, "u1", model.ClientMetadata{})
	require.NoError(t, err)

	clock.Set(t0.Add(day + time.Minute))
	identity, err := svc.Validate(ctx, secret)

	require.NoError(t, err)
	assert.Nil(t, identity)
	assert.Nil(t, storedBySecret(t, store, secret))
}

func TestRefreshTokenService_ValidateUnknownSecret(t *testing.T) {
	svc, _, _ := newRefreshTokenService()

	identity, err := svc.Validate(context.Background(), "never-issued")
	assert.NoError(t, err)
	assert.Nil(t, identity)

	identity, err = svc.Validate(context.Background(), "")
	assert.NoError(t, err)
	assert.Nil(t, identity)
}

func TestRefreshTokenService_InactiveRowIsIgnored(t *testing.T) {
	svc, store, _ := newRefreshTokenService()
	ctx := context.Background()
	secret := "disabled-secret"

	require.NoError(t, store.Create(ctx, &model.RefreshToken{
		ID:                "id-1",
		TokenHash:         security.HashSecret(secret),
		UserID:            "u1",
		ExpiresAt:         t0.Add(day),
		AbsoluteExpiresAt: t0.Add(30 * day),
		IsActive:          false,
		CreatedAt:         t0,
	}))

	identity, err := svc.Validate(ctx, secret)
	require.NoError(t, err)
	assert.Nil(t, identity)

	row, err := store.FindByID(ctx, "id-1")
	require.NoError(t, err)
	assert.NotNil(t, row)
}

func TestRefreshTokenService_RotateIsSingleUse(t *testing.T) {
	svc, store, clock := newRefreshTokenService()
	ctx := context.Background()

	oldSecret, err := svc.Issue(ctx, "u1", remember)
	require.NoError(t, err)

	clock.Set(t0.Add(3 * day))
	identity, err := svc.Validate(ctx, oldSecret)
	require.NoError(t, err)
	require.NotNil(t, identity)

	newSecret, err := svc.Rotate(ctx, identity.TokenID, model.ClientMetadata{RememberMe: false})
	require.NoError(t, err)
	assert.NotEqual(t, oldSecret, newSecret)

	_, err = svc.Rotate(ctx, identity.TokenID, remember)
	assert.ErrorIs(t, err, model.ErrTokenNotFound)

	oldIdentity, err := svc.Validate(ctx, oldSecret)
	require.NoError(t, err)
	assert.Nil(t, oldIdentity)

	row := storedBySecret(t, store, newSecret)
	require.NotNil(t, row)
	assert.NotEqual(t, identity.TokenID, row.ID)
	assert.Equal(t, "u1", row.UserID)
	assert.True(t, t0.Add(3*day).Equal(row.CreatedAt))
	assert.True(t, t0.Add(4*day).Equal(row.ExpiresAt))
	assert.True(t, t0.Add(33*day).Equal(row.AbsoluteExpiresAt))
}

func TestRefreshTokenService_RotateUnknownID(t *testing.T) {
	svc, _, _ := newRefreshTokenService()

	_, err := svc.Rotate(context.Background(), "missing", remember)
	assert.ErrorIs(t, err, model.ErrTokenNotFound)
}

func TestRefreshTokenService_ConcurrentRotateHasOneWinner(t *testing.T) {
	svc, _, _ := newRefreshTokenService()
	ctx := context.Background()

	secret, err := svc.Issue(ctx, "u1", remember)
	require.NoError(t, err)
	identity, err := svc.Validate(ctx, secret)
	require.NoError(t, err)
	require.NotNil(t, identity)

	const workers = 10
	var wg sync.WaitGroup
	var mu sync.Mutex
	successes, notFound := 0, 0
	start := make(chan struct{})

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := svc.Rotate(ctx, identity.TokenID, remember)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, model.ErrTokenNotFound):
				notFound++
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, notFound)
}

func TestRefreshTokenService_RevokeOne(t *testing.T) {
	svc, _, _ := newRefreshTokenService()
	ctx := context.Background()

	assert.NoError(t, svc.RevokeOne(ctx, "never-issued"))
	assert.NoError(t, svc.RevokeOne(ctx, ""))

	secret, err := svc.Issue(ctx, "u1", remember)
	require.NoError(t, err)

	require.NoError(t, svc.RevokeOne(ctx, secret))
	require.NoError(t, svc.RevokeOne(ctx, secret))

	identity, err := svc.Validate(ctx, secret)
	require.NoError(t, err)
	assert.Nil(t, identity)
}

func TestRefreshTokenService_RevokeAllForUser(t *testing.T) {
	svc, _, _ := newRefreshTokenService()
	ctx := context.Background()

	var userSecrets []string
	for i := 0; i < 3; i++ {
		secret, err := svc.Issue(ctx, "u1", remember)
		require.NoError(t, err)
		userSecrets = append(userSecrets, secret)
	}
	otherSecret, err := svc.Issue(ctx, "u2", remember)
	require.NoError(t, err)

	require.NoError(t, svc.RevokeAllForUser(ctx, "u1"))
	require.NoError(t, svc.RevokeAllForUser(ctx, "u1"))

	for _, secret := range userSecrets {
		identity, err := svc.Validate(ctx, secret)
		require.NoError(t, err)
		assert.Nil(t, identity)
	}

	identity, err := svc.Validate(ctx, otherSecret)
	require.NoError(t, err)
	assert.NotNil(t, identity)
}

// ===== ОШИБКИ ХРАНИЛИЩА =====

type MockRefreshTokenStore struct {
	mock.Mock
}

func (m *MockRefreshTokenStore) Create(ctx context.Context, token *model.RefreshToken) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockRefreshTokenStore) FindByHash(ctx context.Context, tokenHash string) (*model.RefreshToken, error) {
	args := m.Called(ctx, tokenHash)
	if token, ok := args.Get(0).(*model.RefreshToken); ok {
		return token, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRefreshTokenStore) FindByID(ctx context.Context, id string) (*model.RefreshToken, error) {
	args := m.Called(ctx, id)
	if token, ok := args.Get(0).(*model.RefreshToken); ok {
		return token, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRefreshTokenStore) Update(ctx context.Context, token *model.RefreshToken) (bool, error) {
	args := m.Called(ctx, token)
	return args.Bool(0), args.Error(1)
}

func (m *MockRefreshTokenStore) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRefreshTokenStore) DeleteByHash(ctx context.Context, tokenHash string) error {
	return m.Called(ctx, tokenHash).Error(0)
}

func (m *MockRefreshTokenStore) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func liveToken() *model.RefreshToken {
	return &model.RefreshToken{
		ID:                "id-1",
		TokenHash:         security.HashSecret("secret"),
		UserID:            "u1",
		ExpiresAt:         t0.Add(day),
		AbsoluteExpiresAt: t0.Add(30 * day),
		IsActive:          true,
		CreatedAt:         t0,
	}
}

func TestRefreshTokenService_StoreErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	storeErr := errors.New("connection refused")

	t.Run("issue", func(t *testing.T) {
		store := new(MockRefreshTokenStore)
		store.On("Create", ctx, mock.Anything).Return(storeErr)
		svc := service.NewRefreshTokenService(store, &fakeClock{now: t0}, defaultPolicy)

		_, err := svc.Issue(ctx, "u1", remember)
		assert.ErrorIs(t, err, storeErr)
		store.AssertExpectations(t)
	})

	t.Run("validate", func(t *testing.T) {
		store := new(MockRefreshTokenStore)
		store.On("FindByHash", ctx, security.HashSecret("secret")).Return(nil, storeErr)
		svc := service.NewRefreshTokenService(store, &fakeClock{now: t0}, defaultPolicy)

		identity, err := svc.Validate(ctx, "secret")
		assert.ErrorIs(t, err, storeErr)
		assert.Nil(t, identity)
	})

	t.Run("rotate", func(t *testing.T) {
		store := new(MockRefreshTokenStore)
		store.On("FindByID", ctx, "id-1").Return(liveToken(), nil)
		store.On("Delete", ctx, "id-1").Return(false, storeErr)
		svc := service.NewRefreshTokenService(store, &fakeClock{now: t0}, defaultPolicy)

		_, err := svc.Rotate(ctx, "id-1", remember)
		assert.ErrorIs(t, err, storeErr)
		assert.NotErrorIs(t, err, model.ErrTokenNotFound)
	})

	t.Run("revoke all", func(t *testing.T) {
		store := new(MockRefreshTokenStore)
		store.On("DeleteByUser", ctx, "u1").Return(int64(0), storeErr)
		svc := service.NewRefreshTokenService(store, &fakeClock{now: t0}, defaultPolicy)

		assert.ErrorIs(t, svc.RevokeAllForUser(ctx, "u1"), storeErr)
	})
}

func TestRefreshTokenService_RotateLosesConditionalDelete(t *testing.T) {
	ctx := context.Background()
	store := new(MockRefreshTokenStore)
	store.On("FindByID", ctx, "id-1").Return(liveToken(), nil)
	store.On("Delete", ctx, "id-1").Return(false, nil)
	svc := service.NewRefreshTokenService(store, &fakeClock{now: t0}, defaultPolicy)

	_, err := svc.Rotate(ctx, "id-1", remember)

	assert.ErrorIs(t, err, model.ErrTokenNotFound)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRefreshTokenService_ValidateRowVanishedBeforeUpdate(t *testing.T) {
	ctx := context.Background()
	store := new(MockRefreshTokenStore)
	store.On("FindByHash", ctx, security.HashSecret("secret")).Return(liveToken(), nil)
	store.On("Update", ctx, mock.MatchedBy(func(token *model.RefreshToken) bool {
		return token.ExpiresAt.Equal(t0.Add(7*day)) && token.LastUsedAt != nil
	})).Return(false, nil)
	svc := service.NewRefreshTokenService(store, &fakeClock{now: t0}, defaultPolicy)

	identity, err := svc.Validate(ctx, "secret")

	assert.NoError(t, err)
	assert.Nil(t, identity)
	store.AssertExpectations(t)
}
