package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"artisan-storefront/internal/authclient"
	"artisan-storefront/internal/domain/access"
	"artisan-storefront/internal/domain/billing"
	"artisan-storefront/internal/domain/catalog"
	"artisan-storefront/internal/domain/media"
	"artisan-storefront/internal/domain/nav"
	"artisan-storefront/internal/domain/notify"
	"artisan-storefront/internal/domain/users"
	"artisan-storefront/internal/localstorage"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	mu        sync.Mutex
	signUpErr error
	loginErr  error
	token     string
	block     chan struct{}
	signUps   []authclient.SignUpRequest
}

func (g *fakeGateway) SignUp(_ context.Context, req authclient.SignUpRequest) error {
	g.mu.Lock()
	g.signUps = append(g.signUps, req)
	g.mu.Unlock()
	return g.signUpErr
}

func (g *fakeGateway) Login(_ context.Context, _ authclient.Credentials) (string, error) {
	if g.block != nil {
		<-g.block
	}
	return g.token, g.loginErr
}

type failingPayer struct{}

func (failingPayer) Pay(context.Context, billing.Order) (billing.Receipt, error) {
	return billing.Receipt{Provider: "test"}, errors.New("card declined")
}

type recordingOrders struct {
	mu     sync.Mutex
	orders []billing.Order
}

func (r *recordingOrders) Record(_ context.Context, o *billing.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, *o)
	return nil
}

func token(t *testing.T, subject string, exp time.Time) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"exp": exp.Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return tok
}

func newStore(t *testing.T, opts Options) *Store {
	t.Helper()
	if opts.NotificationTTL == 0 {
		opts.NotificationTTL = time.Hour
	}
	s := New(opts)
	t.Cleanup(s.Close)
	return s
}

func snapshot(t *testing.T, s *Store) Snapshot {
	t.Helper()
	snap, err := s.Snapshot(context.Background())
	require.NoError(t, err)
	return snap
}

func messages(snap Snapshot) []string {
	out := make([]string, 0, len(snap.Notifications))
	for _, n := range snap.Notifications {
		out = append(out, n.Message)
	}
	return out
}

func TestInitialState(t *testing.T) {
	s := newStore(t, Options{})
	snap := snapshot(t, s)

	assert.Equal(t, nav.PageHome, snap.Page)
	assert.Equal(t, nav.ModalNone, snap.Modal)
	assert.Equal(t, access.StateAnonymous, snap.Auth)
	assert.Nil(t, snap.CurrentUser)
	assert.Zero(t, snap.Cart.Len())
	assert.Zero(t, snap.Favorites.Len())
	assert.Len(t, snap.Catalog.Artworks(), 9)
}

func TestNavigateResetsScroll(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, Options{})

	require.NoError(t, s.SetScroll(ctx, 640))
	assert.Equal(t, 640, snapshot(t, s).ScrollOffset)

	require.NoError(t, s.Navigate(ctx, nav.PageGallery))
	snap := snapshot(t, s)
	assert.Equal(t, nav.PageGallery, snap.Page)
	assert.Zero(t, snap.ScrollOffset)

	require.NoError(t, s.SetScroll(ctx, -5))
	assert.Zero(t, snapshot(t, s).ScrollOffset)
}

func TestAddToCartTwiceMergesLine(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, Options{})

	_, err := s.AddToCart(ctx, 1)
	require.NoError(t, err)
	item, err := s.AddToCart(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)

	snap := snapshot(t, s)
	require.Equal(t, 1, snap.Cart.Len())
	assert.Equal(t, 2, snap.Cart.Count())
	assert.Equal(t, item.Price*2, snap.Cart.Total())
	assert.Contains(t, messages(snap), item.Title+" added to your bag!")

	_, err = s.AddToCart(ctx, 999)
	assert.ErrorIs(t, err, catalog.ErrArtworkNotFound)
}

func TestUpdateQuantityToZeroRemovesLine(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, Options{})

	_, err := s.AddToCart(ctx, 2)
	require.NoError(t, err)
	require.NoError(t, s.UpdateCartQuantity(ctx, 2, 0))

	c, err := s.Cart(ctx)
	require.NoError(t, err)
	assert.Zero(t, c.Len())
}

func TestToggleFavoriteTwiceRestores(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, Options{})

	fav, err := s.ToggleFavorite(ctx, 3)
	require.NoError(t, err)
	assert.True(t, fav)

	fav, err = s.ToggleFavorite(ctx, 3)
	require.NoError(t, err)
	assert.False(t, fav)

	items, err := s.Favorites(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestViewDetailsSeesNewReviews(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, Options{})

	require.NoError(t, s.ViewDetails(ctx, 1))
	before := snapshot(t, s).SelectedArtwork
	require.NotNil(t, before)

	review, err := s.PostReview(ctx, 1, "Stunning work")
	require.NoError(t, err)
	assert.Equal(t, "Anonymous", review.User)

	snap := snapshot(t, s)
	assert.Equal(t, nav.PageDetails, snap.Page)
	require.NotNil(t, snap.SelectedArtwork)
	require.Len(t, snap.SelectedArtwork.Reviews, len(before.Reviews)+1)
	assert.Equal(t, "Stunning work", snap.SelectedArtwork.Reviews[len(before.Reviews)].Comment)
	assert.Contains(t, messages(snap), "Review posted!")
}

func TestUnknownSelectionsAreRejected(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, Options{})

	assert.ErrorIs(t, s.ViewDetails(ctx, 404), catalog.ErrArtworkNotFound)
	assert.ErrorIs(t, s.ViewArtist(ctx, 404), catalog.ErrArtistNotFound)

	_, err := s.PostReview(ctx, 404, "hello")
	assert.ErrorIs(t, err, catalog.ErrArtworkNotFound)

	snap := snapshot(t, s)
	assert.Equal(t, nav.PageHome, snap.Page)
	assert.Empty(t, snap.Notifications)
}

func TestViewArtistOpensProfile(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, Options{})

	require.NoError(t, s.ViewArtist(ctx, 2))
	snap := snapshot(t, s)
	assert.Equal(t, nav.PageArtistProfile, snap.Page)
	require.NotNil(t, snap.SelectedArtist)
	assert.Equal(t, int64(2), snap.SelectedArtist.ID)
}

func TestPayClearsCartAndGoesHome(t *testing.T) {
	ctx := context.Background()
	orders := &recordingOrders{}
	s := newStore(t, Options{Orders: orders})

	_, err := s.AddToCart(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, s.Navigate(ctx, nav.PageCheckout))

	receipt, err := s.Pay(ctx, billing.CheckoutForm{FullName: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)
	assert.Equal(t, billing.StatusPaid, receipt.Status)

	snap := snapshot(t, s)
	assert.Zero(t, snap.Cart.Len())
	assert.Equal(t, nav.PageHome, snap.Page)
	assert.Contains(t, messages(snap), "Payment successful! Thank you for your purchase.")
	require.Len(t, orders.orders, 1)
	assert.Len(t, orders.orders[0].Lines, 1)
}

func TestPayWithEmptyCartSkipsPayer(t *testing.T) {
	s := newStore(t, Options{Payer: failingPayer{}})

	receipt, err := s.Pay(context.Background(), billing.CheckoutForm{})
	require.NoError(t, err)
	assert.Equal(t, "none", receipt.Provider)
	assert.Equal(t, nav.PageHome, snapshot(t, s).Page)
}

func TestPayFailureKeepsCart(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, Options{Payer: failingPayer{}})

	_, err := s.AddToCart(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, s.Navigate(ctx, nav.PageCheckout))

	_, err = s.Pay(ctx, billing.CheckoutForm{})
	require.Error(t, err)

	snap := snapshot(t, s)
	assert.Equal(t, 1, snap.Cart.Len())
	assert.Equal(t, nav.PageCheckout, snap.Page)
	assert.Contains(t, messages(snap), "Payment failed. Please try again.")
}

func TestSubmitArtwork(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, Options{})

	_, err := s.SubmitArtwork(ctx, Submission{Title: "Untitled"})
	assert.ErrorIs(t, err, ErrImageRequired)

	img := &media.Image{ID: "abc", OriginalPath: "/tmp/abc.png"}
	_, err = s.SubmitArtwork(ctx, Submission{Title: "Untitled", Image: img})
	assert.ErrorIs(t, err, ErrLoginRequired)

	require.NoError(t, s.do(ctx, func(st *State) {
		st.CurrentUser = &users.CurrentUser{ID: 1, Name: "Elena Petrova", Role: users.RoleArtist}
		st.Auth = access.StateAuthenticated
	}))

	art, err := s.SubmitArtwork(ctx, Submission{
		Title:    " Dusk ",
		Price:    900,
		Category: catalog.CategoryAbstract,
		Image:    img,
	})
	require.NoError(t, err)
	assert.Equal(t, "Dusk", art.Title)
	assert.Equal(t, "/media/abc.png", art.Image)
	assert.Equal(t, catalog.ListingSale, art.Type)
	assert.Equal(t, "Oil on Canvas", art.Medium)
	assert.Empty(t, art.Reviews)

	snap := snapshot(t, s)
	assert.Equal(t, nav.PageGallery, snap.Page)
	assert.Equal(t, art.ID, snap.Catalog.Artworks()[0].ID)
	assert.Len(t, snap.Catalog.Artworks(), 10)
}

func TestNotificationsExpire(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, Options{NotificationTTL: 20 * time.Millisecond})

	events, cancel, err := s.Subscribe(ctx)
	require.NoError(t, err)
	defer cancel()

	_, err = s.AddToCart(ctx, 1)
	require.NoError(t, err)

	added := <-events
	assert.Equal(t, notify.EventAdded, added.Kind)
	assert.Equal(t, notify.SeveritySuccess, added.Notification.Type)

	expired := <-events
	assert.Equal(t, notify.EventExpired, expired.Kind)
	assert.Equal(t, added.Notification.ID, expired.Notification.ID)

	assert.Eventually(t, func() bool {
		items, err := s.Notifications(ctx)
		return err == nil && len(items) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestNotificationIDsAreUniqueAndOrdered(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, Options{Now: func() time.Time { return time.UnixMilli(1000) }})

	for i := 0; i < 3; i++ {
		_, err := s.AddToCart(ctx, 1)
		require.NoError(t, err)
	}
	items, err := s.Notifications(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Less(t, items[0].ID, items[1].ID)
	assert.Less(t, items[1].ID, items[2].ID)
}

func TestSignUpSwitchesToLoginModal(t *testing.T) {
	ctx := context.Background()
	gw := &fakeGateway{}
	s := newStore(t, Options{Auth: gw})
	require.NoError(t, s.OpenModal(ctx, nav.ModalSignup))

	err := s.SignUp(ctx, authclient.SignUpRequest{FullName: "Ada", Email: "ada@example.com", Password: "Secret123!", Role: users.RoleBuyer})
	require.NoError(t, err)

	snap := snapshot(t, s)
	assert.Equal(t, nav.ModalLogin, snap.Modal)
	assert.Equal(t, access.StateAnonymous, snap.Auth)
	assert.Contains(t, messages(snap), "Sign up successful! Please log in.")
	assert.Len(t, gw.signUps, 1)
}

func TestSignUpFailureShowsGatewayMessage(t *testing.T) {
	ctx := context.Background()
	gw := &fakeGateway{signUpErr: &authclient.Error{Status: 409, Message: "Email already registered"}}
	s := newStore(t, Options{Auth: gw})
	require.NoError(t, s.OpenModal(ctx, nav.ModalSignup))

	require.Error(t, s.SignUp(ctx, authclient.SignUpRequest{}))

	snap := snapshot(t, s)
	assert.Equal(t, nav.ModalSignup, snap.Modal)
	assert.Equal(t, access.StateAnonymous, snap.Auth)
	assert.Contains(t, messages(snap), "Email already registered")
}

func TestLoginStoresTokenAndOpensDashboard(t *testing.T) {
	ctx := context.Background()
	storage := localstorage.NewMemory()
	tok := token(t, "Ada Lovelace", time.Now().Add(time.Hour))
	s := newStore(t, Options{Auth: &fakeGateway{token: tok}, Storage: storage})
	require.NoError(t, s.OpenModal(ctx, nav.ModalLogin))

	require.NoError(t, s.Login(ctx, authclient.Credentials{Email: "ada@example.com", Password: "x"}))

	snap := snapshot(t, s)
	require.NotNil(t, snap.CurrentUser)
	assert.Equal(t, "Ada Lovelace", snap.CurrentUser.Name)
	assert.Equal(t, users.RoleArtist, snap.CurrentUser.Role)
	elena, ok := snap.Catalog.ArtistByName("Elena Petrova")
	require.True(t, ok)
	assert.Equal(t, elena.ID, snap.CurrentUser.ID)
	assert.Equal(t, access.StateAuthenticated, snap.Auth)
	assert.Equal(t, nav.ModalNone, snap.Modal)
	assert.Equal(t, nav.PageArtistDashboard, snap.Page)
	assert.Contains(t, messages(snap), "Login Successful!")

	stored, err := storage.Get(ctx, localstorage.TokenKey)
	require.NoError(t, err)
	assert.Equal(t, tok, stored)
}

func TestLoginFailure(t *testing.T) {
	ctx := context.Background()
	storage := localstorage.NewMemory()
	s := newStore(t, Options{Auth: &fakeGateway{loginErr: &authclient.Error{Status: 401}}, Storage: storage})

	require.Error(t, s.Login(ctx, authclient.Credentials{}))

	snap := snapshot(t, s)
	assert.Nil(t, snap.CurrentUser)
	assert.Equal(t, access.StateAnonymous, snap.Auth)
	assert.Contains(t, messages(snap), "Invalid email or password.")

	_, err := storage.Get(ctx, localstorage.TokenKey)
	assert.ErrorIs(t, err, localstorage.ErrNotFound)
}

func TestLoginWithUndecodableTokenFails(t *testing.T) {
	ctx := context.Background()
	storage := localstorage.NewMemory()
	s := newStore(t, Options{Auth: &fakeGateway{token: "not-a-jwt"}, Storage: storage})

	require.Error(t, s.Login(ctx, authclient.Credentials{}))
	assert.Nil(t, snapshot(t, s).CurrentUser)

	_, err := storage.Get(ctx, localstorage.TokenKey)
	assert.ErrorIs(t, err, localstorage.ErrNotFound)
}

func TestConcurrentLoginIsRejected(t *testing.T) {
	ctx := context.Background()
	gw := &fakeGateway{token: token(t, "Ada", time.Now().Add(time.Hour)), block: make(chan struct{})}
	s := newStore(t, Options{Auth: gw})

	first := make(chan error, 1)
	go func() { first <- s.Login(ctx, authclient.Credentials{}) }()

	assert.Eventually(t, func() bool {
		snap, err := s.Snapshot(ctx)
		return err == nil && snap.Auth == access.StatePending
	}, time.Second, 5*time.Millisecond)

	assert.ErrorIs(t, s.Login(ctx, authclient.Credentials{}), ErrAuthInFlight)

	close(gw.block)
	require.NoError(t, <-first)
	assert.Equal(t, access.StateAuthenticated, snapshot(t, s).Auth)
}

func TestLogoutClearsUserAndToken(t *testing.T) {
	ctx := context.Background()
	storage := localstorage.NewMemory()
	s := newStore(t, Options{Auth: &fakeGateway{token: token(t, "Ada", time.Now().Add(time.Hour))}, Storage: storage})

	require.NoError(t, s.Login(ctx, authclient.Credentials{}))
	require.NoError(t, s.Logout(ctx))

	snap := snapshot(t, s)
	assert.Nil(t, snap.CurrentUser)
	assert.Equal(t, access.StateAnonymous, snap.Auth)
	assert.Equal(t, nav.PageHome, snap.Page)
	assert.Contains(t, messages(snap), "You have been logged out.")

	_, err := storage.Get(ctx, localstorage.TokenKey)
	assert.ErrorIs(t, err, localstorage.ErrNotFound)
}

func TestRestore(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("valid token", func(t *testing.T) {
		storage := localstorage.NewMemory()
		require.NoError(t, storage.Set(ctx, localstorage.TokenKey, token(t, "Ada", now.Add(time.Hour))))
		s := newStore(t, Options{Storage: storage})

		require.NoError(t, s.Restore(ctx))
		snap := snapshot(t, s)
		require.NotNil(t, snap.CurrentUser)
		assert.Equal(t, users.CurrentUser{ID: 1, Name: "Ada", Role: users.RoleArtist}, *snap.CurrentUser)
		assert.Equal(t, nav.PageHome, snap.Page)
	})

	t.Run("expired token is removed", func(t *testing.T) {
		storage := localstorage.NewMemory()
		require.NoError(t, storage.Set(ctx, localstorage.TokenKey, token(t, "Ada", now.Add(-time.Minute))))
		s := newStore(t, Options{Storage: storage})

		require.NoError(t, s.Restore(ctx))
		assert.Nil(t, snapshot(t, s).CurrentUser)
		_, err := storage.Get(ctx, localstorage.TokenKey)
		assert.ErrorIs(t, err, localstorage.ErrNotFound)
	})

	t.Run("no token", func(t *testing.T) {
		s := newStore(t, Options{})
		require.NoError(t, s.Restore(ctx))
		assert.Nil(t, snapshot(t, s).CurrentUser)
	})
}

func TestClosedStoreRejectsCommands(t *testing.T) {
	s := New(Options{})
	s.Close()
	assert.ErrorIs(t, s.Navigate(context.Background(), nav.PageGallery), ErrClosed)
}
