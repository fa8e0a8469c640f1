package store

import (
	"context"
	"errors"

	"artisan-storefront/internal/app/metrics"
	"artisan-storefront/internal/authclient"
	"artisan-storefront/internal/domain/access"
	"artisan-storefront/internal/domain/catalog"
	"artisan-storefront/internal/domain/nav"
	"artisan-storefront/internal/domain/notify"
	"artisan-storefront/internal/domain/users"
	"artisan-storefront/internal/localstorage"
)

var (
	ErrAuthInFlight = errors.New("an authentication request is already in progress")
	ErrNoGateway    = errors.New("auth gateway not configured")
)

const (
	signUpSucceeded = "Sign up successful! Please log in."
	signUpFailed    = "Sign up failed. Please try again."
	loginSucceeded  = "Login Successful!"
	loginFailed     = "Invalid email or password."
	loggedOut       = "You have been logged out."

	// The gateway's token carries no role or numeric ID the storefront reads yet.
	// Login always assumes an artist account and restored sessions use ID 1.
	assumedRole       = users.RoleArtist
	restoredUserID    = 1
	defaultArtistName = "Elena Petrova"
)

// Restore brings back the signed-in user from the stored token. Tokens that
// do not decode or are past their expiry are discarded.
func (s *Store) Restore(ctx context.Context) error {
	token, err := s.storage.Get(ctx, localstorage.TokenKey)
	if errors.Is(err, localstorage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	claims := authclient.DecodeToken(token)
	if !claims.ValidAt(s.now()) {
		s.log.Info("discarding stale session token")
		return s.storage.Remove(ctx, localstorage.TokenKey)
	}

	return s.do(ctx, func(st *State) {
		st.CurrentUser = &users.CurrentUser{
			ID:   restoredUserID,
			Name: claims.Subject,
			Role: assumedRole,
		}
		st.Auth = access.StateAuthenticated
	})
}

// beginAuth marks the session pending and returns the status to fall back to.
func (s *Store) beginAuth(ctx context.Context) (access.State, error) {
	var (
		prev access.State
		err  error
	)
	doErr := s.do(ctx, func(st *State) {
		if st.Auth == access.StatePending {
			err = ErrAuthInFlight
			return
		}
		prev = st.Auth
		st.Auth = access.StatePending
	})
	if doErr != nil {
		return "", doErr
	}
	return prev, err
}

// SignUp registers with the gateway. Success switches the modal to login.
func (s *Store) SignUp(ctx context.Context, req authclient.SignUpRequest) error {
	if s.auth == nil {
		return ErrNoGateway
	}
	prev, err := s.beginAuth(ctx)
	if err != nil {
		return err
	}

	callErr := s.auth.SignUp(ctx, req)
	metrics.RecordAuthCall("signup", callErr == nil)

	err = s.do(context.WithoutCancel(ctx), func(st *State) {
		st.Auth = prev
		if callErr != nil {
			s.notify(st, failureMessage(callErr, signUpFailed), notify.SeverityError)
			return
		}
		st.Modal = nav.ModalLogin
		s.notify(st, signUpSucceeded, notify.SeveritySuccess)
	})
	if callErr != nil {
		s.log.WithError(callErr).Info("sign up rejected")
		return callErr
	}
	return err
}

// Login exchanges credentials for a token, stores it and signs the user in.
func (s *Store) Login(ctx context.Context, creds authclient.Credentials) error {
	if s.auth == nil {
		return ErrNoGateway
	}
	prev, err := s.beginAuth(ctx)
	if err != nil {
		return err
	}

	var claims *authclient.Claims
	token, callErr := s.auth.Login(ctx, creds)
	if callErr == nil {
		if err := s.storage.Set(ctx, localstorage.TokenKey, token); err != nil {
			callErr = err
		} else if claims = authclient.DecodeToken(token); claims == nil {
			_ = s.storage.Remove(ctx, localstorage.TokenKey)
			callErr = errors.New("gateway returned an undecodable token")
		}
	}
	metrics.RecordAuthCall("login", callErr == nil)

	err = s.do(context.WithoutCancel(ctx), func(st *State) {
		if callErr != nil {
			st.Auth = prev
			s.notify(st, failureMessage(callErr, loginFailed), notify.SeverityError)
			return
		}
		st.CurrentUser = &users.CurrentUser{
			ID:   loginUserID(st.Catalog),
			Name: claims.Subject,
			Role: assumedRole,
		}
		st.Auth = access.StateAuthenticated
		st.Modal = nav.ModalNone
		st.navigate(dashboardFor(assumedRole))
		s.notify(st, loginSucceeded, notify.SeveritySuccess)
	})
	if callErr != nil {
		s.log.WithError(callErr).Info("login rejected")
		return callErr
	}
	return err
}

// Logout forgets the user and the stored token.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.storage.Remove(ctx, localstorage.TokenKey); err != nil {
		s.log.WithError(err).Warn("could not remove stored token")
	}
	return s.do(ctx, func(st *State) {
		st.CurrentUser = nil
		st.Auth = access.StateAnonymous
		st.navigate(nav.PageHome)
		s.notify(st, loggedOut, notify.SeverityInfo)
	})
}

func dashboardFor(role users.Role) nav.Page {
	if role == users.RoleArtist {
		return nav.PageArtistDashboard
	}
	return nav.PageBuyerDashboard
}

// loginUserID ties a fresh login to the seeded default artist, or the first artist.
func loginUserID(c *catalog.Catalog) int64 {
	if a, ok := c.ArtistByName(defaultArtistName); ok {
		return a.ID
	}
	if all := c.Artists(); len(all) > 0 {
		return all[0].ID
	}
	return 0
}

func failureMessage(err error, fallback string) string {
	var gwErr *authclient.Error
	if errors.As(err, &gwErr) && gwErr.Message != "" {
		return gwErr.Message
	}
	return fallback
}
