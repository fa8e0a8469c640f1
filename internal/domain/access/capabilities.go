package access

import "artisan-storefront/internal/domain/users"

// CapabilitiesFor lists the actions the header and art cards offer.
// Favorites and upload only show up for a signed-in user.
func CapabilitiesFor(state State, user *users.CurrentUser) []Capability {
	caps := []Capability{CapBrowse, CapCart}

	if state == StatePending {
		return caps
	}
	if user == nil {
		return append(caps, CapLogin, CapSignup)
	}
	return append(caps, CapFavorite, CapUpload, CapLogout)
}

func Has(caps []Capability, want Capability) bool {
	for _, c := range caps {
		if c == want {
			return true
		}
	}
	return false
}
