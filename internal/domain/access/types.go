package access

// State is the session's authentication status.
type State string

const (
	StateAnonymous     State = "anonymous"
	StatePending       State = "pending"
	StateAuthenticated State = "authenticated"
)

type Capability string

const (
	CapBrowse   Capability = "browse"
	CapCart     Capability = "cart"
	CapLogin    Capability = "login"
	CapSignup   Capability = "signup"
	CapFavorite Capability = "favorite"
	CapUpload   Capability = "upload"
	CapLogout   Capability = "logout"
)
