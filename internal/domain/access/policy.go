package access

import "artisan-storefront/internal/domain/users"

type Policy struct {
	State        State        `json:"state"`
	Capabilities []Capability `json:"capabilities"`
}

func ComputePolicy(state State, user *users.CurrentUser) Policy {
	return Policy{
		State:        state,
		Capabilities: CapabilitiesFor(state, user),
	}
}
