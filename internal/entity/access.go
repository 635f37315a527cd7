package entity

type AccessState string

const (
	AccessOwner      AccessState = "owner"
	AccessFree       AccessState = "free"
	AccessUnlocked   AccessState = "unlocked"
	AccessSubscribed AccessState = "subscribed"
	AccessLocked     AccessState = "locked"
)

// Granted reports whether the state allows rendering the media unobscured.
func (s AccessState) Granted() bool {
	switch s {
	case AccessOwner, AccessFree, AccessUnlocked, AccessSubscribed:
		return true
	}
	return false
}

// AccessDecision is the result of resolving a (viewer, post) pair. A locked
// decision carries the creator's subscription price for the purchase
// call-to-action.
type AccessDecision struct {
	State      AccessState `json:"state"`
	Reason     string      `json:"reason,omitempty"`
	PriceCents int64       `json:"price_cents,omitempty"`
}
