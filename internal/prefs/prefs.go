// Package prefs persists lightweight client preferences across runs: the
// auth session, the pinned-plan list and the last active trip. It is a plain
// key/value surface with last-write-wins semantics and no validation of the
// stored shape.
package prefs

// Preference keys. Stability matters only to this client.
const (
	KeyToken          = "token"
	KeyUsername       = "username"
	KeyEmail          = "email"
	KeyProfileImage   = "profile_image"
	KeyPinnedPlans    = "pinned_plans"
	KeyLastActiveTrip = "last_active_trip"
)

// Store is a key/value preference store. A missing key reads as the empty
// string, not an error.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
}
