package prefs

import (
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
)

// Session holds the authenticated-user context cached locally.
type Session struct {
	Token        string
	Username     string
	Email        string
	ProfileImage string
}

// LoadSession reads the cached session. Token == "" means logged out.
func LoadSession(s Store) (*Session, error) {
	session := &Session{}
	var err error
	if session.Token, err = s.Get(KeyToken); err != nil {
		return nil, errors.Wrap(err, "reading token")
	}
	if session.Username, err = s.Get(KeyUsername); err != nil {
		return nil, errors.Wrap(err, "reading username")
	}
	if session.Email, err = s.Get(KeyEmail); err != nil {
		return nil, errors.Wrap(err, "reading email")
	}
	if session.ProfileImage, err = s.Get(KeyProfileImage); err != nil {
		return nil, errors.Wrap(err, "reading profile image")
	}
	return session, nil
}

// SaveSession caches a freshly issued session.
func SaveSession(s Store, session *Session) error {
	if err := s.Set(KeyToken, session.Token); err != nil {
		return errors.Wrap(err, "saving token")
	}
	if err := s.Set(KeyUsername, session.Username); err != nil {
		return errors.Wrap(err, "saving username")
	}
	if err := s.Set(KeyEmail, session.Email); err != nil {
		return errors.Wrap(err, "saving email")
	}
	if session.ProfileImage != "" {
		if err := s.Set(KeyProfileImage, session.ProfileImage); err != nil {
			return errors.Wrap(err, "saving profile image")
		}
	}
	return nil
}

// ClearSession removes the session artifacts: token and cached profile
// image. Pinned plans and the last active trip are user content and survive
// logout.
func ClearSession(s Store) error {
	if err := s.Remove(KeyToken); err != nil {
		return errors.Wrap(err, "removing token")
	}
	if err := s.Remove(KeyProfileImage); err != nil {
		return errors.Wrap(err, "removing profile image")
	}
	return nil
}

// PinnedPlans reads the persisted pin list. An absent or corrupt entry reads
// as empty rather than failing: pins are a convenience, not a record.
func PinnedPlans(s Store) []int64 {
	raw, err := s.Get(KeyPinnedPlans)
	if err != nil || raw == "" {
		return nil
	}
	var ids []int64
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil
	}
	return ids
}

// SetPinnedPlans persists the pin list.
func SetPinnedPlans(s Store, ids []int64) error {
	if ids == nil {
		ids = []int64{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return errors.Wrap(err, "marshaling pinned plans")
	}
	return s.Set(KeyPinnedPlans, string(raw))
}

// LastActiveTrip returns the persisted trip id, or 0 when none is set.
func LastActiveTrip(s Store) int64 {
	raw, err := s.Get(KeyLastActiveTrip)
	if err != nil || raw == "" {
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// SetLastActiveTrip persists the trip id.
func SetLastActiveTrip(s Store, id int64) error {
	return s.Set(KeyLastActiveTrip, strconv.FormatInt(id, 10))
}

// ClearLastActiveTrip removes the persisted trip id.
func ClearLastActiveTrip(s Store) error {
	return s.Remove(KeyLastActiveTrip)
}
