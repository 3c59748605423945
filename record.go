package authshell

import (
	"encoding/json"
	"errors"
	"fmt"
)

// sessionRecord is the wire shape of a persisted session. It mirrors the
// browser localStorage payload of the reference design: one flat JSON object.
type sessionRecord struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

var errRecordCorrupt = errors.New("session record corrupt")

func encodeSession(s Session) ([]byte, error) {
	if !s.Role.Valid() {
		return nil, ErrRoleInvalid
	}
	return json.Marshal(sessionRecord{
		ID:     s.ID,
		Email:  s.Email,
		Name:   s.Name,
		Role:   string(s.Role),
		Avatar: s.Avatar,
	})
}

// decodeSession parses and validates a persisted record. Any structural
// problem, a missing id/email, or a role outside the two-value set makes the
// record corrupt; the caller decides what corrupt means (at restoration it
// means "no session").
func decodeSession(data []byte) (Session, error) {
	var rec sessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return Session{}, fmt.Errorf("%w: %v", errRecordCorrupt, err)
	}
	if rec.ID == "" || rec.Email == "" {
		return Session{}, fmt.Errorf("%w: missing identity fields", errRecordCorrupt)
	}
	role, err := ParseRole(rec.Role)
	if err != nil {
		return Session{}, fmt.Errorf("%w: %v", errRecordCorrupt, err)
	}
	return Session{
		ID:     rec.ID,
		Email:  rec.Email,
		Name:   rec.Name,
		Role:   role,
		Avatar: rec.Avatar,
	}, nil
}
