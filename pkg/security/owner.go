package security

import "github.com/google/uuid"

// CurrentUserID normalizes the id claim of verified claims into the id type
// used by the store. A claim that can't be normalized yields uuid.Nil, which
// matches no record.
func CurrentUserID(c *Claims) uuid.UUID {
	if c == nil {
		return uuid.Nil
	}

	switch v := c.UserID.(type) {
	case uuid.UUID:
		return v
	case [16]byte:
		return uuid.UUID(v)
	case string:
		id, err := uuid.Parse(v)
		if err != nil {
			return uuid.Nil
		}

		return id
	default:
		return uuid.Nil
	}
}
