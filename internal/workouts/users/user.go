package users

import "errors"

// MaxObjectIDLen is the width of the user primary key column, in characters.
const MaxObjectIDLen = 100

var ErrInvalidObjectID = errors.New("invalid user object id")

// User is the local record of an identity provider subject. It is created
// on first sight and never changes.
type User struct {
	ObjectID string `json:"object_id"`
}
