package models

import (
	"encoding/gob"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the decoded view of a users-collection document. Signup stores the
// raw request body, so a stored document may carry more fields than these;
// this struct only names the ones the service itself reads.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
}

// SessionUser is the identity snapshot taken at login and held in the session
// for its lifetime. It is embedded verbatim into posts, likes, and comments,
// and is not refreshed if the underlying user changes. UserID is the user's
// ObjectID in hex; the session record round-trips through serialization, so
// the id is a plain string everywhere downstream.
type SessionUser struct {
	UserName string `bson:"userName" json:"userName"`
	UserID   string `bson:"userId" json:"userId"`
}

func init() {
	// The session store gob-encodes values before persisting them.
	gob.Register(SessionUser{})
}
