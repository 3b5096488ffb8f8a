package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Post is a feed entry. Comments and likes live inside the post document, so
// every mutation on them is a single atomic update against one document.
type Post struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	User     SessionUser        `bson:"user" json:"user"`
	Text     string             `bson:"text" json:"text"`
	Comments []Comment          `bson:"comments" json:"comments"`
	Likes    []SessionUser      `bson:"likes" json:"likes"`
}

// Comment carries no id of its own; update and delete match an element by
// (userId, comment text), so identical text from the same user is ambiguous.
type Comment struct {
	Comment  string `bson:"comment" json:"comment"`
	UserName string `bson:"userName" json:"userName"`
	UserID   string `bson:"userId" json:"userId"`
}
