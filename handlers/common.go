package handlers

import (
	"context"
	"net/http"
	"time"

	"feedline/database"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is the slice of *mongo.Collection the handlers use. Tests
// substitute fakes built on mongo.NewSingleResultFromDocument and
// mongo.NewCursorFromDocuments.
type Collection interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
}

// Handler carries the collection handles for all routes. It is built once at
// composition time from the connected store.
type Handler struct {
	Users Collection
	Posts Collection
}

func New(store *database.Store) *Handler {
	return &Handler{
		Users: store.Users,
		Posts: store.Posts,
	}
}

// opCtx bounds a single store call.
func opCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// dbError is the single response for any store failure, malformed document
// ids included. No classification, no retry; the client resubmits.
func dbError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": "Database operation failed.",
	})
}
