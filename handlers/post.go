package handlers

import (
	"net/http"

	"feedline/middleware"
	"feedline/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreatePostRequest struct {
	Text string `json:"text"`
}

type PostIDRequest struct {
	ID string `json:"id"`
}

type UpdatePostRequest struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// GetPosts returns the whole posts collection, unfiltered and unpaginated,
// together with the caller's session user.
func (h *Handler) GetPosts(c *gin.Context) {
	user, _ := middleware.SessionUser(c)

	ctx, cancel := opCtx()
	defer cancel()

	cursor, err := h.Posts.Find(ctx, bson.M{})
	if err != nil {
		dbError(c)
		return
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		dbError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts": posts,
		"user":  user,
	})
}

// CreatePost inserts a fresh post owned by the session user, with empty
// comment and like arrays.
func (h *Handler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, _ := middleware.SessionUser(c)

	post := models.Post{
		ID:       primitive.NewObjectID(),
		User:     user,
		Text:     req.Text,
		Comments: []models.Comment{},
		Likes:    []models.SessionUser{},
	}

	ctx, cancel := opCtx()
	defer cancel()

	if _, err := h.Posts.InsertOne(ctx, post); err != nil {
		dbError(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Post added successfully",
		"success": true,
	})
}

// DeletePost removes the post with the given id. Deleting an id that does
// not exist still succeeds.
func (h *Handler) DeletePost(c *gin.Context) {
	var req PostIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		dbError(c)
		return
	}

	ctx, cancel := opCtx()
	defer cancel()

	if _, err := h.Posts.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		dbError(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true})
}

// UpdatePost rewrites a post's text. No existence check, no ownership check.
func (h *Handler) UpdatePost(c *gin.Context) {
	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		dbError(c)
		return
	}

	ctx, cancel := opCtx()
	defer cancel()

	update := bson.M{"$set": bson.M{"text": req.Text}}
	if _, err := h.Posts.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		dbError(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true})
}
