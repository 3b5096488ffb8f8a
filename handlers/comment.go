package handlers

import (
	"net/http"

	"feedline/middleware"
	"feedline/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AddCommentRequest struct {
	ID      string `json:"id"`
	Comment string `json:"comment"`
}

type UpdateCommentRequest struct {
	PostID     string `json:"postId"`
	UserID     string `json:"userId"`
	OldComment string `json:"oldComment"`
	NewComment string `json:"newComment"`
}

type DeleteCommentRequest struct {
	PostID  string `json:"postId"`
	UserID  string `json:"userId"`
	Comment string `json:"comment"`
}

// AddComment appends the session user's comment to a post. The comments
// array is append-only, so its order is insertion order.
func (h *Handler) AddComment(c *gin.Context) {
	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		dbError(c)
		return
	}

	user, _ := middleware.SessionUser(c)
	comment := models.Comment{
		Comment:  req.Comment,
		UserName: user.UserName,
		UserID:   user.UserID,
	}

	ctx, cancel := opCtx()
	defer cancel()

	update := bson.M{"$push": bson.M{"comments": comment}}
	if _, err := h.Posts.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		dbError(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true})
}

// UpdateComment rewrites the first comment element matching (userId, old
// text) on the given post. Comments have no id of their own, so the old text
// is the identity; zero modified documents means nothing matched.
func (h *Handler) UpdateComment(c *gin.Context) {
	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := primitive.ObjectIDFromHex(req.PostID)
	if err != nil {
		dbError(c)
		return
	}

	ctx, cancel := opCtx()
	defer cancel()

	filter := bson.M{
		"_id":              id,
		"comments.userId":  req.UserID,
		"comments.comment": req.OldComment,
	}
	update := bson.M{"$set": bson.M{"comments.$.comment": req.NewComment}}

	result, err := h.Posts.UpdateOne(ctx, filter, update)
	if err != nil {
		dbError(c)
		return
	}

	if result.ModifiedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Comment not found or already updated",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Comment updated successfully",
	})
}

// DeleteComment pulls every comment element matching both the text and the
// user id, so duplicate copies of the same comment go in one call.
func (h *Handler) DeleteComment(c *gin.Context) {
	var req DeleteCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := primitive.ObjectIDFromHex(req.PostID)
	if err != nil {
		dbError(c)
		return
	}

	ctx, cancel := opCtx()
	defer cancel()

	update := bson.M{"$pull": bson.M{"comments": bson.M{
		"comment": req.Comment,
		"userId":  req.UserID,
	}}}
	if _, err := h.Posts.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		dbError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
