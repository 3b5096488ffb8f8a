package handlers

import (
	"net/http"

	"feedline/middleware"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type LikePostRequest struct {
	Data struct {
		PostID  string `json:"postId"`
		IsLiked bool   `json:"isLiked"`
	} `json:"data"`
}

// LikePost toggles the session user's membership in a post's likes set. The
// direction comes entirely from the client's isLiked flag; the server never
// inspects current membership. $addToSet makes a repeated like a no-op, and
// $pull removes every matching entry on unlike.
func (h *Handler) LikePost(c *gin.Context) {
	var req LikePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := primitive.ObjectIDFromHex(req.Data.PostID)
	if err != nil {
		dbError(c)
		return
	}

	user, _ := middleware.SessionUser(c)

	ctx, cancel := opCtx()
	defer cancel()

	var update bson.M
	if req.Data.IsLiked {
		update = bson.M{"$addToSet": bson.M{"likes": user}}
	} else {
		update = bson.M{"$pull": bson.M{"likes": user}}
	}

	if _, err := h.Posts.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		dbError(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true})
}
