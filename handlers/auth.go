package handlers

import (
	"log"
	"net/http"

	"feedline/middleware"
	"feedline/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Login matches the entire submitted body against the users collection, so a
// mismatch on any field yields no user. On match the identity snapshot is
// stored in the session.
func (h *Handler) Login(c *gin.Context) {
	var body bson.M
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := opCtx()
	defer cancel()

	var user models.User
	err := h.Users.FindOne(ctx, body).Decode(&user)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusUnauthorized, gin.H{
			"message": "Invalid credentials",
			"success": false,
		})
		return
	}
	if err != nil {
		dbError(c)
		return
	}

	session := sessions.Default(c)
	session.Set(middleware.SessionUserKey, models.SessionUser{
		UserName: user.Name,
		UserID:   user.ID.Hex(),
	})
	if err := session.Save(); err != nil {
		log.Printf("Login session save error: %v", err)
		dbError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"success": true,
	})
}

// Signup inserts the request body as a new user document after checking the
// email is unused. The check and the insert are two separate calls; two
// concurrent signups with the same email can both land.
func (h *Handler) Signup(c *gin.Context) {
	var body bson.M
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := opCtx()
	defer cancel()

	err := h.Users.FindOne(ctx, bson.M{"email": body["email"]}).Err()
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"message": "User already exists",
			"success": false,
		})
		return
	}
	if err != mongo.ErrNoDocuments {
		dbError(c)
		return
	}

	if _, err := h.Users.InsertOne(ctx, body); err != nil {
		dbError(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"success": true,
	})
}

// IsLoggedIn reports session state. Public route, never errors.
func (h *Handler) IsLoggedIn(c *gin.Context) {
	session := sessions.Default(c)
	_, ok := session.Get(middleware.SessionUserKey).(models.SessionUser)
	c.JSON(http.StatusOK, gin.H{"success": ok})
}

// Logout destroys the session unconditionally.
func (h *Handler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		log.Printf("Logout session destroy error: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logout successful",
		"success": true,
	})
}
