package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shoply_back_end/internal/models"
	"shoply_back_end/internal/store"
	"shoply_back_end/internal/utils"
)

type AuthHandler struct {
	Users     store.UserStore
	JWTSecret string
}

// Register crée un compte local et renvoie directement un token.
func (h *AuthHandler) Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	// email déjà pris ?
	_, err := h.Users.FindByEmail(ctx, input.Email)
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	user, err := h.Users.Create(ctx, models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
		Cart:     []models.CartEntry{},
	})
	if err != nil {
		// l'index unique couvre la course entre le FindByEmail et l'insert
		if errors.Is(err, store.ErrDuplicateEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	token, err := utils.GenerateJWT(h.JWTSecret, user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  user.Public(),
	})
}

// Login vérifie email + mot de passe. Même message pour un email inconnu
// et un mauvais mot de passe, pour ne pas révéler quels comptes existent.
func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	user, err := h.Users.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}
	if err != nil || !utils.CheckPassword(input.Password, user.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateJWT(h.JWTSecret, user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user.Public(),
	})
}

// Me renvoie la projection publique de l'utilisateur authentifié.
func (h *AuthHandler) Me(c *gin.Context) {
	if user, ok := c.Get("user"); ok {
		c.JSON(http.StatusOK, user.(models.User).Public())
		return
	}

	// token valide mais utilisateur supprimé depuis son émission
	if _, ok := c.Get("user_id"); ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	c.JSON(http.StatusUnauthorized, gin.H{"message": "Access token required"})
}

// currentUserID extrait l'identifiant posé par le middleware d'auth.
func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	v, ok := c.Get("user_id")
	if !ok {
		return primitive.NilObjectID, false
	}
	id, ok := v.(primitive.ObjectID)
	return id, ok
}
