package controllers

import (
	"errors"
	"net/http"

	"trackventory/app"
	"trackventory/db"
	"trackventory/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct{ *Srv }

func NewAuthController(s *Srv) *AuthController { return &AuthController{Srv: s} }

type registerInput struct {
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8"`
	RoleID   *uint  `json:"role_id"`
}

func (ct *AuthController) Register(c *gin.Context) {
	var in registerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		validationFailed(c, err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		internalError(c, err)
		return
	}

	user := models.User{Name: in.Name, Email: in.Email, Password: string(hash), RoleID: in.RoleID}
	if err := db.Create(c.Request.Context(), ct.DB, &user); err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			c.JSON(http.StatusUnprocessableEntity, app.H{
				"message": "The given data was invalid.",
				"errors":  map[string][]string{"email": {"The email has already been taken."}},
			})
			return
		}
		storeError(c, "User", err)
		return
	}

	token := uuid.NewString()
	if err := ct.Tokens.Create(c.Request.Context(), token, user.ID); err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, app.H{
		"message": "User registered successfully",
		"data":    user,
		"token":   token,
	})
}

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ct *AuthController) Login(c *gin.Context) {
	var in loginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		validationFailed(c, err)
		return
	}

	var user models.User
	if err := ct.DB.WithContext(c.Request.Context()).Where("email = ?", in.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, app.H{"message": "Invalid credentials"})
			return
		}
		internalError(c, err)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)) != nil {
		c.JSON(http.StatusUnauthorized, app.H{"message": "Invalid credentials"})
		return
	}

	token := uuid.NewString()
	if err := ct.Tokens.Create(c.Request.Context(), token, user.ID); err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, app.H{
		"message": "Login successful",
		"data":    user,
		"token":   token,
	})
}

// Logout revokes the bearer token the request arrived with.
func (ct *AuthController) Logout(c *gin.Context) {
	token := c.GetString("token")
	if token != "" {
		if err := ct.Tokens.Delete(c.Request.Context(), token); err != nil {
			internalError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, app.H{"message": "Logged out successfully"})
}
