package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"autokeep/api/internal/config"
	"autokeep/api/internal/model"
	"autokeep/api/internal/service"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	authService *service.AuthService
	db          *gorm.DB
	config      *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, db: db, config: cfg}
}

// Login authenticates a user and returns a JWT
// @Summary Login
// @Description Authenticate with username and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body model.LoginRequest true "Credentials"
// @Success 200 {object} model.LoginResponse
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.recordLogin(0, req.Username, c, false, err.Error())
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	h.recordLogin(user.ID, user.Username, c, true, "")
	c.JSON(http.StatusOK, model.LoginResponse{Token: token, User: *user})
}

// Register creates a new account
// @Summary Register
// @Description Create a new user account
// @Tags Auth
// @Accept json
// @Produce json
// @Param account body model.RegisterRequest true "Account data"
// @Success 201 {object} model.LoginResponse
// @Failure 400 {object} map[string]string
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, model.LoginResponse{Token: token, User: *user})
}

// GetMe returns the current user
// @Summary Current user
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID := GetUserID(c)
	user, err := h.authService.GetUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// AuthMiddleware validates the Bearer token and stores the user id in the context
func (h *AuthHandler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			c.Abort()
			return
		}

		claims, err := ParseToken(strings.TrimPrefix(header, "Bearer "), h.config.JWTSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}

// generateToken issues a signed JWT for the user
func (h *AuthHandler) generateToken(user *model.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(h.config.TokenTTL).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

// ParseToken verifies a JWT and returns its claims
func ParseToken(tokenString, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// GetUserID 从上下文中获取用户ID
func GetUserID(c *gin.Context) uint {
	if claims, exists := c.Get("claims"); exists {
		if jwtClaims, ok := claims.(jwt.MapClaims); ok {
			if userID, ok := jwtClaims["user_id"].(float64); ok {
				return uint(userID)
			}
		}
	}
	return 0
}

// recordLogin 记录登录审计日志
func (h *AuthHandler) recordLogin(userID uint, username string, c *gin.Context, success bool, errorMsg string) {
	entry := model.LoginLog{
		UserID:    userID,
		Username:  username,
		Action:    "login",
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Success:   success,
		ErrorMsg:  errorMsg,
		CreatedAt: time.Now(),
	}
	h.db.Create(&entry)
}
