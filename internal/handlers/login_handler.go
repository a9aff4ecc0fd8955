package handlers

import (
	"net/http"

	"salestrack/internal/auth"
	"salestrack/internal/models"

	"github.com/gin-gonic/gin"
)

// Login exchanges form-encoded credentials for a bearer token. Any failure -
// unknown name or wrong password - gets the same 401 so callers cannot probe
// which usernames exist.
func (h *Handler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	if username == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	user, err := h.Store.GetUserByName(username)
	if err != nil || !auth.CheckPassword(user.PasswordHash, password) {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect username or password"})
		return
	}

	token, err := h.Tokens.Issue(user)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}

type createUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type userResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// CreateMerchandiser registers a field merchandiser. Store assignment happens
// separately; a fresh merchandiser has no retail partner yet.
func (h *Handler) CreateMerchandiser(c *gin.Context) {
	h.createUser(c, models.RoleMerchandiser)
}

// RegisterAdmin creates an admin account. Only routed when the signup flag is
// set in the configuration.
func (h *Handler) RegisterAdmin(c *gin.Context) {
	h.createUser(c, models.RoleAdmin)
}

func (h *Handler) createUser(c *gin.Context, role string) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	hash, err := auth.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		fail(c, err)
		return
	}

	user := models.User{
		Name:         req.Username,
		PasswordHash: hash,
		Role:         role,
	}
	if err := h.Store.CreateUser(&user); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, userResponse{ID: user.ID, Username: user.Name, Role: user.Role})
}

// ListUsers returns every account, hashes excluded.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.Store.ListUsers()
	if err != nil {
		fail(c, err)
		return
	}

	out := make([]userResponse, len(users))
	for i, u := range users {
		out[i] = userResponse{ID: u.ID, Username: u.Name, Role: u.Role}
	}
	c.JSON(http.StatusOK, out)
}
