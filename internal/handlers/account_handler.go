package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dkarpov/hirehub/internal/apperr"
	"github.com/dkarpov/hirehub/internal/auth"
	"github.com/dkarpov/hirehub/internal/dtos"
	"github.com/dkarpov/hirehub/internal/services"
	"github.com/dkarpov/hirehub/internal/uploads"
)

// invalidCredentials is the one message both login failure cases render.
// An unknown email and a wrong password must be indistinguishable to the
// client, otherwise the endpoint enumerates accounts.
const invalidCredentials = "invalid email or password"

type AccountHandler struct {
	Accounts *services.AccountService
	Uploads  *uploads.Store
}

func NewAccountHandler(accounts *services.AccountService, store *uploads.Store) *AccountHandler {
	return &AccountHandler{Accounts: accounts, Uploads: store}
}

// Register is POST /auth/register.
func (h *AccountHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid registration payload: " + err.Error()})
		return
	}

	account, err := h.Accounts.Register(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dtos.NewAccountResponse(account))
}

// Login is POST /auth/login.
func (h *AccountHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid login payload: " + err.Error()})
		return
	}

	account, err := h.Accounts.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) || errors.Is(err, apperr.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": invalidCredentials})
			return
		}
		respondError(c, err)
		return
	}

	if err := auth.SignIn(c, account); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewAccountResponse(account))
}

// Logout is POST /auth/logout.
func (h *AccountHandler) Logout(c *gin.Context) {
	if err := auth.SignOut(c); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

// Me is GET /auth/me, the auth-status probe. The account is re-fetched so
// the answer reflects the latest profile edit, not a session-cached copy.
func (h *AccountHandler) Me(c *gin.Context) {
	id, _, ok := auth.Caller(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	account, err := h.Accounts.GetByID(id)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"account":       dtos.NewAccountResponse(account),
	})
}

// UpdateProfile is PUT /profile, multipart so an avatar can ride along.
// Without a file the stored avatar reference is left as it was.
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	var req dtos.UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile payload: " + err.Error()})
		return
	}

	avatarPath := ""
	if fh, err := c.FormFile("avatar"); err == nil {
		avatarPath, err = h.Uploads.Save(fh, uploads.PurposeAvatar)
		if err != nil {
			respondError(c, err)
			return
		}
	}

	account, err := h.Accounts.UpdateProfile(auth.AccountID(c), &req, avatarPath)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewAccountResponse(account))
}
