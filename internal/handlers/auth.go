package handlers

import (
	"errors"
	"net/http"

	"users_api/internal/service"

	"github.com/gin-gonic/gin"
)

type loginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// @Summary      Log in
// @Description  Exchanges credentials for a bearer token valid for one hour
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginInput  true  "Credentials"
// @Success      200   {object}  map[string]string  "token"
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /login [post]
func (h *Handler) login(c *gin.Context) {
	var input loginInput
	// A body with absent fields still goes through the credential check
	// (and fails there); only unparseable JSON is a client error here.
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	token, err := h.services.GenerateToken(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Username/password salah"})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, msgDatabaseError, "login_failed", err,
			"username", input.Username)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
