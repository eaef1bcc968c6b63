package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"users_api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Literal response messages, carried over from the source service verbatim.
const (
	msgDatabaseError = "Database error"
	msgUserCreated   = "User berhasil ditambahkan"
	msgUserNotFound  = "User tidak ditemukan"
	msgInvalidUserID = "Invalid user id"
)

// logAndJSONError logs the underlying error with the request id and responds
// with a generic message, so no internal detail leaks to the client.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err, "request_id", c.GetString(requestIDCtxKey)}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"message": userMsg})
}

// idParamOrBadRequest parses the :id route parameter. Returns false if the
// request was already answered.
func (h *Handler) idParamOrBadRequest(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgInvalidUserID})
		return 0, false
	}
	return id, true
}

// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}   models.User
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /users [get]
// @Security     BearerAuth
func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.services.Users.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, msgDatabaseError, "list_users_failed", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// @Summary      Get user by id
// @Description  Returns an array with zero or one elements; an unknown id is an empty array, not a 404
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User id"
// @Success      200  {array}   models.User
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /users/{id} [get]
// @Security     BearerAuth
func (h *Handler) getUser(c *gin.Context) {
	id, ok := h.idParamOrBadRequest(c)
	if !ok {
		return
	}

	users, err := h.services.Users.GetByID(c.Request.Context(), id)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, msgDatabaseError, "get_user_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, users)
}

type createUserInput struct {
	Username string `json:"username" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=4"`
}

// @Summary      Create user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserInput  true  "New user"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]interface{}  "errors"
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /users [post]
// @Security     BearerAuth
func (h *Handler) createUser(c *gin.Context) {
	var input createUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		// Any violation rejects the request before the store is touched.
		c.JSON(http.StatusBadRequest, gin.H{"errors": validationErrors(err)})
		return
	}

	if err := h.services.Users.Create(c.Request.Context(), input.Username, input.Email, input.Password); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, msgDatabaseError, "create_user_failed", err,
			"username", input.Username)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msgUserCreated})
}

// @Summary      Delete user
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /users/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteUser(c *gin.Context) {
	id, ok := h.idParamOrBadRequest(c)
	if !ok {
		return
	}

	if err := h.services.Users.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": msgUserNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, msgDatabaseError, "delete_user_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("User %d dihapus", id)})
}

// validationErrors converts a binding failure into field-level violations,
// one entry per failed rule, in struct field order.
func validationErrors(err error) []gin.H {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Not a field violation (e.g. unparseable JSON).
		return []gin.H{{"message": "Invalid request body"}}
	}
	out := make([]gin.H, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, gin.H{
			"field":   strings.ToLower(fe.Field()),
			"message": validationMessage(fe),
		})
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "email":
		return "must be a valid email address"
	default:
		return "is invalid"
	}
}
