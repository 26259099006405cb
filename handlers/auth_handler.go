package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hallopetra/formbuilder-go/dto"
	"github.com/hallopetra/formbuilder-go/response"
	"github.com/hallopetra/formbuilder-go/services"
)

const sessionCookieMaxAge = 24 * 60 * 60

type AuthHandler struct {
	service *services.AuthService
}

func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login godoc
// @Summary Operator login
// @Tags auth
// @Accept json
// @Produce json
// @Param input body dto.LoginInput true "Admin credentials"
// @Success 200 {object} response.TokenResponse "Session token"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 401 {object} response.ErrorResponse "Invalid credentials"
// @Router /api/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	token, err := h.service.Login(input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: services.ErrInvalidCredentials.Error()})
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusOK, response.TokenResponse{Token: token, Email: input.Email})
}

// LoginForm handles the browser login page post: failures re-render the page
// with the generic error, success redirects to the originally requested path.
func (h *AuthHandler) LoginForm(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")
	next := c.PostForm("next")
	if next == "" || next[0] != '/' {
		next = "/admin"
	}

	token, err := h.service.Login(email, password)
	if err != nil {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"Error": services.ErrInvalidCredentials.Error(),
			"Email": email,
			"Next":  next,
		})
		return
	}

	h.setSessionCookie(c, token)
	c.Redirect(http.StatusFound, next)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie("token", token, sessionCookieMaxAge, "/", "", false, true)
}
