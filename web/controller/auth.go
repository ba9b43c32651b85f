// Package controller provides the HTTP handlers of the bio-analytica REST
// API: registration, authentication, sample management and the researcher
// directory.
package controller

import (
	"errors"
	"net/http"

	"bioanalytica/logger"
	"bioanalytica/web/entity"
	"bioanalytica/web/middleware"
	"bioanalytica/web/service"
	"bioanalytica/web/token"

	"github.com/gin-gonic/gin"
)

// RegisterForm is the registration request schema. Role is optional and
// defaults to "researcher".
type RegisterForm struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

// LoginForm is the login request schema.
type LoginForm struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthController handles register, login and token verification.
type AuthController struct {
	userService service.UserService

	secret []byte
}

// NewAuthController creates the controller and registers its routes.
// Register and login are public; verify-token runs behind the guard that
// reports an invalid token as 403.
func NewAuthController(g *gin.RouterGroup, secret []byte) *AuthController {
	a := &AuthController{secret: secret}
	a.initRouter(g)
	return a
}

func (a *AuthController) initRouter(g *gin.RouterGroup) {
	g.POST("/register", a.register)
	g.POST("/login", a.login)
	g.GET("/verify-token", middleware.Auth(a.secret, http.StatusForbidden), a.verifyToken)
}

// register creates a new account and logs it straight in: the response
// carries the sanitized user and a minted token.
func (a *AuthController) register(c *gin.Context) {
	var form RegisterForm
	if err := c.ShouldBindJSON(&form); err != nil {
		jsonError(c, http.StatusBadRequest, "auth.missingFields")
		return
	}

	user, err := a.userService.Register(form.Username, form.Email, form.Password, form.Role)
	if errors.Is(err, service.ErrValidation) {
		jsonError(c, http.StatusBadRequest, "auth.missingFields")
		return
	} else if errors.Is(err, service.ErrDuplicate) {
		jsonError(c, http.StatusBadRequest, "auth.duplicate")
		return
	} else if err != nil {
		jsonInternalError(c, "auth.registerFailed", err)
		return
	}

	tokenStr, err := token.Mint(user, a.secret)
	if err != nil {
		jsonInternalError(c, "auth.registerFailed", err)
		return
	}

	logger.Infof("registered user %q", user.Username)
	c.JSON(http.StatusOK, entity.AuthResult{Success: true, User: user, Token: tokenStr})
}

// login verifies credentials and mints a token. Unknown email and wrong
// password produce the same 401.
func (a *AuthController) login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		jsonError(c, http.StatusUnauthorized, "auth.badCredentials")
		return
	}

	user, err := a.userService.Login(form.Email, form.Password)
	if errors.Is(err, service.ErrAuth) {
		logger.Warningf("failed login for %q", form.Email)
		jsonError(c, http.StatusUnauthorized, "auth.badCredentials")
		return
	} else if err != nil {
		jsonInternalError(c, "auth.loginFailed", err)
		return
	}

	tokenStr, err := token.Mint(user, a.secret)
	if err != nil {
		jsonInternalError(c, "auth.loginFailed", err)
		return
	}

	logger.Infof("%s logged in", user.Username)
	c.JSON(http.StatusOK, entity.AuthResult{Success: true, User: user, Token: tokenStr})
}

// verifyToken echoes the claims of a valid token back to the client. The
// guard has already rejected missing (401) and invalid (403) tokens.
func (a *AuthController) verifyToken(c *gin.Context) {
	c.JSON(http.StatusOK, entity.VerifyResult{Success: true, User: middleware.GetClaims(c)})
}
