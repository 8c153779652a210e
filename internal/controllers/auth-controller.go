package controllers

import (
	"fmt"
	"net/http"

	"github.com/adamingor/dodo-pizza-api/internal/auth"
	"github.com/adamingor/dodo-pizza-api/internal/mailer"
	"github.com/adamingor/dodo-pizza-api/internal/models"
	"github.com/adamingor/dodo-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// AuthController wires registration, login, Google sign-in and the password
// reset flow to the session cookie.
type AuthController struct {
	userService   services.UserService
	sessions      *auth.Sessions
	google        auth.GoogleVerifier
	mail          mailer.Mailer
	secureCookies bool
	appURL        string
}

func NewAuthController(userService services.UserService, sessions *auth.Sessions, google auth.GoogleVerifier, mail mailer.Mailer, secureCookies bool, appURL string) *AuthController {
	return &AuthController{
		userService:   userService,
		sessions:      sessions,
		google:        google,
		mail:          mail,
		secureCookies: secureCookies,
		appURL:        appURL,
	}
}

// setSessionCookie issues a session token for the user and attaches it as
// the signed auth cookie.
func (ac *AuthController) setSessionCookie(c *gin.Context, userID uint) error {
	token, err := ac.sessions.Issue(userID)
	if err != nil {
		return err
	}
	c.SetCookie(auth.CookieName, token, int(ac.sessions.TTL().Seconds()), "/", "", ac.secureCookies, true)
	return nil
}

func (ac *AuthController) Register(c *gin.Context) {
	var req struct {
		Name            string `json:"name" binding:"required"`
		Email           string `json:"email" binding:"required,email"`
		Password        string `json:"password" binding:"required,min=6"`
		ConfirmPassword string `json:"confirmPassword" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Password != req.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Passwords do not match"})
		return
	}

	user, err := ac.userService.Register(req.Name, req.Email, req.Password)
	if err != nil {
		c.JSON(models.StatusFor(err), gin.H{"error": err.Error()})
		return
	}

	if err := ac.setSessionCookie(c, user.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create session"})
		return
	}

	if err := ac.mail.Send(user.Email, "Welcome to Dodo Pizza!", mailer.WelcomeBody(user.Name)); err != nil {
		log.WithError(err).WithField("email", user.Email).Warn("Failed to send welcome email")
	}

	c.JSON(http.StatusCreated, gin.H{"data": user, "message": "User created successfully"})
}

func (ac *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ac.userService.Authenticate(req.Email, req.Password)
	if err != nil {
		c.JSON(models.StatusFor(err), gin.H{"error": err.Error()})
		return
	}

	if err := ac.setSessionCookie(c, user.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": "You have been succesfully logged in!"})
}

// GoogleSignIn verifies a Google ID token and signs the matching account in,
// creating a password-less account on first contact.
func (ac *AuthController) GoogleSignIn(c *gin.Context) {
	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := ac.google.Verify(c.Request.Context(), req.Token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "There was an unexpected issue"})
		return
	}

	user, err := ac.userService.FindOrCreateGoogleUser(profile.Sub, profile.Email, profile.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not sign in"})
		return
	}

	if err := ac.setSessionCookie(c, user.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "You have been succesfully logged in!"})
}

func (ac *AuthController) Logout(c *gin.Context) {
	if cookie, err := c.Cookie(auth.CookieName); err != nil || cookie == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "This user is not authenticated"})
		return
	}
	c.SetCookie(auth.CookieName, "", -1, "/", "", ac.secureCookies, true)
	c.JSON(http.StatusOK, gin.H{"data": "You were logged out"})
}

// Me returns the identity claim of the current session cookie.
func (ac *AuthController) Me(c *gin.Context) {
	cookie, err := c.Cookie(auth.CookieName)
	if err != nil || cookie == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "This user is not authenticated"})
		return
	}

	userID, err := ac.sessions.Verify(cookie)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "This user is not authenticated"})
		return
	}

	user, err := ac.userService.GetUserByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User was not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": user})
}

func (ac *AuthController) CheckEmail(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	taken, err := ac.userService.EmailTaken(req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not check email"})
		return
	}
	if taken {
		c.JSON(http.StatusConflict, gin.H{"error": "Email has been taken"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Email is not taken"})
}

func (ac *AuthController) ForgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	code, err := ac.userService.CreateVerificationCode(req.Email)
	if err != nil {
		c.JSON(models.StatusFor(err), gin.H{"error": err.Error()})
		return
	}

	resetLink := fmt.Sprintf("%s/reset-password/?token=%s", ac.appURL, code.Token)
	if err := ac.mail.Send(req.Email, "Reset your Dodo Pizza password", mailer.ResetBody(resetLink)); err != nil {
		log.WithError(err).WithField("email", req.Email).Warn("Failed to send reset email")
	}

	c.JSON(http.StatusOK, gin.H{"data": fmt.Sprintf("Reset link sent to %s", req.Email)})
}

func (ac *AuthController) ResetPassword(c *gin.Context) {
	var req struct {
		Token           string `json:"token" binding:"required"`
		Password        string `json:"password" binding:"required,min=6"`
		ConfirmPassword string `json:"confirmPassword" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Password != req.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Passwords do not match"})
		return
	}

	if err := ac.userService.ResetPassword(req.Token, req.Password); err != nil {
		c.JSON(models.StatusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": "Password was changed succesfully"})
}
