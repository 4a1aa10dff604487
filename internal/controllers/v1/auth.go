package v1

import (
	"net/http"
	"time"

	"github.com/finance-tracker/backend/internal/auth"
	"github.com/finance-tracker/backend/internal/config"
	"github.com/finance-tracker/backend/internal/httputil"
	"github.com/finance-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the routes for registration and login
// with the RouterGroup that is passed.
func RegisterAuthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/register", OptionsAuth)
	r.POST("/register", Register)

	r.OPTIONS("/login", OptionsAuth)
	r.POST("/login", Login)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Authentication
// @Success		204
// @Router			/v1/auth/register [options]
func OptionsAuth(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Register
// @Description	Creates a new user and returns a session for it
// @Tags			Authentication
// @Produce		json
// @Success		201		{object}	SessionResponse
// @Failure		400		{object}	SessionResponse
// @Failure		500		{object}	SessionResponse
// @Param			user	body		UserEditable	true	"Credentials"
// @Router			/v1/auth/register [post]
func Register(c *gin.Context) {
	var editable UserEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	if editable.Password == "" {
		e := models.ErrPasswordEmpty.Error()
		c.JSON(http.StatusBadRequest, SessionResponse{
			Error: &e,
		})
		return
	}

	hash, err := auth.HashPassword(editable.Password)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	user := models.User{
		Username:     editable.Username,
		PasswordHash: hash,
	}

	err = models.DB.Create(&user).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	session, err := newSession(user)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusCreated, SessionResponse{Data: &session})
}

// @Summary		Login
// @Description	Verifies the credentials and returns a session
// @Tags			Authentication
// @Produce		json
// @Success		200		{object}	SessionResponse
// @Failure		400		{object}	SessionResponse
// @Failure		401		{object}	SessionResponse
// @Param			user	body		UserEditable	true	"Credentials"
// @Router			/v1/auth/login [post]
func Login(c *gin.Context) {
	var editable UserEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	var user models.User
	err = models.DB.Where("username = ?", editable.Username).First(&user).Error
	if err != nil {
		// Do not leak whether the username exists
		e := errInvalidCredentials.Error()
		c.JSON(http.StatusUnauthorized, SessionResponse{
			Error: &e,
		})
		return
	}

	if !auth.CheckPassword(editable.Password, user.PasswordHash) {
		e := errInvalidCredentials.Error()
		c.JSON(http.StatusUnauthorized, SessionResponse{
			Error: &e,
		})
		return
	}

	session, err := newSession(user)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, SessionResponse{Data: &session})
}

func newSession(user models.User) (Session, error) {
	cfg := config.Get()

	token, err := auth.NewToken(cfg.JWTSecret, user.ID, time.Duration(cfg.TokenTTLHours)*time.Hour)
	if err != nil {
		return Session{}, err
	}

	return Session{
		Token: token,
		User:  newUser(user),
	}, nil
}
