package http

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/learnaray/learnaray/internal/handler/http/dto"
	usecasecontract "github.com/learnaray/learnaray/internal/usecase/contract"
)

// AuthHandler runs the Google OAuth flow and hands the resulting identity to
// the social-auth usecase.
type AuthHandler struct {
	UserUseCase usecasecontract.IUserUseCase
	Config      usecasecontract.IConfigProvider
}

func NewAuthHandler(uc usecasecontract.IUserUseCase, config usecasecontract.IConfigProvider) *AuthHandler {
	return &AuthHandler{
		UserUseCase: uc,
		Config:      config,
	}
}

type googleUserInfo struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

func (h *AuthHandler) googleOauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  h.Config.GetAppBaseURL() + "/api/v1/auth/google/callback",
		Scopes:       []string{"email", "profile"},
		Endpoint:     google.Endpoint,
	}
}

func (h *AuthHandler) HandleGoogleLogin(c *gin.Context) {
	b := make([]byte, 16)
	rand.Read(b)
	state := base64.URLEncoding.EncodeToString(b)
	c.SetCookie("oauthState", state, 300, "/", h.Config.GetCookieDomain(), h.Config.GetCookieSecure(), true)

	url := h.googleOauthConfig().AuthCodeURL(state)
	c.Redirect(http.StatusTemporaryRedirect, url)
}

func (h *AuthHandler) HandleGoogleCallback(c *gin.Context) {
	state := c.Query("state")
	cookieState, err := c.Cookie("oauthState")
	if err != nil || state != cookieState {
		ErrorHandler(c, http.StatusUnauthorized, "invalid CSRF state token")
		return
	}
	c.SetCookie("oauthState", "", -1, "/", h.Config.GetCookieDomain(), h.Config.GetCookieSecure(), true)

	code := c.Query("code")
	if code == "" {
		ErrorHandler(c, http.StatusBadRequest, "authorization code not provided")
		return
	}

	ctx := c.Request.Context()

	token, err := h.googleOauthConfig().Exchange(ctx, code)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, fmt.Sprintf("failed to exchange authorization code: %v", err))
		return
	}

	client := h.googleOauthConfig().Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, fmt.Sprintf("failed to get user info: %v", err))
		return
	}
	defer resp.Body.Close()

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		ErrorHandler(c, http.StatusInternalServerError, fmt.Sprintf("failed to decode user info: %v", err))
		return
	}

	user, accessToken, refreshToken, err := h.UserUseCase.SocialAuth(ctx, info.Name, info.Email, info.Picture)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}

	setAuthCookies(c, h.Config, accessToken, refreshToken)
	SuccessHandler(c, http.StatusOK, dto.LoginResponse{
		Success:      true,
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}
