package handler

import (
	"errors"
	"net/http"

	"go-clinic-management/config"
	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/delivery/http/view"
	"go-clinic-management/internal/usecase"
	"go-clinic-management/pkg/flash"
	"go-clinic-management/pkg/response"
	"go-clinic-management/pkg/validator"

	"github.com/sirupsen/logrus"
)

const (
	msgLoginSuccess       = "Connexion réussie!"
	msgInvalidCredentials = "Identifiants incorrects"
	msgLoggedOut          = "Vous avez été déconnecté"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
	view        *view.Renderer
	session     config.SessionConfig
	log         *logrus.Logger
}

func NewAuthHandler(
	authUsecase usecase.AuthUsecase,
	validator *validator.CustomValidator,
	view *view.Renderer,
	session config.SessionConfig,
	log *logrus.Logger,
) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
		view:        view,
		session:     session,
		log:         log,
	}
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.view.Render(w, r, http.StatusOK, view.PageLogin, nil)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.rejectLogin(w, r)
		return
	}

	req := dto.LoginRequest{
		Username: formString(r, "username"),
		Password: r.PostFormValue("password"),
	}
	if err := h.validator.Validate(&req); err != nil {
		h.rejectLogin(w, r)
		return
	}

	session, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			h.rejectLogin(w, r)
			return
		}
		h.view.Error(w, r)
		return
	}

	cookie := &http.Cookie{
		Name:     h.session.CookieName,
		Value:    session.Token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
	if session.ExpiresIn > 0 {
		cookie.MaxAge = int(session.ExpiresIn.Seconds())
	}
	http.SetCookie(w, cookie)

	flash.Add(w, r, flash.Success, msgLoginSuccess)
	response.Redirect(w, r, "/dashboard")
}

func (h *AuthHandler) rejectLogin(w http.ResponseWriter, r *http.Request) {
	flash.Add(w, r, flash.Danger, msgInvalidCredentials)
	h.view.Render(w, r, http.StatusUnauthorized, view.PageLogin, nil)
}

// Logout always clears the cookie, even when the session is already gone
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.session.CookieName); err == nil {
		if err := h.authUsecase.Logout(r.Context(), cookie.Value); err != nil {
			h.log.Warnf("Failed to revoke session: %+v", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	flash.Add(w, r, flash.Info, msgLoggedOut)
	response.Redirect(w, r, "/login")
}

// Home only runs behind the auth gate, so the visitor is logged in
func (h *AuthHandler) Home(w http.ResponseWriter, r *http.Request) {
	response.Redirect(w, r, "/dashboard")
}
