package web

import (
	"net/http"

	"github.com/jonathan/jobdeck/internal/types"
)

func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	if s.sessions.IsAuthenticated() {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	s.render(w, http.StatusOK, "login.html", s.pageData(r, nil))
}

// handleLogin exchanges credentials for a token, persists it, then fetches
// the profile. The token is durable before the profile round trip so a
// failure there still leaves a usable session.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")

	login, err := s.api.Login(r.Context(), email, password)
	if err != nil {
		s.render(w, http.StatusUnauthorized, "login.html", s.pageData(r, map[string]any{
			"Error": loginErrorMessage(err),
			"Email": email,
		}))
		return
	}

	if err := s.sessions.SetToken(login.AccessToken); err != nil {
		s.fail(w, r, err)
		return
	}

	user, err := s.api.Me(r.Context())
	if err == nil {
		if saveErr := s.sessions.SetUser(user); saveErr != nil {
			s.fail(w, r, saveErr)
			return
		}
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (s *Server) handleRegisterPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "register.html", s.pageData(r, nil))
}

// handleRegister creates the account then logs straight in.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	req := types.RegisterRequest{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
		FullName: r.FormValue("full_name"),
	}
	if err := req.Validate(); err != nil {
		s.render(w, http.StatusBadRequest, "register.html", s.pageData(r, map[string]any{
			"Error":    "Please provide a valid email, a full name, and a password of at least 8 characters.",
			"Email":    req.Email,
			"FullName": req.FullName,
		}))
		return
	}

	if _, err := s.api.Register(r.Context(), req.Email, req.Password, req.FullName); err != nil {
		s.render(w, http.StatusBadRequest, "register.html", s.pageData(r, map[string]any{
			"Error":    loginErrorMessage(err),
			"Email":    req.Email,
			"FullName": req.FullName,
		}))
		return
	}

	login, err := s.api.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err := s.sessions.SetToken(login.AccessToken); err != nil {
		s.fail(w, r, err)
		return
	}
	if user, err := s.api.Me(r.Context()); err == nil {
		_ = s.sessions.SetUser(user)
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Logout(); err != nil {
		s.fail(w, r, err)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// loginErrorMessage keeps backend auth errors short enough for the form.
func loginErrorMessage(err error) string {
	msg := err.Error()
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return msg
}
