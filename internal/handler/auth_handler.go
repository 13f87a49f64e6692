package handler

import (
	"net/http"
	"regexp"

	"farmdirect/marketplace/internal/model"
	"farmdirect/marketplace/internal/store"
)

// Same loose shape check the sign-up form applies; real address validation
// is out of scope for a demo.
var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// SignIn matches email and role against the user directory. Failures are a
// single generic message: the client cannot tell an unknown email from a
// wrong role.
func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	fields := map[string]string{}
	if req.Email == "" {
		fields["email"] = "Email is required"
	}
	if req.Password == "" {
		fields["password"] = "Password is required"
	}
	if len(fields) > 0 {
		writeFieldErrors(w, fields)
		return
	}

	if !h.store.SignIn(r.Context(), req.Email, req.Password, model.ParseRole(req.Role)) {
		writeError(w, http.StatusUnauthorized, "Invalid credentials. Please try again.")
		return
	}
	writeJSON(w, http.StatusOK, h.state())
}

type signUpRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Phone           string `json:"phone"`
	Location        string `json:"location"`
	Role            string `json:"role"`
	AcceptTerms     bool   `json:"accept_terms"`
}

func (req signUpRequest) validate() map[string]string {
	fields := map[string]string{}
	if req.Name == "" {
		fields["name"] = "Name is required"
	}
	switch {
	case req.Email == "":
		fields["email"] = "Email is required"
	case !emailPattern.MatchString(req.Email):
		fields["email"] = "Email is invalid"
	}
	if len(req.Password) < 6 {
		fields["password"] = "Password must be at least 6 characters"
	}
	if req.Password != req.ConfirmPassword {
		fields["confirm_password"] = "Passwords do not match"
	}
	if req.Phone == "" {
		fields["phone"] = "Phone number is required"
	}
	if req.Location == "" {
		fields["location"] = "Location is required"
	}
	if !req.AcceptTerms {
		fields["accept_terms"] = "You must accept the terms and conditions"
	}
	return fields
}

// SignUp creates a local user record and signs it in. The password is
// validated for shape but never stored: there is nothing to check it
// against later.
func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if fields := req.validate(); len(fields) > 0 {
		writeFieldErrors(w, fields)
		return
	}

	h.store.SignUp(r.Context(), store.SignUpInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Location: req.Location,
		Role:     model.ParseRole(req.Role),
	})
	writeJSON(w, http.StatusCreated, h.state())
}

func (h *Handler) SignOut(w http.ResponseWriter, r *http.Request) {
	h.store.SignOut()
	writeJSON(w, http.StatusOK, h.state())
}

type profileRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Avatar   string `json:"avatar"`
}

// UpdateProfile rewrites the mutable profile fields of the signed-in user.
// Identifier, role and join date stay as they are.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := h.store.CurrentUser()
	if !ok {
		writeError(w, http.StatusUnauthorized, "not signed in")
		return
	}

	var req profileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	fields := map[string]string{}
	if req.Name == "" {
		fields["name"] = "Name is required"
	}
	switch {
	case req.Email == "":
		fields["email"] = "Email is required"
	case !emailPattern.MatchString(req.Email):
		fields["email"] = "Email is invalid"
	}
	if len(fields) > 0 {
		writeFieldErrors(w, fields)
		return
	}

	user.Name = req.Name
	user.Email = req.Email
	user.Phone = req.Phone
	user.Location = req.Location
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}
	h.store.UpdateProfile(user)
	writeJSON(w, http.StatusOK, h.state())
}
