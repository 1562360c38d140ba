package models

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by both login and register.
type AuthResponse struct {
	Token string `json:"token"`
	Sub   string `json:"sub"`
	Email string `json:"email"`
}

func (r *AuthResponse) Validate() error {
	return need("token", r.Token != "")
}

// Me describes the authenticated account.
type Me struct {
	Sub              string `json:"sub"`
	Email            string `json:"email"`
	FullName         string `json:"full_name"`
	VerifyIDVerified bool   `json:"verifyid_verified"`
}

func (m *Me) Validate() error {
	return need("sub", m.Sub != "")
}
