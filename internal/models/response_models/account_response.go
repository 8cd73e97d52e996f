package response_models

type AccountLoginResponse struct {
	Token string   `json:"token"`
	User  SafeUser `json:"user"`
}

// SafeUser is an account without credentials, timestamps as RFC3339.
type SafeUser struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Image       string   `json:"image,omitempty"`
	Role        string   `json:"role"`
	FavoriteIDs []string `json:"favoriteIds"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

// PublicUser is what anyone browsing may see of a host.
type PublicUser struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Image     string `json:"image,omitempty"`
	CreatedAt string `json:"createdAt"`
}
