// Package identity resolves numeric user and artist ids to profile
// records held by the remote identity service. The service is the only
// owner of user identity; nothing in it is stored locally.
package identity

// ArtistProfile is the identity service's view of an artist.
// JSON field names follow the upstream contract.
type ArtistProfile struct {
	ID        uint    `json:"id"`
	Username  string  `json:"nombreusuario"`
	PhotoURL  *string `json:"rutafoto"`
	IsNew     bool    `json:"esnovedad"`
	Listeners int64   `json:"oyentes"`
	Genre     *string `json:"genero"`
}

// UserProfile is the identity service's view of a plain user.
type UserProfile struct {
	ID       uint    `json:"id"`
	Username string  `json:"nombreusuario"`
	IsArtist bool    `json:"esartista"`
	PhotoURL *string `json:"rutafoto"`
}
