package entity

import "time"

type Profile struct {
	ID                string    `json:"id"`
	Username          string    `json:"username"`
	Bio               string    `json:"bio,omitempty"`
	AvatarURL         string    `json:"avatar_url,omitempty"`
	BannerURL         string    `json:"banner_url,omitempty"`
	Website           string    `json:"website,omitempty"`
	LocationName      string    `json:"location_name,omitempty"`
	Tags              []string  `json:"tags,omitempty"`
	IsCreator         bool      `json:"is_creator"`
	IsVerified        bool      `json:"is_verified"`
	IsAdmin           bool      `json:"is_admin"`
	GhostMode         bool      `json:"ghost_mode"`
	SubscriptionPrice int64     `json:"subscription_price"` // cents, 0 = free
	BalanceCents      int64     `json:"balance_cents"`
	Latitude          float64   `json:"-"`
	Longitude         float64   `json:"-"`
	LastSeen          time.Time `json:"last_seen"`
	CreatedAt         time.Time `json:"created_at"`
}

// NearbyProfile is a discovery result row: a profile plus its raw linear
// distance from the viewer in meters (display conversion is the caller's).
type NearbyProfile struct {
	Profile
	DistanceMeters float64 `json:"dist_meters"`
}
