package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ProfileModel shares its id with the auth user row.
type ProfileModel struct {
	ID                string         `gorm:"type:uuid;primary_key" json:"id"`
	Username          string         `gorm:"uniqueIndex;not null" json:"username"`
	Bio               string         `json:"bio"`
	AvatarURL         string         `json:"avatar_url"`
	BannerURL         string         `json:"banner_url"`
	Website           string         `json:"website"`
	LocationName      string         `json:"location_name"`
	Tags              pq.StringArray `gorm:"type:text[]" json:"tags"`
	IsCreator         bool           `gorm:"default:false" json:"is_creator"`
	IsVerified        bool           `gorm:"default:false" json:"is_verified"`
	IsAdmin           bool           `gorm:"default:false" json:"is_admin"`
	GhostMode         bool           `gorm:"default:false" json:"ghost_mode"`
	SubscriptionPrice int64          `gorm:"default:0" json:"subscription_price"`
	BalanceCents      int64          `gorm:"default:0" json:"balance_cents"`
	Latitude          float64        `json:"latitude"`
	Longitude         float64        `json:"longitude"`
	LastSeen          time.Time      `json:"last_seen"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ProfileModel) TableName() string {
	return "profiles"
}
