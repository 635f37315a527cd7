package entity

type DiscoveryMode string

const (
	DiscoveryNearby   DiscoveryMode = "nearby"
	DiscoveryFallback DiscoveryMode = "fallback"
)

// DiscoveryResult is the outcome of one discovery query. Fallback results
// carry no distance data and a user-facing notice explaining why the
// location could not be used.
type DiscoveryResult struct {
	Mode     DiscoveryMode   `json:"mode"`
	Profiles []NearbyProfile `json:"profiles"`
	Notice   string          `json:"notice,omitempty"`
}

const metersPerMile = 1609.34

// MetersToMiles converts a raw store distance to the display unit.
func MetersToMiles(meters float64) float64 {
	return meters / metersPerMile
}

// MilesToMeters converts a caller-chosen radius to the stored/query unit.
func MilesToMeters(miles float64) float64 {
	return miles * metersPerMile
}

type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
