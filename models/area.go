package models

// Area types.
const (
	AreaHotDesk       = "hot_desk"
	AreaPrivateOffice = "private_office"
	AreaMeetingRoom   = "meeting_room"
)

// Pricing holds the tiered rates for an area, in IDR.
type Pricing struct {
	Hourly  int64 `bson:"hourly" json:"hourly"`
	Daily   int64 `bson:"daily" json:"daily"`
	Weekly  int64 `bson:"weekly" json:"weekly"`
	Monthly int64 `bson:"monthly" json:"monthly"`
}

// Area is a bookable resource unit (hot desk, private office, meeting room).
type Area struct {
	ID          string  `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Type        string  `bson:"type" json:"type"`
	Capacity    int     `bson:"capacity" json:"capacity"`
	Available   int     `bson:"available" json:"available"` // Always <= Capacity
	Pricing     Pricing `bson:"pricing" json:"pricing"`
	IsAvailable bool    `bson:"is_available" json:"isAvailable"`

	// Allowed booking duration range in minutes. Zero means no bound.
	MinDuration int `bson:"min_duration,omitempty" json:"minDuration,omitempty"`
	MaxDuration int `bson:"max_duration,omitempty" json:"maxDuration,omitempty"`
}
