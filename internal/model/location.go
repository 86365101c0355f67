package model

// SavedLocation is a location a signed-in user has saved.
type SavedLocation struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	IsFavorite bool    `json:"isFavorite"`
}

// SaveLocationRequest is the body of POST /api/locations/save.
type SaveLocationRequest struct {
	Name       string  `json:"name" validate:"required,max=128"`
	Latitude   float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude  float64 `json:"longitude" validate:"min=-180,max=180"`
	IsFavorite bool    `json:"isFavorite"`
}

// PlaceOption is one geocoding candidate returned by the places search.
type PlaceOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// PlaceDetails resolves a place id to coordinates plus the UTC offset
// at that location right now.
type PlaceDetails struct {
	Latitude              float64 `json:"latitude"`
	Longitude             float64 `json:"longitude"`
	TimezoneOffsetSeconds int     `json:"timezoneOffsetSeconds"`
}
