package models

import "fmt"

// Location represents a point chosen by the user during the booking flow
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

// GPS returns the location in the "lat,lng" form the exchange expects
func (l Location) GPS() string {
	return fmt.Sprintf("%.6f,%.6f", l.Latitude, l.Longitude)
}
