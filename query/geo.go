package query

import "encoding/json"

// Circle bounds a query to rows whose coordinates fall within a radius in
// meters of a center point.
type Circle struct {
	lat    float64
	lng    float64
	meters float64
}

// NewCircle describes a circle of the given radius in meters around the
// WGS84 point (lat, lng). The radius is not validated client-side.
func NewCircle(lat, lng, meters float64) Circle {
	return Circle{lat: lat, lng: lng, meters: meters}
}

// MarshalJSON renders {"$circle":{"center":[<lat>,<lng>],"meters":<radius>}}.
func (c Circle) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"$circle": map[string]interface{}{
			"center": []float64{c.lat, c.lng},
			"meters": c.meters,
		},
	})
}
