// Package entity contains the core business objects of the project.
package entity

// Chocolate is a single catalog entry.
type Chocolate struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	// Price is a display string with the currency symbol embedded
	// (e.g. "₹120"), never parsed as a number.
	Price string `json:"price"`
	// Img is a short relative asset path such as "images/chocolate1.jpg".
	// Inline data-URI payloads are rejected at creation.
	Img string `json:"img"`
}
