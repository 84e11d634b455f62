package entity

import "time"

// CartItem is one row of the single shared cart. There is at most one row
// per chocolate; repeated adds increment Quantity instead of inserting.
type CartItem struct {
	ID          int64     `json:"id"`
	ChocolateID int64     `json:"chocolate_id"`
	Quantity    int       `json:"quantity"`
	CreatedAt   time.Time `json:"created_at"`
}

// CartLine is a cart row joined with its chocolate's display data. It carries
// the cart row id and the chocolate id under distinct names so consumers can
// never confuse "remove by cart row" with "remove by chocolate".
type CartLine struct {
	CartID      int64  `json:"cart_id"`
	Quantity    int    `json:"quantity"`
	ChocolateID int64  `json:"chocolate_id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Img         string `json:"img"`
}
