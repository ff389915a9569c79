package revenue

// SoldProduct is one order line of the seller's catalog, flattened for the
// revenue screens. SoldDate carries the order date as "2006-01-02".
type SoldProduct struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	ImageURL    string  `json:"imageUrl"`
	Quantity    int     `json:"quantity"`
	TotalAmount float64 `json:"totalAmount"`
	SoldDate    string  `json:"soldDate"`
	Category    string  `json:"category"`
	OrderID     uint    `json:"orderId"`
	OrderStatus string  `json:"orderStatus"`
}

type OrderGroup struct {
	OrderID     uint          `json:"orderId"`
	OrderStatus string        `json:"orderStatus"`
	SoldDate    string        `json:"soldDate"`
	Items       []SoldProduct `json:"items"`
	OrderTotal  float64       `json:"orderTotal"`
}

type Summary struct {
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalProductsSold int     `json:"totalProductsSold"`
	Period            string  `json:"period"`
}

type Filter struct {
	StartDate string
	EndDate   string
	Category  string
}
