package model

// Role distinguishes the two kinds of marketplace accounts.
type Role string

const (
	RoleFarmer Role = "farmer"
	RoleBuyer  Role = "buyer"
)

// ParseRole returns the role matching s, defaulting to buyer.
func ParseRole(s string) Role {
	if s == string(RoleFarmer) {
		return RoleFarmer
	}
	return RoleBuyer
}

type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Avatar   string `json:"avatar,omitempty"`
	Location string `json:"location,omitempty"`
	Phone    string `json:"phone,omitempty"`
	JoinDate string `json:"join_date"` // YYYY-MM-DD
}

type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Unit        string   `json:"unit"` // kg, lb, piece, etc.
	Category    string   `json:"category"`
	FarmerID    string   `json:"farmer_id"`
	FarmerName  string   `json:"farmer_name"`
	Images      []string `json:"images"`
	InStock     bool     `json:"in_stock"`
	Quantity    int      `json:"quantity"`
	HarvestDate string   `json:"harvest_date"` // YYYY-MM-DD
	Location    string   `json:"location"`
	Organic     bool     `json:"organic"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"review_count"`
}

// CartItem pairs a product with how many units of it sit in the cart.
// Quantity is always >= 1; a zero-quantity entry is removed, never stored.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// ValidStatus reports whether s is one of the known order states.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

type Order struct {
	ID              string      `json:"id"`
	BuyerID         string      `json:"buyer_id"`
	FarmerID        string      `json:"farmer_id"`
	Items           []CartItem  `json:"items"`
	Total           float64     `json:"total"`
	Status          OrderStatus `json:"status"`
	OrderDate       string      `json:"order_date"` // YYYY-MM-DD
	DeliveryDate    string      `json:"delivery_date,omitempty"`
	ShippingAddress string      `json:"shipping_address"`
}
