package handler

import (
	"sort"
	"time"

	"github.com/ecomlab/storefront-admin/internal/entities"
	"github.com/ecomlab/storefront-admin/internal/query"
)

// CustomerInfo is the free-form customer block used for search
type CustomerInfo struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// OrderItem is one order line
type OrderItem struct {
	ProductID int64   `json:"productId,omitempty"`
	Name      string  `json:"name" validate:"required"`
	Quantity  int     `json:"quantity" validate:"gte=1"`
	Price     float64 `json:"price" validate:"gte=0"`
}

// Order represents an order
type Order struct {
	UID          string       `json:"uid"`
	ID           int64        `json:"id"`
	UserID       int64        `json:"userId"`
	OrderNumber  string       `json:"orderNumber"`
	Status       string       `json:"status"`
	TotalAmount  float64      `json:"totalAmount"`
	CustomerInfo CustomerInfo `json:"customerInfo"`
	Items        []OrderItem  `json:"items"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// CreateOrderRequest is the POST /api/orders body. Required fields are
// pointers so a missing field can be named in the error message.
type CreateOrderRequest struct {
	UserID       *int64       `json:"userId"`
	Items        []OrderItem  `json:"items" validate:"dive"`
	TotalAmount  *float64     `json:"totalAmount"`
	Status       string       `json:"status"`
	CustomerInfo CustomerInfo `json:"customerInfo"`
}

// MissingFields names the absent required fields, in request order.
func (r CreateOrderRequest) MissingFields() []string {
	var missing []string
	if r.UserID == nil {
		missing = append(missing, "userId")
	}
	if r.Items == nil {
		missing = append(missing, "items")
	}
	if r.TotalAmount == nil {
		missing = append(missing, "totalAmount")
	}
	return missing
}

// UpdateOrderRequest is the PUT /api/orders/{id} body; nil fields are left
// unchanged.
type UpdateOrderRequest struct {
	Status        *string  `json:"status"`
	TotalAmount   *float64 `json:"totalAmount" validate:"omitempty,gte=0"`
	CustomerName  *string  `json:"customerName"`
	CustomerEmail *string  `json:"customerEmail" validate:"omitempty,email"`
}

// Pagination is the page metadata block of list responses
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalOrders int64 `json:"totalOrders"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`
	Limit       int   `json:"limit"`
}

func NewPagination(page query.Page, total int64) Pagination {
	totalPages := page.TotalPages(total)
	return Pagination{
		CurrentPage: page.Number,
		TotalPages:  totalPages,
		TotalOrders: total,
		HasNext:     page.Number < totalPages,
		HasPrev:     page.Number > 1,
		Limit:       page.Size,
	}
}

// UserPagination is the reduced metadata block of the per-user order list
type UserPagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalOrders int64 `json:"totalOrders"`
}

// StatusCount is one row of the per-status breakdown
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// StatsOverview aggregates order totals
type StatsOverview struct {
	TotalOrders       int64   `json:"totalOrders"`
	TotalRevenue      float64 `json:"totalRevenue"`
	AverageOrderValue float64 `json:"averageOrderValue"`
	MaxOrderValue     float64 `json:"maxOrderValue"`
	MinOrderValue     float64 `json:"minOrderValue"`
}

// OrderStats is the GET /api/orders/stats payload
type OrderStats struct {
	Overview        StatsOverview `json:"overview"`
	StatusBreakdown []StatusCount `json:"statusBreakdown"`
	RecentOrders    int64         `json:"recentOrders"`
}

// User represents a customer account
type User struct {
	UID           string    `json:"uid"`
	ID            int64     `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Email         string    `json:"email"`
	Age           int       `json:"age"`
	Gender        string    `json:"gender"`
	State         string    `json:"state"`
	StreetAddress string    `json:"street_address"`
	PostalCode    string    `json:"postal_code"`
	City          string    `json:"city"`
	Country       string    `json:"country"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	TrafficSource string    `json:"traffic_source"`
	CreatedAt     time.Time `json:"created_at"`
}

// Product represents a catalog product
type Product struct {
	UID                  string  `json:"uid"`
	ID                   int64   `json:"id"`
	Name                 string  `json:"name"`
	Brand                string  `json:"brand"`
	Category             string  `json:"category"`
	Department           string  `json:"department"`
	SKU                  string  `json:"sku"`
	Cost                 float64 `json:"cost"`
	RetailPrice          float64 `json:"retail_price"`
	DistributionCenterID int64   `json:"distribution_center_id"`
}

func OrderItemEntityToJSON(i entities.OrderItem) OrderItem {
	return OrderItem{
		ProductID: i.ProductID,
		Name:      i.Name,
		Quantity:  i.Quantity,
		Price:     i.Price,
	}
}

func OrderItemJSONToEntity(i OrderItem) entities.OrderItem {
	return entities.OrderItem{
		ProductID: i.ProductID,
		Name:      i.Name,
		Quantity:  i.Quantity,
		Price:     i.Price,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemEntityToJSON(it))
	}

	return Order{
		UID:         o.UID.String(),
		ID:          o.NumericID,
		UserID:      o.UserID,
		OrderNumber: o.OrderNumber,
		Status:      o.Status,
		TotalAmount: o.TotalAmount,
		CustomerInfo: CustomerInfo{
			Name:  o.CustomerName,
			Email: o.CustomerEmail,
		},
		Items:     items,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func OrdersEntityToJSON(orders []entities.Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderEntityToJSON(o))
	}
	return out
}

func CreateOrderRequestToEntity(r CreateOrderRequest) entities.Order {
	items := make([]entities.OrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, OrderItemJSONToEntity(it))
	}

	return entities.Order{
		UserID:        *r.UserID,
		Status:        r.Status,
		TotalAmount:   *r.TotalAmount,
		CustomerName:  r.CustomerInfo.Name,
		CustomerEmail: r.CustomerInfo.Email,
		Items:         items,
	}
}

func UpdateOrderRequestToEntity(r UpdateOrderRequest) entities.OrderUpdate {
	return entities.OrderUpdate{
		Status:        r.Status,
		TotalAmount:   r.TotalAmount,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
	}
}

func OrderStatsEntityToJSON(s entities.OrderStats) OrderStats {
	breakdown := make([]StatusCount, 0, len(s.StatusBreakdown))
	for status, count := range s.StatusBreakdown {
		breakdown = append(breakdown, StatusCount{Status: status, Count: count})
	}
	sort.Slice(breakdown, func(i, j int) bool { return breakdown[i].Status < breakdown[j].Status })

	return OrderStats{
		Overview: StatsOverview{
			TotalOrders:       s.TotalOrders,
			TotalRevenue:      s.TotalRevenue,
			AverageOrderValue: s.AverageOrderValue,
			MaxOrderValue:     s.MaxOrderValue,
			MinOrderValue:     s.MinOrderValue,
		},
		StatusBreakdown: breakdown,
		RecentOrders:    s.RecentOrders,
	}
}

func UserEntityToJSON(u entities.User) User {
	return User{
		UID:           u.UID.String(),
		ID:            u.NumericID,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Email:         u.Email,
		Age:           u.Age,
		Gender:        u.Gender,
		State:         u.State,
		StreetAddress: u.StreetAddress,
		PostalCode:    u.PostalCode,
		City:          u.City,
		Country:       u.Country,
		Latitude:      u.Latitude,
		Longitude:     u.Longitude,
		TrafficSource: u.TrafficSource,
		CreatedAt:     u.CreatedAt,
	}
}

func ProductEntityToJSON(p entities.Product) Product {
	return Product{
		UID:                  p.UID.String(),
		ID:                   p.NumericID,
		Name:                 p.Name,
		Brand:                p.Brand,
		Category:             p.Category,
		Department:           p.Department,
		SKU:                  p.SKU,
		Cost:                 p.Cost,
		RetailPrice:          p.RetailPrice,
		DistributionCenterID: p.DistributionCenterID,
	}
}
