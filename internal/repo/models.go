package repo

import (
	"database/sql"
	"time"

	"github.com/ecomlab/storefront-admin/internal/entities"
	"github.com/google/uuid"
)

type Order struct {
	UID           uuid.UUID      `db:"uid"`
	ID            int64          `db:"id"`
	UserID        int64          `db:"user_id"`
	OrderNumber   string         `db:"order_number"`
	Status        string         `db:"status"`
	TotalAmount   float64        `db:"total_amount"`
	CustomerName  sql.NullString `db:"customer_name"`
	CustomerEmail sql.NullString `db:"customer_email"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

type OrderItem struct {
	OrderUID  uuid.UUID     `db:"order_uid"`
	ProductID sql.NullInt64 `db:"product_id"`
	Name      string        `db:"name"`
	Quantity  int           `db:"quantity"`
	Price     float64       `db:"price"`
}

type User struct {
	UID           uuid.UUID `db:"uid"`
	ID            int64     `db:"id"`
	FirstName     string    `db:"first_name"`
	LastName      string    `db:"last_name"`
	Email         string    `db:"email"`
	Age           int       `db:"age"`
	Gender        string    `db:"gender"`
	State         string    `db:"state"`
	StreetAddress string    `db:"street_address"`
	PostalCode    string    `db:"postal_code"`
	City          string    `db:"city"`
	Country       string    `db:"country"`
	Latitude      float64   `db:"latitude"`
	Longitude     float64   `db:"longitude"`
	TrafficSource string    `db:"traffic_source"`
	CreatedAt     time.Time `db:"created_at"`
}

type Product struct {
	UID                  uuid.UUID `db:"uid"`
	ID                   int64     `db:"id"`
	Name                 string    `db:"name"`
	Brand                string    `db:"brand"`
	Category             string    `db:"category"`
	Department           string    `db:"department"`
	SKU                  string    `db:"sku"`
	Cost                 float64   `db:"cost"`
	RetailPrice          float64   `db:"retail_price"`
	DistributionCenterID int64     `db:"distribution_center_id"`
}

func OrderItemToEntity(i OrderItem) entities.OrderItem {
	return entities.OrderItem{
		ProductID: i.ProductID.Int64,
		Name:      i.Name,
		Quantity:  i.Quantity,
		Price:     i.Price,
	}
}

func OrderToEntity(o Order, items []OrderItem) entities.Order {
	order := entities.Order{
		UID:           o.UID,
		NumericID:     o.ID,
		UserID:        o.UserID,
		OrderNumber:   o.OrderNumber,
		Status:        o.Status,
		TotalAmount:   o.TotalAmount,
		CustomerName:  nullStringToString(o.CustomerName),
		CustomerEmail: nullStringToString(o.CustomerEmail),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, OrderItemToEntity(it))
		}
	}

	return order
}

func UserToEntity(u User) entities.User {
	return entities.User{
		UID:           u.UID,
		NumericID:     u.ID,
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

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		UID:                  p.UID,
		NumericID:            p.ID,
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

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullInt64(i int64) sql.NullInt64 {
	if i == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: i, Valid: true}
}
