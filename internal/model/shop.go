package model

import "time"

type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	ImageURL    string  `json:"imageUrl"`
}

// User is returned to clients as stored, password included.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Order references its user and products by value only; nothing checks
// that either exists.
type Order struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"userId"`
	ProductNames string    `json:"productNames"`
	TotalPrice   float64   `json:"totalPrice"`
	OrderDate    time.Time `json:"orderDate"`
}
