package models

import (
	"time"
)

// Product is a catalog entry. Cart lines embed a snapshot of it, so edits to
// the catalog never rewrite carts or past orders.
type Product struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	Price           float64    `json:"price"`
	DiscountPrice   *float64   `json:"discount_price,omitempty"`
	DiscountEndDate *time.Time `json:"discount_end_date,omitempty"`
	Images          []string   `json:"images"`
	Category        string     `json:"category"`
	Tags            []string   `json:"tags"`
	IsFeatured      bool       `json:"is_featured"`
	IsLive          bool       `json:"is_live"`
	Stock           int        `json:"stock"`
	DigitalFile     string     `json:"digital_file,omitempty"`
}

// CartItem is one cart line. Quantity stays >= 1; a line driven to zero is
// removed rather than kept.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// HeroSlide is one entry of the home-page carousel, rotated in insertion order.
type HeroSlide struct {
	ID       string `json:"id"`
	ImageURL string `json:"image_url"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Link     string `json:"link"`
}

// ProductRequest is an append-only "request a product" form submission.
type ProductRequest struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
}
