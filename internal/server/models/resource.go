package models

import "time"

// Destination is a tourist site in the village.
type Destination struct {
	ID          int64     `json:"id_destination"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    *string   `json:"image_url"`
	LocationURL *string   `json:"location_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DestinationInput carries create and update payloads. Nil fields are
// left unchanged by an update.
type DestinationInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	LocationURL *string `json:"location_url"`
}

// Package is a travel package bundling destinations.
type Package struct {
	ID           int64     `json:"id_package"`
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	Price        *float64  `json:"price"`
	Destinations []int64   `json:"destinations"`
	Benefits     []string  `json:"benefits"`
	ImageURL     *string   `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PackageInput carries create and update payloads. A nil slice means the
// field was absent; an empty slice clears it.
type PackageInput struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price"`
	Destinations []int64  `json:"destinations"`
	Benefits     []string `json:"benefits"`
	ImageURL     *string  `json:"image_url"`
}

// Blog is a news or information post.
type Blog struct {
	ID        int64     `json:"id_blog"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ImageURL  *string   `json:"image_url"`
	PostURL   *string   `json:"post_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BlogInput struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	ImageURL *string `json:"image_url"`
	PostURL  *string `json:"post_url"`
}

// Deleted identifies a soft-deleted record by id and its display label
// (name or title).
type Deleted struct {
	ID    int64
	Label string
}
