package models

import (
	"encoding/json"
	"time"

	"travellounge/internal/db"
)

// SiteSetting is a key -> JSON blob pair (contact info, social links, "seo", ...).
type SiteSetting struct {
	Key       string                   `json:"key" db:"key"`
	Value     db.JSON[json.RawMessage] `json:"value" db:"value"`
	UpdatedAt time.Time                `json:"updated_at" db:"updated_at"`
}

// Page is editable marketing content addressed by slug.
type Page struct {
	Slug      string                   `json:"slug" db:"slug"`
	Content   db.JSON[json.RawMessage] `json:"content" db:"content"`
	UpdatedAt time.Time                `json:"updated_at" db:"updated_at"`
}

type MediaAsset struct {
	ID        int64     `json:"id" db:"id"`
	FileName  string    `json:"file_name" db:"file_name"`
	Path      string    `json:"path" db:"path"`
	URL       string    `json:"url" db:"url"`
	MimeType  string    `json:"mime_type" db:"mime_type"`
	SizeBytes int64     `json:"size_bytes" db:"size_bytes"`
	Folder    string    `json:"folder" db:"folder"`
	AltText   string    `json:"alt_text" db:"alt_text"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type NewsletterSubscriber struct {
	ID        int64     `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Status    string    `json:"status" db:"status"`
	Source    string    `json:"source" db:"source"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type Review struct {
	ID          int64     `json:"id" db:"id"`
	ServiceID   int64     `json:"service_id" db:"service_id" binding:"required,gt=0"`
	AuthorName  string    `json:"author_name" db:"author_name" binding:"required"`
	AuthorEmail string    `json:"author_email" db:"author_email" binding:"omitempty,email"`
	Rating      int       `json:"rating" db:"rating" binding:"required,gte=1,lte=5"`
	Comment     string    `json:"comment" db:"comment"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type ContactMessage struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name" binding:"required"`
	Email     string    `json:"email" db:"email" binding:"required,email"`
	Phone     string    `json:"phone" db:"phone"`
	Subject   string    `json:"subject" db:"subject"`
	Message   string    `json:"message" db:"message" binding:"required"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// User is a back-office account. PasswordHash never leaves the server.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	Status       string    `json:"status" db:"status"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
