package config

import (
	"context"
	"database/sql"
	"fmt"
)

// schema is applied in order by Migrate. Every statement must stay idempotent.
var schema = []struct {
	Table string
	DDL   string
}{
	{"users", `
CREATE TABLE IF NOT EXISTS users (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	email VARCHAR(255) NOT NULL,
	password_hash VARCHAR(255) NOT NULL,
	role VARCHAR(32) NOT NULL DEFAULT 'editor',
	status VARCHAR(32) NOT NULL DEFAULT 'active',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_users_email (email)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	{"categories", `
CREATE TABLE IF NOT EXISTS categories (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	slug VARCHAR(255) NOT NULL,
	type VARCHAR(64) NOT NULL DEFAULT '',
	description TEXT NOT NULL,
	image_url VARCHAR(1024) NOT NULL DEFAULT '',
	display_order INT NOT NULL DEFAULT 0,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_categories_slug (slug)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	{"services", `
CREATE TABLE IF NOT EXISTS services (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	category VARCHAR(255) NOT NULL DEFAULT '',
	description TEXT NOT NULL,
	pricing JSON,
	images JSON,
	location VARCHAR(255) NOT NULL DEFAULT '',
	inventory JSON,
	itinerary JSON,
	features JSON,
	inclusions JSON,
	exclusions JSON,
	display_order INT NOT NULL DEFAULT 0,
	is_active TINYINT(1) NOT NULL DEFAULT 1,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	KEY idx_services_category (category)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	{"bookings", `
CREATE TABLE IF NOT EXISTS bookings (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	service_id BIGINT NULL,
	customer_info JSON,
	service_details JSON,
	status VARCHAR(32) NOT NULL DEFAULT 'pending',
	total_amount DECIMAL(12,2) NOT NULL DEFAULT 0,
	currency VARCHAR(8) NOT NULL DEFAULT 'MUR',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	KEY idx_bookings_status (status),
	KEY idx_bookings_created (created_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	{"menus", `
CREATE TABLE IF NOT EXISTS menus (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	location VARCHAR(64) NOT NULL,
	items JSON,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_menus_location (location)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	{"hero_slides", `
CREATE TABLE IF NOT EXISTS hero_slides (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	title VARCHAR(255) NOT NULL,
	subtitle VARCHAR(512) NOT NULL DEFAULT '',
	image_url VARCHAR(1024) NOT NULL DEFAULT '',
	cta_text VARCHAR(128) NOT NULL DEFAULT '',
	cta_link VARCHAR(1024) NOT NULL DEFAULT '',
	display_order INT NOT NULL DEFAULT 0,
	is_active TINYINT(1) NOT NULL DEFAULT 1
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	{"promotions", `
CREATE TABLE IF NOT EXISTS promotions (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	title VARCHAR(255) NOT NULL,
	description TEXT NOT NULL,
	discount_percent DECIMAL(5,2) NOT NULL DEFAULT 0,
	image_url VARCHAR(1024) NOT NULL DEFAULT '',
	valid_from DATE NULL,
	valid_until DATE NULL,
	display_order INT NOT NULL DEFAULT 0,
	is_active TINYINT(1) NOT NULL DEFAULT 1
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	{"team_members", `
CREATE TABLE IF NOT EXISTS team_members (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	role VARCHAR(255) NOT NULL DEFAULT '',
	bio TEXT NOT NULL,
	photo_url VARCHAR(1024) NOT NULL DEFAULT '',
	display_order INT NOT NULL DEFAULT 0,
	is_active TINYINT(1) NOT NULL DEFAULT 1
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	{"testimonials", `
CREATE TABLE IF NOT EXISTS testimonials (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	author VARCHAR(255) NOT NULL,
	location VARCHAR(255) NOT NULL DEFAULT '',
	content TEXT NOT NULL,
	rating TINYINT NOT NULL DEFAULT 5,
	avatar_url VARCHAR(1024) NOT NULL DEFAULT '',
	display_order INT NOT NULL DEFAULT 0,
	is_active TINYINT(1) NOT NULL DEFAULT 1
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	{"reviews", `
CREATE TABLE IF NOT EXISTS reviews (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	service_id BIGINT NOT NULL,
	author_name VARCHAR(255) NOT NULL,
	author_email VARCHAR(255) NOT NULL DEFAULT '',
	rating TINYINT NOT NULL,
	comment TEXT NOT NULL,
	status VARCHAR(32) NOT NULL DEFAULT 'pending',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	KEY idx_reviews_service_status (service_id, status)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	{"email_templates", `
CREATE TABLE IF NOT EXISTS email_templates (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	slug VARCHAR(128) NOT NULL,
	name VARCHAR(255) NOT NULL,
	subject VARCHAR(512) NOT NULL DEFAULT '',
	body MEDIUMTEXT NOT NULL,
	UNIQUE KEY uniq_email_templates_slug (slug)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	{"flights", `
CREATE TABLE IF NOT EXISTS flights (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	airline VARCHAR(255) NOT NULL,
	flight_number VARCHAR(32) NOT NULL,
	origin VARCHAR(64) NOT NULL,
	destination VARCHAR(64) NOT NULL,
	departure_at DATETIME NULL,
	arrival_at DATETIME NULL,
	price DECIMAL(12,2) NOT NULL DEFAULT 0,
	currency VARCHAR(8) NOT NULL DEFAULT 'MUR',
	seats_available INT NOT NULL DEFAULT 0,
	status VARCHAR(32) NOT NULL DEFAULT 'drafted',
	display_order INT NOT NULL DEFAULT 0
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	{"media_assets", `
CREATE TABLE IF NOT EXISTS media_assets (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	file_name VARCHAR(255) NOT NULL,
	path VARCHAR(1024) NOT NULL,
	url VARCHAR(1024) NOT NULL,
	mime_type VARCHAR(128) NOT NULL DEFAULT '',
	size_bytes BIGINT NOT NULL DEFAULT 0,
	folder VARCHAR(128) NOT NULL DEFAULT '',
	alt_text VARCHAR(512) NOT NULL DEFAULT '',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	KEY idx_media_folder (folder)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	{"site_settings", `
CREATE TABLE IF NOT EXISTS site_settings (
	` + "`key`" + ` VARCHAR(128) PRIMARY KEY,
	value JSON,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	{"pages", `
CREATE TABLE IF NOT EXISTS pages (
	slug VARCHAR(128) PRIMARY KEY,
	content JSON,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	{"newsletter_subscribers", `
CREATE TABLE IF NOT EXISTS newsletter_subscribers (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	email VARCHAR(255) NOT NULL,
	status VARCHAR(32) NOT NULL DEFAULT 'subscribed',
	source VARCHAR(64) NOT NULL DEFAULT '',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_newsletter_email (email)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	{"hotel_rooms", `
CREATE TABLE IF NOT EXISTS hotel_rooms (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	service_id BIGINT NOT NULL,
	name VARCHAR(255) NOT NULL,
	description TEXT NOT NULL,
	base_price DECIMAL(12,2) NOT NULL DEFAULT 0,
	max_guests INT NOT NULL DEFAULT 2,
	images JSON,
	display_order INT NOT NULL DEFAULT 0,
	KEY idx_hotel_rooms_service (service_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	{"room_daily_prices", `
CREATE TABLE IF NOT EXISTS room_daily_prices (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	room_id BIGINT NOT NULL,
	date DATE NOT NULL,
	price DECIMAL(12,2) NULL,
	is_blocked TINYINT(1) NOT NULL DEFAULT 0,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_room_date (room_id, date)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	{"contact_messages", `
CREATE TABLE IF NOT EXISTS contact_messages (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	email VARCHAR(255) NOT NULL,
	phone VARCHAR(64) NOT NULL DEFAULT '',
	subject VARCHAR(255) NOT NULL DEFAULT '',
	message TEXT NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
}

// Migrate creates any missing table. Existing tables are left untouched.
func Migrate(ctx context.Context, db *sql.DB) ([]string, error) {
	if db == nil {
		return nil, fmt.Errorf("db not available")
	}
	applied := make([]string, 0, len(schema))
	for _, s := range schema {
		if _, err := db.ExecContext(ctx, s.DDL); err != nil {
			return applied, fmt.Errorf("create %s: %w", s.Table, err)
		}
		applied = append(applied, s.Table)
	}
	return applied, nil
}

// Tables lists the tables Migrate manages, in creation order.
func Tables() []string {
	out := make([]string, len(schema))
	for i, s := range schema {
		out[i] = s.Table
	}
	return out
}
