package database

// schemas holds the DDL per driver. Both dialects describe the same tables;
// timestamps are stored as "2006-01-02 15:04:05" strings in UTC.
var schemas = map[string][]string{
	DriverSQLite: {
		`CREATE TABLE IF NOT EXISTS categories (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name VARCHAR(255) NOT NULL,
			slug VARCHAR(255) UNIQUE NOT NULL,
			created_at VARCHAR(50) NOT NULL DEFAULT '',
			updated_at VARCHAR(50) NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price DECIMAL(10,2) NOT NULL DEFAULT 0 CHECK (price >= 0),
			category_id INTEGER NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
			status VARCHAR(20) NOT NULL DEFAULT 'active'
				CHECK (status IN ('active', 'inactive', 'discontinued')),
			created_at VARCHAR(50) NOT NULL DEFAULT '',
			updated_at VARCHAR(50) NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS registrations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			created_at VARCHAR(50) NOT NULL DEFAULT '',
			updated_at VARCHAR(50) NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS cache_entries (
			cache_key VARCHAR(255) PRIMARY KEY,
			value BLOB NOT NULL,
			expires_at BIGINT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id)`,
		`CREATE INDEX IF NOT EXISTS idx_products_status ON products(status)`,
		`CREATE INDEX IF NOT EXISTS idx_products_name ON products(name)`,
		`CREATE INDEX IF NOT EXISTS idx_cache_entries_expires ON cache_entries(expires_at)`,
	},
	DriverMySQL: {
		`CREATE TABLE IF NOT EXISTS categories (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			slug VARCHAR(255) UNIQUE NOT NULL,
			created_at VARCHAR(50) NOT NULL DEFAULT '',
			updated_at VARCHAR(50) NOT NULL DEFAULT ''
		) CHARACTER SET utf8mb4 COLLATE utf8mb4_unicode_ci`,
		`CREATE TABLE IF NOT EXISTS products (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL,
			price DECIMAL(10,2) NOT NULL DEFAULT 0,
			category_id BIGINT NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'active',
			created_at VARCHAR(50) NOT NULL DEFAULT '',
			updated_at VARCHAR(50) NOT NULL DEFAULT '',
			FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE CASCADE,
			INDEX idx_products_category (category_id),
			INDEX idx_products_status (status),
			INDEX idx_products_name (name)
		) CHARACTER SET utf8mb4 COLLATE utf8mb4_unicode_ci`,
		`CREATE TABLE IF NOT EXISTS registrations (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			created_at VARCHAR(50) NOT NULL DEFAULT '',
			updated_at VARCHAR(50) NOT NULL DEFAULT ''
		) CHARACTER SET utf8mb4 COLLATE utf8mb4_unicode_ci`,
		`CREATE TABLE IF NOT EXISTS cache_entries (
			cache_key VARCHAR(255) PRIMARY KEY,
			value LONGBLOB NOT NULL,
			expires_at BIGINT NOT NULL,
			INDEX idx_cache_entries_expires (expires_at)
		) CHARACTER SET utf8mb4 COLLATE utf8mb4_unicode_ci`,
	},
}
