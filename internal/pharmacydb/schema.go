// ABOUTME: Pharmacy store schema: master/variant catalog, stock, ledger.
// ABOUTME: Movement and category enums are enforced with CHECK constraints.
package pharmacydb

// initSchema creates the pharmacy schema if it doesn't exist.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS medicine_master (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		category TEXT CHECK(category IN ('Q', 'DILUTION', 'BIOCHEMIC', 'COMPLEX', 'NOSODE', 'GLOBULE', 'OTHER')) NOT NULL,
		manufacturer TEXT DEFAULT '',
		is_active BOOLEAN DEFAULT 1,
		is_restricted BOOLEAN DEFAULT 0,
		notes TEXT DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS medicine_variants (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		medicine_id INTEGER NOT NULL,
		potency TEXT DEFAULT '',
		form TEXT DEFAULT '',
		bottle_size TEXT DEFAULT '',
		unit_type TEXT DEFAULT '',
		min_stock_level INTEGER DEFAULT 5,
		expiry_date DATE DEFAULT '',
		FOREIGN KEY (medicine_id) REFERENCES medicine_master(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS inventory_stock (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		variant_id INTEGER UNIQUE NOT NULL,
		quantity_available INTEGER DEFAULT 0,
		last_updated TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (variant_id) REFERENCES medicine_variants(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS inventory_movements (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		variant_id INTEGER NOT NULL,
		movement_type TEXT CHECK(movement_type IN ('IN', 'OUT', 'EXPIRED', 'ADJUST', 'RETURN')),
		quantity INTEGER NOT NULL,
		reference_type TEXT CHECK(reference_type IN ('PURCHASE', 'PRESCRIPTION', 'DISPOSAL', 'ADJUSTMENT')),
		reference_id TEXT DEFAULT '',
		timestamp TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		notes TEXT DEFAULT '',
		FOREIGN KEY (variant_id) REFERENCES medicine_variants(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS globule_stock (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		size INTEGER UNIQUE NOT NULL,
		quantity_available INTEGER DEFAULT 0,
		min_level INTEGER DEFAULT 10
	);

	CREATE INDEX IF NOT EXISTS idx_variants_medicine ON medicine_variants(medicine_id);
	CREATE INDEX IF NOT EXISTS idx_movements_variant ON inventory_movements(variant_id);
	CREATE INDEX IF NOT EXISTS idx_master_name ON medicine_master(name);
	`

	_, err := d.db.Exec(schema)
	return err
}
