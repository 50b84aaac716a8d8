package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/shopcatalog/internal/log"
	"github.com/nao1215/shopcatalog/internal/model"
)

// FileName is the name of the database file inside the database directory.
const FileName = "shopcatalog.db"

// CatalogDB provides SQLite-based storage for catalog products.
// It implements model.RowFetcher.
type CatalogDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file, or ":memory:".
	dbPath string

	logger *slog.Logger
}

// Options configures CatalogDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging.
	EnableWAL bool

	// Logger receives debug output for each statement. Nil disables logging.
	Logger *slog.Logger
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a CatalogDB in the specified directory.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*CatalogDB, error) {
	dbPath := filepath.Join(dbDir, FileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// mode=rw refuses to create a missing file, mode=rwc allows it.
	dsn := dbPath + "?mode=rw"
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	return initialize(db, dbPath, opts.Logger)
}

// OpenMemory opens a private in-memory database. The data is lost when
// the CatalogDB is closed.
func OpenMemory(logger *slog.Logger) (*CatalogDB, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every new connection would see its own empty database, so the single
	// connection must never be recycled.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	return initialize(db, ":memory:", logger)
}

func initialize(db *sql.DB, dbPath string, logger *slog.Logger) (*CatalogDB, error) {
	if logger == nil {
		logger = log.Discard()
	}

	cdb := &CatalogDB{
		db:     db,
		dbPath: dbPath,
		logger: logger,
	}

	if err := cdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	logger.Debug("catalog database ready", "path", dbPath)
	return cdb, nil
}

// Close closes the database connection.
func (cdb *CatalogDB) Close() error {
	return cdb.db.Close()
}

// Path returns the database file path.
func (cdb *CatalogDB) Path() string {
	return cdb.dbPath
}

// createTables creates the database schema if it doesn't exist.
func (cdb *CatalogDB) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS products (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		type TEXT,
		firstname TEXT,
		mainname TEXT,
		title TEXT,
		price REAL,
		numpages INTEGER,
		playlength INTEGER,
		discount INTEGER
	);
	`

	_, err := cdb.db.ExecContext(context.Background(), schema)
	return err
}

// FetchRow retrieves the product row with the given id.
// It returns an error wrapping model.ErrNotFound when no row matches.
func (cdb *CatalogDB) FetchRow(ctx context.Context, id int64) (*model.ProductRow, error) {
	query := `
	SELECT id, type, firstname, mainname, title, price, numpages, playlength, discount
	FROM products
	WHERE id = ?
	`

	var (
		row        model.ProductRow
		kind       sql.NullString
		firstName  sql.NullString
		mainName   sql.NullString
		title      sql.NullString
		price      sql.NullFloat64
		numPages   sql.NullInt64
		playLength sql.NullInt64
		discount   sql.NullInt64
	)

	err := cdb.db.QueryRowContext(ctx, query, id).Scan(
		&row.ID,
		&kind,
		&firstName,
		&mainName,
		&title,
		&price,
		&numPages,
		&playLength,
		&discount,
	)
	if errors.Is(err, sql.ErrNoRows) {
		cdb.logger.Debug("product row not found", "id", id)
		return nil, fmt.Errorf("product %d: %w", id, model.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product row: %w", err)
	}

	row.Type = kind.String
	if firstName.Valid {
		row.FirstName = &firstName.String
	}
	row.MainName = mainName.String
	row.Title = title.String
	row.Price = decimal.NewFromFloat(price.Float64)
	row.NumPages = int(numPages.Int64)
	row.PlayLength = int(playLength.Int64)
	row.Discount = int(discount.Int64)

	return &row, nil
}

// InsertRow inserts a product row and returns its new id.
// The row's ID field is ignored; SQLite assigns the identifier.
func (cdb *CatalogDB) InsertRow(ctx context.Context, row *model.ProductRow) (int64, error) {
	query := `
	INSERT INTO products (type, firstname, mainname, title, price, numpages, playlength, discount)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	var firstName sql.NullString
	if row.FirstName != nil {
		firstName = sql.NullString{String: *row.FirstName, Valid: true}
	}

	result, err := cdb.db.ExecContext(ctx, query,
		row.Type,
		firstName,
		row.MainName,
		row.Title,
		row.Price.InexactFloat64(),
		nullableCount(row.NumPages),
		nullableCount(row.PlayLength),
		row.Discount,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert product: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read product id: %w", err)
	}

	cdb.logger.Debug("product row inserted", "id", id, "type", row.Type)
	return id, nil
}

// SaveProduct stores p as a new row and assigns the generated id to it.
func (cdb *CatalogDB) SaveProduct(ctx context.Context, p model.Product) (int64, error) {
	row, err := model.ToRow(p)
	if err != nil {
		return 0, err
	}

	id, err := cdb.InsertRow(ctx, row)
	if err != nil {
		return 0, err
	}

	p.SetID(id)
	return id, nil
}

// ListIDs returns every product id in ascending order.
func (cdb *CatalogDB) ListIDs(ctx context.Context) ([]int64, error) {
	rows, err := cdb.db.QueryContext(ctx, "SELECT id FROM products ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan product id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// DeleteProduct removes the product with the given id.
func (cdb *CatalogDB) DeleteProduct(ctx context.Context, id int64) error {
	result, err := cdb.db.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("product %d: %w", id, model.ErrNotFound)
	}
	return nil
}

// nullableCount stores zero counts as NULL, matching rows written for
// variants that do not use the column.
func nullableCount(n int) sql.NullInt64 {
	if n == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(n), Valid: true}
}

var _ model.RowFetcher = (*CatalogDB)(nil)
