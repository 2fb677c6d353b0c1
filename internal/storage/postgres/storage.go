package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/grubtruck/grubtruck/internal/domain/errors"
	"github.com/grubtruck/grubtruck/internal/domain/model"
	"github.com/grubtruck/grubtruck/internal/domain/repository"
)

// dbPool is the subset of pgxpool.Pool the storage relies on; satisfied by
// pgxmock pools in tests.
type dbPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// newPgxPool is swapped out in tests.
var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (dbPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   dbPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type truckRepository struct {
	storage *Storage
}

type menuRepository struct {
	storage *Storage
}

type cartRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Trucks() repository.TruckRepository {
	return &truckRepository{storage: s}
}

func (s *Storage) Menu() repository.MenuRepository {
	return &menuRepository{storage: s}
}

func (s *Storage) Carts() repository.CartRepository {
	return &cartRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            login TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS trucks (
            id SERIAL PRIMARY KEY,
            owner_id BIGINT UNIQUE NOT NULL REFERENCES users(id),
            name TEXT NOT NULL,
            truck_status TEXT NOT NULL DEFAULT 'active',
            order_status TEXT NOT NULL DEFAULT 'available',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS menu_items (
            id SERIAL PRIMARY KEY,
            truck_id BIGINT NOT NULL REFERENCES trucks(id),
            name TEXT NOT NULL,
            category TEXT NOT NULL,
            price DOUBLE PRECISION NOT NULL,
            description TEXT,
            status TEXT NOT NULL DEFAULT 'available',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS cart_lines (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            item_id BIGINT NOT NULL REFERENCES menu_items(id),
            quantity INT NOT NULL,
            price DOUBLE PRECISION NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            customer_id BIGINT NOT NULL REFERENCES users(id),
            truck_id BIGINT NOT NULL REFERENCES trucks(id),
            total_price DOUBLE PRECISION NOT NULL,
            status TEXT NOT NULL,
            scheduled_pickup_time TIMESTAMPTZ NOT NULL,
            estimated_earliest_pickup TIMESTAMPTZ,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            id SERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id),
            name TEXT NOT NULL,
            price DOUBLE PRECISION NOT NULL,
            quantity INT NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_menu_items_truck ON menu_items(truck_id)`,
		`CREATE INDEX IF NOT EXISTS idx_cart_lines_user ON cart_lines(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders(customer_id, id DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_truck ON orders(truck_id, id DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, login, passwordHash string, role model.Role) (*model.User, error) {
	const query = `INSERT INTO users (login, password_hash, role) VALUES ($1, $2, $3) RETURNING id, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, login, passwordHash, role).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Login = login
	u.PasswordHash = passwordHash
	u.Role = role
	return &u, nil
}

func (r *userRepository) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	const query = `SELECT u.id, u.login, u.password_hash, u.role, t.id, u.created_at
                   FROM users u LEFT JOIN trucks t ON t.owner_id = u.id
                   WHERE u.login=$1`
	return r.scanOne(r.storage.pool.QueryRow(ctx, query, login))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT u.id, u.login, u.password_hash, u.role, t.id, u.created_at
                   FROM users u LEFT JOIN trucks t ON t.owner_id = u.id
                   WHERE u.id=$1`
	return r.scanOne(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) scanOne(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Login, &u.PasswordHash, &u.Role, &u.TruckID, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- TruckRepository implementation ---

func (r *truckRepository) Create(ctx context.Context, ownerID int64, name string) (*model.Truck, error) {
	const query = `INSERT INTO trucks (owner_id, name) VALUES ($1, $2)
                   RETURNING id, truck_status, order_status, created_at`
	var t model.Truck
	err := r.storage.pool.QueryRow(ctx, query, ownerID, name).Scan(&t.ID, &t.TruckStatus, &t.OrderStatus, &t.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	t.OwnerID = ownerID
	t.Name = name
	return &t, nil
}

func (r *truckRepository) GetByID(ctx context.Context, id int64) (*model.Truck, error) {
	const query = `SELECT id, owner_id, name, truck_status, order_status, created_at FROM trucks WHERE id=$1`
	return r.scanOne(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *truckRepository) GetByOwner(ctx context.Context, ownerID int64) (*model.Truck, error) {
	const query = `SELECT id, owner_id, name, truck_status, order_status, created_at FROM trucks WHERE owner_id=$1`
	return r.scanOne(r.storage.pool.QueryRow(ctx, query, ownerID))
}

func (r *truckRepository) scanOne(row pgx.Row) (*model.Truck, error) {
	var t model.Truck
	err := row.Scan(&t.ID, &t.OwnerID, &t.Name, &t.TruckStatus, &t.OrderStatus, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *truckRepository) ListOpen(ctx context.Context) ([]model.Truck, error) {
	const query = `SELECT id, owner_id, name, truck_status, order_status, created_at
                   FROM trucks
                   WHERE truck_status='active' AND order_status='available'
                   ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Truck
	for rows.Next() {
		var t model.Truck
		if err := rows.Scan(&t.ID, &t.OwnerID, &t.Name, &t.TruckStatus, &t.OrderStatus, &t.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *truckRepository) UpdateOrderStatus(ctx context.Context, truckID int64, status model.TruckOrderStatus) error {
	const query = `UPDATE trucks SET order_status=$1 WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, status, truckID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- MenuRepository implementation ---

func (r *menuRepository) Create(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error) {
	const query = `INSERT INTO menu_items (truck_id, name, category, price, description, status)
                   VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
	created := *item
	err := r.storage.pool.QueryRow(ctx, query, item.TruckID, item.Name, item.Category, item.Price, item.Description, item.Status).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *menuRepository) GetByID(ctx context.Context, id int64) (*model.MenuItem, error) {
	const query = `SELECT id, truck_id, name, category, price, description, status, created_at
                   FROM menu_items WHERE id=$1`
	var m model.MenuItem
	err := r.storage.pool.QueryRow(ctx, query, id).
		Scan(&m.ID, &m.TruckID, &m.Name, &m.Category, &m.Price, &m.Description, &m.Status, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *menuRepository) ListByTruck(ctx context.Context, truckID int64, onlyAvailable bool) ([]model.MenuItem, error) {
	query := `SELECT id, truck_id, name, category, price, description, status, created_at
              FROM menu_items WHERE truck_id=$1`
	if onlyAvailable {
		query += ` AND status='available'`
	}
	query += ` ORDER BY id`

	rows, err := r.storage.pool.Query(ctx, query, truckID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.MenuItem
	for rows.Next() {
		var m model.MenuItem
		if err := rows.Scan(&m.ID, &m.TruckID, &m.Name, &m.Category, &m.Price, &m.Description, &m.Status, &m.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *menuRepository) Update(ctx context.Context, item *model.MenuItem) error {
	const query = `UPDATE menu_items SET name=$1, category=$2, price=$3, description=$4, status=$5
                   WHERE id=$6 AND truck_id=$7`
	tag, err := r.storage.pool.Exec(ctx, query, item.Name, item.Category, item.Price, item.Description, item.Status, item.ID, item.TruckID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *menuRepository) MarkUnavailable(ctx context.Context, id, truckID int64) error {
	const query = `UPDATE menu_items SET status='unavailable' WHERE id=$1 AND truck_id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, id, truckID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- CartRepository implementation ---

// Add serializes concurrent cart mutations per user by locking the user row,
// then verifies the item is orderable and the new line does not mix trucks
// before inserting.
func (r *cartRepository) Add(ctx context.Context, userID, itemID int64, quantity int32, price float64) (*model.CartLine, error) {
	var line *model.CartLine
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if err := lockUserCart(ctx, tx, userID); err != nil {
			return err
		}

		const itemQuery = `SELECT name, truck_id, status FROM menu_items WHERE id=$1`
		var (
			itemName string
			truckID  int64
			status   model.ItemStatus
		)
		if err := tx.QueryRow(ctx, itemQuery, itemID).Scan(&itemName, &truckID, &status); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}
		if status != model.ItemStatusAvailable {
			return domainErrors.ErrNotFound
		}

		const truckQuery = `SELECT DISTINCT mi.truck_id
                            FROM cart_lines cl JOIN menu_items mi ON mi.id = cl.item_id
                            WHERE cl.user_id=$1`
		rows, err := tx.Query(ctx, truckQuery, userID)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var existing int64
			if err := rows.Scan(&existing); err != nil {
				return err
			}
			if existing != truckID {
				return domainErrors.ErrConflictingTruck
			}
		}
		if err := rows.Err(); err != nil {
			return err
		}

		const insertQuery = `INSERT INTO cart_lines (user_id, item_id, quantity, price)
                             VALUES ($1, $2, $3, $4) RETURNING id, created_at`
		inserted := model.CartLine{
			UserID:   userID,
			ItemID:   itemID,
			Quantity: quantity,
			Price:    price,
			ItemName: itemName,
			TruckID:  truckID,
		}
		if err := tx.QueryRow(ctx, insertQuery, userID, itemID, quantity, price).Scan(&inserted.ID, &inserted.CreatedAt); err != nil {
			return err
		}
		line = &inserted
		return nil
	})
	if err != nil {
		return nil, err
	}
	return line, nil
}

func (r *cartRepository) ListByUser(ctx context.Context, userID int64) ([]model.CartLine, error) {
	const query = `SELECT cl.id, cl.user_id, cl.item_id, cl.quantity, cl.price, mi.name, mi.truck_id, cl.created_at
                   FROM cart_lines cl JOIN menu_items mi ON mi.id = cl.item_id
                   WHERE cl.user_id=$1 ORDER BY cl.id`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.CartLine
	for rows.Next() {
		var l model.CartLine
		if err := rows.Scan(&l.ID, &l.UserID, &l.ItemID, &l.Quantity, &l.Price, &l.ItemName, &l.TruckID, &l.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *cartRepository) UpdateQuantity(ctx context.Context, userID, cartID int64, quantity int32) error {
	const query = `UPDATE cart_lines SET quantity=$1 WHERE id=$2 AND user_id=$3`
	tag, err := r.storage.pool.Exec(ctx, query, quantity, cartID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *cartRepository) Remove(ctx context.Context, userID, cartID int64) error {
	const query = `DELETE FROM cart_lines WHERE id=$1 AND user_id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, cartID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- OrderRepository implementation ---

// Place runs checkout as one transaction: the cart is read under the per-user
// lock, the truck availability gate is consulted, then the order row, its item
// snapshots and the cart cleanup either all commit or all roll back.
func (r *orderRepository) Place(ctx context.Context, customerID int64, scheduledPickup time.Time) (*model.Order, error) {
	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if err := lockUserCart(ctx, tx, customerID); err != nil {
			return err
		}

		const cartQuery = `SELECT cl.quantity, cl.price, mi.name, mi.truck_id
                           FROM cart_lines cl JOIN menu_items mi ON mi.id = cl.item_id
                           WHERE cl.user_id=$1 ORDER BY cl.id`
		rows, err := tx.Query(ctx, cartQuery, customerID)
		if err != nil {
			return err
		}
		defer rows.Close()

		var (
			items   []model.OrderItem
			truckID int64
			total   float64
		)
		for rows.Next() {
			var it model.OrderItem
			if err := rows.Scan(&it.Quantity, &it.Price, &it.Name, &truckID); err != nil {
				return err
			}
			total += it.Price * float64(it.Quantity)
			items = append(items, it)
		}
		if err := rows.Err(); err != nil {
			return err
		}
		if len(items) == 0 {
			return domainErrors.ErrEmptyCart
		}

		const gateQuery = `SELECT order_status FROM trucks WHERE id=$1`
		var gate model.TruckOrderStatus
		if err := tx.QueryRow(ctx, gateQuery, truckID).Scan(&gate); err != nil {
			return err
		}
		if gate != model.TruckOrdersAvailable {
			return domainErrors.ErrTruckUnavailable
		}

		const orderQuery = `INSERT INTO orders (customer_id, truck_id, total_price, status, scheduled_pickup_time)
                            VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
		placed := model.Order{
			CustomerID:          customerID,
			TruckID:             truckID,
			TotalPrice:          total,
			Status:              model.OrderStatusPending,
			ScheduledPickupTime: scheduledPickup,
		}
		if err := tx.QueryRow(ctx, orderQuery, customerID, truckID, total, model.OrderStatusPending, scheduledPickup).
			Scan(&placed.ID, &placed.CreatedAt); err != nil {
			return err
		}

		const itemQuery = `INSERT INTO order_items (order_id, name, price, quantity)
                           VALUES ($1, $2, $3, $4) RETURNING id`
		for i := range items {
			items[i].OrderID = placed.ID
			if err := tx.QueryRow(ctx, itemQuery, placed.ID, items[i].Name, items[i].Price, items[i].Quantity).
				Scan(&items[i].ID); err != nil {
				return err
			}
		}

		if _, err := tx.Exec(ctx, `DELETE FROM cart_lines WHERE user_id=$1`, customerID); err != nil {
			return err
		}

		placed.Items = items
		order = &placed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

const orderColumns = `o.id, o.customer_id, o.truck_id, o.total_price, o.status,
                      o.scheduled_pickup_time, o.estimated_earliest_pickup, o.created_at,
                      t.name, u.login`

func (r *orderRepository) ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + `
              FROM orders o
              JOIN trucks t ON t.id = o.truck_id
              JOIN users u ON u.id = o.customer_id
              WHERE o.customer_id=$1 ORDER BY o.id DESC`
	return r.list(ctx, query, customerID)
}

func (r *orderRepository) ListByTruck(ctx context.Context, truckID int64) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + `
              FROM orders o
              JOIN trucks t ON t.id = o.truck_id
              JOIN users u ON u.id = o.customer_id
              WHERE o.truck_id=$1 ORDER BY o.id DESC`
	return r.list(ctx, query, truckID)
}

func (r *orderRepository) list(ctx context.Context, query string, arg any) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.TruckID, &o.TotalPrice, &o.Status,
			&o.ScheduledPickupTime, &o.EstimatedEarliestPickup, &o.CreatedAt, &o.TruckName, &o.CustomerName); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachItems(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) attachItems(ctx context.Context, orders []model.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(orders))
	index := make(map[int64]*model.Order, len(orders))
	for i := range orders {
		ids = append(ids, orders[i].ID)
		index[orders[i].ID] = &orders[i]
	}

	const query = `SELECT id, order_id, name, price, quantity FROM order_items
                   WHERE order_id = ANY($1) ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var it model.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.Name, &it.Price, &it.Quantity); err != nil {
			return err
		}
		if o, ok := index[it.OrderID]; ok {
			o.Items = append(o.Items, it)
		}
	}
	return rows.Err()
}

func (r *orderRepository) GetForCustomer(ctx context.Context, orderID, customerID int64) (*model.Order, error) {
	query := `SELECT ` + orderColumns + `
              FROM orders o
              JOIN trucks t ON t.id = o.truck_id
              JOIN users u ON u.id = o.customer_id
              WHERE o.id=$1 AND o.customer_id=$2`
	return r.getOne(ctx, query, orderID, customerID)
}

func (r *orderRepository) GetForTruck(ctx context.Context, orderID, truckID int64) (*model.Order, error) {
	query := `SELECT ` + orderColumns + `
              FROM orders o
              JOIN trucks t ON t.id = o.truck_id
              JOIN users u ON u.id = o.customer_id
              WHERE o.id=$1 AND o.truck_id=$2`
	return r.getOne(ctx, query, orderID, truckID)
}

func (r *orderRepository) getOne(ctx context.Context, query string, args ...any) (*model.Order, error) {
	var o model.Order
	err := r.storage.pool.QueryRow(ctx, query, args...).Scan(&o.ID, &o.CustomerID, &o.TruckID, &o.TotalPrice, &o.Status,
		&o.ScheduledPickupTime, &o.EstimatedEarliestPickup, &o.CreatedAt, &o.TruckName, &o.CustomerName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	orders := []model.Order{o}
	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

// UpdateStatus locks the order row, validates the transition against the
// status machine and applies the update. A nil estimate preserves the stored
// estimated pickup.
func (r *orderRepository) UpdateStatus(ctx context.Context, orderID, truckID int64, status model.OrderStatus, estimatedPickup *time.Time) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const selectQuery = `SELECT status FROM orders WHERE id=$1 AND truck_id=$2 FOR UPDATE`
		var current model.OrderStatus
		if err := tx.QueryRow(ctx, selectQuery, orderID, truckID).Scan(&current); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		if !current.CanTransitionTo(status) {
			return domainErrors.ErrInvalidTransition
		}

		const updateQuery = `UPDATE orders
                             SET status=$1, estimated_earliest_pickup=COALESCE($2, estimated_earliest_pickup)
                             WHERE id=$3`
		if _, err := tx.Exec(ctx, updateQuery, status, estimatedPickup, orderID); err != nil {
			return err
		}
		return nil
	})
}

// lockUserCart takes the per-user lock that serializes cart mutations and
// checkout against each other.
func lockUserCart(ctx context.Context, tx pgx.Tx, userID int64) error {
	const query = `SELECT id FROM users WHERE id=$1 FOR UPDATE`
	var id int64
	if err := tx.QueryRow(ctx, query, userID).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainErrors.ErrNotFound
		}
		return err
	}
	return nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
