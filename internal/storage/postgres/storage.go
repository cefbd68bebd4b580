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

	domainErrors "github.com/notemart/notemart/internal/domain/errors"
	"github.com/notemart/notemart/internal/domain/model"
	"github.com/notemart/notemart/internal/domain/repository"
)

// dbPool is the subset of pgxpool.Pool used by the storage layer. Narrowed to
// an interface so tests can substitute a pgxmock pool.
type dbPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

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

type boardRepository struct {
	storage *Storage
}

type streamRepository struct {
	storage *Storage
}

type subjectRepository struct {
	storage *Storage
}

type noteRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type contactRepository struct {
	storage *Storage
}

// New creates storage with schema initialization. An unreachable database
// does not abort startup: the schema attempt is logged and the service runs
// degraded until connectivity returns.
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
		logger.Warn("schema initialization failed, starting degraded", slog.String("error", err.Error()))
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

func (s *Storage) Boards() repository.BoardRepository {
	return &boardRepository{storage: s}
}

func (s *Storage) Streams() repository.StreamRepository {
	return &streamRepository{storage: s}
}

func (s *Storage) Subjects() repository.SubjectRepository {
	return &subjectRepository{storage: s}
}

func (s *Storage) Notes() repository.NoteRepository {
	return &noteRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Contacts() repository.ContactRepository {
	return &contactRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL DEFAULT 'user',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS boards (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            is_active BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS streams (
            id SERIAL PRIMARY KEY,
            board_id BIGINT NOT NULL REFERENCES boards(id),
            name TEXT NOT NULL,
            is_active BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS subjects (
            id SERIAL PRIMARY KEY,
            stream_id BIGINT NOT NULL REFERENCES streams(id),
            name TEXT NOT NULL,
            is_active BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS notes (
            id SERIAL PRIMARY KEY,
            subject_id BIGINT NOT NULL REFERENCES subjects(id),
            title TEXT NOT NULL,
            description TEXT NOT NULL,
            price DOUBLE PRECISION NOT NULL CHECK (price >= 0),
            pages INT NOT NULL CHECK (pages >= 1),
            file_name TEXT NOT NULL,
            file_url TEXT NOT NULL,
            preview_image TEXT NOT NULL DEFAULT '',
            is_active BOOLEAN NOT NULL DEFAULT TRUE,
            created_by BIGINT NOT NULL REFERENCES users(id),
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            total_amount DOUBLE PRECISION NOT NULL,
            currency TEXT NOT NULL,
            gateway_order_id TEXT UNIQUE NOT NULL,
            gateway_payment_id TEXT NOT NULL DEFAULT '',
            gateway_signature TEXT NOT NULL DEFAULT '',
            status TEXT NOT NULL DEFAULT 'pending',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            completed_at TIMESTAMPTZ
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            id SERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id),
            note_id BIGINT NOT NULL REFERENCES notes(id),
            price DOUBLE PRECISION NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS contacts (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT NOT NULL,
            subject TEXT NOT NULL,
            message TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_notes_subject ON notes(subject_id, is_active)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, status)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_note ON order_items(note_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// dbErr translates connection-level failures into the unavailable domain
// error so handlers can respond with an operator hint instead of driver text.
func dbErr(err error) error {
	if err == nil {
		return nil
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || errors.Is(err, context.DeadlineExceeded) {
		return domainErrors.ErrUnavailable
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, name, email, passwordHash string, role model.Role) (*model.User, error) {
	const query = `INSERT INTO users (name, email, password_hash, role) VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, name, email, passwordHash, role).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.Conflict("email already registered")
		}
		return nil, dbErr(err)
	}
	u.Name = name
	u.Email = email
	u.PasswordHash = passwordHash
	u.Role = role
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT id, name, email, password_hash, role, created_at FROM users WHERE email=$1`
	return r.scanOne(r.storage.pool.QueryRow(ctx, query, email))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, name, email, password_hash, role, created_at FROM users WHERE id=$1`
	return r.scanOne(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) scanOne(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, dbErr(err)
	}
	return &u, nil
}

func (r *userRepository) SetRole(ctx context.Context, id int64, role model.Role) error {
	const query = `UPDATE users SET role=$2 WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id, role)
	if err != nil {
		return dbErr(err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM users`
	var count int64
	if err := r.storage.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, dbErr(err)
	}
	return count, nil
}

// --- BoardRepository implementation ---

func (r *boardRepository) Create(ctx context.Context, name, description string) (*model.Board, error) {
	const query = `INSERT INTO boards (name, description) VALUES ($1, $2) RETURNING id, is_active, created_at`
	b := model.Board{Name: name, Description: description}
	if err := r.storage.pool.QueryRow(ctx, query, name, description).Scan(&b.ID, &b.IsActive, &b.CreatedAt); err != nil {
		return nil, dbErr(err)
	}
	return &b, nil
}

func (r *boardRepository) Update(ctx context.Context, id int64, name, description string) (*model.Board, error) {
	const query = `UPDATE boards SET name=$2, description=$3 WHERE id=$1 RETURNING is_active, created_at`
	b := model.Board{ID: id, Name: name, Description: description}
	err := r.storage.pool.QueryRow(ctx, query, id, name, description).Scan(&b.IsActive, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, dbErr(err)
	}
	return &b, nil
}

func (r *boardRepository) Deactivate(ctx context.Context, id int64) error {
	const query = `UPDATE boards SET is_active=FALSE WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return dbErr(err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *boardRepository) GetByID(ctx context.Context, id int64) (*model.Board, error) {
	const query = `SELECT id, name, description, is_active, created_at FROM boards WHERE id=$1`
	var b model.Board
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&b.ID, &b.Name, &b.Description, &b.IsActive, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, dbErr(err)
	}
	return &b, nil
}

func (r *boardRepository) List(ctx context.Context) ([]model.Board, error) {
	const query = `SELECT id, name, description, is_active, created_at FROM boards WHERE is_active ORDER BY name`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, dbErr(err)
	}
	defer rows.Close()

	var result []model.Board
	for rows.Next() {
		var b model.Board
		if err := rows.Scan(&b.ID, &b.Name, &b.Description, &b.IsActive, &b.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- StreamRepository implementation ---

func (r *streamRepository) Create(ctx context.Context, boardID int64, name string) (*model.Stream, error) {
	const query = `INSERT INTO streams (board_id, name) VALUES ($1, $2) RETURNING id, is_active, created_at`
	s := model.Stream{BoardID: boardID, Name: name}
	if err := r.storage.pool.QueryRow(ctx, query, boardID, name).Scan(&s.ID, &s.IsActive, &s.CreatedAt); err != nil {
		return nil, dbErr(err)
	}
	return &s, nil
}

func (r *streamRepository) Update(ctx context.Context, id int64, name string) (*model.Stream, error) {
	const query = `UPDATE streams SET name=$2 WHERE id=$1 RETURNING board_id, is_active, created_at`
	s := model.Stream{ID: id, Name: name}
	err := r.storage.pool.QueryRow(ctx, query, id, name).Scan(&s.BoardID, &s.IsActive, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, dbErr(err)
	}
	return &s, nil
}

func (r *streamRepository) Deactivate(ctx context.Context, id int64) error {
	const query = `UPDATE streams SET is_active=FALSE WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return dbErr(err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *streamRepository) GetByID(ctx context.Context, id int64) (*model.Stream, error) {
	const query = `SELECT id, board_id, name, is_active, created_at FROM streams WHERE id=$1`
	var s model.Stream
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&s.ID, &s.BoardID, &s.Name, &s.IsActive, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, dbErr(err)
	}
	return &s, nil
}

func (r *streamRepository) List(ctx context.Context, boardID int64) ([]model.Stream, error) {
	const query = `SELECT id, board_id, name, is_active, created_at FROM streams
                   WHERE is_active AND ($1 = 0 OR board_id = $1) ORDER BY name`
	rows, err := r.storage.pool.Query(ctx, query, boardID)
	if err != nil {
		return nil, dbErr(err)
	}
	defer rows.Close()

	var result []model.Stream
	for rows.Next() {
		var s model.Stream
		if err := rows.Scan(&s.ID, &s.BoardID, &s.Name, &s.IsActive, &s.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- SubjectRepository implementation ---

func (r *subjectRepository) Create(ctx context.Context, streamID int64, name string) (*model.Subject, error) {
	const query = `INSERT INTO subjects (stream_id, name) VALUES ($1, $2) RETURNING id, is_active, created_at`
	s := model.Subject{StreamID: streamID, Name: name}
	if err := r.storage.pool.QueryRow(ctx, query, streamID, name).Scan(&s.ID, &s.IsActive, &s.CreatedAt); err != nil {
		return nil, dbErr(err)
	}
	return &s, nil
}

func (r *subjectRepository) Update(ctx context.Context, id int64, name string) (*model.Subject, error) {
	const query = `UPDATE subjects SET name=$2 WHERE id=$1 RETURNING stream_id, is_active, created_at`
	s := model.Subject{ID: id, Name: name}
	err := r.storage.pool.QueryRow(ctx, query, id, name).Scan(&s.StreamID, &s.IsActive, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, dbErr(err)
	}
	return &s, nil
}

func (r *subjectRepository) Deactivate(ctx context.Context, id int64) error {
	const query = `UPDATE subjects SET is_active=FALSE WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return dbErr(err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *subjectRepository) GetByID(ctx context.Context, id int64) (*model.Subject, error) {
	const query = `SELECT id, stream_id, name, is_active, created_at FROM subjects WHERE id=$1`
	var s model.Subject
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&s.ID, &s.StreamID, &s.Name, &s.IsActive, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, dbErr(err)
	}
	return &s, nil
}

func (r *subjectRepository) List(ctx context.Context, streamID int64) ([]model.Subject, error) {
	const query = `SELECT id, stream_id, name, is_active, created_at FROM subjects
                   WHERE is_active AND ($1 = 0 OR stream_id = $1) ORDER BY name`
	rows, err := r.storage.pool.Query(ctx, query, streamID)
	if err != nil {
		return nil, dbErr(err)
	}
	defer rows.Close()

	var result []model.Subject
	for rows.Next() {
		var s model.Subject
		if err := rows.Scan(&s.ID, &s.StreamID, &s.Name, &s.IsActive, &s.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- NoteRepository implementation ---

const noteColumns = `id, subject_id, title, description, price, pages, file_name, file_url, preview_image, is_active, created_by, created_at`

func (r *noteRepository) Create(ctx context.Context, note *model.Note) (*model.Note, error) {
	const query = `INSERT INTO notes (subject_id, title, description, price, pages, file_name, file_url, preview_image, created_by)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
                   RETURNING id, is_active, created_at`
	created := *note
	err := r.storage.pool.QueryRow(ctx, query,
		note.SubjectID, note.Title, note.Description, note.Price, note.Pages,
		note.FileName, note.FileURL, note.PreviewImage, note.CreatedBy,
	).Scan(&created.ID, &created.IsActive, &created.CreatedAt)
	if err != nil {
		return nil, dbErr(err)
	}
	return &created, nil
}

func (r *noteRepository) Update(ctx context.Context, note *model.Note) (*model.Note, error) {
	const query = `UPDATE notes
                   SET subject_id=$2, title=$3, description=$4, price=$5, pages=$6, file_name=$7, file_url=$8, preview_image=$9
                   WHERE id=$1
                   RETURNING is_active, created_by, created_at`
	updated := *note
	err := r.storage.pool.QueryRow(ctx, query,
		note.ID, note.SubjectID, note.Title, note.Description, note.Price, note.Pages,
		note.FileName, note.FileURL, note.PreviewImage,
	).Scan(&updated.IsActive, &updated.CreatedBy, &updated.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, dbErr(err)
	}
	return &updated, nil
}

func (r *noteRepository) Deactivate(ctx context.Context, id int64) error {
	const query = `UPDATE notes SET is_active=FALSE WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return dbErr(err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *noteRepository) GetByID(ctx context.Context, id int64) (*model.Note, error) {
	const query = `SELECT ` + noteColumns + ` FROM notes WHERE id=$1`
	var n model.Note
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&n.ID, &n.SubjectID, &n.Title, &n.Description, &n.Price, &n.Pages,
		&n.FileName, &n.FileURL, &n.PreviewImage, &n.IsActive, &n.CreatedBy, &n.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, dbErr(err)
	}
	return &n, nil
}

const noteViewQuery = `SELECT n.id, n.subject_id, n.title, n.description, n.price, n.pages,
                       n.file_name, n.file_url, n.preview_image, n.is_active, n.created_by, n.created_at,
                       s.name, st.id, st.name, b.id, b.name
                       FROM notes n
                       JOIN subjects s ON s.id = n.subject_id
                       JOIN streams st ON st.id = s.stream_id
                       JOIN boards b ON b.id = st.board_id`

func scanNoteView(row pgx.Row) (*model.NoteView, error) {
	var v model.NoteView
	err := row.Scan(
		&v.ID, &v.SubjectID, &v.Title, &v.Description, &v.Price, &v.Pages,
		&v.FileName, &v.FileURL, &v.PreviewImage, &v.IsActive, &v.CreatedBy, &v.CreatedAt,
		&v.SubjectName, &v.StreamID, &v.StreamName, &v.BoardID, &v.BoardName,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *noteRepository) GetView(ctx context.Context, id int64) (*model.NoteView, error) {
	const query = noteViewQuery + ` WHERE n.id=$1`
	view, err := scanNoteView(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, dbErr(err)
	}
	return view, nil
}

func (r *noteRepository) ListActiveByIDs(ctx context.Context, ids []int64) ([]model.Note, error) {
	const query = `SELECT ` + noteColumns + ` FROM notes WHERE is_active AND id = ANY($1)`
	rows, err := r.storage.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, dbErr(err)
	}
	defer rows.Close()

	var result []model.Note
	for rows.Next() {
		var n model.Note
		if err := rows.Scan(
			&n.ID, &n.SubjectID, &n.Title, &n.Description, &n.Price, &n.Pages,
			&n.FileName, &n.FileURL, &n.PreviewImage, &n.IsActive, &n.CreatedBy, &n.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *noteRepository) ListViews(ctx context.Context, filter model.NoteFilter) ([]model.NoteView, error) {
	const query = noteViewQuery + `
                   WHERE n.is_active
                     AND ($1 = 0 OR n.subject_id = $1)
                     AND ($2 = 0 OR st.id = $2)
                     AND ($3 = 0 OR b.id = $3)
                     AND ($4 = '' OR n.title ILIKE '%' || $4 || '%' OR n.description ILIKE '%' || $4 || '%')
                   ORDER BY n.created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, filter.SubjectID, filter.StreamID, filter.BoardID, filter.Search)
	if err != nil {
		return nil, dbErr(err)
	}
	defer rows.Close()

	var result []model.NoteView
	for rows.Next() {
		view, err := scanNoteView(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *noteRepository) CountActive(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM notes WHERE is_active`
	var count int64
	if err := r.storage.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, dbErr(err)
	}
	return count, nil
}

// --- OrderRepository implementation ---

const orderColumns = `id, user_id, total_amount, currency, gateway_order_id, gateway_payment_id, gateway_signature, status, created_at, completed_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(
		&o.ID, &o.UserID, &o.TotalAmount, &o.Currency, &o.GatewayOrderID,
		&o.GatewayPaymentID, &o.GatewaySignature, &o.Status, &o.CreatedAt, &o.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	created := *order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertOrder = `INSERT INTO orders (user_id, total_amount, currency, gateway_order_id, status)
                             VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
		err := tx.QueryRow(ctx, insertOrder,
			order.UserID, order.TotalAmount, order.Currency, order.GatewayOrderID, order.Status,
		).Scan(&created.ID, &created.CreatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return domainErrors.Conflict("gateway order already recorded")
			}
			return err
		}

		const insertItem = `INSERT INTO order_items (order_id, note_id, price) VALUES ($1, $2, $3)`
		for _, item := range order.Items {
			if _, err := tx.Exec(ctx, insertItem, created.ID, item.NoteID, item.Price); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, dbErr(err)
	}
	return &created, nil
}

func (r *orderRepository) loadItems(ctx context.Context, orderIDs []int64) (map[int64][]model.OrderItem, error) {
	const query = `SELECT oi.order_id, oi.note_id, oi.price, n.title
                   FROM order_items oi
                   JOIN notes n ON n.id = oi.note_id
                   WHERE oi.order_id = ANY($1)
                   ORDER BY oi.id`
	rows, err := r.storage.pool.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, dbErr(err)
	}
	defer rows.Close()

	items := make(map[int64][]model.OrderItem)
	for rows.Next() {
		var orderID int64
		var item model.OrderItem
		if err := rows.Scan(&orderID, &item.NoteID, &item.Price, &item.Title); err != nil {
			return nil, err
		}
		items[orderID] = append(items[orderID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.OrderView, error) {
	const query = `SELECT o.id, o.user_id, o.total_amount, o.currency, o.gateway_order_id,
                   o.gateway_payment_id, o.gateway_signature, o.status, o.created_at, o.completed_at,
                   u.name, u.email
                   FROM orders o JOIN users u ON u.id = o.user_id WHERE o.id=$1`
	var v model.OrderView
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.UserID, &v.TotalAmount, &v.Currency, &v.GatewayOrderID,
		&v.GatewayPaymentID, &v.GatewaySignature, &v.Status, &v.CreatedAt, &v.CompletedAt,
		&v.UserName, &v.UserEmail,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.NotFound("order not found")
		}
		return nil, dbErr(err)
	}

	items, err := r.loadItems(ctx, []int64{v.ID})
	if err != nil {
		return nil, err
	}
	v.Items = items[v.ID]
	return &v, nil
}

func (r *orderRepository) GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE gateway_order_id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, gatewayOrderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.NotFound("order not found")
		}
		return nil, dbErr(err)
	}

	items, err := r.loadItems(ctx, []int64{order.ID})
	if err != nil {
		return nil, err
	}
	order.Items = items[order.ID]
	return order, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, dbErr(err)
	}
	defer rows.Close()

	var result []model.Order
	var ids []int64
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
		ids = append(ids, order.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return result, nil
	}

	items, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range result {
		result[i].Items = items[result[i].ID]
	}
	return result, nil
}

func (r *orderRepository) ListAll(ctx context.Context) ([]model.OrderView, error) {
	const query = `SELECT o.id, o.user_id, o.total_amount, o.currency, o.gateway_order_id,
                   o.gateway_payment_id, o.gateway_signature, o.status, o.created_at, o.completed_at,
                   u.name, u.email
                   FROM orders o JOIN users u ON u.id = o.user_id ORDER BY o.created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, dbErr(err)
	}
	defer rows.Close()

	var result []model.OrderView
	var ids []int64
	for rows.Next() {
		var v model.OrderView
		if err := rows.Scan(
			&v.ID, &v.UserID, &v.TotalAmount, &v.Currency, &v.GatewayOrderID,
			&v.GatewayPaymentID, &v.GatewaySignature, &v.Status, &v.CreatedAt, &v.CompletedAt,
			&v.UserName, &v.UserEmail,
		); err != nil {
			return nil, err
		}
		result = append(result, v)
		ids = append(ids, v.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return result, nil
	}

	items, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range result {
		result[i].Items = items[result[i].ID]
	}
	return result, nil
}

func (r *orderRepository) CompletedNoteIDs(ctx context.Context, userID int64, noteIDs []int64) ([]int64, error) {
	const query = `SELECT DISTINCT oi.note_id
                   FROM orders o
                   JOIN order_items oi ON oi.order_id = o.id
                   WHERE o.user_id=$1 AND o.status=$2 AND oi.note_id = ANY($3)`
	rows, err := r.storage.pool.Query(ctx, query, userID, model.OrderStatusCompleted, noteIDs)
	if err != nil {
		return nil, dbErr(err)
	}
	defer rows.Close()

	var result []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		result = append(result, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) HasCompletedWithNote(ctx context.Context, userID, noteID int64) (bool, error) {
	const query = `SELECT EXISTS (
                       SELECT 1 FROM orders o
                       JOIN order_items oi ON oi.order_id = o.id
                       WHERE o.user_id=$1 AND o.status=$2 AND oi.note_id=$3
                   )`
	var exists bool
	if err := r.storage.pool.QueryRow(ctx, query, userID, model.OrderStatusCompleted, noteID).Scan(&exists); err != nil {
		return false, dbErr(err)
	}
	return exists, nil
}

func (r *orderRepository) MarkCompleted(ctx context.Context, gatewayOrderID, paymentID, signature string) (*model.Order, error) {
	// Conditional update: only a pending order may transition, so concurrent
	// callback deliveries apply the side effects at most once.
	const update = `UPDATE orders
                    SET status=$2, gateway_payment_id=$3, gateway_signature=$4, completed_at=NOW()
                    WHERE gateway_order_id=$1 AND status=$5`
	_, err := r.storage.pool.Exec(ctx, update,
		gatewayOrderID, model.OrderStatusCompleted, paymentID, signature, model.OrderStatusPending,
	)
	if err != nil {
		return nil, dbErr(err)
	}

	return r.GetByGatewayOrderID(ctx, gatewayOrderID)
}

func (r *orderRepository) MarkFailed(ctx context.Context, gatewayOrderID string) error {
	const update = `UPDATE orders SET status=$2 WHERE gateway_order_id=$1 AND status=$3`
	_, err := r.storage.pool.Exec(ctx, update, gatewayOrderID, model.OrderStatusFailed, model.OrderStatusPending)
	if err != nil {
		return dbErr(err)
	}
	return nil
}

func (r *orderRepository) Stats(ctx context.Context) (*model.OrderStats, error) {
	const query = `SELECT COUNT(*),
                   COUNT(*) FILTER (WHERE status='completed'),
                   COUNT(*) FILTER (WHERE status='pending'),
                   COALESCE(SUM(total_amount) FILTER (WHERE status='completed'), 0)
                   FROM orders`
	var stats model.OrderStats
	err := r.storage.pool.QueryRow(ctx, query).Scan(&stats.Total, &stats.Completed, &stats.Pending, &stats.Revenue)
	if err != nil {
		return nil, dbErr(err)
	}
	return &stats, nil
}

// --- ContactRepository implementation ---

func (r *contactRepository) Create(ctx context.Context, name, email, subject, message string) (*model.Contact, error) {
	const query = `INSERT INTO contacts (name, email, subject, message) VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	c := model.Contact{Name: name, Email: email, Subject: subject, Message: message}
	if err := r.storage.pool.QueryRow(ctx, query, name, email, subject, message).Scan(&c.ID, &c.CreatedAt); err != nil {
		return nil, dbErr(err)
	}
	return &c, nil
}

func (r *contactRepository) List(ctx context.Context) ([]model.Contact, error) {
	const query = `SELECT id, name, email, subject, message, created_at FROM contacts ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, dbErr(err)
	}
	defer rows.Close()

	var result []model.Contact
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *contactRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM contacts WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return dbErr(err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *contactRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM contacts`
	var count int64
	if err := r.storage.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, dbErr(err)
	}
	return count, nil
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
