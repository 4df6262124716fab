package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type queries struct {
	db DBTX
}

func newQueries(db DBTX) *queries {
	return &queries{db: db}
}

// ============================================================================
// Rows
// ============================================================================

type userRow struct {
	Username    string
	Password    string
	FirstName   string
	LastName    string
	Phone       string
	JoinAt      timestamp
	LastLoginAt timestamp
}

type insertedUserRow struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

type userSummaryRow struct {
	Username  string
	FirstName string
	LastName  string
}

type joinedMessageRow struct {
	ID        string
	Body      string
	SentAt    timestamp
	ReadAt    timestamp
	Username  string
	FirstName string
	LastName  string
	Phone     string
}

// timestamp scans DATETIME columns. modernc.org/sqlite hands back time.Time
// for declared DATETIME columns and plain text otherwise.
type timestamp struct {
	Time  time.Time
	Valid bool
}

var timestampLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

func (t *timestamp) Scan(v any) error {
	switch x := v.(type) {
	case nil:
		*t = timestamp{}
		return nil
	case time.Time:
		*t = timestamp{Time: x.UTC(), Valid: true}
		return nil
	case []byte:
		return t.parse(string(x))
	case string:
		return t.parse(x)
	default:
		return fmt.Errorf("sqlite: cannot scan %T into timestamp", v)
	}
}

func (t *timestamp) parse(s string) error {
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			*t = timestamp{Time: parsed.UTC(), Valid: true}
			return nil
		}
	}
	return fmt.Errorf("sqlite: unrecognised timestamp %q", s)
}

// ============================================================================
// Users
// ============================================================================

const createUser = `
INSERT INTO users (username, password, first_name, last_name, phone, join_at)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING username, password, first_name, last_name, phone`

type createUserParams struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	JoinAt    time.Time
}

func (q *queries) CreateUser(ctx context.Context, arg createUserParams) (insertedUserRow, error) {
	row := q.db.QueryRowContext(ctx, createUser,
		arg.Username,
		arg.Password,
		arg.FirstName,
		arg.LastName,
		arg.Phone,
		arg.JoinAt,
	)
	var i insertedUserRow
	err := row.Scan(&i.Username, &i.Password, &i.FirstName, &i.LastName, &i.Phone)
	return i, err
}

const getPasswordHash = `SELECT password FROM users WHERE username = ?`

func (q *queries) GetPasswordHash(ctx context.Context, username string) (string, error) {
	var hash string
	err := q.db.QueryRowContext(ctx, getPasswordHash, username).Scan(&hash)
	return hash, err
}

const updateLastLogin = `UPDATE users SET last_login_at = ? WHERE username = ?`

func (q *queries) UpdateLastLogin(ctx context.Context, username string, at time.Time) (int64, error) {
	res, err := q.db.ExecContext(ctx, updateLastLogin, at, username)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const listUsers = `SELECT username, first_name, last_name FROM users ORDER BY username`

func (q *queries) ListUsers(ctx context.Context) ([]userSummaryRow, error) {
	rows, err := q.db.QueryContext(ctx, listUsers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []userSummaryRow{}
	for rows.Next() {
		var i userSummaryRow
		if err := rows.Scan(&i.Username, &i.FirstName, &i.LastName); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const getUserByUsername = `
SELECT username, password, first_name, last_name, phone, join_at, last_login_at
FROM users
WHERE username = ?`

func (q *queries) GetUserByUsername(ctx context.Context, username string) (userRow, error) {
	row := q.db.QueryRowContext(ctx, getUserByUsername, username)
	var i userRow
	err := row.Scan(
		&i.Username,
		&i.Password,
		&i.FirstName,
		&i.LastName,
		&i.Phone,
		&i.JoinAt,
		&i.LastLoginAt,
	)
	return i, err
}

// ============================================================================
// Messages
// ============================================================================

const createMessage = `
INSERT INTO messages (id, from_username, to_username, body, sent_at)
VALUES (?, ?, ?, ?, ?)`

type createMessageParams struct {
	ID           string
	FromUsername string
	ToUsername   string
	Body         string
	SentAt       time.Time
}

func (q *queries) CreateMessage(ctx context.Context, arg createMessageParams) error {
	_, err := q.db.ExecContext(ctx, createMessage,
		arg.ID,
		arg.FromUsername,
		arg.ToUsername,
		arg.Body,
		arg.SentAt,
	)
	return err
}

// Both listings join the counterparty in the same statement. The inner join
// drops any message whose counterparty row is missing.
const listMessagesFrom = `
SELECT m.id, m.body, m.sent_at, m.read_at,
       u.username, u.first_name, u.last_name, u.phone
FROM messages AS m
JOIN users AS u ON u.username = m.to_username
WHERE m.from_username = ?
ORDER BY m.id`

func (q *queries) ListMessagesFrom(ctx context.Context, username string) ([]joinedMessageRow, error) {
	return q.listJoinedMessages(ctx, listMessagesFrom, username)
}

const listMessagesTo = `
SELECT m.id, m.body, m.sent_at, m.read_at,
       u.username, u.first_name, u.last_name, u.phone
FROM messages AS m
JOIN users AS u ON u.username = m.from_username
WHERE m.to_username = ?
ORDER BY m.id`

func (q *queries) ListMessagesTo(ctx context.Context, username string) ([]joinedMessageRow, error) {
	return q.listJoinedMessages(ctx, listMessagesTo, username)
}

func (q *queries) listJoinedMessages(ctx context.Context, query, username string) ([]joinedMessageRow, error) {
	rows, err := q.db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []joinedMessageRow{}
	for rows.Next() {
		var i joinedMessageRow
		if err := rows.Scan(
			&i.ID,
			&i.Body,
			&i.SentAt,
			&i.ReadAt,
			&i.Username,
			&i.FirstName,
			&i.LastName,
			&i.Phone,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
