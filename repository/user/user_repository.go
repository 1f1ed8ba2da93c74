package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/takatrack/waste-monitoring/model"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	TouchLastSignedIn(ctx context.Context, id uint64) error
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertUserQuery = `INSERT INTO users (open_id, name, email, password_hash, login_method, role, created_at, last_signed_in) VALUES (?, ?, ?, ?, ?, ?, NOW(), NOW())`
	getUserBase     = `SELECT id, open_id, name, email, password_hash, login_method, role, created_at, updated_at, last_signed_in FROM users WHERE true`
	touchSignInStmt = `UPDATE users SET last_signed_in = NOW() WHERE id = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertUserQuery,
		data.OpenID, data.Name, data.Email, data.PasswordHash, data.LoginMethod, data.Role)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := getUserBase
	args := make([]any, 0, 2)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) TouchLastSignedIn(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, touchSignInStmt, id)
	return err
}

// IsDuplicateEntry reports whether err is a MySQL duplicate-key violation
// (error 1062). An insert that loses a race against a concurrent registration
// fails this way even after the existence check passed.
func IsDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
