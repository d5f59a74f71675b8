package user_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"blog-platform-service/internal/custom_errors"
	"blog-platform-service/internal/logger"
	"blog-platform-service/internal/metrics"
	"blog-platform-service/internal/model"
	"blog-platform-service/internal/repository/postgres/db"
)

const uniqueViolationCode = "23505"

type UserRepository struct {
	db      db.PgDB
	log     *logger.Logger
	metrics metrics.Provider
}

func NewUserRepository(db db.PgDB, log *logger.Logger, metrics metrics.Provider) *UserRepository {
	return &UserRepository{db: db, log: log, metrics: metrics}
}

func (u *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	start := time.Now()
	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}

	args := pgx.NamedArgs{
		"username":      user.Username,
		"email":         user.Email,
		"password_hash": user.PasswordHash,
		"created_at":    now,
		"updated_at":    now,
	}

	query := `
		INSERT INTO users (username, email, password_hash, created_at, updated_at)
		VALUES (@username, @email, @password_hash, @created_at, @updated_at)
		RETURNING id, username, email, password_hash, created_at, updated_at`

	var createdUser model.User
	err := u.db.QueryRow(ctx, query, args).Scan(
		&createdUser.ID,
		&createdUser.Username,
		&createdUser.Email,
		&createdUser.PasswordHash,
		&createdUser.CreatedAt,
		&createdUser.UpdatedAt,
	)
	u.metrics.RecordDatabaseQueryDuration("user_create", time.Since(start))

	if err != nil {
		u.metrics.IncrementDatabaseQueries("user_create", false)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			u.log.Debug("Duplicate user on create", slog.String("email", user.Email))
			return nil, custom_errors.ErrUserAlreadyExists
		}
		u.log.Error("Error creating user", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	u.metrics.IncrementDatabaseQueries("user_create", true)
	return &createdUser, nil
}

func (u *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	args := pgx.NamedArgs{"id": id}
	query := `SELECT id, username, email, password_hash, created_at, updated_at
				FROM users WHERE id = @id`

	user := &model.User{}
	err := u.db.QueryRow(ctx, query, args).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			u.log.Debug("User not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrUserNotFound
		}
		u.log.Error("Error getting user by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return user, nil
}

func (u *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := pgx.NamedArgs{"email": email}
	query := `SELECT id, username, email, password_hash, created_at, updated_at
				FROM users WHERE email = @email`

	user := &model.User{}
	err := u.db.QueryRow(ctx, query, args).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			u.log.Debug("User not found by email", slog.String("email", email))
			return nil, custom_errors.ErrUserNotFound
		}
		u.log.Error("Error getting user by email", slog.String("email", email), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return user, nil
}

func (u *UserRepository) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	args := pgx.NamedArgs{"email": email, "username": username}
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email = @email OR username = @username)`

	var exists bool
	err := u.db.QueryRow(ctx, query, args).Scan(&exists)
	if err != nil {
		u.log.Error("Error checking user existence", slog.String("email", email), slog.String("error", err.Error()))
		return false, custom_errors.ErrDatabaseQuery
	}
	return exists, nil
}

func (u *UserRepository) List(ctx context.Context, limit, offset int) ([]*model.User, error) {
	start := time.Now()
	args := pgx.NamedArgs{"limit": limit, "offset": offset}
	query := `SELECT id, username, email, password_hash, created_at, updated_at
				FROM users ORDER BY id LIMIT @limit OFFSET @offset`

	rows, err := u.db.Query(ctx, query, args)
	u.metrics.RecordDatabaseQueryDuration("user_list", time.Since(start))
	if err != nil {
		u.metrics.IncrementDatabaseQueries("user_list", false)
		u.log.Error("Error listing users", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		var user model.User
		err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Email,
			&user.PasswordHash,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			u.log.Error("Error scanning user during List", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		users = append(users, &user)
	}

	if err = rows.Err(); err != nil {
		u.log.Error("Error iterating rows during List", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	u.metrics.IncrementDatabaseQueries("user_list", true)
	return users, nil
}

func (u *UserRepository) Replace(ctx context.Context, id int64, update *model.CreateUserDTO) (*model.User, error) {
	args := pgx.NamedArgs{
		"id":         id,
		"username":   update.Username,
		"email":      update.Email,
		"updated_at": pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
	query := `UPDATE users SET username = @username, email = @email, updated_at = @updated_at
				WHERE id = @id
				RETURNING id, username, email, password_hash, created_at, updated_at`

	var updatedUser model.User
	err := u.db.QueryRow(ctx, query, args).Scan(
		&updatedUser.ID,
		&updatedUser.Username,
		&updatedUser.Email,
		&updatedUser.PasswordHash,
		&updatedUser.CreatedAt,
		&updatedUser.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			u.log.Debug("User not found by id during Replace", slog.Int64("id", id))
			return nil, custom_errors.ErrUserNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, custom_errors.ErrUserAlreadyExists
		}
		u.log.Error("Error replacing user", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return &updatedUser, nil
}

func (u *UserRepository) UpdatePartial(ctx context.Context, id int64, update *model.UpdateUserDTO) (*model.User, error) {
	if update.Username == nil && update.Email == nil {
		return nil, custom_errors.ErrNoUpdateRows
	}

	setClauses := []string{}
	args := pgx.NamedArgs{"id": id}

	if update.Username != nil {
		setClauses = append(setClauses, "username = @username")
		args["username"] = *update.Username
	}
	if update.Email != nil {
		setClauses = append(setClauses, "email = @email")
		args["email"] = *update.Email
	}

	setClauses = append(setClauses, "updated_at = @updated_at")
	args["updated_at"] = pgtype.Timestamptz{Time: time.Now(), Valid: true}

	query := "UPDATE users SET " + strings.Join(setClauses, ", ") +
		" WHERE id = @id RETURNING id, username, email, password_hash, created_at, updated_at"

	var updatedUser model.User
	err := u.db.QueryRow(ctx, query, args).Scan(
		&updatedUser.ID,
		&updatedUser.Username,
		&updatedUser.Email,
		&updatedUser.PasswordHash,
		&updatedUser.CreatedAt,
		&updatedUser.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			u.log.Debug("User not found by id during UpdatePartial", slog.Int64("id", id))
			return nil, custom_errors.ErrUserNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, custom_errors.ErrUserAlreadyExists
		}
		u.log.Error("Error updating user", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return &updatedUser, nil
}

func (u *UserRepository) Delete(ctx context.Context, id int64) error {
	args := pgx.NamedArgs{"id": id}
	query := `DELETE FROM users WHERE id = @id`

	result, err := u.db.Exec(ctx, query, args)
	if err != nil {
		u.log.Error("Error deleting user", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		return custom_errors.ErrUserNotFound
	}
	return nil
}
