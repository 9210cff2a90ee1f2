package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/roadside-assistance/constant"
	"github.com/muhammadheryan/roadside-assistance/model"
)

// ErrDuplicateEmail is returned by Create and CreateTx when the email is already taken.
var ErrDuplicateEmail = errors.New("user: email already registered")

// ErrEmptyFilter is returned by Get when the filter names neither an id nor an email.
var ErrEmptyFilter = errors.New("user: filter must set id or email")

const mysqlDuplicateEntry = 1062

func mapInsertError(err error) error {
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == mysqlDuplicateEntry {
		return ErrDuplicateEmail
	}
	return err
}

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	CreateTx(ctx context.Context, tx *sqlx.Tx, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	List(ctx context.Context, filter *model.UserListFilter) ([]*model.UserEntity, error)
	CountAdminsTx(ctx context.Context, tx *sqlx.Tx) (int64, error)
	SetBlocked(ctx context.Context, id uint64, blocked bool) error
	UpdateAvailability(ctx context.Context, id uint64, available bool) error
	UpdateProfile(ctx context.Context, id uint64, update *model.ProfileUpdate) error
	Stats(ctx context.Context) (*model.PlatformStats, error)
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const userTable = "user"

var userColumns = []string{
	"id", "name", "email", "phone", "password_hash", "role", "is_blocked",
	"specialization", "vehicle_type", "license_number", "rating", "total_ratings", "is_available",
	"location_latitude", "location_longitude", "location_address", "created_at", "updated_at",
}

func insertUserBuilder(data *model.UserEntity) sq.InsertBuilder {
	return sq.Insert(userTable).
		Columns("name", "email", "phone", "password_hash", "role", "is_blocked",
			"specialization", "vehicle_type", "license_number", "is_available", "created_at").
		Values(data.Name, data.Email, data.Phone, data.PasswordHash, data.Role, data.IsBlocked,
			data.Specialization, data.VehicleType, data.LicenseNumber, data.IsAvailable, sq.Expr("NOW()"))
}

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	query, args, err := insertUserBuilder(data).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert user: %w", err)
	}

	result, err := s.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, mapInsertError(err)
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.UserEntity) (*model.UserEntity, error) {
	query, args, err := insertUserBuilder(data).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert user: %w", err)
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, mapInsertError(err)
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	if filter == nil || (filter.ID == 0 && filter.Email == "") {
		return nil, ErrEmptyFilter
	}

	builder := sq.Select(userColumns...).From(userTable).Limit(1)

	if filter.ID != 0 {
		builder = builder.Where(sq.Eq{"id": filter.ID})
	}
	if filter.Email != "" {
		builder = builder.Where(sq.Eq{"email": filter.Email})
	}
	if filter.Role != constant.RoleUnknown {
		builder = builder.Where(sq.Eq{"role": filter.Role})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select user: %w", err)
	}

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context, filter *model.UserListFilter) ([]*model.UserEntity, error) {
	builder := sq.Select(userColumns...).From(userTable).OrderBy("created_at DESC", "id DESC")
	if filter != nil && filter.Role != constant.RoleUnknown {
		builder = builder.Where(sq.Eq{"role": filter.Role})
	} else {
		builder = builder.Where(sq.NotEq{"role": constant.RoleAdmin})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list users: %w", err)
	}

	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*model.UserEntity, 0)
	for rows.Next() {
		var u model.UserEntity
		if err := rows.StructScan(&u); err != nil {
			return nil, err
		}
		users = append(users, &u)
	}
	return users, rows.Err()
}

// CountAdminsTx counts admin rows and locks the range so a concurrent bootstrap waits.
func (s *SQL) CountAdminsTx(ctx context.Context, tx *sqlx.Tx) (int64, error) {
	query, args, err := sq.Select("id").From(userTable).
		Where(sq.Eq{"role": constant.RoleAdmin}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count admins: %w", err)
	}

	var ids []uint64
	if err := tx.SelectContext(ctx, &ids, query, args...); err != nil {
		return 0, err
	}
	return int64(len(ids)), nil
}

func (s *SQL) SetBlocked(ctx context.Context, id uint64, blocked bool) error {
	return s.update(ctx, id, map[string]any{"is_blocked": blocked})
}

func (s *SQL) UpdateAvailability(ctx context.Context, id uint64, available bool) error {
	return s.update(ctx, id, map[string]any{"is_available": available})
}

func (s *SQL) UpdateProfile(ctx context.Context, id uint64, update *model.ProfileUpdate) error {
	set := map[string]any{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Phone != nil {
		set["phone"] = *update.Phone
	}
	if update.Specialization != nil {
		set["specialization"] = *update.Specialization
	}
	if update.VehicleType != nil {
		set["vehicle_type"] = *update.VehicleType
	}
	if update.LicenseNumber != nil {
		set["license_number"] = *update.LicenseNumber
	}
	if update.Location != nil {
		set["location_latitude"] = update.Location.Latitude
		set["location_longitude"] = update.Location.Longitude
		set["location_address"] = update.Location.Address
	}
	if len(set) == 0 {
		return nil
	}
	return s.update(ctx, id, set)
}

func (s *SQL) update(ctx context.Context, id uint64, set map[string]any) error {
	query, args, err := sq.Update(userTable).
		SetMap(set).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update user: %w", err)
	}

	_, err = s.conn.ExecContext(ctx, query, args...)
	return err
}

const userStatsQuery = `SELECT
	COALESCE(SUM(role = 'client'), 0) AS total_clients,
	COALESCE(SUM(role = 'mechanic'), 0) AS total_mechanics,
	COALESCE(SUM(is_blocked), 0) AS blocked_users
FROM user`

// Stats fills the user-side counters of PlatformStats.
func (s *SQL) Stats(ctx context.Context) (*model.PlatformStats, error) {
	var stats model.PlatformStats
	if err := s.conn.QueryRowxContext(ctx, userStatsQuery).StructScan(&stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
