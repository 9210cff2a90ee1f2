package request

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/roadside-assistance/constant"
	"github.com/muhammadheryan/roadside-assistance/model"
)

type SQL struct {
	conn *sqlx.DB
}

type RequestRepository interface {
	Create(ctx context.Context, req *model.RequestEntity) (uint64, error)
	GetByID(ctx context.Context, id uint64) (*model.RequestEntity, error)
	List(ctx context.Context, filter *model.RequestFilter) ([]*model.RequestEntity, error)
	// ApplyTransition performs the conditional write and reports whether the row matched every guard.
	ApplyTransition(ctx context.Context, t *model.RequestTransition) (bool, error)
	Stats(ctx context.Context) (*model.PlatformStats, error)
}

func NewRequestRepository(conn *sqlx.DB) RequestRepository {
	return &SQL{conn: conn}
}

const requestTable = "service_request"

var requestColumns = []string{
	"r.id", "r.client_id", "r.mechanic_id", "r.title", "r.description", "r.service_type", "r.vehicle_type",
	"r.vehicle_model", "r.vehicle_plate", "r.location_latitude", "r.location_longitude", "r.location_address",
	"r.status", "r.estimated_cost", "r.final_cost", "r.mechanic_note", "r.client_note", "r.cancelled_by",
	"r.cancel_reason", "r.created_at", "r.updated_at",
	"c.name AS client_name", "c.email AS client_email", "c.phone AS client_phone",
	"m.name AS mechanic_name", "m.email AS mechanic_email", "m.phone AS mechanic_phone",
	"m.specialization AS mechanic_specialization", "m.rating AS mechanic_rating",
}

func selectRequests() sq.SelectBuilder {
	return sq.Select(requestColumns...).
		From(requestTable + " r").
		Join("user c ON c.id = r.client_id").
		LeftJoin("user m ON m.id = r.mechanic_id")
}

func (s *SQL) Create(ctx context.Context, req *model.RequestEntity) (uint64, error) {
	query, args, err := sq.Insert(requestTable).
		Columns("client_id", "title", "description", "service_type", "vehicle_type", "vehicle_model",
			"vehicle_plate", "location_latitude", "location_longitude", "location_address", "status",
			"client_note", "created_at").
		Values(req.ClientID, req.Title, req.Description, req.ServiceType, req.VehicleType, req.VehicleModel,
			req.VehiclePlate, req.LocationLatitude, req.LocationLongitude, req.LocationAddress, req.Status,
			req.ClientNote, sq.Expr("NOW()")).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert request: %w", err)
	}

	res, err := s.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.RequestEntity, error) {
	query, args, err := selectRequests().Where(sq.Eq{"r.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select request: %w", err)
	}

	var entity model.RequestEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context, filter *model.RequestFilter) ([]*model.RequestEntity, error) {
	builder := selectRequests().OrderBy("r.created_at DESC", "r.id DESC")
	if filter != nil {
		if filter.ClientID != 0 {
			builder = builder.Where(sq.Eq{"r.client_id": filter.ClientID})
		}
		if filter.VisibleToMechanicID != 0 {
			builder = builder.Where(sq.Or{
				sq.Eq{"r.status": constant.RequestStatusPending},
				sq.Eq{"r.mechanic_id": filter.VisibleToMechanicID},
			})
		}
		if filter.Status != "" {
			builder = builder.Where(sq.Eq{"r.status": filter.Status})
		}
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list requests: %w", err)
	}

	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.RequestEntity, 0)
	for rows.Next() {
		var e model.RequestEntity
		if err := rows.StructScan(&e); err != nil {
			return nil, err
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}

func (s *SQL) ApplyTransition(ctx context.Context, t *model.RequestTransition) (bool, error) {
	if len(t.From) == 0 {
		return false, fmt.Errorf("transition to %s has no source status", t.To)
	}

	builder := sq.Update(requestTable).Set("status", t.To)
	if t.AssignMechanicID != nil {
		builder = builder.Set("mechanic_id", *t.AssignMechanicID)
	}
	if t.EstimatedCost != nil {
		builder = builder.Set("estimated_cost", *t.EstimatedCost)
	}
	if t.MechanicNote != nil {
		builder = builder.Set("mechanic_note", *t.MechanicNote)
	}
	if t.FinalCost != nil {
		builder = builder.Set("final_cost", *t.FinalCost)
	} else if t.FinalCostFromEstimate {
		builder = builder.Set("final_cost", sq.Expr("estimated_cost"))
	}
	if t.CancelledBy != nil {
		builder = builder.Set("cancelled_by", *t.CancelledBy)
	}
	if t.CancelReason != nil {
		builder = builder.Set("cancel_reason", *t.CancelReason)
	}
	builder = builder.Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": t.RequestID}).
		Where(sq.Eq{"status": t.From})
	if t.ClientID != nil {
		builder = builder.Where(sq.Eq{"client_id": *t.ClientID})
	}
	if t.MechanicID != nil {
		builder = builder.Where(sq.Eq{"mechanic_id": *t.MechanicID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return false, fmt.Errorf("build transition update: %w", err)
	}

	res, err := s.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

const requestStatsQuery = `SELECT
	COUNT(*) AS total_requests,
	COALESCE(SUM(status = 'pending'), 0) AS pending_requests,
	COALESCE(SUM(status = 'completed'), 0) AS completed_requests
FROM service_request`

// Stats fills the request-side counters of PlatformStats.
func (s *SQL) Stats(ctx context.Context) (*model.PlatformStats, error) {
	var stats model.PlatformStats
	if err := s.conn.QueryRowxContext(ctx, requestStatsQuery).StructScan(&stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
