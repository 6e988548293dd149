package queries

import (
	"context"
	"fmt"
	"strings"

	"parcelcarrier/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetParcelsQueryHandler retrieves parcel pages from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern,
// joining the accounts table to expose the transporter's login.
type GetParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelsQueryHandler creates a handler for parcel listing queries.
// Requires a GORM database connection for query execution.
func NewGetParcelsQueryHandler(db *gorm.DB) GetParcelsQueryHandler {
	return GetParcelsQueryHandler{db: db}
}

// Handle executes the listing query.
// Returns the requested page sorted by creation time, newest first, together
// with the total number of rows matching the filter.
func (h GetParcelsQueryHandler) Handle(ctx context.Context, query GetParcelsQuery) (GetParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetParcelsQueryResponse{}, err
	}

	where, args := buildParcelFilter(query.Filter())

	var total int64
	countSQL := "SELECT COUNT(*) FROM parcels p" + where
	if err := h.db.WithContext(ctx).Raw(countSQL, args...).Scan(&total).Error; err != nil {
		return GetParcelsQueryResponse{}, err
	}

	pageSQL := fmt.Sprintf(`
		SELECT
			p.id,
			p.type,
			p.weight,
			p.destination_address,
			p.status,
			p.transporter_id,
			a.login,
			p.handling_instructions,
			p.min_temperature,
			p.max_temperature,
			p.created_at,
			p.updated_at
		FROM parcels p
		LEFT JOIN accounts a ON a.id = p.transporter_id
		%s
		ORDER BY p.created_at DESC
		LIMIT %d OFFSET %d
	`, where, query.Size(), query.Page()*query.Size())

	rows, err := h.db.WithContext(ctx).Raw(pageSQL, args...).Rows()
	if err != nil {
		return GetParcelsQueryResponse{}, err
	}
	defer rows.Close()

	items := make([]ParcelReadModel, 0, query.Size())
	for rows.Next() {
		var item ParcelReadModel
		var id uuid.UUID
		var transporterID *uuid.UUID

		err = rows.Scan(
			&id,
			&item.Type,
			&item.Weight,
			&item.DestinationAddress,
			&item.Status,
			&transporterID,
			&item.TransporterLogin,
			&item.HandlingInstructions,
			&item.MinTemperature,
			&item.MaxTemperature,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			return GetParcelsQueryResponse{}, err
		}

		parcelID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetParcelsQueryResponse{}, idErr
		}
		item.ID = parcelID

		if transporterID != nil {
			tID, idErr := kernel.UUIDFromBytes((*transporterID)[:])
			if idErr != nil {
				return GetParcelsQueryResponse{}, idErr
			}
			item.TransporterID = &tID
		}

		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return GetParcelsQueryResponse{}, err
	}

	return GetParcelsQueryResponse{
		Items: items,
		Total: total,
		Page:  query.Page(),
		Size:  query.Size(),
	}, nil
}

// buildParcelFilter translates the filter into a WHERE clause with positional
// arguments. Returns an empty clause when no criteria are set.
func buildParcelFilter(filter ParcelFilter) (string, []any) {
	conditions := make([]string, 0, 4)
	args := make([]any, 0, 4)

	if filter.ParcelType != nil {
		conditions = append(conditions, "p.type = ?")
		args = append(args, filter.ParcelType.String())
	}

	if filter.Status != nil {
		conditions = append(conditions, "p.status = ?")
		args = append(args, filter.Status.String())
	}

	switch {
	case filter.Unassigned:
		conditions = append(conditions, "p.transporter_id IS NULL")
	case filter.TransporterID != nil:
		conditions = append(conditions, "p.transporter_id = ?")
		args = append(args, filter.TransporterID.Bytes())
	}

	if filter.AddressContains != "" {
		conditions = append(conditions, "p.destination_address ILIKE ?")
		args = append(args, "%"+filter.AddressContains+"%")
	}

	if len(conditions) == 0 {
		return "", nil
	}

	return " WHERE " + strings.Join(conditions, " AND "), args
}
