package queries

import (
	"context"
	"time"

	"parcelcarrier/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStaleParcelsQueryHandler retrieves parcels stuck in a non-terminal
// status. Used by the monitoring job to surface deliveries that stalled.
type GetStaleParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetStaleParcelsQueryHandler creates a handler for stale parcel queries.
func NewGetStaleParcelsQueryHandler(db *gorm.DB) GetStaleParcelsQueryHandler {
	return GetStaleParcelsQueryHandler{db: db}
}

// Handle executes the query. A parcel counts as stale when its status is
// still pending or in transit and it was last touched before the cutoff.
func (h GetStaleParcelsQueryHandler) Handle(ctx context.Context, query GetStaleParcelsQuery) ([]StaleParcelReadModel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := time.Now().UTC().Add(-query.Threshold())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.status,
			p.destination_address,
			a.login,
			p.updated_at
		FROM parcels p
		LEFT JOIN accounts a ON a.id = p.transporter_id
		WHERE p.status IN ('PENDING', 'IN_TRANSIT')
		  AND p.updated_at < ?
		ORDER BY p.updated_at
	`, cutoff).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parcels := make([]StaleParcelReadModel, 0)
	for rows.Next() {
		var item StaleParcelReadModel
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&item.Status,
			&item.DestinationAddress,
			&item.TransporterLogin,
			&item.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		parcelID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ID = parcelID

		parcels = append(parcels, item)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
