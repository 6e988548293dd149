// Package parcelrepo provides data transfer objects and mapping functions for
// parcel persistence. It implements the repository pattern for the parcel
// domain aggregate, handling the conversion between domain entities and
// database representations.
package parcelrepo

import (
	"time"

	"parcelcarrier/internal/core/domain/model/kernel"
	"parcelcarrier/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel aggregates.
// Enum values are stored as their string form so the rows stay readable and
// the raw read queries can filter on them directly.
type ParcelDTO struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Type                 string     `gorm:"type:varchar(16);index"`
	Weight               float64    `gorm:"not null"`
	DestinationAddress   string     `gorm:"type:varchar(500);not null"`
	Status               string     `gorm:"type:varchar(16);index"`
	TransporterID        *uuid.UUID `gorm:"type:uuid;index"`
	HandlingInstructions string     `gorm:"type:varchar(1000)"`
	MinTemperature       *float64
	MaxTemperature       *float64
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName specifies the database table name for parcel entities.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// fromDomain converts a parcel domain aggregate to its database representation.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	var transporterID *uuid.UUID
	if id := aggregate.TransporterID(); id != nil {
		raw := id.Bytes()
		transporterID = &raw
	}

	return ParcelDTO{
		ID:                   aggregate.ID().Bytes(),
		Type:                 aggregate.Type().String(),
		Weight:               aggregate.Weight(),
		DestinationAddress:   aggregate.DestinationAddress(),
		Status:               aggregate.Status().String(),
		TransporterID:        transporterID,
		HandlingInstructions: aggregate.HandlingInstructions(),
		MinTemperature:       aggregate.MinTemperature(),
		MaxTemperature:       aggregate.MaxTemperature(),
		CreatedAt:            aggregate.CreatedAt(),
		UpdatedAt:            aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a parcel domain aggregate using RestoreParcel.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var transporterID *kernel.UUID
	if dto.TransporterID != nil {
		tID, tErr := kernel.UUIDFromBytes((*dto.TransporterID)[:])
		if tErr != nil {
			return nil, tErr
		}

		transporterID = &tID
	}

	parcelType, err := parcel.TypeFromString(dto.Type)
	if err != nil {
		return nil, err
	}

	status, err := parcel.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(
		id,
		parcelType,
		dto.Weight,
		dto.DestinationAddress,
		status,
		transporterID,
		dto.HandlingInstructions,
		dto.MinTemperature,
		dto.MaxTemperature,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
