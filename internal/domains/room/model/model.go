package model

import (
	"database/sql"
	"innkeep/shared/model"
	"time"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID                 = "id"
	FieldRoomNumber         = "room_number"
	FieldType               = "room_type"
	FieldGenerallyAvailable = "generally_available"
	FieldUnderMaintenance   = "under_maintenance"
	FieldMaintenanceUntil   = "maintenance_until"
	FieldCheckedIn          = "checked_in"
	FieldPhoto              = "photo"
	FieldActive             = "active"
)

const (
	TypeSingle   = "single"
	TypeDouble   = "double"
	TypeTwin     = "twin"
	TypeSuite    = "suite"
	TypeFamily   = "family"
	TypeDeluxe   = "deluxe"
	TypeStandard = "standard"
)

type Room struct {
	ID                 string       `db:"id"`
	RoomNumber         string       `db:"room_number"`
	Type               string       `db:"room_type"`
	GenerallyAvailable bool         `db:"generally_available"`
	UnderMaintenance   bool         `db:"under_maintenance"`
	MaintenanceUntil   sql.NullTime `db:"maintenance_until"`
	CheckedIn          bool         `db:"checked_in"`
	Photo              string       `db:"photo"`
	Active             bool         `db:"active"`
	model.Metadata
}

// IsBookable reports whether new reservations may target this room as of
// the given instant. It says nothing about conflicts with other bookings;
// that is the overlap check's job.
func (r *Room) IsBookable(asOf time.Time) bool {
	if !r.Active || !r.GenerallyAvailable {
		return false
	}

	if r.UnderMaintenance {
		if !r.MaintenanceUntil.Valid {
			return false
		}

		if asOf.Before(r.MaintenanceUntil.Time) {
			return false
		}
	}

	return true
}
