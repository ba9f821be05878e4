package dto

import (
	"database/sql"
	"mime/multipart"

	"innkeep/internal/domains/room/model"
	"innkeep/shared"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/failure"
	gModel "innkeep/shared/model"
	"innkeep/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	RoomNumber         string                `json:"room_number" validate:"required,max=20"`
	Type               string                `json:"room_type"   validate:"required,oneof=single double twin suite family deluxe standard"`
	GenerallyAvailable *bool                 `json:"generally_available" validate:"omitempty"`
	Photo              *multipart.FileHeader `json:"-"           validate:"omitempty,mimetypes=image/png image/jpeg,maxfilesize=5"`
	PhotoFile          multipart.File        `json:"-"`
}

func (c *CreateRoomRequest) ToModel(photoURL, user string) model.Room {
	generallyAvailable := true
	if c.GenerallyAvailable != nil {
		generallyAvailable = *c.GenerallyAvailable
	}

	return model.Room{
		ID:                 uuid.NewString(),
		RoomNumber:         c.RoomNumber,
		Type:               c.Type,
		GenerallyAvailable: generallyAvailable,
		Photo:              photoURL,
		Active:             true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	RoomNumber         string `db:"room_number"         json:"room_number" validate:"omitempty,max=20"`
	Type               string `db:"room_type"           json:"room_type"   validate:"omitempty,oneof=single double twin suite family deluxe standard"`
	GenerallyAvailable *bool  `db:"generally_available" json:"generally_available" validate:"omitempty"`
	Active             *bool  `db:"active"              json:"active"      validate:"omitempty"`
}

type MaintenanceRequest struct {
	UnderMaintenance bool   `json:"under_maintenance" validate:"omitempty"`
	Until            string `json:"until"             validate:"omitempty"`
}

// Fields translates the maintenance patch into update columns. An empty
// until date means an open-ended window.
func (m *MaintenanceRequest) Fields(user string) (map[string]any, error) {
	until := sql.NullTime{}

	if m.Until != constant.Empty {
		parsed, err := timezone.Parse(constant.DateOnlyFormat, m.Until)
		if err != nil {
			return nil, failure.BadRequestFromString("until must be formatted as YYYY-MM-DD")
		}

		until = sql.NullTime{Time: parsed, Valid: true}
	}

	return map[string]any{
		model.FieldUnderMaintenance: m.UnderMaintenance,
		model.FieldMaintenanceUntil: until,
		constant.FieldModifiedAt:    timezone.Now(),
		constant.FieldModifiedBy:    user,
	}, nil
}

type RoomResponse struct {
	ID                 string `json:"id"`
	RoomNumber         string `json:"room_number"`
	Type               string `json:"room_type"`
	GenerallyAvailable bool   `json:"generally_available"`
	UnderMaintenance   bool   `json:"under_maintenance"`
	MaintenanceUntil   string `json:"maintenance_until,omitempty"`
	CheckedIn          bool   `json:"checked_in"`
	Photo              string `json:"photo,omitempty"`
	Active             bool   `json:"active"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(room model.Room) {
	r.ID = room.ID
	r.RoomNumber = room.RoomNumber
	r.Type = room.Type
	r.GenerallyAvailable = room.GenerallyAvailable
	r.UnderMaintenance = room.UnderMaintenance
	r.CheckedIn = room.CheckedIn
	r.Photo = room.Photo
	r.Active = room.Active

	if room.MaintenanceUntil.Valid {
		r.MaintenanceUntil = room.MaintenanceUntil.Time.Format(constant.DateOnlyFormat)
	}

	r.Metadata.FromModel(room.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
