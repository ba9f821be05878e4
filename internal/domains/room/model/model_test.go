package model_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"innkeep/internal/domains/room/model"
)

func TestRoom_IsBookable(t *testing.T) {
	asOf := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		room model.Room
		want bool
	}{
		{
			name: "active and generally available",
			room: model.Room{Active: true, GenerallyAvailable: true},
			want: true,
		},
		{
			name: "deactivated room",
			room: model.Room{Active: false, GenerallyAvailable: true},
			want: false,
		},
		{
			name: "withdrawn from inventory",
			room: model.Room{Active: true, GenerallyAvailable: false},
			want: false,
		},
		{
			name: "open ended maintenance window",
			room: model.Room{
				Active:             true,
				GenerallyAvailable: true,
				UnderMaintenance:   true,
			},
			want: false,
		},
		{
			name: "maintenance window still running",
			room: model.Room{
				Active:             true,
				GenerallyAvailable: true,
				UnderMaintenance:   true,
				MaintenanceUntil:   sql.NullTime{Time: asOf.Add(72 * time.Hour), Valid: true},
			},
			want: false,
		},
		{
			name: "maintenance window already over",
			room: model.Room{
				Active:             true,
				GenerallyAvailable: true,
				UnderMaintenance:   true,
				MaintenanceUntil:   sql.NullTime{Time: asOf.Add(-24 * time.Hour), Valid: true},
			},
			want: true,
		},
		{
			name: "maintenance window ends at check in",
			room: model.Room{
				Active:             true,
				GenerallyAvailable: true,
				UnderMaintenance:   true,
				MaintenanceUntil:   sql.NullTime{Time: asOf, Valid: true},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.room.IsBookable(asOf))
		})
	}
}
