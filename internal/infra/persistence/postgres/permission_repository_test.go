package postgres

import (
	"testing"

	"dispatch/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestPermissionUpdateColumns(t *testing.T) {
	tests := []struct {
		name  string
		flags map[string]bool
		want  []string
	}{
		{
			name:  "single flag leaves the others untouched",
			flags: map[string]bool{entity.PermissionCanManageMenu: true},
			want:  []string{"can_manage_menu", "updated_at"},
		},
		{
			name: "false values are still written",
			flags: map[string]bool{
				entity.PermissionCanAcceptOrder: false,
				entity.PermissionCanViewReports: true,
			},
			want: []string{"can_accept_order", "can_view_reports", "updated_at"},
		},
		{
			name:  "unknown keys are ignored",
			flags: map[string]bool{"canFly": true},
			want:  []string{"updated_at"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, permissionUpdateColumns(tt.flags))
		})
	}
}
