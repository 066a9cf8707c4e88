package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrivilegeLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    PrivilegeLevel
		wantErr bool
	}{
		{"Admin", PrivilegeAdmin, false},
		{"User", PrivilegeUser, false},
		{"Viewer", PrivilegeViewer, false},
		{"admin", "", true},
		{"", "", true},
		{"Owner", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePrivilegeLevel(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownPrivilegeLevel)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrivilegeLevel_Can(t *testing.T) {
	assert.True(t, PrivilegeAdmin.Can(CapManageUsers))
	assert.True(t, PrivilegeAdmin.Can(CapViewRemoteCatalog))

	assert.True(t, PrivilegeUser.Can(CapSubmitPrepSheet))
	assert.True(t, PrivilegeUser.Can(CapViewStations))
	assert.False(t, PrivilegeUser.Can(CapManageStations))
	assert.False(t, PrivilegeUser.Can(CapViewDiagnostics))

	assert.True(t, PrivilegeViewer.Can(CapViewCompletedLists))
	assert.True(t, PrivilegeViewer.Can(CapViewRecipes))
	assert.False(t, PrivilegeViewer.Can(CapSubmitPrepSheet))
	assert.False(t, PrivilegeViewer.Can(CapViewStations))

	assert.False(t, PrivilegeLevel("Owner").Can(CapViewRecipes))
}

func TestUserDB_IsRoot(t *testing.T) {
	assert.True(t, (&UserDB{UserName: "root"}).IsRoot())
	assert.False(t, (&UserDB{UserName: "Root"}).IsRoot())
}
