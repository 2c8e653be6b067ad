package permissions_test

import (
	"net/http"
	"testing"

	"cinetix/permissions"
	"cinetix/shared/constant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)
	assert.False(t, data.Skip)
	assert.NotEmpty(t, data.Endpoints)
}

func TestFindPermissions(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		name      string
		path      string
		method    string
		wantSkip  bool
		wantRoles []string
	}{
		{name: "register is public", path: "/v1/auth/register", method: http.MethodPost, wantSkip: true},
		{name: "login is public", path: "/v1/auth/login", method: http.MethodPost, wantSkip: true},
		{name: "movie browsing is public", path: "/v1/movies", method: http.MethodGet, wantSkip: true},
		{name: "movie detail is public", path: "/v1/movies/{id}", method: http.MethodGet, wantSkip: true},
		{name: "movie create needs admin", path: "/v1/movies", method: http.MethodPost, wantRoles: []string{constant.RoleAdmin}},
		{name: "movie update needs admin", path: "/v1/movies/{id}", method: http.MethodPatch, wantRoles: []string{constant.RoleAdmin}},
		{name: "movie delete needs admin", path: "/v1/movies/{id}", method: http.MethodDelete, wantRoles: []string{constant.RoleAdmin}},
		{name: "poster upload needs admin", path: "/v1/movies/{id}/poster", method: http.MethodPost, wantRoles: []string{constant.RoleAdmin}},
		{name: "booking list needs auth only", path: "/v1/bookings", method: http.MethodGet},
		{name: "booking create needs auth only", path: "/v1/bookings", method: http.MethodPost},
		{name: "trailing slash pattern matches", path: "/v1/bookings/", method: http.MethodPost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			perm := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.wantSkip, perm.Skip)

			if len(tt.wantRoles) == 0 {
				assert.Empty(t, perm.Permissions)
			} else {
				assert.Equal(t, tt.wantRoles, perm.Permissions)
			}
		})
	}
}

func TestFindPermissions_UnknownRoute(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	perm := data.FindPermissions("/v1/unknown", http.MethodGet)
	assert.False(t, perm.Skip)
	assert.Empty(t, perm.Permissions)
}
