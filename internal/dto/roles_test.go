package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleList_Unmarshal(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		valid    bool
		nonEmpty bool
		values   []string
	}{
		{name: "absent", body: `{}`},
		{name: "null", body: `{"roles":null}`},
		{name: "string", body: `{"roles":"Admin"}`},
		{name: "numbers", body: `{"roles":[1,2]}`},
		{name: "empty", body: `{"roles":[]}`, valid: true, values: []string{}},
		{name: "list", body: `{"roles":["Employee","Manager"]}`, valid: true, nonEmpty: true, values: []string{"Employee", "Manager"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req struct {
				Roles RoleList `json:"roles"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			assert.Equal(t, tt.valid, req.Roles.Valid)
			assert.Equal(t, tt.nonEmpty, req.Roles.NonEmpty())
			if tt.values != nil {
				assert.Equal(t, tt.values, req.Roles.Values)
			}
		})
	}
}

func TestRoleList_Or(t *testing.T) {
	fallback := []string{"Employee"}

	assert.Equal(t, fallback, RoleList{}.Or(fallback))
	assert.Equal(t, fallback, RoleList{Values: []string{}, Valid: true}.Or(fallback))
	assert.Equal(t, []string{"Admin"}, RoleList{Values: []string{"Admin"}, Valid: true}.Or(fallback))

	got := RoleList{}.Or(fallback)
	got[0] = "changed"
	assert.Equal(t, "Employee", fallback[0])
}
