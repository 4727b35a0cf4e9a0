package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskflow/internal/domain"
)

func strPtr(s string) *string {
	return &s
}

func TestBuildEdit(t *testing.T) {
	task := &domain.Task{
		ID:          7,
		Name:        "Buy milk",
		Description: domain.StringPtr("2 liters"),
	}

	tests := []struct {
		name        string
		newName     *string
		newDesc     *string
		wantErr     error
		wantErrText string
		wantName    string
		wantDesc    *string
	}{
		{
			name:     "rename keeps description",
			newName:  strPtr("  Buy oat milk "),
			wantName: "Buy oat milk",
			wantDesc: strPtr("2 liters"),
		},
		{
			name:     "new description keeps name",
			newDesc:  strPtr("1 liter"),
			wantName: "Buy milk",
			wantDesc: strPtr("1 liter"),
		},
		{
			name:     "clearing description stores absent",
			newDesc:  strPtr("   "),
			wantName: "Buy milk",
			wantDesc: nil,
		},
		{
			name:    "same values refused",
			newName: strPtr("Buy milk"),
			newDesc: strPtr("2 liters"),
			wantErr: errNothingToSave,
		},
		{
			name:    "whitespace only change refused",
			newName: strPtr(" Buy milk  "),
			wantErr: errNothingToSave,
		},
		{
			name:        "empty name refused",
			newName:     strPtr("   "),
			wantErrText: "task name cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			update, err := buildEdit(task, tt.newName, tt.newDesc)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				return
			case tt.wantErrText != "":
				assert.EqualError(t, err, tt.wantErrText)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(7), update.ID)
			assert.Equal(t, tt.wantName, update.Name)
			assert.Equal(t, tt.wantDesc, update.Description)
		})
	}
}

func TestParseTaskID(t *testing.T) {
	id, err := parseTaskID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"", "abc", "0", "-3"} {
		_, err := parseTaskID(bad)
		assert.Error(t, err, bad)
	}
}

func TestBuildFilter(t *testing.T) {
	f, err := buildFilter("Work", false, true)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryWork, f.Category)
	require.NotNil(t, f.Completed)
	assert.False(t, *f.Completed)

	f, err = buildFilter("", true, false)
	require.NoError(t, err)
	assert.Empty(t, f.Category)
	require.NotNil(t, f.Completed)
	assert.True(t, *f.Completed)

	_, err = buildFilter("shopping", false, false)
	assert.Error(t, err)
}
