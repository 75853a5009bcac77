package minting

import (
	"testing"

	"github.com/defido-labs/backend/pkg/errorx"
	"github.com/stretchr/testify/require"
)

func Test_SanitizeQuantityInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain number", input: "5", want: "5"},
		{name: "strips letters", input: "5x", want: "5"},
		{name: "strips spaces", input: " 10 ", want: "10"},
		{name: "collapses leading zeros", input: "007", want: "7"},
		{name: "zero is preserved", input: "0", want: "0"},
		{name: "all zeros", input: "000", want: "0"},
		{name: "empty", input: "", want: ""},
		{name: "only letters", input: "abc", want: ""},
		{name: "negative sign is dropped", input: "-3", want: "3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, SanitizeQuantityInput(tt.input))
		})
	}
}

func Test_ParseQuantity(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr error
	}{
		{name: "happy case", input: "5", want: 5},
		{name: "minimum", input: "1", want: 1},
		{name: "maximum", input: "10", want: 10},
		{
			name:    "zero is below minimum",
			input:   "0",
			wantErr: errorx.New(errorx.BelowMinimum, "Amount must be at least 1"),
		},
		{
			name:    "above maximum",
			input:   "11",
			wantErr: errorx.New(errorx.AboveMaximum, "Max amount is 10"),
		},
		{
			name:    "empty is below minimum",
			input:   "",
			wantErr: errorx.New(errorx.BelowMinimum, "Amount must be at least 1"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseQuantity(tt.input, 1, 10)
			if tt.wantErr != nil {
				require.Error(t, err)
				require.Equal(t, tt.wantErr.Error(), err.Error())
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func Test_ClampQuantity(t *testing.T) {
	require.Equal(t, 1, ClampQuantity(0, 1, 10))
	require.Equal(t, 10, ClampQuantity(11, 1, 10))
	require.Equal(t, 7, ClampQuantity(7, 1, 10))
}
