package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/require"

	"mclauncher/internal/types"
)

func TestValidateDescriptor(t *testing.T) {
	tests := []struct {
		name    string
		desc    types.Descriptor
		wantErr bool
	}{
		{"valid", types.Descriptor{ID: "1.20.1", MainClass: "Main"}, false},
		{"missing id", types.Descriptor{MainClass: "Main"}, true},
		{"missing main class", types.Descriptor{ID: "1.20.1"}, true},
		{"whitespace main class", types.Descriptor{ID: "1.20.1", MainClass: "  "}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateDescriptor(t.Context(), tc.desc)
			if !tc.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
		})
	}
}
