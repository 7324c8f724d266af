package core

import (
	"context"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"mclauncher/internal/types"
)

// ValidateDescriptor checks the fields resolution depends on. Anything
// beyond the version id and main class is the schema's concern, not
// ours: per-library problems surface as skip diagnostics later.
func ValidateDescriptor(ctx context.Context, desc types.Descriptor) error {
	if strings.TrimSpace(desc.ID) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("descriptor is missing required field: id")
	}
	if strings.TrimSpace(desc.MainClass) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("descriptor is missing required field: mainClass")
	}
	assert.NotEmpty(ctx, desc.ID, "version id must be set")
	assert.NotEmpty(ctx, desc.MainClass, "mainClass must be set")
	return nil
}
