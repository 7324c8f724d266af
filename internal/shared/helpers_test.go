package shared

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitCoordinate(t *testing.T) {
	group, artifact, version, ok := SplitCoordinate("org.lwjgl:lwjgl:3.3.1")
	assert.True(t, ok)
	assert.Equal(t, "org.lwjgl", group)
	assert.Equal(t, "lwjgl", artifact)
	assert.Equal(t, "3.3.1", version)

	_, _, _, ok = SplitCoordinate("only:two")
	assert.False(t, ok)

	// Classifier suffixes beyond the version are tolerated.
	_, artifact, version, ok = SplitCoordinate("com.example:lib:1.0:natives-linux")
	assert.True(t, ok)
	assert.Equal(t, "lib", artifact)
	assert.Equal(t, "1.0", version)
}

func TestGroupPath(t *testing.T) {
	assert.Equal(t, filepath.Join("org", "lwjgl"), GroupPath("org.lwjgl"))
	assert.Equal(t, "single", GroupPath("single"))
}
