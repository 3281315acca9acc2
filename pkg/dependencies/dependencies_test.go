//go:build unit

package dependencies

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tsfix/pkg/logger"
)

func TestNew_ProvidesDefaults(t *testing.T) {
	deps := New()

	assert.NotNil(t, deps.FS)
	assert.NotNil(t, deps.Checker)
	assert.NotNil(t, deps.Rewriter)
	assert.NotNil(t, deps.Config)
	assert.NotNil(t, deps.Logger)
	assert.NoError(t, deps.Validate())
}

func TestWithLogger_Chains(t *testing.T) {
	custom := logger.NewDefaultLogger()

	deps := New().WithLogger(custom)

	assert.Equal(t, custom, deps.Logger)
	assert.NoError(t, deps.Validate())
}

func TestValidate_MissingDependency(t *testing.T) {
	deps := New()
	deps.Checker = nil

	assert.ErrorIs(t, deps.Validate(), ErrCheckerMissing)
}
