package preflight

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	svc := NewService(t.TempDir(), "finaid-dev.db", nil, "", nil, "", zap.NewNop())
	feature := NewFeature(svc)

	assert.Equal(t, "preflight", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	err := feature.Load(app)
	assert.NoError(t, err)
}
