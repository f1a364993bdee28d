package query

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commonerrors "readings-api-server/internal/api/common/errors"
	"readings-api-server/internal/api/common/filter"
	"readings-api-server/internal/models"
)

func parse(t *testing.T, target string, typeRequired bool) (Query, error) {
	t.Helper()

	var (
		result Query
		err    error
	)
	app := fiber.New()
	app.Get("/devices/:uuid/readings", func(c *fiber.Ctx) error {
		result, err = ParseAndValidate(c, typeRequired)
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, testErr := app.Test(httptest.NewRequest("GET", target, nil), -1)
	require.NoError(t, testErr)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	return result, err
}

func TestParseAndValidate(t *testing.T) {
	q, err := parse(t, "/devices/d1/readings?type=temperature&start=100&end=200", true)
	require.NoError(t, err)

	assert.Equal(t, "d1", q.Filter.DeviceUUID)
	assert.Equal(t, models.Temperature, q.Filter.SensorType)
	assert.Equal(t, int64(100), *q.Filter.Start)
	assert.Equal(t, int64(200), *q.Filter.End)
	assert.Equal(t, filter.Between, q.Filter.Range())
}

func TestParseAndValidateOptionalType(t *testing.T) {
	q, err := parse(t, "/devices/d1/readings?end=200", false)
	require.NoError(t, err)

	assert.Empty(t, q.Filter.SensorType)
	assert.Nil(t, q.Filter.Start)
	assert.Equal(t, filter.EndOnly, q.Filter.Range())
}

func TestParseAndValidateErrors(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		typeRequired bool
		field        string
		message      string
	}{
		{
			name:         "missing required type",
			target:       "/devices/d1/readings?start=1",
			typeRequired: true,
			field:        "type",
			message:      filter.MsgInvalidType,
		},
		{
			name:    "unsupported type",
			target:  "/devices/d1/readings?type=pressure",
			field:   "type",
			message: filter.MsgInvalidType,
		},
		{
			name:    "bad start",
			target:  "/devices/d1/readings?start=soon",
			field:   "start",
			message: `Please enter an epoch timestamp for "start"`,
		},
		{
			name:    "bad end",
			target:  "/devices/d1/readings?start=1&end=later",
			field:   "end",
			message: `Please enter an epoch timestamp for "end"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(t, tt.target, tt.typeRequired)

			var validationErr commonerrors.ValidationError
			require.True(t, errors.As(err, &validationErr), "got %v", err)
			assert.Equal(t, tt.field, validationErr.Field)
			assert.Equal(t, tt.message, validationErr.Message)
		})
	}
}
