// AngelaMos | 2026
// dto_test.go

package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/gigbook/internal/core"
)

// An omitted start or end must fail validation rather than silently
// defaulting to midnight.
func TestCreateEventRequestRequiresStartAndEnd(t *testing.T) {
	v := core.NewValidator()

	req := createReq()
	require.NoError(t, v.Struct(req))

	noStart := createReq()
	noStart.Start = nil
	assert.Error(t, v.Struct(noStart))

	noEnd := createReq()
	noEnd.End = nil
	assert.Error(t, v.Struct(noEnd))

	// A genuine midnight is still a valid value, not an absence.
	midnight := TimeOfDay{}
	atMidnight := createReq()
	atMidnight.Start = &midnight
	assert.NoError(t, v.Struct(atMidnight))
}
