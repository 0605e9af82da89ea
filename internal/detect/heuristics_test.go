package detect

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func records(t *testing.T, s string) []map[string]json.RawMessage {
	t.Helper()
	var out []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(s), &out))
	return out
}

func TestShapeV31(t *testing.T) {
	g := Shape(records(t, `[{"name":{"common":"Chad"},"flags":{"svg":"x"},"population":1},{"name":{"common":"Peru"},"population":2}]`))
	assert.Equal(t, VariantV31, g.Variant)
	assert.InDelta(t, 1.0, g.Confidence, 1e-9)
}

func TestShapeV2(t *testing.T) {
	g := Shape(records(t, `[{"name":"Chad","flag":"https://x/td.svg","population":1}]`))
	assert.Equal(t, VariantV2, g.Variant)
}

func TestShapeChallenge(t *testing.T) {
	g := Shape(records(t, `[{"name":{"common":"Chad"},"flags":{"img":"x"},"population":{"currentYear":3}},{"name":{"common":"Mali"},"flags":{"img":"y"},"population":7},{"name":{"common":"Peru"},"population":2}]`))
	assert.Equal(t, VariantChallenge, g.Variant)
	assert.InDelta(t, 2.0/3.0, g.Confidence, 1e-9)
	assert.Equal(t, 1, g.Counts[VariantV31])
}

func TestShapeEmpty(t *testing.T) {
	g := Shape(nil)
	assert.Equal(t, VariantUnknown, g.Variant)
	assert.Zero(t, g.Confidence)
}

func TestKind(t *testing.T) {
	assert.Equal(t, byte('0'), Kind(json.RawMessage(" -12")))
	assert.Equal(t, byte('n'), Kind(json.RawMessage("null")))
	assert.Equal(t, byte(0), Kind(nil))
	assert.Equal(t, byte('['), Kind(json.RawMessage(`["a"]`)))
}
