package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("should create a valid non-nil UUID", func(t *testing.T) {
		id := kernel.NewUUID()

		assert.NoError(t, id.Validate())
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", id.String())
		assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`, id.String())
	})

	t.Run("should create distinct identifiers", func(t *testing.T) {
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		assert.False(t, first.IsEqual(second))
		assert.False(t, second.IsEqual(first))
	})
}

func TestUUIDFromString(t *testing.T) {
	const canonical = "7c9e6679-7425-40de-944b-e07fc1f90ae7"

	t.Run("should parse accepted formats", func(t *testing.T) {
		testCases := []struct {
			name  string
			input string
		}{
			{"canonical", canonical},
			{"braced", "{7c9e6679-7425-40de-944b-e07fc1f90ae7}"},
			{"urn prefixed", "urn:uuid:7c9e6679-7425-40de-944b-e07fc1f90ae7"},
			{"without hyphens", "7c9e6679742540de944be07fc1f90ae7"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				id, err := kernel.UUIDFromString(tc.input)

				require.NoError(t, err)
				assert.Equal(t, canonical, id.String())
				assert.NoError(t, id.Validate())
			})
		}
	})

	t.Run("should reject malformed input", func(t *testing.T) {
		testCases := []string{
			"",
			"order-1234",
			"7c9e6679-7425-40de-944b",
			"7c9e6679-7425-40de-944b-e07fc1f90ae7-tail",
			"gggg6679-7425-40de-944b-e07fc1f90ae7",
		}

		for _, input := range testCases {
			_, err := kernel.UUIDFromString(input)

			require.Error(t, err, "input %q", input)
			assert.Contains(t, err.Error(), "invalid UUID format")
		}
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("should round-trip through the binary form", func(t *testing.T) {
		source := kernel.NewUUID()
		raw := source.Bytes()

		restored, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, source.IsEqual(restored))
	})

	t.Run("should reject a slice of the wrong length", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0xde, 0xad, 0xbe, 0xef})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})

	t.Run("should reject the nil UUID", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		require.Error(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}

func TestUUID_Bytes(t *testing.T) {
	t.Run("should expose the underlying library value", func(t *testing.T) {
		id := kernel.NewUUID()

		raw := id.Bytes()

		assert.IsType(t, uuid.UUID{}, raw)
		assert.Equal(t, id.String(), raw.String())
	})

	t.Run("should return a copy that does not alias the original", func(t *testing.T) {
		id := kernel.NewUUID()
		before := id.String()

		raw := id.Bytes()
		for i := range raw {
			raw[i] = 0xFF
		}

		assert.Equal(t, before, id.String())
		assert.NoError(t, id.Validate())
	})
}

func TestUUID_IsEqual(t *testing.T) {
	t.Run("should treat same value as equal regardless of source", func(t *testing.T) {
		parsed, err := kernel.UUIDFromString("7c9e6679-7425-40de-944b-e07fc1f90ae7")
		require.NoError(t, err)
		reparsed, err := kernel.UUIDFromString("{7c9e6679-7425-40de-944b-e07fc1f90ae7}")
		require.NoError(t, err)

		assert.True(t, parsed.IsEqual(reparsed))
		assert.True(t, reparsed.IsEqual(parsed))
	})

	t.Run("should treat zero values as equal to each other only", func(t *testing.T) {
		var zeroA, zeroB kernel.UUID
		minted := kernel.NewUUID()

		assert.True(t, zeroA.IsEqual(zeroB))
		assert.False(t, zeroA.IsEqual(minted))
		assert.False(t, minted.IsEqual(zeroA))
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("should accept any constructed UUID", func(t *testing.T) {
		assert.NoError(t, kernel.NewUUID().Validate())
	})

	t.Run("should reject a zero-value field on a literal struct", func(t *testing.T) {
		var holder struct {
			OrderID kernel.UUID
		}

		err := holder.OrderID.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}
