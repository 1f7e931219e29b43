package mrform_test

import (
	"testing"

	"github.com/openmr-re/mrvault/encoding/mrform"
	"github.com/stretchr/testify/require"
)

func TestWalkGoldenContainer(t *testing.T) {
	for _, trailingZero := range []bool{true, false} {
		data := buildGoldenContainer(trailingZero)
		var items []mrform.ItemHeader
		err := mrform.Walk(data, mrform.VisitorFunc(func(hdr mrform.ItemHeader, payload []byte) error {
			items = append(items, hdr)
			require.Equal(t, hdr.Len, len(payload))
			return nil
		}))
		require.NoError(t, err)
		require.Equal(t, 32, len(items)) // 8 groups * 4 items
		require.Equal(t, 8, items[len(items)-1].Group)
	}
}

// TestWalkScenarioS1Item reproduces spec.md §8 scenario S1: a single group
// containing one FF002400-typed item, then a lone trailing 0x00.
//
// S1's literal container is too small to satisfy the [6,8] group-count
// invariant on its own, so this test isolates the per-item framing and
// decode behavior S1 describes rather than the group-count bound, which
// TestWalkGoldenContainer and TestWalkTooFewGroups cover separately.
func TestWalkScenarioS1Item(t *testing.T) {
	payload := []byte{0x07, 0x00, 0x00, 0x00}
	item := buildItem(0x17E3, mrform.TypeI32ArrayAnyFF, payload)
	val, err := mrform.Decode(mrform.TypeI32ArrayAnyFF, item[32:])
	require.NoError(t, err)
	require.Equal(t, "[7]", val.Render())
	require.Equal(t, 1, val.Multiplicity())
}

func TestWalkBadSeparator(t *testing.T) {
	data := buildGoldenContainer(true)
	// data[0:4] is group 1's leading item count; its first item's header
	// starts at offset 4, and the header's separator (offset 12 within
	// the item, spec.md §3 table) carries the 0x0C byte at its own
	// offset 8.
	const firstItemSeparatorMarker = 4 + 12 + 8
	corrupt := append([]byte{}, data...)
	corrupt[firstItemSeparatorMarker] = 0x0D // flip the 0x0C byte
	err := mrform.Walk(corrupt, mrform.VisitorFunc(func(mrform.ItemHeader, []byte) error { return nil }))
	require.Error(t, err)
	require.True(t, isKind(err, mrform.BadSeparator))
}

func TestWalkUnknownKey(t *testing.T) {
	item := buildItem(0xDEAD, mrform.TypeU32Scalar, u32Payload(1))
	data := buildContainer(true, buildGroup(item, item, item, item))
	err := mrform.Walk(data, mrform.VisitorFunc(func(mrform.ItemHeader, []byte) error { return nil }))
	require.Error(t, err)
	require.True(t, isKind(err, mrform.UnknownKey))
}

func TestWalkTypeMismatch(t *testing.T) {
	// 0x1000 is dictionary-valid only as TypeU32Scalar.
	item := buildItem(0x1000, mrform.TypeF32Scalar, f32Payload(1))
	data := buildContainer(true, buildGroup(item, item, item, item))
	err := mrform.Walk(data, mrform.VisitorFunc(func(mrform.ItemHeader, []byte) error { return nil }))
	require.Error(t, err)
	require.True(t, isKind(err, mrform.TypeMismatch))
}

func TestWalkTrailingGarbage(t *testing.T) {
	data := buildGoldenContainer(false)
	data = append(data, 0x01, 0x02) // more than the one permitted trailing byte
	err := mrform.Walk(data, mrform.VisitorFunc(func(mrform.ItemHeader, []byte) error { return nil }))
	require.Error(t, err)
	require.True(t, isKind(err, mrform.TrailingGarbage))
}

func TestWalkTrailingNonzero(t *testing.T) {
	data := buildGoldenContainer(false)
	data = append(data, 0xFF)
	err := mrform.Walk(data, mrform.VisitorFunc(func(mrform.ItemHeader, []byte) error { return nil }))
	require.Error(t, err)
	require.True(t, isKind(err, mrform.TrailingGarbage))
}

// TestWalkTailSentinel reproduces spec.md §8 scenario S5: after 5 normal
// groups, a count of 3 is read, signaling that 3 more groups remain
// (including the one whose real count immediately follows).
func TestWalkTailSentinel(t *testing.T) {
	var data []byte
	data = append(data, goldenGroup1()...)
	data = append(data, goldenGroup2()...)
	data = append(data, goldenGroup3()...)
	data = append(data, goldenGroup4()...)
	data = append(data, goldenGroup5()...)
	// Tail sentinel: 3 more groups remain, then group 6's real item count
	// (stripping goldenGroup6's own leading count and substituting it is
	// unnecessary -- the sentinel and the real count are two separate
	// u32 reads, and goldenGroup6 already starts with its own count).
	data = append(data, u32le(3)...)
	data = append(data, goldenGroup6()...)
	data = append(data, goldenGroup7()...)
	data = append(data, goldenGroup8()...)
	data = append(data, 0x00)

	groupCount := 0
	err := mrform.Walk(data, mrform.VisitorFunc(func(hdr mrform.ItemHeader, payload []byte) error {
		if hdr.Group > groupCount {
			groupCount = hdr.Group
		}
		return nil
	}))
	require.NoError(t, err)
	require.Equal(t, 8, groupCount)
}

// TestWalkTooFewGroups forces the tail sentinel to fire after only one
// real group, yielding a total of 2 groups -- below the [6,8] bound
// (spec.md §4.4's "Bounds"). The TooFewGroups/TooManyGroups check runs
// once the tail-sentinel countdown reaches zero or, for a container
// without a sentinel, once no further group count fits; this test covers
// the sentinel path.
func TestWalkTooFewGroups(t *testing.T) {
	var data []byte
	data = append(data, goldenGroup1()...)
	data = append(data, u32le(1)...) // sentinel: 1 more group remains
	data = append(data, goldenGroup2()...)
	data = append(data, 0x00)
	err := mrform.Walk(data, mrform.VisitorFunc(func(mrform.ItemHeader, []byte) error { return nil }))
	require.Error(t, err)
	require.True(t, isKind(err, mrform.TooFewGroups))
}
