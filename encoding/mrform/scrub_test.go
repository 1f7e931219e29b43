package mrform_test

import (
	"testing"

	"github.com/openmr-re/mrvault/encoding/mrform"
	"github.com/stretchr/testify/require"
)

// TestScrubRoundTripNonPHI is spec.md §8 property 1: scrubbing a file
// with no PHI keys at all produces byte-identical output.
func TestScrubRoundTripNonPHI(t *testing.T) {
	// Groups 2, 3 and 5 swap their PHI item for a second copy of a
	// plain field in the same dictionary group, since (group, key,
	// type) validation is positional (spec.md §4.2) -- every group
	// must land at its own dictionary-registered position.
	group2NoPHI := buildGroup(
		buildItem(0x5500, mrform.TypeU32Scalar, u32Payload(1)),
		buildItem(0x5504, mrform.TypeASCIIDateTime, asciiDateTimePayload("1980-05-06T00:00")),
		buildItem(0x5508, mrform.TypeU32Bool4, u32BoolPayload(false)),
		buildItem(0x5500, mrform.TypeU32Scalar, u32Payload(2)),
	)
	group3NoPHI := buildGroup(
		buildItem(0x5600, mrform.TypeU32Scalar, u32Payload(1)),
		buildItem(0x5608, mrform.TypeASCIIDateTime, asciiDateTimePayload("2020-01-02T00:00")),
		buildItem(0x5618, mrform.TypeU32Bool2A, u32BoolPayload(false)),
		buildItem(0x5600, mrform.TypeU32Scalar, u32Payload(2)),
	)
	group5NoPHI := buildGroup(
		buildItem(0x6D00, mrform.TypeU32Scalar, u32Payload(1)),
		buildItem(0x6D04, mrform.TypeASCIIDateTime, asciiDateTimePayload("2010-03-04T00:00")),
		buildItem(0x6D20, mrform.TypeU32Bool4, u32BoolPayload(true)),
		buildItem(0x6D00, mrform.TypeU32Scalar, u32Payload(2)),
	)
	data := buildContainer(true,
		goldenGroup1(), group2NoPHI, group3NoPHI, goldenGroup4(),
		group5NoPHI, goldenGroup6(), goldenGroup7(), goldenGroup8())
	out := make([]byte, len(data))
	require.NoError(t, mrform.Scrub(data, out))
	require.Equal(t, data, out)
}

// TestScrubLengthInvariance is spec.md §8 property 2.
func TestScrubLengthInvariance(t *testing.T) {
	for _, trailingZero := range []bool{true, false} {
		data := buildGoldenContainer(trailingZero)
		out := make([]byte, len(data))
		require.NoError(t, mrform.Scrub(data, out))
		require.Equal(t, len(data), len(out))
	}
}

// TestScrubHeaderPreservation is spec.md §8 property 3: every item's
// 32-byte header is byte-identical between input and output.
func TestScrubHeaderPreservation(t *testing.T) {
	data := buildGoldenContainer(true)
	out := make([]byte, len(data))
	require.NoError(t, mrform.Scrub(data, out))

	var offsets []int
	off, lastGroup := 0, 0
	err := mrform.Walk(data, mrform.VisitorFunc(func(hdr mrform.ItemHeader, payload []byte) error {
		if hdr.Group != lastGroup { // each group opens with a 4-byte item count
			off += 4
			lastGroup = hdr.Group
		}
		offsets = append(offsets, off)
		off += 32 + hdr.Len
		return nil
	}))
	require.NoError(t, err)
	for _, start := range offsets {
		require.Equal(t, data[start:start+32], out[start:start+32], "header at offset %d", start)
	}
}

// TestScrubISOStringletPHI reproduces spec.md §8 scenario S2's redaction:
// the trailing 8 text bytes become spaces.
func TestScrubISOStringletPHI(t *testing.T) {
	data := buildGoldenContainer(true)
	out := make([]byte, len(data))
	require.NoError(t, mrform.Scrub(data, out))

	// Group 2's 4th item (0x55F2, ISOStringlet) payload starts right
	// after its 32-byte header; locate it via Walk instead of hand
	// computing offsets.
	var payloadStart, payloadLen int
	off, lastGroup := 0, 0
	err := mrform.Walk(data, mrform.VisitorFunc(func(hdr mrform.ItemHeader, payload []byte) error {
		if hdr.Group != lastGroup { // each group opens with a 4-byte item count
			off += 4
			lastGroup = hdr.Group
		}
		if hdr.Group == 2 && hdr.Key == 0x55F2 {
			payloadStart = off + 32
			payloadLen = hdr.Len
		}
		off += 32 + hdr.Len
		return nil
	}))
	require.NoError(t, err)
	require.NotZero(t, payloadLen)

	scrubbedPayload := out[payloadStart : payloadStart+payloadLen]
	require.Equal(t, []byte("        "), scrubbedPayload[len(scrubbedPayload)-8:])
	// Everything before the text region is untouched.
	require.Equal(t, data[payloadStart:payloadStart+19], scrubbedPayload[:19])
}

// TestScrubStruct436PHI reproduces spec.md §8 scenario S3.
func TestScrubStruct436PHI(t *testing.T) {
	data := buildGoldenContainer(true)
	out := make([]byte, len(data))
	require.NoError(t, mrform.Scrub(data, out))

	off, lastGroup := 0, 0
	var payloadStart, payloadLen int
	err := mrform.Walk(data, mrform.VisitorFunc(func(hdr mrform.ItemHeader, payload []byte) error {
		if hdr.Group != lastGroup { // each group opens with a 4-byte item count
			off += 4
			lastGroup = hdr.Group
		}
		if hdr.Group == 5 && hdr.Key == 0x6D83 {
			payloadStart = off + 32
			payloadLen = hdr.Len
		}
		off += 32 + hdr.Len
		return nil
	}))
	require.NoError(t, err)
	require.Equal(t, 436, payloadLen)

	scrubbed := out[payloadStart : payloadStart+payloadLen]
	original := data[payloadStart : payloadStart+payloadLen]
	for i := 0x49; i < 0x49+8; i++ { // "Doe John" occupies exactly 8 bytes
		require.Equalf(t, byte(' '), scrubbed[i], "byte %#x", i)
	}
	// Every other byte in the item is untouched.
	for i := 0; i < payloadLen; i++ {
		if i >= 0x49 && i < 0x49+8 {
			continue
		}
		require.Equalf(t, original[i], scrubbed[i], "byte %#x should be unchanged", i)
	}
}

// TestScrubStruct325PHI covers the struct-325 redaction rule: all five
// fixed-width strings are overwritten up to their NUL, regardless of
// which actually carries PHI (spec.md §4.6).
func TestScrubStruct325PHI(t *testing.T) {
	data := buildGoldenContainer(true)
	out := make([]byte, len(data))
	require.NoError(t, mrform.Scrub(data, out))

	off, lastGroup := 0, 0
	var payloadStart, payloadLen int
	err := mrform.Walk(data, mrform.VisitorFunc(func(hdr mrform.ItemHeader, payload []byte) error {
		if hdr.Group != lastGroup { // each group opens with a 4-byte item count
			off += 4
			lastGroup = hdr.Group
		}
		if hdr.Group == 3 && hdr.Key == 0x560D {
			payloadStart = off + 32
			payloadLen = hdr.Len
		}
		off += 32 + hdr.Len
		return nil
	}))
	require.NoError(t, err)
	require.Equal(t, 325, payloadLen)

	scrubbed := out[payloadStart : payloadStart+payloadLen]
	for i, s := range []string{"Dr. Smith", "note one", "note two", "", ""} {
		field := scrubbed[i*65 : i*65+65]
		for j := 0; j < len(s); j++ {
			require.Equalf(t, byte(' '), field[j], "field %d byte %d", i, j)
		}
	}
}

func TestScrubWrongOutputLength(t *testing.T) {
	data := buildGoldenContainer(true)
	err := mrform.Scrub(data, make([]byte, len(data)-1))
	require.Error(t, err)
	require.True(t, isKind(err, mrform.BadLength))
}

// TestScrubUnsupportedPHIType covers the documented edge case: PHI key
// 0x5612 has no redaction rule (dictionary_table.go notes it as
// "scrub-unsupported"), so scrubbing an item with that key must fail
// fatally rather than silently mirror PHI-bearing bytes.
func TestScrubUnsupportedPHIType(t *testing.T) {
	item := buildItem(0x5612, mrform.TypeF64Scalar, f64Payload(70.5))
	data := buildContainer(false, goldenGroup1(), goldenGroup2(), buildGroup(item, item, item, item))
	out := make([]byte, len(data))
	err := mrform.Scrub(data, out)
	require.Error(t, err)
	require.True(t, isKind(err, mrform.ScrubUnsupported))
}
