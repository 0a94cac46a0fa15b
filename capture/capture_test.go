package capture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skywave-atc/asterix/compress"
)

func sampleBlocks() [][]byte {
	return [][]byte{
		{0x01, 0x00, 0x07, 0x80, 0x12, 0x34, 0x56},
		{0x01, 0x00, 0x05, 0xC0, 0xAA},
	}
}

func TestEncodeDecodeSegment_RoundTrip(t *testing.T) {
	blocks := sampleBlocks()

	encoded, err := EncodeSegment(compress.AlgorithmNone, blocks)
	require.NoError(t, err)

	segment, err := DecodeSegment(encoded)
	require.NoError(t, err)
	assert.Equal(t, blocks, segment.Blocks)
}

func TestEncodeDecodeSegment_RoundTripCompressed(t *testing.T) {
	blocks := sampleBlocks()

	encoded, err := EncodeSegment(compress.AlgorithmS2, blocks)
	require.NoError(t, err)

	segment, err := DecodeSegment(encoded)
	require.NoError(t, err)
	assert.Equal(t, blocks, segment.Blocks)
}

func TestDecodeSegment_BadMagicRejected(t *testing.T) {
	encoded, err := EncodeSegment(compress.AlgorithmNone, sampleBlocks())
	require.NoError(t, err)

	encoded[0] ^= 0xFF

	_, err = DecodeSegment(encoded)
	require.Error(t, err)
}

func TestDecodeSegment_CorruptedPayloadFailsChecksum(t *testing.T) {
	encoded, err := EncodeSegment(compress.AlgorithmNone, sampleBlocks())
	require.NoError(t, err)

	encoded[len(encoded)-1] ^= 0xFF

	_, err = DecodeSegment(encoded)
	require.Error(t, err)
}

func TestDigestSegment_StableAndDistinct(t *testing.T) {
	a := sampleBlocks()
	b := [][]byte{{0x02, 0x00, 0x03}}

	assert.Equal(t, DigestSegment(a), DigestSegment(a))
	assert.NotEqual(t, DigestSegment(a), DigestSegment(b))
}

func TestIndex_SeenMarksAfterFirstObservation(t *testing.T) {
	idx := NewIndex()
	digest := DigestSegment(sampleBlocks())

	assert.False(t, idx.Seen(digest))
	assert.True(t, idx.Seen(digest))
}
