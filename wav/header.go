package wav

import (
	"encoding/binary"
	"fmt"
)

// HeaderSize is the size of the canonical header in bytes.
const HeaderSize = 44

// Tag is a four-character chunk identifier. The bytes are kept verbatim;
// no NUL termination or trimming is applied.
type Tag [4]byte

// NewTag builds a Tag from the first four bytes of s, zero-filling the rest.
func NewTag(s string) Tag {
	var t Tag
	copy(t[:], s)
	return t
}

// String returns the raw tag bytes as a string.
func (t Tag) String() string {
	return string(t[:])
}

// Canonical tag values.
var (
	TagRIFF = NewTag("RIFF")
	TagWAVE = NewTag("WAVE")
	TagFmt  = NewTag("fmt ")
	TagData = NewTag("data")
)

// Header holds the 44-byte header fields in file order. All numeric fields
// are little-endian on disk.
type Header struct {
	ChunkID       Tag
	ChunkSize     uint32
	Format        Tag
	Subchunk1ID   Tag
	Subchunk1Size uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	Subchunk2ID   Tag
	Subchunk2Size uint32
}

// Field offsets within the header.
const (
	offChunkID       = 0
	offChunkSize     = 4
	offFormat        = 8
	offSubchunk1ID   = 12
	offSubchunk1Size = 16
	offAudioFormat   = 20
	offNumChannels   = 22
	offSampleRate    = 24
	offByteRate      = 28
	offBlockAlign    = 32
	offBitsPerSample = 34
	offSubchunk2ID   = 36
	offSubchunk2Size = 40
)

// UnmarshalBinary decodes the header from the first [HeaderSize] bytes of
// data by fixed-offset field extraction.
func (h *Header) UnmarshalBinary(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: need %d bytes, got %d", ErrMalformedHeader, HeaderSize, len(data))
	}

	le := binary.LittleEndian

	*h = Header{
		ChunkID:       tagAt(data, offChunkID),
		ChunkSize:     le.Uint32(data[offChunkSize:]),
		Format:        tagAt(data, offFormat),
		Subchunk1ID:   tagAt(data, offSubchunk1ID),
		Subchunk1Size: le.Uint32(data[offSubchunk1Size:]),
		AudioFormat:   le.Uint16(data[offAudioFormat:]),
		NumChannels:   le.Uint16(data[offNumChannels:]),
		SampleRate:    le.Uint32(data[offSampleRate:]),
		ByteRate:      le.Uint32(data[offByteRate:]),
		BlockAlign:    le.Uint16(data[offBlockAlign:]),
		BitsPerSample: le.Uint16(data[offBitsPerSample:]),
		Subchunk2ID:   tagAt(data, offSubchunk2ID),
		Subchunk2Size: le.Uint32(data[offSubchunk2Size:]),
	}

	return nil
}

// MarshalBinary encodes the header into its 44-byte on-disk form.
func (h Header) MarshalBinary() ([]byte, error) {
	buf, err := binary.Append(make([]byte, 0, HeaderSize), binary.LittleEndian, h)
	if err != nil {
		return nil, fmt.Errorf("wav: encode header: %w", err)
	}
	return buf, nil
}

func tagAt(data []byte, off int) Tag {
	var t Tag
	copy(t[:], data[off:off+len(t)])
	return t
}

// withDefaults fills zero-valued fields of h for a canonical PCM file
// carrying payloadLen bytes of sample data.
func (h Header) withDefaults(payloadLen int) Header {
	if h.ChunkID == (Tag{}) {
		h.ChunkID = TagRIFF
	}
	if h.Format == (Tag{}) {
		h.Format = TagWAVE
	}
	if h.Subchunk1ID == (Tag{}) {
		h.Subchunk1ID = TagFmt
	}
	if h.Subchunk2ID == (Tag{}) {
		h.Subchunk2ID = TagData
	}
	if h.Subchunk1Size == 0 {
		h.Subchunk1Size = 16
	}
	if h.AudioFormat == 0 {
		h.AudioFormat = 1
	}

	frameBytes := uint32(h.NumChannels) * uint32(h.BitsPerSample) / 8
	if h.ByteRate == 0 {
		h.ByteRate = h.SampleRate * frameBytes
	}
	if h.BlockAlign == 0 {
		h.BlockAlign = uint16(frameBytes)
	}

	h.Subchunk2Size = uint32(payloadLen)
	h.ChunkSize = HeaderSize - 8 + uint32(payloadLen)

	return h
}
