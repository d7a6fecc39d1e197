package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

// canonicalHeader returns the raw bytes of a mono 8 kHz 8-bit header for
// a payload of dataSize bytes, written field by field.
func canonicalHeader(dataSize uint32) []byte {
	var b bytes.Buffer
	le := binary.LittleEndian
	b.WriteString("RIFF")
	_ = binary.Write(&b, le, uint32(36)+dataSize)
	b.WriteString("WAVE")
	b.WriteString("fmt ")
	_ = binary.Write(&b, le, uint32(16))
	_ = binary.Write(&b, le, uint16(1))
	_ = binary.Write(&b, le, uint16(1))
	_ = binary.Write(&b, le, uint32(8000))
	_ = binary.Write(&b, le, uint32(8000))
	_ = binary.Write(&b, le, uint16(1))
	_ = binary.Write(&b, le, uint16(8))
	b.WriteString("data")
	_ = binary.Write(&b, le, dataSize)
	return b.Bytes()
}

func TestHeaderUnmarshalFieldOffsets(t *testing.T) {
	var h Header
	if err := h.UnmarshalBinary(canonicalHeader(8000)); err != nil {
		t.Fatalf("UnmarshalBinary error: %v", err)
	}

	want := Header{
		ChunkID:       TagRIFF,
		ChunkSize:     8036,
		Format:        TagWAVE,
		Subchunk1ID:   TagFmt,
		Subchunk1Size: 16,
		AudioFormat:   1,
		NumChannels:   1,
		SampleRate:    8000,
		ByteRate:      8000,
		BlockAlign:    1,
		BitsPerSample: 8,
		Subchunk2ID:   TagData,
		Subchunk2Size: 8000,
	}
	if h != want {
		t.Fatalf("header = %+v\nwant     %+v", h, want)
	}
}

func TestHeaderUnmarshalLittleEndian(t *testing.T) {
	raw := canonicalHeader(0)
	raw[24], raw[25], raw[26], raw[27] = 0x44, 0xAC, 0x00, 0x00 // 44100
	raw[22], raw[23] = 0x02, 0x00

	var h Header
	if err := h.UnmarshalBinary(raw); err != nil {
		t.Fatalf("UnmarshalBinary error: %v", err)
	}
	if h.SampleRate != 44100 || h.NumChannels != 2 {
		t.Fatalf("sampleRate=%d channels=%d, want 44100/2", h.SampleRate, h.NumChannels)
	}
}

func TestHeaderUnmarshalKeepsRawTags(t *testing.T) {
	raw := canonicalHeader(0)
	copy(raw[36:40], []byte{'d', 0, 'x', 0})

	var h Header
	if err := h.UnmarshalBinary(raw); err != nil {
		t.Fatalf("UnmarshalBinary error: %v", err)
	}
	if got := h.Subchunk2ID.String(); got != "d\x00x\x00" {
		t.Fatalf("Subchunk2ID = %q, want raw bytes", got)
	}
}

func TestHeaderUnmarshalTruncated(t *testing.T) {
	var h Header
	err := h.UnmarshalBinary(make([]byte, HeaderSize-1))
	if !errors.Is(err, ErrMalformedHeader) {
		t.Fatalf("err = %v, want ErrMalformedHeader", err)
	}
}

func TestHeaderMarshalRoundTrip(t *testing.T) {
	raw := canonicalHeader(1234)

	var h Header
	if err := h.UnmarshalBinary(raw); err != nil {
		t.Fatalf("UnmarshalBinary error: %v", err)
	}

	got, err := h.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary error: %v", err)
	}
	if !bytes.Equal(got, raw) {
		t.Fatalf("MarshalBinary = % x\nwant            % x", got, raw)
	}
}

func TestHeaderSizeMatchesStruct(t *testing.T) {
	if n := binary.Size(Header{}); n != HeaderSize {
		t.Fatalf("binary.Size(Header{}) = %d, want %d", n, HeaderSize)
	}
}

func TestNewTag(t *testing.T) {
	if got := NewTag("fmt ").String(); got != "fmt " {
		t.Fatalf("NewTag = %q", got)
	}
	if got := NewTag("ab"); got != (Tag{'a', 'b', 0, 0}) {
		t.Fatalf("NewTag(short) = %v", got)
	}
	if got := NewTag("RIFFX"); got != TagRIFF {
		t.Fatalf("NewTag(long) = %v", got)
	}
}
