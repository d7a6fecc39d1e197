package wav

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
)

// File is an in-memory WAV file. The zero value is an empty file with no
// header and no payload.
type File struct {
	data     []byte
	header   Header
	duration Duration
}

// New builds a well-formed file around payload. Zero-valued tags, format
// and rate fields in h are filled with canonical PCM defaults, and the size
// fields are set from len(payload). payload is copied.
//
// New does not validate h. If NumChannels, SampleRate or BitsPerSample is
// zero the duration is undefined and the file reports a zero [Duration],
// as [Load] does with [WithLenientHeader]. Use [ComputeDuration] to detect
// that case.
func New(h Header, payload []byte) *File {
	h = h.withDefaults(len(payload))

	data := make([]byte, HeaderSize, HeaderSize+len(payload))
	// A Header is fixed-size, so encoding cannot fail.
	hdr, _ := h.MarshalBinary()
	copy(data, hdr)
	data = append(data, payload...)

	d, _ := ComputeDuration(h)

	return &File{data: data, header: h, duration: d}
}

// Load reads the whole file at path and parses its header.
//
// Open failures wrap [ErrNotFound] together with the underlying os error.
// A directory is reported as [ErrNotFound] as well.
func Load(path string, opts ...LoadOption) (*File, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrNotFound, path)
	}

	f, err := LoadFrom(in, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// LoadFrom reads r to EOF and parses the result like [Load].
func LoadFrom(r io.Reader, opts ...LoadOption) (*File, error) {
	cfg := applyLoadOptions(opts)

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("wav: read: %w", err)
	}

	var h Header
	if err := h.UnmarshalBinary(data); err != nil {
		return nil, err
	}

	d, err := ComputeDuration(h)
	if err != nil && !cfg.lenient {
		return nil, err
	}

	return &File{data: data, header: h, duration: d}, nil
}

// Save writes the complete buffer to path, creating or truncating it.
//
// A path that cannot be created yields an error wrapping [ErrUnwritable].
func (f *File) Save(path string) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnwritable, err)
	}
	defer func() {
		err = errors.Join(err, out.Close())
	}()

	if _, err := f.WriteTo(out); err != nil {
		return fmt.Errorf("wav: save %s: %w", path, err)
	}

	return nil
}

// WriteTo writes the complete buffer to w verbatim.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(f.data)
	return int64(n), err
}

// Header returns the header as parsed at load time.
func (f *File) Header() Header {
	return f.header
}

// Duration returns the duration derived at load time.
func (f *File) Duration() Duration {
	return f.duration
}

// Len returns the total buffer length in bytes.
func (f *File) Len() int {
	return len(f.data)
}

// Bytes returns a copy of the complete buffer.
func (f *File) Bytes() []byte {
	return bytes.Clone(f.data)
}

// ExtractSamples returns a copy of the payload, i.e. every byte after the
// header.
func (f *File) ExtractSamples() []byte {
	if len(f.data) <= HeaderSize {
		return []byte{}
	}
	return slices.Clone(f.data[HeaderSize:])
}

// UpdateSamples overwrites the payload in place. samples must have exactly
// the current payload length; the header is not rewritten.
func (f *File) UpdateSamples(samples []byte) error {
	if len(f.data) != HeaderSize+len(samples) {
		return fmt.Errorf("%w: header won't be correct after update: payload is %d bytes, got %d",
			ErrInvalidArgument, max(len(f.data)-HeaderSize, 0), len(samples))
	}

	copy(f.data[HeaderSize:], samples)

	return nil
}
