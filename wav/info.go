package wav

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteInfo prints every header field of f and its duration as an aligned
// two-column listing.
func WriteInfo(w io.Writer, f *File) error {
	h := f.Header()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	rows := []struct {
		label string
		value any
	}{
		{"Chunk id:", fmt.Sprintf("%q", h.ChunkID.String())},
		{"Chunk size:", fmt.Sprintf("%d bytes", h.ChunkSize)},
		{"File format:", fmt.Sprintf("%q", h.Format.String())},
		{"Subchunk1 id:", fmt.Sprintf("%q", h.Subchunk1ID.String())},
		{"Subchunk1 size:", fmt.Sprintf("%d bytes", h.Subchunk1Size)},
		{"Audio format:", h.AudioFormat},
		{"Number of channels:", h.NumChannels},
		{"Sample rate:", h.SampleRate},
		{"Byte rate:", h.ByteRate},
		{"Block align:", h.BlockAlign},
		{"Bits per sample:", h.BitsPerSample},
		{"Subchunk2 id:", fmt.Sprintf("%q", h.Subchunk2ID.String())},
		{"Subchunk2 size:", fmt.Sprintf("%d bytes", h.Subchunk2Size)},
		{"Duration:", f.Duration()},
	}

	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%v\n", r.label, r.value); err != nil {
			return fmt.Errorf("wav: write info: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("wav: write info: %w", err)
	}

	return nil
}
