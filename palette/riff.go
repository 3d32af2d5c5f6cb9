package palette

import (
	"encoding/binary"
	"fmt"
	"image/color"
	"io"

	"golang.org/x/image/riff"
)

/*
RIFF PAL data chunks carry a Windows LOGPALETTE:

	WORD palVersion    // 0x0300, big-endian on disk
	WORD palNumEntries // little-endian
	PALETTEENTRY palPalEntry[palNumEntries] // peRed, peGreen, peBlue, peFlags
*/

var (
	riffType = riff.FourCC{'R', 'I', 'F', 'F'}
	palType  = riff.FourCC{'P', 'A', 'L', ' '}
	dataType = riff.FourCC{'d', 'a', 't', 'a'}
)

// ReadPAL reads every palette chunk from a RIFF PAL stream and merges them
// into one ordered palette.
func ReadPAL(r io.Reader) (color.Palette, error) {
	formType, rd, err := riff.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not open RIFF stream: %w", err)
	} else if formType != palType {
		return nil, fmt.Errorf("unsupported RIFF content type: %s", string(formType[:]))
	}

	return readChunks(rd)
}

func readChunks(r *riff.Reader) (color.Palette, error) {
	var pal color.Palette

	for n := 0; ; n++ {
		id, size, data, err := r.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return pal, fmt.Errorf("could not read chunk %d: %w", n, err)
		}

		switch id {
		case riff.LIST:
			listType, list, err := riff.NewListReader(size, data)
			if err != nil {
				return pal, fmt.Errorf("could not read list chunk %d: %w", n, err)
			} else if listType != palType {
				return pal, fmt.Errorf("list chunk %d has unsupported type: %s", n, string(listType[:]))
			}

			nested, err := readChunks(list)
			pal = append(pal, nested...)
			if err != nil {
				return pal, err
			}
		case dataType:
			entries, err := readEntries(data)
			pal = append(pal, entries...)
			if err != nil {
				return pal, fmt.Errorf("chunk %d: %w", n, err)
			}
		default:
			return pal, fmt.Errorf("unsupported chunk type %s at %d", id, n)
		}
	}

	return pal, nil
}

func readEntries(r io.Reader) (color.Palette, error) {
	var header [4]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("could not read palette header: %w", err)
	}

	if ver := binary.BigEndian.Uint16(header[:2]); ver != 3 {
		return nil, fmt.Errorf("unsupported palette version: %d", ver)
	}

	count := binary.LittleEndian.Uint16(header[2:])
	pal := make(color.Palette, 0, count)
	var entry [4]byte
	for i := range int(count) {
		if _, err := io.ReadFull(r, entry[:]); err != nil {
			return pal, fmt.Errorf("could not read color %d/%d: %w", i, count, err)
		}

		pal = append(pal, color.RGBA{R: entry[0], G: entry[1], B: entry[2], A: 0xFF})
	}

	return pal, nil
}

// WritePAL writes a palette as a single-chunk RIFF PAL document.
func WritePAL(w io.Writer, pal color.Palette) error {
	// data chunk body: palVersion + palNumEntries + 4 bytes per color
	body := 4 + len(pal)*4
	// document size: form type + chunk header + chunk body
	total := 4 + 8 + body

	header := make([]byte, 0, 24)
	header = append(header, riffType[:]...)
	header = binary.LittleEndian.AppendUint32(header, uint32(total))
	header = append(header, palType[:]...)
	header = append(header, dataType[:]...)
	header = binary.LittleEndian.AppendUint32(header, uint32(body))
	header = append(header, 0x00, 0x03)
	header = binary.LittleEndian.AppendUint16(header, uint16(len(pal)))
	if err := writeBytes(w, header); err != nil {
		return fmt.Errorf("could not write PAL header: %w", err)
	}

	for i, col := range pal {
		c := color.RGBAModel.Convert(col).(color.RGBA)
		if err := writeBytes(w, []byte{c.R, c.G, c.B, 0x00}); err != nil {
			return fmt.Errorf("could not write color %d/%d: %w", i, len(pal), err)
		}
	}

	return nil
}

func writeBytes(w io.Writer, b []byte) error {
	n, err := w.Write(b)
	if err != nil {
		return err
	} else if n != len(b) {
		return fmt.Errorf("wrote only %d/%d bytes", n, len(b))
	}

	return nil
}
