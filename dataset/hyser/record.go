package hyser

import (
	"bufio"
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"
)

// recordExt is the extension of the default record encoding, a
// gonum-serialized dense matrix.
const recordExt = ".bin"

// RecordReader decodes the record at path (given without extension) into
// a samples-by-channels matrix.
type RecordReader func(path string) (*mat.Dense, error)

// ReadRecord is the default RecordReader. It reads a matrix serialized
// with gonum's mat binary format from path + ".bin".
func ReadRecord(path string) (*mat.Dense, error) {
	file, err := os.Open(path + recordExt)
	if err != nil {
		return nil, fmt.Errorf("hyser: open record: %w", err)
	}
	defer file.Close()

	var data mat.Dense
	if _, err := data.UnmarshalBinaryFrom(bufio.NewReader(file)); err != nil {
		return nil, fmt.Errorf("hyser: decode record %s: %w", path+recordExt, err)
	}
	return &data, nil
}

// WriteRecord serializes a samples-by-channels matrix to path + ".bin"
// in the encoding ReadRecord understands.
func WriteRecord(path string, data *mat.Dense) error {
	file, err := os.Create(path + recordExt)
	if err != nil {
		return fmt.Errorf("hyser: create record: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if _, err := data.MarshalBinaryTo(writer); err != nil {
		return fmt.Errorf("hyser: encode record %s: %w", path+recordExt, err)
	}
	return writer.Flush()
}
