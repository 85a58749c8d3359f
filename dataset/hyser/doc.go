// Package hyser addresses recordings of the Hyser high-density sEMG
// dataset and turns them into channels-by-samples signal matrices.
//
// The dataset is organized into four subsets (pattern recognition, 1-DoF,
// MVC and N-DoF), each indexed by subject, session and trial-level
// identifiers. This package only knows the directory layout; record
// decoding is delegated to a RecordReader so that any on-disk encoding
// can be plugged in. The default reader understands matrices serialized
// with gonum's binary format.
//
// Records store samples on rows, as acquisition software writes them;
// loaders transpose to the channels-by-samples orientation used by the
// preprocessing package.
package hyser
