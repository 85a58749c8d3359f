package hyser

import (
	"fmt"
	"path/filepath"

	"gonum.org/v1/gonum/mat"
)

// SigType selects which signal of a record to load.
type SigType string

// Signal types available for every subset.
const (
	SigRaw        SigType = "raw"
	SigPreprocess SigType = "preprocess"
	SigForce      SigType = "force"
)

// TaskType distinguishes the two task variants of the pattern
// recognition subset.
type TaskType string

// Task types of the pattern recognition subset.
const (
	TaskMaintenance TaskType = "maintenance"
	TaskDynamic     TaskType = "dynamic"
)

// Direction is the movement direction of an MVC record.
type Direction string

// Movement directions of the MVC subset.
const (
	DirectionExtension Direction = "extension"
	DirectionFlexion   Direction = "flexion"
)

// Dataset reads signal matrices from a Hyser dataset tree rooted at Root.
// A nil Reader means ReadRecord.
type Dataset struct {
	Root   string
	Reader RecordReader
}

// LoadPR loads a record from the pattern recognition subset, identified
// by gesture, subject, session, trial and task.
func (d Dataset) LoadPR(gesture, subject, session, trial, task int, taskType TaskType, sigType SigType) (*mat.Dense, error) {
	if taskType != TaskMaintenance && taskType != TaskDynamic {
		return nil, fmt.Errorf("%w: got %q", ErrTaskType, taskType)
	}
	if err := checkSigType(sigType); err != nil {
		return nil, err
	}
	path := filepath.Join(
		d.Root,
		"pr_dataset",
		fmt.Sprintf("%02d", gesture),
		fmt.Sprintf("subject%02d_session%d_%s_%s_trial%d_task%d", subject, session, taskType, sigType, trial, task),
	)
	return d.load(path)
}

// Load1DOF loads a record from the 1-DoF subset, identified by subject,
// session, task (finger) and trial.
func (d Dataset) Load1DOF(subject, session, task, trial int, sigType SigType) (*mat.Dense, error) {
	if err := checkSigType(sigType); err != nil {
		return nil, err
	}
	path := filepath.Join(
		d.Root,
		"1dof_dataset",
		fmt.Sprintf("subject%02d_session%d", subject, session),
		fmt.Sprintf("1dof_%s_finger%d_sample%d", sigType, task, trial),
	)
	return d.load(path)
}

// LoadMVC loads a maximum-voluntary-contraction record. Unlike the other
// subsets, subject and session are zero-based here; the on-disk layout
// numbers them from one.
func (d Dataset) LoadMVC(subject, session, task int, direction Direction, sigType SigType) (*mat.Dense, error) {
	if direction != DirectionExtension && direction != DirectionFlexion {
		return nil, fmt.Errorf("%w: got %q", ErrDirection, direction)
	}
	if err := checkSigType(sigType); err != nil {
		return nil, err
	}
	path := filepath.Join(
		d.Root,
		"mvc_dataset",
		fmt.Sprintf("subject%02d_session%d", subject+1, session+1),
		fmt.Sprintf("mvc_%s_finger%d_%s", sigType, task, direction),
	)
	return d.load(path)
}

// LoadNDOF loads a record from the N-DoF subset, identified by subject,
// session, finger combination and trial.
func (d Dataset) LoadNDOF(subject, session, combination, trial int, sigType SigType) (*mat.Dense, error) {
	if err := checkSigType(sigType); err != nil {
		return nil, err
	}
	path := filepath.Join(
		d.Root,
		"ndof_dataset",
		fmt.Sprintf("subject%02d_session%d", subject, session),
		fmt.Sprintf("ndof_%s_combination%d_sample%d", sigType, combination, trial),
	)
	return d.load(path)
}

// load decodes the record and transposes it to channels by samples.
func (d Dataset) load(path string) (*mat.Dense, error) {
	read := d.Reader
	if read == nil {
		read = ReadRecord
	}
	data, err := read(path)
	if err != nil {
		return nil, err
	}
	nSamples, nChannels := data.Dims()
	if nSamples < 1 || nChannels < 1 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyRecord, path)
	}
	var signal mat.Dense
	signal.CloneFrom(data.T())
	return &signal, nil
}

func checkSigType(sigType SigType) error {
	switch sigType {
	case SigRaw, SigPreprocess, SigForce:
		return nil
	default:
		return fmt.Errorf("%w: got %q", ErrSigType, sigType)
	}
}
