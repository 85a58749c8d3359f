package hyser

import "errors"

var (
	// ErrSigType indicates a signal type outside raw, preprocess or force.
	ErrSigType = errors.New(`hyser: signal type must be "raw", "preprocess" or "force"`)
	// ErrTaskType indicates a task type outside maintenance or dynamic.
	ErrTaskType = errors.New(`hyser: task type must be "maintenance" or "dynamic"`)
	// ErrDirection indicates a movement direction outside extension or flexion.
	ErrDirection = errors.New(`hyser: direction must be "extension" or "flexion"`)
	// ErrEmptyRecord indicates a decoded record without data.
	ErrEmptyRecord = errors.New("hyser: record holds an empty matrix")
)
