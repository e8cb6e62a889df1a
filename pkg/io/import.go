package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/hoverlay/hoverlay/pkg/errors"
)

// ReadJSON decodes a scenario from r and validates it.
//
// ReadJSON returns an error if:
//   - The JSON is malformed
//   - The gravity spelling is unknown
//   - A class name or swatch color is invalid
//   - The container geometry is degenerate
//
// Errors carry structured codes; use [errors.Is] to check for specific
// ones. The returned scenario is independent of r and can be modified
// freely after ReadJSON returns. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Scenario, error) {
	var s Scenario
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScenario, err, "decode scenario")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// ImportJSON reads and validates a scenario file at path.
//
// The path is checked with [errors.ValidateScenarioPath] before the file
// is opened, and decode failures wrap the path for context.
func ImportJSON(path string) (*Scenario, error) {
	if err := errors.ValidateScenarioPath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()

	s, err := ReadJSON(f)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "import %s", path)
	}
	return s, nil
}
