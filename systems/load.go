package systems

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Masterminds/semver/v3"

	"github.com/katalvlaran/condlab/linsys"
)

// SupportedFormat is the semver constraint a document's "format" must satisfy.
const SupportedFormat = "^1.0.0"

type document struct {
	Format  string      `json:"format"`
	Systems []systemDoc `json:"systems"`
}

type systemDoc struct {
	Name  string      `json:"name"`
	A     [][]float64 `json:"a"`
	B     []float64   `json:"b"`
	Exact []float64   `json:"exact,omitempty"`
}

// LoadFile reads a systems document from path.
func LoadFile(path string) ([]System, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ss, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return ss, nil
}

// Load decodes a systems document from r.
// Implementation:
//   - Stage 1: Strict JSON decode (unknown fields are rejected).
//   - Stage 2: Check "format" against SupportedFormat.
//   - Stage 3: Check every system is 2×2, default missing names and exact
//     solutions, then run linsys.ValidateSystem.
//
// Errors:
//   - ErrUnsupportedFormat, ErrNoSystems, ErrBadShape, linsys.ErrNaNInf (wrapped with the
//     system index), or the decoder error.
func Load(r io.Reader) ([]System, error) {
	var doc document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	if err := checkFormat(doc.Format); err != nil {
		return nil, err
	}
	if len(doc.Systems) == 0 {
		return nil, ErrNoSystems
	}

	out := make([]System, 0, len(doc.Systems))
	for i, sd := range doc.Systems {
		s, err := sd.toSystem(i)
		if err != nil {
			return nil, fmt.Errorf("system %d (%s): %w", i, s.Name, err)
		}
		if err = linsys.ValidateSystem(s.A, s.B); err != nil {
			return nil, fmt.Errorf("system %d (%s): %w", i, s.Name, err)
		}
		out = append(out, s)
	}

	return out, nil
}

// toSystem checks the shapes of the decoded slices and applies defaults.
// The returned System always carries its name, even on error.
func (sd systemDoc) toSystem(i int) (System, error) {
	s := System{Name: sd.Name, Exact: linsys.ExactSolution}
	if s.Name == "" {
		s.Name = fmt.Sprintf("Sistema %d", i+1)
	}

	if len(sd.A) != 2 || len(sd.A[0]) != 2 || len(sd.A[1]) != 2 {
		return s, fmt.Errorf("a: %w", ErrBadShape)
	}
	if len(sd.B) != 2 {
		return s, fmt.Errorf("b: %w", ErrBadShape)
	}
	copy(s.A[0][:], sd.A[0])
	copy(s.A[1][:], sd.A[1])
	copy(s.B[:], sd.B)

	if sd.Exact != nil {
		if len(sd.Exact) != 2 {
			return s, fmt.Errorf("exact: %w", ErrBadShape)
		}
		copy(s.Exact[:], sd.Exact)
	}

	return s, nil
}

func checkFormat(format string) error {
	if format == "" {
		return fmt.Errorf("%w: missing", ErrUnsupportedFormat)
	}
	v, err := semver.NewVersion(format)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrUnsupportedFormat, format, err)
	}
	c, err := semver.NewConstraint(SupportedFormat)
	if err != nil {
		return err
	}
	if !c.Check(v) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedFormat, v, SupportedFormat)
	}

	return nil
}
