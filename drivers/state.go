package drivers

import (
	"errors"
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"
	"github.com/reusee/bftape/bfvm"
)

var ErrStateLocked = errors.New("state file locked")

// sessionState is the content of a state file.
// Steps carries the step budget across resumes.
type sessionState struct {
	VM    bfvm.State `cbor:"1,keyasint"`
	Steps int        `cbor:"2,keyasint"`
}

var stateEncMode = func() cbor.EncMode {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

// SaveState writes the session to path, replacing it atomically.
func (s *Session) SaveState(path string) error {
	content, err := stateEncMode.Marshal(sessionState{
		VM:    s.VM.State(),
		Steps: s.Steps,
	})
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, content, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// LoadState replaces the VM state and step count with those saved at path.
func (s *Session) LoadState(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var state sessionState
	if err := cbor.Unmarshal(content, &state); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	if err := s.VM.SetState(state.VM); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	s.Steps = state.Steps
	return nil
}

// LockState guards path against concurrent resumption by another process.
func LockState(path string) (unlock func(), err error) {
	lockFile := path + ".lock"
	f, err := os.OpenFile(lockFile, os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		if os.IsExist(err) {
			return nil, fmt.Errorf("%s: %w", path, ErrStateLocked)
		}
		return nil, err
	}
	f.Close()
	return func() {
		os.Remove(lockFile)
	}, nil
}
