package zn

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// ReadLocked reads path while holding a shared flock on it.
func ReadLocked(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := flock(f, unix.LOCK_SH); err != nil {
		return nil, err
	}
	defer flock(f, unix.LOCK_UN)

	return io.ReadAll(f)
}

// WriteLocked replaces the contents of path while holding an exclusive
// flock on it. The file is created if needed.
func WriteLocked(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := flock(f, unix.LOCK_EX); err != nil {
		return err
	}
	defer flock(f, unix.LOCK_UN)

	if err := f.Truncate(0); err != nil {
		return fmt.Errorf("truncate %s: %w", path, err)
	}
	if _, err := f.WriteAt(data, 0); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Sync()
}

func flock(f *os.File, how int) error {
	for {
		err := unix.Flock(int(f.Fd()), how)
		if err != unix.EINTR {
			if err != nil {
				return fmt.Errorf("flock %s: %w", f.Name(), err)
			}
			return nil
		}
	}
}
