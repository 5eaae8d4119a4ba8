package organizer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"
)

// move renames source to dest. Cross-filesystem renames fall back to
// copy-then-delete; that path never leaves zero or two complete copies
// behind.
func (o *Organizer) move(source, dest string) error {
	err := o.fs.Rename(source, dest)
	if err == nil {
		return nil
	}
	if !isCrossDevice(err) {
		return fmt.Errorf("rename failed: %w", err)
	}
	return o.copyThenRemove(source, dest)
}

func isCrossDevice(err error) bool {
	return errors.Is(err, syscall.EXDEV)
}

func (o *Organizer) copyThenRemove(source, dest string) error {
	in, err := o.fs.Open(source)
	if err != nil {
		return fmt.Errorf("failed to open source for copy: %w", err)
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat source for copy: %w", err)
	}

	// O_EXCL keeps the no-overwrite guarantee even if the destination
	// appeared after it was resolved.
	out, err := o.fs.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create destination for copy: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = o.fs.Remove(dest)
		return fmt.Errorf("failed to copy to destination: %w", err)
	}
	if err := out.Close(); err != nil {
		_ = o.fs.Remove(dest)
		return fmt.Errorf("failed to flush destination copy: %w", err)
	}

	if err := o.fs.Remove(source); err != nil {
		// Keep the single complete copy at the source.
		_ = o.fs.Remove(dest)
		return fmt.Errorf("failed to remove source after copy: %w", err)
	}
	return nil
}
