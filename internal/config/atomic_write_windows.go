//go:build windows

package config

import (
	"os"

	"golang.org/x/sys/windows"
)

// Windows ignores POSIX modes; the user config dir is already private.
func chmodStaged(*os.File, os.FileMode) error { return nil }

// replaceFile uses MoveFileEx because os.Rename cannot replace a file that
// another process holds open for reading.
func replaceFile(from, to string) error {
	src, err := windows.UTF16PtrFromString(from)
	if err != nil {
		return err
	}
	dst, err := windows.UTF16PtrFromString(to)
	if err != nil {
		return err
	}
	return windows.MoveFileEx(src, dst, windows.MOVEFILE_REPLACE_EXISTING|windows.MOVEFILE_WRITE_THROUGH)
}
