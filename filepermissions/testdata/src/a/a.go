package a

import (
	"io/fs"
	"os"
)

const private = 0o600

func write(path string, data []byte, mode fs.FileMode) error {
	if err := os.WriteFile(path, data, 0o666); err != nil { // want `\[LK1007 major\] os.WriteFile uses permission 0666, which is accessible to other users`
		return err
	}
	if err := os.WriteFile(path, data, private); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, mode); err != nil {
		return err
	}
	if err := os.MkdirAll(path, os.ModePerm); err != nil { // want `os.MkdirAll uses permission 0777`
		return err
	}
	if err := os.Mkdir(path, fs.ModeDir|0o750); err != nil {
		return err
	}
	if err := os.Chmod(path, 0o777); err != nil { // want `os.Chmod uses permission 0777`
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o622) // want `os.OpenFile uses permission 0622`
	if err != nil {
		return err
	}
	defer f.Close()

	return f.Chmod(0o646) // want `\(os.File\).Chmod uses permission 0646`
}
