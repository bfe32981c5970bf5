package loaders

import (
	"bytes"
	"os"

	"github.com/reusee/turing/machines"
)

func loadCheckpoint(path string) (*machines.Machine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return machines.LoadCheckpoint(f)
}

func saveCheckpoint(path string, m *machines.Machine) error {
	buf := new(bytes.Buffer)
	if err := machines.SaveCheckpoint(buf, m); err != nil {
		return err
	}
	return writeFile(path, buf.Bytes())
}
