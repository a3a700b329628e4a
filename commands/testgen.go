package commands

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/errors"
)

// Example is a model or message written by TestGenCmd as <Filename>.json
// and <Filename>.bin.
type Example struct {
	Filename string
	Obj      cattery.Persistent
}

// TestGenCmd writes the JSON and protobuf encodings of every example into
// the directory given as first argument, "testdata" by default. Clients
// in other languages decode them to check their codecs.
func TestGenCmd(examples []Example, args []string) error {
	dir := "testdata"
	if len(args) > 0 {
		dir = args[0]
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	for _, ex := range examples {
		if err := writeExample(dir, ex); err != nil {
			return errors.Wrap(err, ex.Filename)
		}
	}
	return nil
}

func writeExample(dir string, ex Example) error {
	js, err := json.MarshalIndent(ex.Obj, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrSchema, err.Error())
	}
	bin, err := cattery.Marshal(ex.Obj)
	if err != nil {
		return err
	}
	base := filepath.Join(dir, ex.Filename)
	for ext, data := range map[string][]byte{".json": js, ".bin": bin} {
		if err := os.WriteFile(base+ext, data, 0644); err != nil {
			return errors.Wrap(errors.ErrInput, err.Error())
		}
	}
	return nil
}
