package main

import (
	"fmt"
	"path/filepath"

	"github.com/g3n/engine/core"
	"github.com/g3n/engine/loader/obj"
)

// ModelLoader attaches decoded models to a parent node, such as the emitter.
type ModelLoader struct {
	parent *core.Node
}

func (ml *ModelLoader) LoadModel(fpath string) error {
	ext := filepath.Ext(fpath)
	switch ext {
	case ".obj":
		dec, err := obj.Decode(fpath, "")
		if err != nil {
			return fmt.Errorf("decoding %s: %w", fpath, err)
		}
		grp, err := dec.NewGroup()
		if err != nil {
			return fmt.Errorf("building %s: %w", fpath, err)
		}
		ml.parent.Add(grp)
	default:
		return fmt.Errorf("unsupported model format: %s", ext)
	}
	return nil
}
