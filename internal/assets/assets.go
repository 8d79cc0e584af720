package assets

import (
	"embed"
	"io/fs"
)

//go:embed files/*
var assetsFS embed.FS

// MasksMap holds the sample mask files written by `commtower init`, keyed by file name.
var MasksMap = make(map[string]string)

func init() {
	err := fs.WalkDir(assetsFS, "files", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			content, err := assetsFS.ReadFile(path)
			if err != nil {
				return err
			}
			MasksMap[d.Name()] = string(content)
		}
		return nil
	})
	if err != nil {
		panic(err)
	}
}
