package drivers

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

//go:embed examples/*.bf
var examples embed.FS

func Example(name string) (string, error) {
	content, err := examples.ReadFile(path.Join("examples", name+".bf"))
	if err != nil {
		return "", fmt.Errorf("example %s: %w", name, err)
	}
	return string(content), nil
}

func ExampleNames() []string {
	entries, err := fs.ReadDir(examples, "examples")
	if err != nil {
		panic(err)
	}
	var names []string
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".bf"))
	}
	return names
}
