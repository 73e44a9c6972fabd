package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// writeDebugUnformatted writes source that go/format rejected to a sidecar
// file next to the intended output, prefixed with the format error. This is
// best-effort and should never make generation fail harder.
func writeDebugUnformatted(outDir, filename string, content []byte, cause error) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	// Not a .go file: the sidecar must not break the package build.
	debugName := strings.TrimSuffix(filename, ".go") + ".unformatted.txt"
	p := filepath.Join(outDir, debugName)

	var sb strings.Builder

	sb.WriteString("// ")
	sb.WriteString(cause.Error())
	sb.WriteString("\n\n")
	sb.Write(content)

	return os.WriteFile(p, []byte(sb.String()), filePerm)
}
