package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
	"gopkg.in/yaml.v3"

	"github.com/roach88/ndfmt/internal/compiler"
	"github.com/roach88/ndfmt/internal/syntax"
)

// LoadError represents an error that occurred while loading a tree file.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Tree file extensions by decoder.
var (
	yamlExtensions = []string{".yaml", ".yml", ".json"}
	cueExtensions  = []string{".cue"}
)

// LoadTree reads and decodes a serialized syntax tree.
// The decoder is chosen by file extension; see DecodeTree.
func LoadTree(path string) (*syntax.Node, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("tree file not found: %s", path)}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeReadFailed, Message: fmt.Sprintf("error accessing tree file: %v", err)}
	}
	if info.IsDir() {
		return nil, &LoadError{Code: ErrCodeReadFailed, Message: fmt.Sprintf("is a directory: %s", path)}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeReadFailed, Message: fmt.Sprintf("reading tree file: %v", err)}
	}
	return DecodeTree(path, data)
}

// DecodeTree decodes tree file contents. filename selects the format:
// .yaml, .yml and .json go through yaml.v3 (JSON is read as YAML);
// .cue is compiled with CUE and decoded from the resulting value.
func DecodeTree(filename string, data []byte) (*syntax.Node, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	var (
		root *syntax.Node
		err  error
	)
	switch {
	case contains(yamlExtensions, ext):
		root, err = decodeYAML(data)
	case contains(cueExtensions, ext):
		root, err = decodeCUE(filename, data)
	default:
		return nil, &LoadError{
			Code:    ErrCodeUnsupportedFormat,
			Message: fmt.Sprintf("unsupported tree file extension %q (want one of %s)", ext, strings.Join(append(yamlExtensions, cueExtensions...), ", ")),
		}
	}
	if err != nil {
		return nil, err
	}

	if root == nil || root.Type == "" {
		return nil, &LoadError{Code: ErrCodeDecodeFailed, Message: "tree file has no root node type"}
	}
	return root, nil
}

func decodeYAML(data []byte) (*syntax.Node, error) {
	var root syntax.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &LoadError{Code: ErrCodeDecodeFailed, Message: fmt.Sprintf("decoding tree: %v", err)}
	}
	return &root, nil
}

func decodeCUE(filename string, data []byte) (*syntax.Node, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, cueLoadError(err)
	}

	var root syntax.Node
	if err := v.Decode(&root); err != nil {
		return nil, cueLoadError(err)
	}
	return &root, nil
}

// cueLoadError converts a CUE error to a LoadError carrying the position of
// the first error, when CUE reports one.
func cueLoadError(err error) *LoadError {
	loadErr := &LoadError{Code: ErrCodeDecodeFailed, Message: fmt.Sprintf("decoding tree: %v", err)}

	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return loadErr
	}
	if positions := cueerrors.Positions(errs[0]); len(positions) > 0 {
		loadErr.Message = fmt.Sprintf("decoding tree: %v", errs[0])
		loadErr.Pos = positions[0]
	}
	return loadErr
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric           = "E001" // Generic/unknown error
	ErrCodeReadFailed        = "E002" // Tree file could not be read
	ErrCodeUnsupportedFormat = "E003" // Unknown tree file extension
	ErrCodeDecodeFailed      = "E004" // YAML/JSON/CUE decode failed
	ErrCodeNotFound          = "E005" // Path not found
	ErrCodeWriteFailed       = "E007" // File write error

	// Tree errors
	ErrCodeStructural     = "E201" // Malformed syntax tree
	ErrCodeInvalidOptions = "E202" // Invalid layout options

	// Render log errors
	ErrCodeStore = "E301" // Render log failure
)

// errorCode maps an error to its CLI error code.
func errorCode(err error) string {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		return loadErr.Code
	}
	if compiler.IsStructuralError(err) {
		return ErrCodeStructural
	}
	var storeErr *storeError
	if errors.As(err, &storeErr) {
		return ErrCodeStore
	}
	return ErrCodeGeneric
}
