package engine

import (
	"context"
	"fmt"
	"path/filepath"
)

// setupTemplate is the build script written next to the generated module.
// Running `python setup.py build_ext --inplace` compiles the extension.
const setupTemplate = `from distutils.core import setup
from Cython.Build import cythonize

setup(ext_modules=cythonize('%s', language_level='3'))
`

// BuildResult reports the files written by Build.
type BuildResult struct {
	Converted *Result
	OutPath   string
	SetupPath string
}

// Build converts a file and writes the generated module together with a
// setup.py that compiles it. Output goes to outDir, defaulting to the
// source file's directory.
func (e *Engine) Build(ctx context.Context, path, outDir string) (*BuildResult, error) {
	result, err := e.ConvertFile(ctx, path)
	if err != nil {
		return nil, err
	}

	if outDir == "" {
		outDir = filepath.Dir(path)
	}
	outPath := filepath.Join(outDir, filepath.Base(e.OutputPath(path)))
	if err := e.WriteFile(outPath, result.Output); err != nil {
		return nil, err
	}

	setupPath := filepath.Join(outDir, "setup.py")
	setup := fmt.Sprintf(setupTemplate, filepath.Base(outPath))
	if err := e.WriteFile(setupPath, setup); err != nil {
		return nil, err
	}

	e.logger.Info("build files written", "module", outPath, "setup", setupPath)

	return &BuildResult{Converted: result, OutPath: outPath, SetupPath: setupPath}, nil
}
