package config

import (
	"fmt"
	"strings"

	"github.com/gridcraft/cubeci/internal/matrix"
	"github.com/gridcraft/cubeci/internal/target"
)

// Builds the static target registry from the configuration.
//
// The registry is the tool's whole invocation surface: every named target,
// its prerequisites, and its command sequence. Lockfile steps are expanded
// from the build matrix, one per combination, so an invalid matrix fails
// here before anything is registered.
func Targets(cfg Config) (*target.Registry, error) {
	combos, err := matrix.Generate(cfg.InterpreterVersions, cfg.LibraryVersions)
	if err != nil {
		return nil, err
	}

	testPaths := strings.Join(cfg.TestPaths, " ")

	defs := []target.Definition{
		{
			Name: "build-image",
			Desc: "Build the containerized test image for the selected environment.",
			Steps: []target.Step{
				{Run: fmt.Sprintf(
					"docker build --build-arg ENVIRONMENT=%s -t %s:%s .",
					cfg.Environment, cfg.Image, cfg.Environment,
				)},
			},
		},
		{
			Name:    "run-tests",
			Desc:    "Run the test suite inside the compose test service.",
			Prereqs: []string{"build-image"},
			Steps: []target.Step{
				{Run: fmt.Sprintf(
					"docker compose -f %s run --rm %s pytest -r a --cov %s --durations=5 %s",
					cfg.ComposeFile, cfg.ComposeService, cfg.Module, testPaths,
				)},
			},
		},
		{
			Name: "install-test-deps",
			Desc: "Install the package with its test extras.",
			Steps: []target.Step{
				{Run: fmt.Sprintf("python3 -m pip install --upgrade -e '%s'", cfg.Package)},
			},
		},
		{
			Name:    "test",
			Desc:    "Run the test suite locally with coverage.",
			Prereqs: []string{"install-test-deps"},
			Steps: []target.Step{
				{Run: fmt.Sprintf(
					"python3 -m pytest -r a --cov %s --durations=5 %s",
					cfg.Module, testPaths,
				)},
			},
		},
		{
			Name: "lint",
			Desc: "Run style and static checks.",
			Steps: []target.Step{
				{Run: fmt.Sprintf("python3 -m pycodestyle %s %s --max-line-length 120", cfg.Module, testPaths)},
				{Run: fmt.Sprintf("python3 -m pylint -j 2 --reports no %s", cfg.Module)},
			},
		},
		{
			Name:    "check",
			Desc:    "Lint and test in one pass.",
			Prereqs: []string{"lint", "test"},
		},
		{
			Name:  "lockfiles",
			Desc:  "Regenerate the per-combination dependency lock files.",
			Steps: lockfileSteps(cfg, combos),
		},
		{
			Name: "clean-artifacts",
			Desc: "Remove build and test artifacts.",
			Steps: []target.Step{
				{Run: "find . -name __pycache__ -type d -prune -exec rm -rf {} +"},
				{Run: "rm -rf build dist *.egg-info .pytest_cache .coverage htmlcov"},
			},
		},
	}

	registry := target.NewRegistry()
	for _, def := range defs {
		if err := registry.Add(def); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// Expands the build matrix into one lock-compile step per combination.
//
// Each step runs the pinned-dependency compiler inside the test image with
// the combination's versions exported, writing the result to a file keyed
// by the combination tag.
func lockfileSteps(cfg Config, combos []matrix.Combination) []target.Step {
	steps := make([]target.Step, 0, len(combos)+1)
	steps = append(steps, target.Step{Run: fmt.Sprintf("mkdir -p %s", cfg.LockDir)})

	for _, combo := range combos {
		steps = append(steps, target.Step{
			Run: fmt.Sprintf(
				`docker run --rm -v "$(pwd)":/src -w /src -e INTERPRETER_VERSION=%s -e LIBRARY_VERSION=%s %s:%s pip-compile --quiet --output-file %s/%s.txt`,
				combo.Interpreter, combo.Library, cfg.Image, cfg.Environment,
				cfg.LockDir, combo.Tag(),
			),
		})
	}
	return steps
}
