// Package config defines the orchestrator's configuration and the static
// target registry built from it.
//
// Configuration is read from a YAML file: a project-local cubeci.yaml wins
// over the user-level XDG config file, and a missing file yields the
// documented defaults. Every field has a default, so an empty file is valid.
// The loaded struct is passed explicitly to whatever needs it; there is no
// ambient global configuration.
//
// The target registry (image build, compose test run, dependency install,
// lint, lockfile generation, artifact cleanup) is derived from the loaded
// configuration once at startup and is immutable afterwards.
package config
