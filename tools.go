//go:build tools
// +build tools

// Package tools pins the development tools used by the build.
package tools

import (
	// Linter
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"

	// goimports for formatting
	_ "golang.org/x/tools/cmd/goimports"

	// Coverage
	_ "golang.org/x/tools/cmd/cover"

	// Releases
	_ "github.com/goreleaser/goreleaser"
)
