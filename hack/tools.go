//go:build tools
// +build tools

// Package tools tracks build-time dependencies.
package tools

import (
	_ "k8s.io/code-generator"
)
