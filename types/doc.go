// Package types provides the core types shared across bookrag.
// This package has ZERO dependencies on other bookrag packages to avoid
// circular imports. All other packages should import types from here.
package types
