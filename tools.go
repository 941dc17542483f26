//go:build tools

// This file keeps go:generate tool dependencies in go.mod. It is never
// compiled.
package tools

import (
	_ "github.com/dmarkham/enumer"
)
