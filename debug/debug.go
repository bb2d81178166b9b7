// Package debug exposes the build-time debug flag used across booleq
// components.
package debug
