// Package testutil provides deterministic signals and spectrograms for tests.
package testutil
