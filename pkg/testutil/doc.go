// Package testutil provides helpers shared by cartbuild tests: an in-memory
// filesystem, cartridge tree builders, reporter mocks and environment
// isolation for npm configuration variables.
package testutil
