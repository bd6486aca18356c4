// Package mock provides test doubles for the ai package interfaces.
//
// All mocks use function-field injection: set the XxxFunc field to control
// behavior, or leave it nil for deterministic defaults. Call counts and
// recorded arguments support assertions without external services.
package mock
