// Package service provides the tool registry behind the HTTP API.
//
// The registry keeps the available service providers and routes tool
// executions by the service prefix of the tool ID ("math.convert" goes to
// the "math" provider).
//
// Features:
//   - Thread-safe service registration
//   - Category-based filtering
//   - Intent-based discovery with scoring
//   - Tool execution with context passing
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	registry.Register(math.NewProvider())
//	services := registry.Discover("convert units", 5)
//	result, err := registry.Execute(ctx, "math.convert", params, nil)
package service
