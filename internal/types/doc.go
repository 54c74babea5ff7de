// Package types provides shared data structures for the calcunits service.
//
// Core Types:
//   - Service: Service provider definition
//   - Tool: Service tool specification
//   - Context: Execution context for operations
//   - Result: Standard operation result (with a machine-readable Code on failure)
//
// Request Types:
//   - ExecuteRequest: Service tool execution
//   - DiscoverRequest: Intent-based service discovery
//   - ConvertResponse: REST conversion payload
//
// Example Usage:
//
//	req := types.ExecuteRequest{
//	    ToolID: "math.convert",
//	    Params: map[string]interface{}{"value": 60, "from": "mph", "to": "kph"},
//	}
package types
