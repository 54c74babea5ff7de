// Package http provides the REST handlers for the calculator and unit
// conversion service.
//
// Endpoints:
//   - Health: / and /health
//   - Services: /services, /services/discover, /services/execute
//   - Conversion: /convert?value=&from=&to=
//   - Catalog: /units?category=&format=json|yaml|toml
//
// Failed operations are written as a types.Result whose code selects the
// status: invalid_input 400, unknown_unit and unknown_tool 404,
// incompatible_categories and divide_by_zero 422.
//
// Example Usage:
//
//	handlers := http.NewHandlers(registry, metrics, logger)
//	router.GET("/convert", handlers.Convert)
//	router.POST("/services/execute", handlers.ExecuteService)
package http
