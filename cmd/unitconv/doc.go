// Command unitconv runs the calculator and unit converter from the shell.
//
// Operations run in-process by default. With -server they are sent to a
// calcunits server through the HTTP client.
//
// Usage:
//
//	unitconv convert 60 mph kph
//	unitconv calc divide 1 3
//	unitconv calc metrics 1 5 3
//	unitconv units -format yaml -category temperature
//	unitconv -server http://localhost:8000 convert 100 °C F
package main
