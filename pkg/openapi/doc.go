// Package openapi defines the public surface for deriving field attribute
// records from OpenAPI documents. The concrete builder lives in
// internal/openapi and is wired up through the root package, keeping
// kin-openapi out of consumer import graphs that only need the interface.
package openapi
