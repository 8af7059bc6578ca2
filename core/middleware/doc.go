// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - CORS: Sets the fixed, permissive cross-origin header triple on every
//     response, including error responses.
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//
// Both are registered globally in the start command, RayID first.
package middleware
