// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - RayID: generates a unique request id for every incoming request,
//     injecting it into the context and response headers for tracing.
//   - RequestLog: logs every request through zap with its RayID attached.
//
// Both are registered globally by the launcher, RayID first.
package middleware
