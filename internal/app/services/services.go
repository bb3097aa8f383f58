// Package services holds the business rules between the HTTP handlers and the repositories.
//
// Services defined in this package:
// - StudentService: coerces and validates student input and runs the CRUD operations
package services
