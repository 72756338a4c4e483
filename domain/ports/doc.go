// Package ports defines the interfaces between the descriptor domain and
// the application/host layers. Implementations live in application,
// infrastructure, and host packages.
package ports
