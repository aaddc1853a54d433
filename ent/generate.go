// Package ent holds the generated data access layer. Run `go generate ./ent`
// after changing anything under ./schema.
package ent

//go:generate go run -mod=mod entc.go
