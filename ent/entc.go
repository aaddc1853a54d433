//go:build ignore
// +build ignore

package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

// it must be executed from ./generate.go

func main() {
	if err := entc.Generate("./schema", &gen.Config{}, entc.FeatureNames(
		"intercept",
		"schema/snapshot",
	)); err != nil {
		log.Fatalf("running ent codegen: %v", err)
	}
}
