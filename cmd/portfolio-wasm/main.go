//go:build js && wasm

// Command portfolio-wasm is the browser client for the generated site.
// Build with GOOS=js GOARCH=wasm and publish next to wasm_exec.js.
package main

import "github.com/nkuebler/portfolio/internal/dom"

func main() {
	app := dom.Mount()
	<-app.Done()
}
