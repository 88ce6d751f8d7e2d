// Command widthgen writes the closed table of channel width markers.
//
// Usage:
//
//	widthgen -output widths_gen.go -max 64
//
// Or via go:generate from package channel:
//
//	//go:generate go run ../internal/widthgen -output widths_gen.go -max 64
//
// For every width N in 1..max it emits a BitsN marker bound to the narrowest
// unsigned storage type, plus ValueN, RefN and ConstRefN aliases.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"text/template"

	"golang.org/x/tools/imports"
)

var (
	output  = flag.String("output", "widths_gen.go", "Output file")
	pkgName = flag.String("pkg", "channel", "Package name of the generated file")
	maxBits = flag.Int("max", 64, "Largest width to generate (at most 64)")
)

// width is one row of the generated table.
type width struct {
	N       int
	Storage string
}

var tmpl = template.Must(template.New("widths").Parse(`// Code generated by widthgen. DO NOT EDIT.

package {{.Package}}
{{range .Widths}}
// Bits{{.N}} is the width of a {{.N}}-bit channel stored in {{.Storage}}.
type Bits{{.N}} struct{}

func (Bits{{.N}}) NumBits() uint { return {{.N}} }

func (Bits{{.N}}) storage() {{.Storage}} { return 0 }

// Value{{.N}} owns a {{.N}}-bit channel.
type Value{{.N}} = Value[Bits{{.N}}, {{.Storage}}]

// Ref{{.N}} addresses a {{.N}}-bit channel inside a C word.
type Ref{{.N}}[C Unsigned] = Ref[Bits{{.N}}, {{.Storage}}, C]

// ConstRef{{.N}} is the read-only form of Ref{{.N}}.
type ConstRef{{.N}}[C Unsigned] = ConstRef[Bits{{.N}}, {{.Storage}}, C]
{{end}}`))

// storageFor returns the narrowest native unsigned type holding n bits.
func storageFor(n int) string {
	switch {
	case n <= 8:
		return "uint8"
	case n <= 16:
		return "uint16"
	case n <= 32:
		return "uint32"
	default:
		return "uint64"
	}
}

func main() {
	flag.Parse()

	if *maxBits < 1 || *maxBits > 64 {
		fmt.Fprintf(os.Stderr, "widthgen: -max must be between 1 and 64, got %d\n", *maxBits)
		os.Exit(2)
	}

	widths := make([]width, 0, *maxBits)
	for n := 1; n <= *maxBits; n++ {
		widths = append(widths, width{N: n, Storage: storageFor(n)})
	}

	var buf bytes.Buffer
	err := tmpl.Execute(&buf, struct {
		Package string
		Widths  []width
	}{*pkgName, widths})
	if err != nil {
		fmt.Fprintf(os.Stderr, "widthgen: %v\n", err)
		os.Exit(1)
	}

	src, err := imports.Process(*output, buf.Bytes(), nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "widthgen: formatting output: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*output, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "widthgen: %v\n", err)
		os.Exit(1)
	}
}
