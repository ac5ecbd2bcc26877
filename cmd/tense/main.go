// Package main provides the tense CLI.
package main

import (
	"fmt"
	"os"

	"github.com/born-ml/tense/tensor"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("tense %s\n", version)
			return
		case "demo":
			demo()
			return
		}
	}

	fmt.Println("tense - fixed-shape tensors for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Show how multi-indices map to flat offsets")
}

// demo prints both layouts of a (3, 4) tensor built from 0..11.
func demo() {
	values := make([]int, tensor.Capacity2[tensor.D3, tensor.D4]())
	for i := range values {
		values[i] = i
	}
	compat := tensor.MustFromSlice2[int, tensor.D3, tensor.D4](values)
	rowMajor := compat.Clone().WithLayout(tensor.LayoutRowMajor)

	for _, t := range []*tensor.Tensor2[int, tensor.D3, tensor.D4]{compat, rowMajor} {
		fmt.Printf("%v, %d bytes\n", t, t.ByteSize())
		for j := range t.DimLen(0) {
			for i := range t.DimLen(1) {
				v, err := t.Get(j, i)
				if err != nil {
					fmt.Printf("  (%d, %d) -> %v\n", j, i, err)
					continue
				}
				fmt.Printf("  (%d, %d) -> %d\n", j, i, v)
			}
		}
	}
}
