package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/wordseek"
	"github.com/fwojciec/wordseek/etree"
)

// Run executes the render command.
func (c *RenderCmd) Run(deps *Dependencies) error {
	enc, err := Encoder(c.Format)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordseek.ErrorMessage(err))
		return err
	}

	var r io.Reader = deps.Stdin
	if c.File != "-" {
		f, err := os.Open(c.File)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		defer f.Close()
		r = f
	}

	entry, err := etree.Decode(r)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordseek.ErrorMessage(err))
		return err
	}

	return enc.Encode(deps.Stdout, entry)
}
