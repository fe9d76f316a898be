// aiparse parses GS1 AI data from the command line and prints the
// canonical unbracketed form. Inputs may be bracketed AI syntax, raw
// unbracketed scan data with '#' for FNC1, or GS1 Digital Link URIs;
// the form is detected from the first characters unless forced with a
// flag. With no arguments, lines are read from stdin.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/gs1kit/aisyntax"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var bracketed, unbracketed, digitalLink, hri, aiData bool

	flags := pflag.NewFlagSet("aiparse", pflag.ContinueOnError)
	flags.BoolVar(&bracketed, "bracketed", false, "treat input as bracketed AI syntax")
	flags.BoolVar(&unbracketed, "unbracketed", false, "treat input as raw scan data")
	flags.BoolVar(&digitalLink, "dl", false, "treat input as a GS1 Digital Link URI")
	flags.BoolVar(&hri, "hri", false, "print human readable interpretation lines")
	flags.BoolVar(&aiData, "ai-data", false, "print the bracketed AI syntax reconstruction")

	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if nforced := count(bracketed, unbracketed, digitalLink); nforced > 1 {
		return errors.New("at most one of --bracketed, --unbracketed and --dl may be given")
	}

	parse := detect(bracketed, unbracketed, digitalLink)

	p := aisyntax.NewParser()
	show := func(input string) error {
		if err := parse(p, input); err != nil {
			return errors.Wrap(err, input)
		}
		fmt.Println(p.Canonical())
		if aiData {
			fmt.Println(p.AIDataStr())
		}
		if hri {
			for _, line := range p.HRI() {
				fmt.Println(line)
			}
		}
		return nil
	}

	if args := flags.Args(); len(args) > 0 {
		for _, arg := range args {
			if err := show(arg); err != nil {
				return err
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := show(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// detect returns the forced parse function, or one that picks a parse
// per input: '(' means bracketed, '#' means raw scan data and an http
// scheme means Digital Link.
func detect(bracketed, unbracketed, digitalLink bool) func(*aisyntax.Parser, string) error {
	switch {
	case bracketed:
		return (*aisyntax.Parser).ParseBracketed
	case unbracketed:
		return (*aisyntax.Parser).ParseUnbracketed
	case digitalLink:
		return (*aisyntax.Parser).ParseDigitalLink
	}
	return func(p *aisyntax.Parser, input string) error {
		switch {
		case strings.HasPrefix(input, "("):
			return p.ParseBracketed(input)
		case strings.HasPrefix(input, "#"):
			return p.ParseUnbracketed(input)
		case strings.HasPrefix(input, "http://"), strings.HasPrefix(input, "https://"):
			return p.ParseDigitalLink(input)
		}
		return errors.New("cannot determine the input form; use --bracketed, --unbracketed or --dl")
	}
}

func count(flags ...bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}
