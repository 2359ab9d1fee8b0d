// This is free and unencumbered software released into the public domain.

// Command tgpgtest is the interoperability test driver described in
// spec.md §6: a thin CLI over the openpgp package, in the same spirit
// as the teacher's passphrase2pgp.go main — a flat config struct filled
// by one optparse.Parse pass, diagnostics on stderr gated by
// --verbose/--debug, a single fatal() exit path.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"nullprogram.com/x/optparse"

	"github.com/go-tgpg/tgpg/internal/testkeys"
	"github.com/go-tgpg/tgpg/openpgp"
)

const testKeyBits = 1024

type config struct {
	encrypt bool
	verbose bool
	debug   bool
	file    string
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "tgpgtest: %s\n", fmt.Sprintf(format, args...))
	os.Exit(1)
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: tgpgtest [--encrypt] [--verbose] [--debug] [--help] [FILE|-]")
}

func parse(args []string) config {
	options := []optparse.Option{
		{Long: "encrypt", Short: 'e', Kind: optparse.KindNone},
		{Long: "verbose", Short: 'v', Kind: optparse.KindNone},
		{Long: "debug", Short: 'd', Kind: optparse.KindNone},
		{Long: "help", Short: 'h', Kind: optparse.KindNone},
	}
	var c config
	results, rest, err := optparse.Parse(options, args)
	if err != nil {
		fatal("%s", err)
	}
	for _, r := range results {
		switch r.Long {
		case "encrypt":
			c.encrypt = true
		case "verbose":
			c.verbose = true
		case "debug":
			c.debug = true
		case "help":
			usage(os.Stdout)
			os.Exit(0)
		}
	}
	if len(rest) > 0 {
		c.file = rest[0]
	} else {
		c.file = "-"
	}
	return c
}

func readInput(c config) []byte {
	if c.file == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			fatal("reading stdin: %s", err)
		}
		return b
	}
	b, err := os.ReadFile(c.file)
	if err != nil {
		fatal("reading %s: %s", c.file, err)
	}
	return b
}

func logVerbose(c config, format string, args ...interface{}) {
	if c.verbose || c.debug {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}

func main() {
	c := parse(os.Args[1:])
	input := readInput(c)

	keys, err := testkeys.New(testKeyBits)
	if err != nil {
		fatal("%s", err)
	}
	ctx := openpgp.NewContext(keys, 0)

	if c.encrypt {
		logVerbose(c, "encrypting %d bytes to key id %08x%08x", len(input), testkeys.TestKeyID.High, testkeys.TestKeyID.Low)
		plain := openpgp.NewDataFromMem(input, false)
		out := openpgp.NewData()
		if err := ctx.Encrypt(plain, keys[0], out); err != nil {
			fatal("%s", err)
		}
		os.Stdout.Write(out.Bytes())
		return
	}

	mt, err := openpgp.Identify(input)
	if err != nil {
		fatal("%s", err)
	}
	logVerbose(c, "message type: %s", mt)
	if mt != openpgp.Encrypted {
		fatal("input is not an encrypted message (%s)", mt)
	}

	ciphertext := openpgp.NewDataFromMem(input, false)
	plainOut := openpgp.NewData()
	if err := ctx.Decrypt(ciphertext, plainOut); err != nil {
		fatal("%s", err)
	}
	io.Copy(os.Stdout, bytes.NewReader(plainOut.Bytes()))
}
