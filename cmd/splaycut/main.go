/*
Command splaycut reads a cut-and-paste task from a file, applies the queries
to the text and writes the resulting text to an output file.

	splaycut --input txt/input.txt --output txt/output.txt

Input files hold the text on the first line, the number n of queries on the
second line, and n lines of queries "i j k" after that. Every query cuts the
symbols at positions i…j and pastes them after position k of the remaining
text. Symbols are Unicode code points, or grapheme clusters with --graphemes.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
