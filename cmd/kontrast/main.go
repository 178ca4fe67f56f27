// Kontrast - WCAG colour-contrast engine for document automation
//
// Kontrast computes WCAG 2.2 relative luminance and contrast ratios for
// colours in common print/design colour models, and adjusts colour pairs
// toward a target contrast ratio without leaving the document's gamut.
//
// Copyright (c) 2025 Kontrast Contributors
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/mvickers/kontrast/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
