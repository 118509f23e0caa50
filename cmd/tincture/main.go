// Tincture - a colour system generator and accessibility checker
//
// Tincture builds harmonious brand colour systems around pinned colours and
// scores them for WCAG contrast and colour-vision deficiency.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import "github.com/jmylchreest/tincture/internal/cli"

func main() {
	cli.Execute()
}
