// Public domain.

package main

import "github.com/soniakeys/moontool/internal/mtprog"

func main() {
	mtprog.Main()
}
