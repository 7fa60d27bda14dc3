// Command tabilog は旅行先カタログ・訪問記録・推薦APIのサーバー。
//
// 使い方:
//
//	tabilog [serve|migrate|seed|healthcheck]
package main

import (
	"fmt"
	"os"

	"github.com/hitoshi/tabilog/internal/app"
)

func main() {
	if err := app.Run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "tabilog: %v\n", err)
		os.Exit(1)
	}
}
