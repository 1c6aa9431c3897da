// Command gratesheet is a thin CLI front end over the gratesheet cell
// engine, exercising SetCell/GetCell/ClearCell/PrintValues/PrintTexts
// against a sheet script file on disk. The engine itself owns no file
// format or rendering; this command supplies both just to give the
// engine a runnable surface.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gratesheet:", err)
		os.Exit(1)
	}
}
