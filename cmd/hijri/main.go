package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

var CLI struct {
	Version kong.VersionFlag

	ToHijri     ToHijriCmd     `cmd:"" name:"to-hijri" help:"Convert a Gregorian date (YYYY-MM-DD) to Hijri."`
	ToGregorian ToGregorianCmd `cmd:"" name:"to-gregorian" help:"Convert a Hijri date (YYYY-MM-DD) to Gregorian."`
	Ramadan     RamadanCmd     `cmd:"" help:"Show the Gregorian bounds of Ramadan for a Hijri year."`
	Lock        LockCmd        `cmd:"" help:"Show when the entry for a local date locks."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("hijri"),
		kong.Description("Tabular Hijri calendar conversions"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": "v0.1.0"},
	)
	if err := ctx.Run(&Context{Out: os.Stdout}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
