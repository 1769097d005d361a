package main

import (
	"fmt"
	"io"
	"time"

	"github.com/limbo/ramadan/internal/timezone"
	"github.com/limbo/ramadan/pkg/hijri"
)

type Context struct {
	Out io.Writer
}

type ToHijriCmd struct {
	Date string `arg:"" help:"Gregorian date, YYYY-MM-DD."`
}

func (c *ToHijriCmd) Run(ctx *Context) error {
	t, err := time.Parse(time.DateOnly, c.Date)
	if err != nil {
		return fmt.Errorf("invalid gregorian date %q: %w", c.Date, err)
	}
	d, err := hijri.ToHijri(t)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.Out, d)
	return err
}

type ToGregorianCmd struct {
	Date string `arg:"" help:"Hijri date, YYYY-MM-DD."`
}

func (c *ToGregorianCmd) Run(ctx *Context) error {
	d, err := hijri.Parse(c.Date)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.Out, d.MustGregorian().Format(time.DateOnly))
	return err
}

type RamadanCmd struct {
	Year int `arg:"" help:"Hijri year."`
}

func (c *RamadanCmd) Run(ctx *Context) error {
	start, end, err := hijri.RamadanBounds(c.Year)
	if err != nil {
		return err
	}
	days := int(end.Sub(start)/(24*time.Hour)) + 1
	_, err = fmt.Fprintf(ctx.Out, "%d: %s .. %s (%d days)\n",
		c.Year, start.Format(time.DateOnly), end.Format(time.DateOnly), days)
	return err
}

type LockCmd struct {
	Date string `arg:"" help:"Local calendar date, YYYY-MM-DD."`
	Zone string `help:"IANA timezone." default:"UTC"`
}

func (c *LockCmd) Run(ctx *Context) error {
	date, err := time.Parse(time.DateOnly, c.Date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", c.Date, err)
	}
	loc, err := timezone.NewResolver("").Load(c.Zone)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.Out, timezone.NextLocalMidnight(date, loc).Format(time.RFC3339))
	return err
}
