// This file is part of Hexpack.
//
// Hexpack is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Hexpack is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Hexpack.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/spf13/afero"

	"github.com/jetsetilly/hexpack/ansi"
	"github.com/jetsetilly/hexpack/blocks"
	"github.com/jetsetilly/hexpack/convert"
	"github.com/jetsetilly/hexpack/curated"
	"github.com/jetsetilly/hexpack/fwimage"
	"github.com/jetsetilly/hexpack/logger"
	"github.com/jetsetilly/hexpack/modalflag"
	"github.com/jetsetilly/hexpack/statsview"
	"github.com/jetsetilly/hexpack/version"
)

// exit values returned by launch()
const (
	exitOK      = 0
	exitUsage   = 10
	exitFailure = 20
)

// problems with the command line rather than with the files named by it
const usageError = "usage: %v"

// number of log entries to show after a failure when the log is not being
// echoed
const failureTail = 10

// environment in which launch() runs. main() uses the real environment, tests
// substitute their own.
type environment struct {
	stdout io.Writer
	stderr io.Writer
	fs     afero.Fs

	// interrupt signals. only used when something is left running after
	// conversion, ie. the statsview server
	interrupt <-chan os.Signal
}

func main() {
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	env := environment{
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		fs:        afero.NewOsFs(),
		interrupt: intChan,
	}

	os.Exit(launch(env, os.Args[1:]))
}

// launch parses the arguments and runs the requested mode. returns the value
// to use with os.Exit().
func launch(env environment, args []string) int {
	// the log only ever holds entries for this run
	logger.Clear()

	md := &modalflag.Modes{Output: env.stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("CONVERT", "INFO", "VERIFY", "VERSION")
	md.AdditionalHelp("the default mode is CONVERT: hexpack <hex_file> <output_file>")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		pen, normal := errorPens(env)
		fmt.Fprintf(env.stderr, "%s* error:%s %v\n", pen, normal, err)
		return exitUsage
	}

	switch md.Mode() {
	case "CONVERT":
		err = convertMode(md, env)

	case "INFO":
		err = infoMode(md, env)

	case "VERIFY":
		err = verifyMode(md, env)

	case "VERSION":
		err = versionMode(md, env)
	}

	// echo may have been set by one of the modes
	echoing := logger.Echoing()
	logger.SetEcho(nil)

	if err != nil {
		pen, normal := errorPens(env)
		fmt.Fprintf(env.stderr, "%s* error in %s mode:%s %v\n", pen, md, normal, err)
		if curated.Is(err, usageError) {
			return exitUsage
		}

		// the log leading up to the failure has not been seen
		if !echoing {
			writeTail(env.stderr)
		}

		return exitFailure
	}

	return exitOK
}

func writeTail(out io.Writer) {
	var tail strings.Builder
	logger.Tail(&tail, failureTail)
	if tail.Len() == 0 {
		return
	}
	fmt.Fprintf(out, "last %d log entries:\n%s", failureTail, tail.String())
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && ansi.IsTerminal(f)
}

// pens for the error message. empty strings if stderr is not a terminal
func errorPens(env environment) (string, string) {
	if isTerminal(env.stderr) {
		return ansi.Pens["red"] + ansi.PenStyles["bold"], ansi.NormalPen
	}
	return "", ""
}

// parse the current mode and check the number of remaining arguments. the
// returned bool is false if the mode should not continue, either because help
// has been printed or because of an error.
func parseMode(md *modalflag.Modes, args ...string) (bool, error) {
	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return false, nil
	case modalflag.ParseError:
		return false, curated.Errorf(usageError, err)
	}

	switch n := len(md.RemainingArgs()); {
	case n < len(args):
		return false, curated.Errorf(usageError, fmt.Sprintf("%s required for %s mode", args[n], md))
	case n > len(args):
		return false, curated.Errorf(usageError, fmt.Sprintf("too many arguments for %s mode", md))
	}

	return true, nil
}

// echo the log to stderr. coloured if stderr is a terminal
func setEcho(env environment, log bool) {
	if !log {
		logger.SetEcho(nil)
		return
	}

	if isTerminal(env.stderr) {
		logger.SetEcho(logger.NewColorizer(env.stderr))
		return
	}
	logger.SetEcho(env.stderr)
}

func convertMode(md *modalflag.Modes, env environment) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo log to stderr")
	viz := md.AddString("memviz", "", "write graphviz description of the blocks to file")
	stats := md.AddBool("statsview", false, "run statsview server after conversion")

	ok, err := parseMode(md, "hex file", "output file")
	if !ok {
		return err
	}

	setEcho(env, *log)

	if *stats {
		if !statsview.Available() {
			return curated.Errorf(usageError, statsview.Launch(env.stdout))
		}
		if err := statsview.Launch(env.stdout); err != nil {
			return err
		}
	}

	c := convert.NewConverter(env.fs)
	r, err := c.Convert(md.GetArg(0), md.GetArg(1))
	if err != nil {
		return err
	}

	if *viz != "" {
		if err := writeMemviz(env.fs, *viz, r.Blocks); err != nil {
			return err
		}
	}

	fmt.Fprintf(env.stdout, "%s: %d blocks, %s\n", md.GetArg(1), len(r.Blocks), r.Summary)

	if *stats {
		fmt.Fprintln(env.stdout, "! press ctrl-c to stop statsview")
		<-env.interrupt
	}

	return nil
}

func writeMemviz(fs afero.Fs, filename string, blks []blocks.Block) error {
	f, err := fs.Create(filename)
	if err != nil {
		return curated.Errorf(convert.IOFailure, filename, err)
	}

	blocks.Visualise(f, blks)

	if err := f.Close(); err != nil {
		return curated.Errorf(convert.IOFailure, filename, err)
	}

	return nil
}

func infoMode(md *modalflag.Modes, env environment) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo log to stderr")

	ok, err := parseMode(md, "hex file")
	if !ok {
		return err
	}

	setEcho(env, *log)

	c := convert.NewConverter(env.fs)
	blks, err := c.Load(md.GetArg(0))
	if err != nil {
		return err
	}

	return writeInfo(env.stdout, blks)
}

func writeInfo(out io.Writer, blks []blocks.Block) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "block\tstart\tlast\tlength\theader")
	for i, b := range blks {
		header := "yes"
		if i == 0 {
			header = "no"
		}
		last := "-"
		if b.Len() > 0 {
			last = fmt.Sprintf("%#08x", b.End()-1)
		}
		fmt.Fprintf(w, "%d\t%#08x\t%s\t%d\t%s\n", i, b.Start, last, b.Len(), header)
	}

	if err := w.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(out, "checksum: %#02x\nimage size: %d bytes\n",
		fwimage.Checksum(blks), fwimage.ExpectedLen(blks))
	return err
}

func verifyMode(md *modalflag.Modes, env environment) error {
	md.NewMode()

	hex := md.AddString("hex", "", "hex file the image must have been built from")

	ok, err := parseMode(md, "image file")
	if !ok {
		return err
	}

	c := convert.NewConverter(env.fs)

	var s fwimage.Summary
	if *hex == "" {
		s, err = c.Verify(md.GetArg(0))
	} else {
		s, err = c.Compare(*hex, md.GetArg(0))
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(env.stdout, "%s: ok: %s\n", md.GetArg(0), s)

	return nil
}

func versionMode(md *modalflag.Modes, env environment) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	ok, err := parseMode(md)
	if !ok {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintf(env.stdout, "%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Fprintln(env.stdout, r)
	}

	return nil
}
