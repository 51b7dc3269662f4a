// github.com/emre-aki/s-buffer - a scanline hidden-surface span buffer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command sbufdemo is a thin textual driver over the span buffer
// library: it replays a script of push/dump/print commands against a
// single sbuffer.Buffer and nothing else. It is not a rendering
// harness; it exists to exercise and show off the five external
// operations from the command line.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/emre-aki/s-buffer/sbuffer"
	"github.com/emre-aki/s-buffer/sbuffer/sbuffervalidate"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:      "sbufdemo",
		Usage:     "replay a scanline span-buffer script",
		ArgsUsage: "[script]",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "size", Value: 80, Usage: "scanline width in pixels"},
			&cli.Float64Flag{Name: "znear", Value: 1, Usage: "distance to the projection plane"},
			&cli.IntFlag{Name: "max-depth", Value: 64, Usage: "descent stack bound per push"},
			&cli.BoolFlag{Name: "validate", Usage: "round-trip every dump through sbuffervalidate"},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "sbufdemo:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	b, err := sbuffer.New(int(cmd.Int("size")), cmd.Float64("znear"), int(cmd.Int("max-depth")))
	if err != nil {
		return err
	}

	scriptPath := cmd.Args().First()
	src := os.Stdin
	if scriptPath != "" && scriptPath != "-" {
		f, err := os.Open(scriptPath)
		if err != nil {
			return err
		}
		defer f.Close()
		src = f
	}

	validate := cmd.Bool("validate")
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := runLine(b, line, validate); err != nil {
			return fmt.Errorf("%q: %w", line, err)
		}
	}
	return scanner.Err()
}

func runLine(b *sbuffer.Buffer, line string, validate bool) error {
	fields := strings.Fields(line)
	switch fields[0] {
	case "push":
		if len(fields) != 6 {
			return fmt.Errorf("push wants x0 x1 w0 w1 id, got %d args", len(fields)-1)
		}
		x0, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return err
		}
		x1, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return err
		}
		w0, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return err
		}
		w1, err := strconv.ParseFloat(fields[4], 64)
		if err != nil {
			return err
		}
		if len(fields[5]) != 1 {
			return fmt.Errorf("id must be a single character, got %q", fields[5])
		}
		status, err := b.Push(x0, x1, w0, w1, fields[5][0])
		if err != nil {
			return err
		}
		fmt.Println(status)
	case "print":
		fmt.Println(b.Print())
	case "dump":
		dump := b.Dump()
		fmt.Print(dump)
		if validate {
			if _, err := sbuffervalidate.ParseAndValidate(dump); err != nil {
				return fmt.Errorf("round-trip validation failed: %w", err)
			}
		}
	case "stats":
		st := b.Stats()
		fmt.Printf("nodes=%d height=%d pushes=%d occlusions=%d rebalances=%d\n",
			st.Nodes, st.Height, st.Pushes, st.Occlusions, st.Rebalances)
	case "destroy":
		b.Destroy()
	default:
		return fmt.Errorf("unknown command %q", fields[0])
	}
	return nil
}
