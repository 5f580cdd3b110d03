// seehuhn.de/go/smith - Smith chart geometry for Go
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

// Command smithchart draws a Smith chart with an example curve.
//
// The render sub-command writes a PNG or PDF file.  The ops sub-command
// writes the drawing operations as JSON, for inspection and comparison.
package main

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/smith"
	"seehuhn.de/go/smith/canvas"
	"seehuhn.de/go/smith/pdfcanvas"
	"seehuhn.de/go/smith/record"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "smithchart",
		Short: "Draw Smith charts",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})
				smith.SetLogger(slog.New(h))
			}
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log details of the drawing to stderr")

	root.AddCommand(newRenderCommand(), newOpsCommand())
	return root
}

func newRenderCommand() *cobra.Command {
	var flags chartFlags
	var outputPath string

	cmd := &cobra.Command{
		Use:   "render -o chart.png|chart.pdf",
		Short: "Render a chart to a PNG or PDF file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputPath == "" {
				return errors.New("no output file given")
			}
			opt, err := flags.options()
			if err != nil {
				return err
			}

			switch ext := strings.ToLower(filepath.Ext(outputPath)); ext {
			case ".png":
				return renderPNG(outputPath, &flags, &opt)
			case ".pdf":
				return renderPDF(outputPath, &flags, &opt)
			default:
				return fmt.Errorf("unsupported output format %q (must be .png or .pdf)", ext)
			}
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file")
	flags.register(cmd.Flags())
	return cmd
}

func newOpsCommand() *cobra.Command {
	var flags chartFlags

	cmd := &cobra.Command{
		Use:   "ops",
		Short: "Write the drawing operations of a chart as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opt, err := flags.options()
			if err != nil {
				return err
			}
			return writeOps(cmd.OutOrStdout(), &flags, &opt)
		},
	}
	flags.register(cmd.Flags())
	return cmd
}

func renderPNG(fileName string, flags *chartFlags, opt *smith.Options) error {
	img := image.NewRGBA(image.Rect(0, 0, flags.size, flags.size))
	c := canvas.New(img)
	c.Clear()
	if err := drawExample(c, float64(flags.size), opt, flags.curve); err != nil {
		return err
	}

	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", fileName, err)
	}
	return nil
}

func renderPDF(fileName string, flags *chartFlags, opt *smith.Options) error {
	c, err := pdfcanvas.Create(fileName, float64(flags.size), float64(flags.size))
	if err != nil {
		return fmt.Errorf("creating %s: %w", fileName, err)
	}
	err = drawExample(c, float64(flags.size), opt, flags.curve)
	if cerr := c.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", fileName, err)
	}
	return nil
}

func writeOps(w io.Writer, flags *chartFlags, opt *smith.Options) error {
	r := record.New()
	if err := drawExample(r, float64(flags.size), opt, flags.curve); err != nil {
		return err
	}
	return r.WriteJSON(w)
}
