package main

import (
	"fmt"
	"os"
	"strconv"

	"viewd/internal/raster"
	"viewd/internal/scan"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewScanCmd creates the scan command
func NewScanCmd() *cobra.Command {
	var imagesOnly bool

	cmd := &cobra.Command{
		Use:   "scan [directory]",
		Short: "List the files a browse run would consider",
		Long: `Scan walks the directory tree exactly like a browse run and prints
the resulting catalog, marking which files decode as images.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			files, err := scan.Enumerate(args[0])
			if err != nil {
				return err
			}
			files, err = scan.FilterGlob(files, cfg.Scan.Patterns)
			if err != nil {
				return err
			}

			var dec raster.Decoder
			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"#", "Path", "Image", "Resolution"})
			table.SetBorder(false)

			shown := 0
			for i, path := range files {
				img, err := dec.Decode(path)
				if err != nil {
					if imagesOnly {
						continue
					}
					table.Append([]string{strconv.Itoa(i), path, "no", ""})
					continue
				}
				b := img.Bounds()
				table.Append([]string{
					strconv.Itoa(i), path, "yes",
					fmt.Sprintf("%dx%d", b.Dx(), b.Dy()),
				})
				shown++
			}
			table.Render()
			fmt.Printf("%d of %d files decode as images\n", shown, len(files))
			return nil
		},
	}

	cmd.Flags().BoolVar(&imagesOnly, "images-only", false, "omit files that do not decode as images")

	return cmd
}
