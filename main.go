// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cybrota/avlstore/catalog"
)

// set with -ldflags "-X main.version=..."
var version = "dev"

// loadCatalog reads the config and builds the catalog every command works on.
func loadCatalog(cmd *cobra.Command, opts ...catalog.Option) (*catalog.Catalog, *Config) {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}

	if cmd.Flags().Changed("name-width") {
		config.Render.NameWidth, _ = cmd.Flags().GetInt("name-width")
	}

	cat := newCatalog(config, opts...)

	seed := config.Catalog.SeedSample
	if cmd.Flags().Changed("sample") {
		seed, _ = cmd.Flags().GetBool("sample")
	}
	if seed {
		if _, err := cat.Seed(catalog.SampleProducts()); err != nil {
			log.Fatalf("Error seeding sample catalog: %v", err)
		}
	}
	return cat, config
}

func diagramFormat(cmd *cobra.Command, config *Config) catalog.Format {
	name := config.Render.Format
	if cmd.Flags().Changed("format") {
		name, _ = cmd.Flags().GetString("format")
	}
	format, err := catalog.ParseFormat(name)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	return format
}

func main() {
	banner := fmt.Sprintf("avlstore %s: a product catalog on a self-balancing AVL tree", version)

	var cmdServe = &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog over HTTP",
		Long:  fmt.Sprintf("%s\n\n%s", banner, "Serve starts the REST API for products, the tree diagram and statistics"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
			slog.SetDefault(logger)

			cat, config := loadCatalog(cmd, catalog.WithLogger(logger))
			if listen, _ := cmd.Flags().GetString("listen"); listen != "" {
				config.Server.Listen = listen
			}
			if err := serve(cat, config); err != nil {
				log.Fatalf("Error running server: %v", err)
			}
		},
	}
	cmdServe.Flags().String("listen", "", "address to listen on (overrides server.listen)")

	var cmdTree = &cobra.Command{
		Use:   "tree",
		Short: "Print the AVL tree diagram",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cat, config := loadCatalog(cmd)
			format := diagramFormat(cmd, config)

			diagram, err := cat.Render(format)
			if err != nil {
				log.Fatalf("Error rendering tree: %v", err)
			}

			if copyFlag, _ := cmd.Flags().GetBool("copy"); copyFlag {
				if err := copyToClipboard(diagram); err != nil {
					log.Printf("Failed to copy to clipboard: %v", err)
				}
			}
			if pretty, _ := cmd.Flags().GetBool("pretty"); pretty {
				fmt.Println(renderDiagramPreview(diagram, format))
				return
			}
			fmt.Println(diagram)
		},
	}
	cmdTree.Flags().String("format", "", "diagram format: mermaid or dot")
	cmdTree.Flags().Bool("copy", false, "copy the diagram to the clipboard")
	cmdTree.Flags().Bool("pretty", false, "render the diagram as terminal markdown")

	var cmdList = &cobra.Command{
		Use:   "list",
		Short: "List products in ascending code order",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cat, _ := loadCatalog(cmd)
			printProducts(os.Stdout, cat.List())
		},
	}

	var cmdStats = &cobra.Command{
		Use:   "stats",
		Short: "Print tree height and product count",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cat, _ := loadCatalog(cmd)
			printStats(os.Stdout, cat.Stats())
			if check, _ := cmd.Flags().GetBool("check"); check {
				if err := cat.Check(); err != nil {
					log.Fatalf("Tree invariant violated: %v", err)
				}
				fmt.Println(styles.SuccessMessage.Render("✅ tree invariants hold"))
			}
		},
	}
	cmdStats.Flags().Bool("check", false, "verify heights, balance and ordering")

	var cmdBench = &cobra.Command{
		Use:   "bench",
		Short: "Measure insert, search and remove on random products",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			n, _ := cmd.Flags().GetInt("n")
			seed, _ := cmd.Flags().GetUint64("seed")
			if n <= 0 {
				log.Fatalf("Error: --n must be positive, got %d", n)
			}

			config, err := LoadConfig()
			if err != nil {
				log.Printf("Failed to load configuration: %v. Using default settings.", err)
			}
			res, err := runBench(newCatalog(config), n, seed, true)
			if err != nil {
				log.Fatalf("Error running benchmark: %v", err)
			}
			printBench(os.Stdout, res)
		},
	}
	cmdBench.Flags().Int("n", 100000, "number of products to insert")
	cmdBench.Flags().Uint64("seed", 1, "random seed")

	var cmdShell = &cobra.Command{
		Use:   "shell",
		Short: "Interactive catalog prompt",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cat, config := loadCatalog(cmd)
			fmt.Println(shellHelp)
			if err := NewShell(cat, os.Stdout, diagramFormat(cmd, config)).Run(os.Stdin); err != nil {
				log.Fatalf("Error reading input: %v", err)
			}
		},
	}
	cmdShell.Flags().String("format", "", "diagram format for the tree command")

	var cmdBrowse = &cobra.Command{
		Use:   "browse",
		Short: "Browse products and the tree in a terminal UI",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cat, config := loadCatalog(cmd)
			if err := runBrowser(cat, diagramFormat(cmd, config)); err != nil {
				log.Fatalf("Error running browser: %v", err)
			}
		},
	}
	cmdBrowse.Flags().String("format", "", "diagram format: mermaid or dot")

	var cmdConfig = &cobra.Command{
		Use:   "config",
		Short: "Show or create the configuration file",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avlstore usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avlstore version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "avlstore",
		Version: version,
		Long:    banner,
	}
	rootCmd.PersistentFlags().Bool("sample", true, "load the sample catalog on start (overrides catalog.seed_sample)")
	rootCmd.PersistentFlags().Int("name-width", 0, "cap product names in diagrams at this width")

	rootCmd.AddCommand(cmdServe, cmdTree, cmdList, cmdStats, cmdBench, cmdShell, cmdBrowse, cmdConfig, cmdUsage, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
