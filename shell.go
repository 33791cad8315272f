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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"

	"github.com/cybrota/avlstore/catalog"
)

const shellPrompt = "avl> "

const shellHelp = `Commands:
  add <code> <name> <price> <qty> <category[,category...]>
  get <code>
  update <code> <new-code> <name> <price> <qty> <category[,category...]>
  rm <code>
  list
  tree [mermaid|dot]
  stats
  check
  help
  quit`

var errQuit = errors.New("quit")

// Shell is a line-oriented front end to one catalog.
type Shell struct {
	catalog *catalog.Catalog
	out     io.Writer
	format  catalog.Format
}

func NewShell(cat *catalog.Catalog, out io.Writer, format catalog.Format) *Shell {
	return &Shell{catalog: cat, out: out, format: format}
}

// splitLine tokenizes a shell line, honouring quotes.
func splitLine(line string) ([]string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse line %q: %v", line, err)
	}
	return args, nil
}

// Run reads commands from in until EOF or quit.
func (s *Shell) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprint(s.out, shellPrompt)
	for scanner.Scan() {
		err := s.Exec(scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintln(s.out, styles.ErrorMessage.Render("error: "+err.Error()))
		}
		fmt.Fprint(s.out, shellPrompt)
	}
	return scanner.Err()
}

// Exec runs a single command line.
func (s *Shell) Exec(line string) error {
	args, err := splitLine(line)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}

	cmd, args := strings.ToLower(args[0]), args[1:]
	switch cmd {
	case "add":
		p, err := parseProduct(args)
		if err != nil {
			return err
		}
		if err := s.catalog.Add(p); err != nil {
			return err
		}
		fmt.Fprintln(s.out, styles.SuccessMessage.Render("added "+p.String()))

	case "get":
		code, err := parseCodeArg(args)
		if err != nil {
			return err
		}
		p, err := s.catalog.Get(code)
		if err != nil {
			return err
		}
		printProducts(s.out, []*catalog.Product{p})

	case "update":
		if len(args) < 1 {
			return fmt.Errorf("usage: update <code> <new-code> <name> <price> <qty> <categories>")
		}
		code, err := parseCodeArg(args[:1])
		if err != nil {
			return err
		}
		p, err := parseProduct(args[1:])
		if err != nil {
			return err
		}
		if err := s.catalog.Update(code, p); err != nil {
			return err
		}
		fmt.Fprintln(s.out, styles.SuccessMessage.Render("updated "+p.String()))

	case "rm", "remove", "delete":
		code, err := parseCodeArg(args)
		if err != nil {
			return err
		}
		if err := s.catalog.Remove(code); err != nil {
			return err
		}
		fmt.Fprintln(s.out, styles.SuccessMessage.Render(fmt.Sprintf("removed %d", code)))

	case "list", "ls":
		printProducts(s.out, s.catalog.List())

	case "tree":
		format := s.format
		if len(args) > 0 {
			if format, err = catalog.ParseFormat(args[0]); err != nil {
				return err
			}
		}
		diagram, err := s.catalog.Render(format)
		if err != nil {
			return err
		}
		fmt.Fprintln(s.out, diagram)

	case "stats":
		printStats(s.out, s.catalog.Stats())

	case "check":
		if err := s.catalog.Check(); err != nil {
			return err
		}
		fmt.Fprintln(s.out, styles.SuccessMessage.Render("tree invariants hold"))

	case "help", "?":
		fmt.Fprintln(s.out, shellHelp)

	case "quit", "exit", "q":
		return errQuit

	default:
		return fmt.Errorf("unknown command %q (try help)", cmd)
	}
	return nil
}

func parseCodeArg(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected exactly one product code")
	}
	code, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid product code %q", args[0])
	}
	return code, nil
}

// parseProduct reads <code> <name> <price> <qty> <categories>.
func parseProduct(args []string) (*catalog.Product, error) {
	if len(args) != 5 {
		return nil, fmt.Errorf("expected <code> <name> <price> <qty> <categories>, got %d arguments", len(args))
	}

	code, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid product code %q", args[0])
	}
	price, err := strconv.ParseFloat(strings.Replace(args[2], ",", ".", 1), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q", args[2])
	}
	qty, err := strconv.Atoi(args[3])
	if err != nil {
		return nil, fmt.Errorf("invalid quantity %q", args[3])
	}

	var cats []catalog.Category
	for _, name := range strings.Split(args[4], ",") {
		c, err := catalog.ParseCategory(name)
		if err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}

	return &catalog.Product{
		Code:       code,
		Name:       args[1],
		Price:      price,
		Quantity:   qty,
		Categories: cats,
	}, nil
}
