// Command asterixdump reads a file of raw, concatenated ASTERIX data
// blocks and dumps each decoded record in TEXT, JSON, or XML form.
//
// Usage:
//
//	asterixdump --format=json <file>
//
// Category definitions are not read from any external file by this tool;
// it loads a small built-in demonstration schema for CAT001 so the
// decoder has something to resolve against. A real deployment wires its
// own definitions-file reader against the schema loader interface
// (see package schema) and passes the resulting Store to asterix.Decode.
package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/skywave-atc/asterix"
	"github.com/skywave-atc/asterix/format"
	"github.com/skywave-atc/asterix/render"
	"github.com/skywave-atc/asterix/schema"
	"github.com/skywave-atc/asterix/trace"
)

type options struct {
	Format string `short:"f" long:"format" description:"output format" choice:"text" choice:"json" choice:"xml" default:"text"`
	Args   struct {
		File string `positional-arg-name:"file" description:"file of concatenated raw ASTERIX data blocks" required:"true"`
	} `positional-args:"yes"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Name = "asterixdump"

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	data, err := os.ReadFile(opts.Args.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	kind, err := parseKind(opts.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	trace.Configure(trace.LevelWarn, func(line string) {
		fmt.Fprintln(os.Stderr, line)
	})

	store := asterix.NewStore()
	cat := demoCategory(store)

	blocks, err := asterix.DecodeAll(store, data, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	for _, dataBlock := range blocks {
		out, err := asterix.Render(cat, dataBlock, kind)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering CAT%03d block: %v\n", dataBlock.Category, err)
			continue
		}

		fmt.Print(out)
	}

	if err != nil {
		os.Exit(1)
	}
}

func parseKind(name string) (render.Kind, error) {
	switch name {
	case "text":
		return render.TEXT, nil
	case "json":
		return render.JSON, nil
	case "xml":
		return render.XML, nil
	default:
		return 0, fmt.Errorf("unknown format %q", name)
	}
}

// demoCategory builds a minimal CAT001 schema (Data Source Identifier
// only) so this tool has something to decode against without requiring a
// real definitions file.
func demoCategory(store *schema.Store) *schema.Category {
	cat, err := store.AddCategory(1)
	if err != nil {
		panic(err)
	}

	item, err := cat.AddItem("010")
	if err != nil {
		panic(err)
	}

	item.SetName("Data Source Identifier").
		SetDefinition("Identification of the radar station from which the data is received.").
		AttachFormat(&format.Fixed{
			Name:        "I010",
			LengthBytes: 2,
			Bitfields: []format.Bitfield{
				{Name: "SAC", BitFrom: 0, BitTo: 7, Encoding: format.EncodingUnsigned},
				{Name: "SIC", BitFrom: 8, BitTo: 15, Encoding: format.EncodingUnsigned},
			},
		})

	uap := cat.NewUAP("default")
	uap.AddSlot(1, "010")

	return cat
}
