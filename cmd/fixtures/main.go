// Command fixtures emits CSV conversion tables for the registered
// calendars over a range of fixed dates. The output is meant for
// cross-checking against other implementations.
//
// Usage:
//
//	fixtures -calendar gregorian -from 693596 -to 767376 -stride 365 > gregorian.csv
//	fixtures -list
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"

	"calendrica/internal/caldate"
)

func main() {
	name := flag.String("calendar", "gregorian", "Calendar to tabulate")
	from := flag.Int("from", 693596, "First fixed date")
	to := flag.Int("to", 767376, "Last fixed date (inclusive)")
	stride := flag.Int("stride", 365, "Step between sampled fixed dates")
	list := flag.Bool("list", false, "List registered calendars and exit")
	flag.Parse()

	if *list {
		for _, s := range caldate.Systems() {
			fmt.Println(s.Name)
		}
		return
	}

	sys, ok := caldate.Lookup(*name)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown calendar: %s\n", *name)
		os.Exit(1)
	}
	if *stride < 1 || *from > *to {
		fmt.Fprintln(os.Stderr, "invalid range")
		os.Exit(1)
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := append([]string{"rd"}, sys.Fields...)
	if err := w.Write(header); err != nil {
		fmt.Fprintf(os.Stderr, "write header: %v\n", err)
		os.Exit(1)
	}

	for rd := *from; rd <= *to; rd += *stride {
		parts, err := sys.FromFixed(float64(rd))
		if err != nil {
			fmt.Fprintf(os.Stderr, "rd %d: %v\n", rd, err)
			os.Exit(1)
		}

		row := make([]string, 0, len(sys.Fields)+1)
		row = append(row, strconv.Itoa(rd))
		for i := range sys.Fields {
			row = append(row, strconv.FormatFloat(parts[i], 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			fmt.Fprintf(os.Stderr, "write row: %v\n", err)
			os.Exit(1)
		}
	}
}
