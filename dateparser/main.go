package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/scylladb/termtables"

	"github.com/raycmorgan/dateparser"
)

func main() {
	flag.Parse()

	if len(flag.Args()) == 0 {
		fmt.Println(`Must pass a date string:   ./dateparser "Oct 7, 1970 5:04:05 PM PST"`)
		return
	}
	datestr := flag.Args()[0]

	d, err := dateparser.Parse(datestr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	offset := "(none)"
	if d.HasOffset {
		offset = fmt.Sprintf("%ds", d.Offset)
	}

	table := termtables.CreateTable()
	table.AddHeaders("Field", "Value")
	table.AddRow("input", datestr)
	table.AddRow("year", d.Year)
	table.AddRow("month", fmt.Sprintf("%d (%v)", d.Month, time.Month(d.Month+1)))
	table.AddRow("day", d.Day)
	table.AddRow("hour", d.Hour)
	table.AddRow("minute", d.Minute)
	table.AddRow("second", d.Second)
	table.AddRow("utc offset", offset)

	fmt.Println(table.Render())
}
