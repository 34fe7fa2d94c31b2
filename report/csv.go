package report

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"

	"github.com/katalvlaran/edom/eternal"
)

// ErrUnknownFormat indicates an output format Write does not support.
var ErrUnknownFormat = errors.New("report: unknown format")

// NotAvailable fills the Guard Set column when no k was established.
const NotAvailable = "N/A"

// CSVHeader is the first row written by NewCSV.
var CSVHeader = []string{"Instance", "Guard Set", "Time (ms)"}

// CSV writes one summary row per instance. It is not safe for concurrent use.
type CSV struct {
	w *csv.Writer
}

// NewCSV writes the header row and returns the writer.
func NewCSV(w io.Writer) (*CSV, error) {
	c := &CSV{w: csv.NewWriter(w)}
	if err := c.w.Write(CSVHeader); err != nil {
		return nil, err
	}

	return c, nil
}

// Add appends the row for one instance. A found result reports its k;
// anything else reports NotAvailable.
func (c *CSV) Add(instance string, res *eternal.Result) error {
	guards := NotAvailable
	if res.Status == eternal.StatusFound {
		guards = strconv.Itoa(res.K)
	}

	return c.w.Write([]string{instance, guards, strconv.FormatInt(res.Elapsed.Milliseconds(), 10)})
}

// Flush writes buffered rows and reports any write error.
func (c *CSV) Flush() error {
	c.w.Flush()

	return c.w.Error()
}
