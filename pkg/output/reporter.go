package output

import (
	"fmt"
	"io"

	"github.com/arthur-debert/cartbuild/pkg/output/styles"
)

// Build log messages
const (
	MsgBuilt  = "✔ CSS built:"
	MsgFailed = "Error on file:"
)

// Reporter writes one log line per written output file. It implements
// types.Reporter.
type Reporter struct {
	w     io.Writer
	color bool
	built string
}

// NewReporter returns a Reporter writing to w, styled when color is true
func NewReporter(w io.Writer, color bool) *Reporter {
	return &Reporter{w: w, color: color, built: MsgBuilt}
}

// WithBuiltMessage replaces the success prefix, e.g. for files that are
// not stylesheets
func (r *Reporter) WithBuiltMessage(msg string) *Reporter {
	r.built = msg
	return r
}

// FileWritten logs the outcome of writing the file known as label
func (r *Reporter) FileWritten(label string, err error) {
	if err != nil {
		fmt.Fprintf(r.w, "%s %s %s\n",
			r.render("Error", MsgFailed),
			r.render("FailedPath", label),
			r.render("Muted", "("+err.Error()+")"))
		return
	}
	fmt.Fprintf(r.w, "%s %s\n", r.render("Success", r.built), r.render("FilePath", label))
}

func (r *Reporter) render(style, text string) string {
	if !r.color {
		return text
	}
	return styles.Get(style).Render(text)
}
