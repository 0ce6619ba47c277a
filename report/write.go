package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/katalvlaran/condlab/linsys"
)

// Precision is the number of decimals printed for every value.
const Precision = 15

// notAvailable replaces QR values when the factorization aborted.
const notAvailable = "n/d"

// qrNullColumnNotice is logged when SolveQR reports a null first column.
const qrNullColumnNotice = "Errore: Prima colonna nulla nella decomposizione QR."

// Options tunes the rendered layout.
type Options struct {
	// ShowCond adds a "Condizionamento:" line under each header.
	ShowCond bool
}

// Reporter writes results to Out and diagnostics to Log.
type Reporter struct {
	Out  io.Writer
	Log  *log.Logger
	Opts Options
}

// New returns a Reporter. A nil logger discards diagnostics.
func New(out io.Writer, logger *log.Logger, opts Options) *Reporter {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Reporter{Out: out, Log: logger, Opts: opts}
}

// Write renders rs in order, one block per system followed by a blank line:
//
//	Sistema 1:
//	Soluzione PALU: (x0, x1)
//	Errore relativo PALU: e
//	Soluzione QR  : (x0, x1)
//	Errore relativo QR  : e
func (rp *Reporter) Write(rs []Result) error {
	w := bufio.NewWriter(rp.Out)
	for _, r := range rs {
		rp.writeOne(w, r)
	}

	return w.Flush()
}

func (rp *Reporter) writeOne(w *bufio.Writer, r Result) {
	fmt.Fprintf(w, "%s:\n", r.Name)
	if rp.Opts.ShowCond {
		fmt.Fprintf(w, "Condizionamento: %s\n", formatFloat(r.Cond))
	}
	fmt.Fprintf(w, "Soluzione PALU: %s\n", formatVec(r.PALU))
	fmt.Fprintf(w, "Errore relativo PALU: %s\n", formatFloat(r.PALUErr))

	if r.QRFail != nil {
		if errors.Is(r.QRFail, linsys.ErrNullFirstColumn) {
			rp.Log.Printf("%s: %s", r.Name, qrNullColumnNotice)
		} else {
			rp.Log.Printf("%s: %v", r.Name, r.QRFail)
		}
		fmt.Fprintf(w, "Soluzione QR  : %s\n", notAvailable)
		fmt.Fprintf(w, "Errore relativo QR  : %s\n\n", notAvailable)

		return
	}
	fmt.Fprintf(w, "Soluzione QR  : %s\n", formatVec(r.QR))
	fmt.Fprintf(w, "Errore relativo QR  : %s\n\n", formatFloat(r.QRErr))
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%.*f", Precision, v)
}

func formatVec(v linsys.Vector2) string {
	return "(" + formatFloat(v[0]) + ", " + formatFloat(v[1]) + ")"
}
