// cmd/pinout prints the pin mapping of a variant.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"tinycore-go/errcode"
	"tinycore-go/hal"
	"tinycore-go/internal/regsim"
	"tinycore-go/variants"
	"tinycore-go/variants/tinyx7"
	"tinycore-go/x/conv"
)

var known = map[string]variants.Table{
	"attiny167": tinyx7.ATtiny167(),
	"attiny87":  tinyx7.ATtiny87(),
}

func main() {
	name := flag.String("variant", "attiny167", "chip variant")
	pin := flag.Int("pin", -1, "show a single pin")
	asJSON := flag.Bool("json", false, "print the table as JSON")
	edge := flag.String("edge", "", "show the INTn sense setting for an edge (rising, falling, both, low)")
	flag.Parse()

	tbl, ok := known[strings.ToLower(*name)]
	if !ok {
		fmt.Fprintln(os.Stderr, "unknown variant:", *name)
		os.Exit(2)
	}
	h := hal.New(tbl, regsim.New(tbl))
	if *edge != "" {
		if err := renderEdge(os.Stdout, tbl, hal.ParseEdge(*edge)); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		return
	}
	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(h.Describe()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}
	if err := render(os.Stdout, h, *pin); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func render(w io.Writer, h *hal.HAL, only int) error {
	tbl := h.Table()
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "# %s: %d digital, %d analog\n", tbl.Name(), tbl.NumDigitalPins(), tbl.NumAnalogInputs())
	fmt.Fprintln(tw, "PIN\tNAME\tDDR\tMASK\tPWM\tADC\tINT\tPCMSK")
	for p := 0; p < tbl.NumDigitalPins(); p++ {
		if only >= 0 && p != only {
			continue
		}
		info, err := h.Info(variants.Pin(p))
		if err != nil {
			return err
		}
		regs, _ := tbl.PortRegisters(info.Port)
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s.%d\n",
			p,
			info.Name,
			conv.U16Hex(regs.Mode),
			conv.U8Hex(info.Mask),
			info.Timer,
			channel(info.Channel),
			interrupt(info.Interrupt),
			conv.U16Hex(info.PCInt.Mask), info.PCInt.MaskBit,
		)
	}
	if only >= tbl.NumDigitalPins() {
		return fmt.Errorf("pin %d: %w", only, errcode.UnknownPin)
	}
	return tw.Flush()
}

func channel(c variants.ADCChannel) string {
	if c == variants.NotAnalog {
		return "-"
	}
	return fmt.Sprintf("A%d", c)
}

func interrupt(n int) string {
	if n == variants.NotAnInterrupt {
		return "-"
	}
	return fmt.Sprintf("INT%d", n)
}

// renderEdge prints, for each INTn pin, the EICRx bits that select e.
func renderEdge(w io.Writer, tbl variants.Table, e hal.Edge) error {
	isc, ok := hal.SenseBits(e)
	if !ok {
		return &errcode.E{C: errcode.InvalidParams, Op: "edge", Msg: hal.EdgeToString(e)}
	}
	for p := 0; p < tbl.NumDigitalPins(); p++ {
		n := tbl.InterruptOf(variants.Pin(p))
		if n == variants.NotAnInterrupt {
			continue
		}
		x, ok := tbl.ExtIntOf(n)
		if !ok {
			continue
		}
		fmt.Fprintf(w, "INT%d pin %d %s: %s bits %d:%d = %02b, %s bit %d\n",
			n, p, hal.EdgeToString(e),
			conv.U16Hex(x.Sense), x.SenseShift+1, x.SenseShift, isc,
			conv.U16Hex(x.Mask), x.MaskBit)
	}
	return nil
}
