// SPDX-License-Identifier: MIT

package buckingham

import (
	"fmt"
	"io"
	"math/big"
	"strings"
)

// Format selects how a Term is rendered as text.
type Format int

const (
	// FormatText is the plain ASCII form, e.g. "dt**2*DeltaP/(tau**2*rho)".
	FormatText Format = iota
	// FormatUnicode uses superscripts and a middle dot, positive powers first,
	// e.g. "dt²·DeltaP·tau⁻²·rho⁻¹".
	FormatUnicode
	// FormatLaTeX produces a \frac, e.g. "\frac{dt^{2} DeltaP}{tau^{2} rho}".
	FormatLaTeX
)

var formatNames = map[Format]string{
	FormatText:    "text",
	FormatUnicode: "unicode",
	FormatLaTeX:   "latex",
}

// String returns the format name accepted by ParseFormat.
func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}

	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat resolves "text", "unicode" or "latex" (case-insensitive).
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for f, name := range formatNames {
		if name == s {
			return f, nil
		}
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownFormat)
}

// String renders the term in FormatText.
func (t Term) String() string { return t.Format(FormatText) }

// Format renders the term in f. A term without factors renders as "1".
func (t Term) Format(f Format) string {
	switch f {
	case FormatUnicode:
		return t.unicode()
	case FormatLaTeX:
		return t.latex()
	default:
		return t.text()
	}
}

// split partitions factors by exponent sign, keeping column order. Negative
// exponents are returned as their absolute value; zero and nil exponents are
// dropped.
func (t Term) split() (num, den []Factor) {
	for _, f := range t.Factors {
		if f.Exponent == nil {
			continue
		}
		switch f.Exponent.Sign() {
		case 1:
			num = append(num, f)
		case -1:
			den = append(den, Factor{Symbol: f.Symbol, Exponent: new(big.Rat).Abs(f.Exponent)})
		}
	}

	return num, den
}

func isOne(x *big.Rat) bool { return x.IsInt() && x.Num().IsInt64() && x.Num().Int64() == 1 }

// ---------- text ----------

func textFactor(f Factor) string {
	switch {
	case isOne(f.Exponent):
		return f.Symbol
	case f.Exponent.IsInt():
		return f.Symbol + "**" + f.Exponent.RatString()
	default:
		return f.Symbol + "**(" + f.Exponent.RatString() + ")"
	}
}

func textProduct(fs []Factor) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = textFactor(f)
	}

	return strings.Join(parts, "*")
}

func (t Term) text() string {
	num, den := t.split()
	n := "1"
	if len(num) > 0 {
		n = textProduct(num)
	}
	switch {
	case len(den) == 0:
		return n
	case len(den) == 1:
		return n + "/" + textFactor(den[0])
	default:
		return n + "/(" + textProduct(den) + ")"
	}
}

// ---------- unicode ----------

var superscripts = strings.NewReplacer(
	"0", "⁰", "1", "¹", "2", "²", "3", "³", "4", "⁴",
	"5", "⁵", "6", "⁶", "7", "⁷", "8", "⁸", "9", "⁹", "-", "⁻",
)

func unicodeFactor(sym string, exp *big.Rat) string {
	switch {
	case isOne(exp):
		return sym
	case exp.IsInt():
		return sym + superscripts.Replace(exp.RatString())
	default:
		return sym + "^(" + exp.RatString() + ")"
	}
}

func (t Term) unicode() string {
	num, den := t.split()
	if len(num)+len(den) == 0 {
		return "1"
	}
	parts := make([]string, 0, len(t.Factors))
	for _, f := range num {
		parts = append(parts, unicodeFactor(f.Symbol, f.Exponent))
	}
	for _, f := range den {
		parts = append(parts, unicodeFactor(f.Symbol, new(big.Rat).Neg(f.Exponent)))
	}

	return strings.Join(parts, "·")
}

// ---------- LaTeX ----------

func latexProduct(fs []Factor) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		if isOne(f.Exponent) {
			parts[i] = f.Symbol
			continue
		}
		parts[i] = f.Symbol + "^{" + f.Exponent.RatString() + "}"
	}

	return strings.Join(parts, " ")
}

func (t Term) latex() string {
	num, den := t.split()
	n := "1"
	if len(num) > 0 {
		n = latexProduct(num)
	}
	if len(den) == 0 {
		return n
	}

	return `\frac{` + n + `}{` + latexProduct(den) + `}`
}

// ---------- lists ----------

// Strings renders every term in FormatText.
func Strings(terms []Term) []string {
	out := make([]string, len(terms))
	for i, t := range terms {
		out[i] = t.String()
	}

	return out
}

// Render writes a human-readable enumeration of terms to w:
//
//	Dimensionless Numbers:
//	Pi_1 = dt**2*DeltaP/(tau**2*rho)
//	...
//
// It is the display step layered on top of Compute; the computation itself
// never writes anything.
func Render(w io.Writer, terms []Term, f Format) error {
	if _, err := io.WriteString(w, "Dimensionless Numbers:\n"); err != nil {
		return err
	}
	for i, t := range terms {
		if _, err := fmt.Fprintf(w, "Pi_%d = %s\n", i+1, t.Format(f)); err != nil {
			return err
		}
	}

	return nil
}
