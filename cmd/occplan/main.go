// Command occplan inspects the window functions and window-width plans
// of the Fresnel inversion engine.
//
// Usage:
//
//	occplan [flags] [window-name ...]
//
// Without arguments it prints the normalized equivalent width of every
// window type. With -geometry it loads a JSON5 geometry description
// and prints the resolved window widths and index spans.
//
// Examples:
//
//	occplan kb25 kbmd35
//	occplan -alpha 3.0 kb
//	occplan -geometry rev007.json5 -res 0.75
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	json "github.com/KevinWang15/go-json5"

	"github.com/cwbudde/algo-occult/occ/core"
	"github.com/cwbudde/algo-occult/occ/plan"
	"github.com/cwbudde/algo-occult/occ/window"
)

type windowEntry struct {
	name     string
	typ      window.Type
	hasAlpha bool
	defAlpha float64
}

var registry = []windowEntry{
	{"rect", window.TypeRect, false, 0},
	{"coss", window.TypeCosSquared, false, 0},
	{"kb20", window.TypeKB20, false, 0},
	{"kb25", window.TypeKB25, false, 0},
	{"kb35", window.TypeKB35, false, 0},
	{"kbmd20", window.TypeKBMD20, false, 0},
	{"kbmd25", window.TypeKBMD25, false, 0},
	{"kbmd35", window.TypeKBMD35, false, 0},
	{"kb", window.TypeKBAlpha, true, 2.5},
	{"kbmd", window.TypeKBMDAlpha, true, 2.5},
}

// geometryFile mirrors the JSON5 description of a synthetic
// occultation geometry.
type geometryFile struct {
	RhoStartKm float64 `json:"rho_start_km"`
	SpacingKm  float64 `json:"spacing_km"`
	Samples    int     `json:"samples"`
	FresnelKm  float64 `json:"fresnel_km"`
	OpeningRad float64 `json:"opening_rad"`
	DistanceKm float64 `json:"distance_km"`
	AzimuthRad float64 `json:"azimuth_rad"`
	RangeLoKm  float64 `json:"range_lo_km"`
	RangeHiKm  float64 `json:"range_hi_km"`
}

func main() {
	alpha := flag.Float64("alpha", math.NaN(), "alpha parameter for the free-alpha Kaiser-Bessel windows")
	list := flag.Bool("list", false, "list available window names")
	geometry := flag.String("geometry", "", "JSON5 geometry file for a window-width plan")
	res := flag.Float64("res", 1.0, "requested radial resolution in km (with -geometry)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: occplan [flags] [window-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints window properties and inversion window-width plans.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  occplan kb25 kbmd35\n")
		fmt.Fprintf(os.Stderr, "  occplan -alpha 3.0 kb\n")
		fmt.Fprintf(os.Stderr, "  occplan -geometry rev007.json5 -res 0.75\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	if *geometry != "" {
		if err := printPlan(*geometry, *res); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	names := flag.Args()
	if len(names) == 0 {
		for _, e := range registry {
			names = append(names, e.name)
		}
	}

	printWindows(names, *alpha)
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func printWindows(names []string, alphaFlag float64) {
	byName := make(map[string]windowEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Window\tAlpha\tNormEq\tZero-edged\n")
	fmt.Fprintf(tw, "------\t-----\t------\t----------\n")

	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown window %q (use -list to see available)\n", name)
			continue
		}

		a := e.defAlpha
		if e.hasAlpha && !math.IsNaN(alphaFlag) {
			a = alphaFlag
		}

		normEq, err := window.NormEq(e.typ, window.WithAlpha(a))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %s: %v\n", name, err)
			continue
		}

		label := e.name
		alphaLabel := "-"
		if fixed, ok := window.FixedAlpha(e.typ); ok {
			alphaLabel = fmt.Sprintf("%.1f", fixed)
		} else if e.hasAlpha {
			alphaLabel = fmt.Sprintf("%.2f", a)
			label = fmt.Sprintf("%s (a=%.2f)", e.name, a)
		}

		fmt.Fprintf(tw, "%s\t%s\t%.7f\t%v\n", label, alphaLabel, normEq, window.IsZeroEdged(e.typ))
	}

	tw.Flush()
}

// profile expands the geometry description into a free-space
// calibrated profile with a self-consistent wavenumber-distance
// product.
func (g *geometryFile) profile() (*core.CalibratedProfile, error) {
	if g.Samples < 2 {
		return nil, fmt.Errorf("geometry needs at least 2 samples, have %d", g.Samples)
	}

	sinB := math.Sin(g.OpeningRad)
	cosB := math.Cos(g.OpeningRad)
	cosPhi := math.Cos(g.AzimuthRad)

	lambda := g.FresnelKm * g.FresnelKm * 2 * sinB * sinB /
		(g.DistanceKm * (1 - cosB*cosB*cosPhi*cosPhi))
	kd := 2 * math.Pi / lambda * g.DistanceKm

	prof := &core.CalibratedProfile{
		Rho:  make([]float64, g.Samples),
		THat: make([]complex128, g.Samples),
		F:    make([]float64, g.Samples),
		Phi:  make([]float64, g.Samples),
		KD:   make([]float64, g.Samples),
		B:    make([]float64, g.Samples),
		D:    make([]float64, g.Samples),
	}

	for i := 0; i < g.Samples; i++ {
		prof.Rho[i] = g.RhoStartKm + float64(i)*g.SpacingKm
		prof.THat[i] = 1
		prof.F[i] = g.FresnelKm
		prof.Phi[i] = g.AzimuthRad
		prof.KD[i] = kd
		prof.B[i] = g.OpeningRad
		prof.D[i] = g.DistanceKm
	}

	return prof, nil
}

func printPlan(path string, res float64) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var g geometryFile
	if err := json.Unmarshal(raw, &g); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	prof, err := g.profile()
	if err != nil {
		return err
	}

	opts := core.ReconstructionOptions{Res: res}
	if g.RangeLoKm != 0 || g.RangeHiKm != 0 {
		opts.Range = core.RadialRange{Lo: g.RangeLoKm, Hi: g.RangeHiKm}
	}

	if err := prof.Validate(); err != nil {
		return err
	}

	if err := opts.Validate(prof.Spacing()); err != nil {
		return err
	}

	p, err := plan.Build(prof, &opts)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Sample\tRho [km]\tW [km]\tSpan [samples]\n")
	fmt.Fprintf(tw, "------\t--------\t------\t--------------\n")

	step := p.Count() / 10
	if step == 0 {
		step = 1
	}

	for i := p.Lo; i <= p.Hi; i += step {
		fmt.Fprintf(tw, "%d\t%.3f\t%.4f\t%d\n",
			i, prof.Rho[i], p.W[i-p.Lo], 2*p.Half[i-p.Lo]+1)
	}

	fmt.Fprintf(tw, "\nOutput samples: %d\tMax span: %d\n", p.Count(), 2*p.MaxHalf+1)

	return tw.Flush()
}
