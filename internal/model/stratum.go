package model

import (
	"fmt"
	"sort"
	"strings"
)

// Axis is one perturbation family.
type Axis string

const (
	// AxisNone applies only the stratum base.
	AxisNone Axis = "none"
	// AxisComments removes comments.
	AxisComments Axis = "comments"
	// AxisSpaces normalises intra-line whitespace.
	AxisSpaces Axis = "spaces"
	// AxisTabs renders whitespace with tabs.
	AxisTabs Axis = "tabs"
	// AxisNewlines controls blank-line density.
	AxisNewlines Axis = "newlines"
	// AxisLayout reflows the unit onto one line or one token per line.
	AxisLayout Axis = "layout"
	// AxisIndentation strips the unit's source indentation.
	AxisIndentation Axis = "indentation"
	// AxisRename renames identifiers.
	AxisRename Axis = "rename"
	// AxisQualify expands short type names.
	AxisQualify Axis = "qualify"
)

// Intensity is the magnitude class of an axis.
type Intensity string

// Supported intensities. Which ones apply depends on the axis.
const (
	IntensityNone         Intensity = "none"
	IntensityFew          Intensity = "few"
	IntensityMany         Intensity = "many"
	IntensityRemove       Intensity = "remove"
	IntensityDocs         Intensity = "docs"
	IntensityInline       Intensity = "inline"
	IntensitySingleLine   Intensity = "single-line"
	IntensityTokenPerLine Intensity = "token-per-line"
	IntensityStrip        Intensity = "strip"
)

var axisIntensities = map[Axis][]Intensity{
	AxisNone:        {IntensityNone},
	AxisComments:    {IntensityRemove, IntensityDocs, IntensityInline},
	AxisSpaces:      {IntensityFew, IntensityMany},
	AxisTabs:        {IntensityFew, IntensityMany},
	AxisNewlines:    {IntensityFew, IntensityMany},
	AxisLayout:      {IntensitySingleLine, IntensityTokenPerLine},
	AxisIndentation: {IntensityStrip},
	AxisRename:      {IntensityFew, IntensityMany},
	AxisQualify:     {IntensityFew, IntensityMany},
}

// axisRank fixes the order in which the axes of one variant are applied:
// content rewrites first, then indentation, then whitespace layout.
var axisRank = map[Axis]int{
	AxisNone:        0,
	AxisRename:      1,
	AxisQualify:     2,
	AxisComments:    3,
	AxisIndentation: 4,
	AxisNewlines:    5,
	AxisSpaces:      6,
	AxisTabs:        7,
	AxisLayout:      8,
}

var axisAliases = map[string]Axis{
	"whitespace":  AxisSpaces,
	"comment":     AxisComments,
	"newline":     AxisNewlines,
	"indent":      AxisIndentation,
	"identifiers": AxisRename,
	"types":       AxisQualify,
}

// Axes returns every supported axis in application order.
func Axes() []Axis {
	axes := make([]Axis, 0, len(axisRank))
	for axis := range axisRank {
		axes = append(axes, axis)
	}

	sort.Slice(axes, func(i, j int) bool { return axisRank[axes[i]] < axisRank[axes[j]] })

	return axes
}

// Intensities returns the intensities supported by axis.
func (a Axis) Intensities() []Intensity {
	return axisIntensities[a]
}

// Rank returns the application order of the axis.
func (a Axis) Rank() int {
	return axisRank[a]
}

// Content reports whether the axis rewrites tokens rather than whitespace.
func (a Axis) Content() bool {
	return a == AxisComments || a == AxisRename || a == AxisQualify
}

// Supports reports whether the axis accepts the intensity.
func (a Axis) Supports(intensity Intensity) bool {
	for _, candidate := range axisIntensities[a] {
		if candidate == intensity {
			return true
		}
	}

	return false
}

// ParseAxis resolves an axis name or alias.
func ParseAxis(name string) (Axis, error) {
	key := strings.ToLower(strings.TrimSpace(name))

	if alias, ok := axisAliases[key]; ok {
		return alias, nil
	}

	if _, ok := axisIntensities[Axis(key)]; ok {
		return Axis(key), nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownAxis, name)
}

// ParseAxisSpec resolves an axis and intensity pair, rejecting unsupported combinations.
func ParseAxisSpec(axisName, intensityName string) (AxisSpec, error) {
	axis, err := ParseAxis(axisName)
	if err != nil {
		return AxisSpec{}, err
	}

	intensity := Intensity(strings.ToLower(strings.TrimSpace(intensityName)))
	if intensity == "" && len(axis.Intensities()) == 1 {
		intensity = axis.Intensities()[0]
	}

	if !axis.Supports(intensity) {
		return AxisSpec{}, fmt.Errorf("%w: %q for axis %s", ErrUnknownIntensity, intensityName, axis)
	}

	return AxisSpec{Axis: axis, Intensity: intensity}, nil
}

// AxisSpec is one validated axis and intensity pair.
type AxisSpec struct {
	Axis      Axis
	Intensity Intensity
}

// String renders the pair as axis_intensity.
func (s AxisSpec) String() string {
	return string(s.Axis) + "_" + string(s.Intensity)
}

// NoneSpec is the base-only variant of every stratum.
var NoneSpec = AxisSpec{Axis: AxisNone, Intensity: IntensityNone}

// Stratum is one perturbation level. Strata are read-only once parsed.
type Stratum struct {
	ID   int
	Name string
	// Base axes are applied to every variant of the stratum.
	Base []AxisSpec
	// Axes are the requested variants.
	Axes []AxisSpec
}

// Label returns the configured name or the canonical stratumN label.
func (s Stratum) Label() string {
	if s.Name != "" {
		return s.Name
	}

	return fmt.Sprintf("stratum%d", s.ID)
}

// Pipeline returns base plus axis ordered by axis rank.
func (s Stratum) Pipeline(axis AxisSpec) []AxisSpec {
	pipeline := make([]AxisSpec, 0, len(s.Base)+1)
	pipeline = append(pipeline, s.Base...)

	if axis.Axis != AxisNone {
		pipeline = append(pipeline, axis)
	}

	sort.SliceStable(pipeline, func(i, j int) bool {
		return pipeline[i].Axis.Rank() < pipeline[j].Axis.Rank()
	})

	return pipeline
}

// Strata is the ordered run configuration.
type Strata []Stratum

// Variants returns every requested variant in configuration order.
func (s Strata) Variants() []Variant {
	var variants []Variant

	for _, stratum := range s {
		for _, axis := range stratum.Axes {
			variants = append(variants, Variant{Stratum: stratum.ID, Axis: axis.Axis, Intensity: axis.Intensity})
		}
	}

	return variants
}

// Variant identifies one stratum, axis and intensity combination.
type Variant struct {
	Stratum   int
	Axis      Axis
	Intensity Intensity
}

// OriginalVariantID names the unmodified extraction.
const OriginalVariantID = "original"

// ID renders the variant as stratumN_axis_intensity.
func (v Variant) ID() string {
	return fmt.Sprintf("stratum%d_%s_%s", v.Stratum, v.Axis, v.Intensity)
}

// Spec returns the axis part of the variant.
func (v Variant) Spec() AxisSpec {
	return AxisSpec{Axis: v.Axis, Intensity: v.Intensity}
}

// SymbolTable is the caller-supplied mapping for identifier rewriting.
type SymbolTable struct {
	// Rename maps identifiers to replacement identifiers.
	Rename map[string]string
	// Qualify maps short type names to qualified names.
	Qualify map[string]string
}
