package domain

import (
	"sort"
	"strconv"
	"strings"

	m "strata.dev/pkg/strata/internal/model"
)

// UnitVariants groups one extracted unit with its perturbed variants.
type UnitVariants struct {
	Original m.Snippet
	Variants []m.PerturbedSnippet
}

// Assembler turns extracted and perturbed snippets into identified records.
type Assembler interface {
	Assemble(units []UnitVariants) []m.Record
}

type assembler struct {
	order map[m.Variant]int
}

// NewAssembler returns an Assembler that orders variants by stratum ID and
// then by the configured axis order of each stratum.
func NewAssembler(strata m.Strata) Assembler {
	sorted := append(m.Strata(nil), strata...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	order := make(map[m.Variant]int)
	for i, variant := range sorted.Variants() {
		order[variant] = i
	}

	return &assembler{order: order}
}

// UnitID identifies a unit within a corpus: <sourceID>#<Enclosing.Name>, with
// a ~ordinal suffix for the second and later overloads.
func UnitID(unit *m.MethodUnit) string {
	var b strings.Builder

	b.WriteString(unit.SourceID)
	b.WriteByte('#')
	b.WriteString(unit.QualifiedName())

	if unit.Ordinal > 1 {
		b.WriteByte('~')
		b.WriteString(strconv.Itoa(unit.Ordinal))
	}

	return b.String()
}

// RecordID joins a unit ID and a variant ID.
func RecordID(unit *m.MethodUnit, variantID string) string {
	return UnitID(unit) + "/" + variantID
}

func (a *assembler) Assemble(units []UnitVariants) []m.Record {
	sorted := append([]UnitVariants(nil), units...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Original.Unit.Span.Start < sorted[j].Original.Unit.Span.Start
	})

	var records []m.Record

	for _, uv := range sorted {
		unit := uv.Original.Unit
		records = append(records, m.Record{
			ID:            RecordID(unit, m.OriginalVariantID),
			SourceID:      unit.SourceID,
			EnclosingType: unit.EnclosingType(),
			UnitName:      unit.Name,
			Ordinal:       unit.Ordinal,
			Text:          uv.Original.Text,
			Original:      true,
		})

		variants := append([]m.PerturbedSnippet(nil), uv.Variants...)
		sort.SliceStable(variants, func(i, j int) bool {
			return a.rank(variants[i].Variant) < a.rank(variants[j].Variant)
		})

		for _, variant := range variants {
			records = append(records, m.Record{
				ID:            RecordID(unit, variant.Variant.ID()),
				SourceID:      unit.SourceID,
				EnclosingType: unit.EnclosingType(),
				UnitName:      unit.Name,
				Ordinal:       unit.Ordinal,
				Stratum:       variant.Variant.Stratum,
				Axis:          variant.Variant.Axis,
				Intensity:     variant.Variant.Intensity,
				Text:          variant.Text,
				Unchanged:     variant.Unchanged,
			})
		}
	}

	return records
}

// rank places unknown variants after every configured one.
func (a *assembler) rank(variant m.Variant) int {
	if i, ok := a.order[variant]; ok {
		return i
	}

	return len(a.order)
}
