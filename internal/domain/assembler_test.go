package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strata.dev/pkg/strata/internal/domain"
	m "strata.dev/pkg/strata/internal/model"
)

func TestUnitID(t *testing.T) {
	tests := []struct {
		name string
		unit m.MethodUnit
		want string
	}{
		{"free function", m.MethodUnit{SourceID: "src/util.c", Name: "square", Ordinal: 1}, "src/util.c#square"},
		{"method", m.MethodUnit{SourceID: "A.java", Enclosing: []string{"A"}, Name: "f", Ordinal: 1}, "A.java#A.f"},
		{"nested type", m.MethodUnit{SourceID: "A.java", Enclosing: []string{"A", "B"}, Name: "f", Ordinal: 1}, "A.java#A.B.f"},
		{"overload", m.MethodUnit{SourceID: "A.java", Enclosing: []string{"A"}, Name: "f", Ordinal: 3}, "A.java#A.f~3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.UnitID(&tt.unit))
			assert.Equal(t, tt.want+"/original", domain.RecordID(&tt.unit, m.OriginalVariantID))
		})
	}
}

func TestAssembler_Assemble(t *testing.T) {
	strata := m.Strata{
		{ID: 1, Axes: []m.AxisSpec{{Axis: m.AxisSpaces, Intensity: m.IntensityMany}, m.NoneSpec}},
		{ID: 0, Axes: []m.AxisSpec{m.NoneSpec}},
	}

	first := &m.MethodUnit{SourceID: "A.java", Enclosing: []string{"A"}, Name: "f", Ordinal: 1, Span: m.Span{Start: 10, End: 20}}
	second := &m.MethodUnit{SourceID: "A.java", Enclosing: []string{"A"}, Name: "g", Ordinal: 1, Span: m.Span{Start: 30, End: 40}}

	variant := func(unit *m.MethodUnit, stratum int, spec m.AxisSpec, text string, unchanged bool) m.PerturbedSnippet {
		return m.PerturbedSnippet{
			Unit:      unit,
			Variant:   m.Variant{Stratum: stratum, Axis: spec.Axis, Intensity: spec.Intensity},
			Text:      text,
			Unchanged: unchanged,
		}
	}

	spacesMany := m.AxisSpec{Axis: m.AxisSpaces, Intensity: m.IntensityMany}

	// Given out of source and configuration order.
	records := domain.NewAssembler(strata).Assemble([]domain.UnitVariants{
		{
			Original: m.Snippet{Unit: second, Text: "g"},
			Variants: []m.PerturbedSnippet{variant(second, 0, m.NoneSpec, "g0", false)},
		},
		{
			Original: m.Snippet{Unit: first, Text: "f"},
			Variants: []m.PerturbedSnippet{
				variant(first, 1, m.NoneSpec, "f1", false),
				variant(first, 1, spacesMany, "f1", true),
				variant(first, 0, m.NoneSpec, "f0", false),
			},
		},
	})

	require.Len(t, records, 6)

	var ids []string
	for _, record := range records {
		ids = append(ids, record.ID)
	}

	assert.Equal(t, []string{
		"A.java#A.f/original",
		"A.java#A.f/stratum0_none_none",
		"A.java#A.f/stratum1_spaces_many",
		"A.java#A.f/stratum1_none_none",
		"A.java#A.g/original",
		"A.java#A.g/stratum0_none_none",
	}, ids)

	original := records[0]
	assert.True(t, original.Original)
	assert.Equal(t, "f", original.Text)
	assert.Equal(t, m.OriginalVariantID, original.VariantID())
	assert.Zero(t, original.Stratum)
	assert.Empty(t, original.Axis)

	spaced := records[2]
	assert.False(t, spaced.Original)
	assert.True(t, spaced.Unchanged)
	assert.Equal(t, 1, spaced.Stratum)
	assert.Equal(t, m.AxisSpaces, spaced.Axis)
	assert.Equal(t, m.IntensityMany, spaced.Intensity)
	assert.Equal(t, "stratum1_spaces_many", spaced.VariantID())
	assert.Equal(t, "A", spaced.EnclosingType)
	assert.Equal(t, "f", spaced.UnitName)
}

func TestAssembler_Assemble_Empty(t *testing.T) {
	assert.Empty(t, domain.NewAssembler(nil).Assemble(nil))
}
