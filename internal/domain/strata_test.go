package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strata.dev/pkg/strata/internal/domain"
	m "strata.dev/pkg/strata/internal/model"
)

func TestDefaultStrataConfig_IsValid(t *testing.T) {
	strata, err := domain.ParseStrata(domain.DefaultStrataConfig())
	require.NoError(t, err)
	require.Len(t, strata, 4)

	for i, stratum := range strata {
		assert.Equal(t, i, stratum.ID)
		assert.Equal(t, m.NoneSpec, stratum.Axes[0], "every stratum offers its base-only variant")
	}

	assert.Empty(t, strata[0].Base)
	assert.Equal(t, []m.AxisSpec{{Axis: m.AxisIndentation, Intensity: m.IntensityStrip}}, strata[1].Base)
}

func TestParseStrata(t *testing.T) {
	none := domain.AxisConfig{Axis: "none"}

	tests := []struct {
		name    string
		configs []domain.StratumConfig
		wantErr error
	}{
		{
			name:    "empty",
			configs: nil,
			wantErr: m.ErrInvalidStrata,
		},
		{
			name:    "stratum without axes",
			configs: []domain.StratumConfig{{ID: 0}},
			wantErr: m.ErrInvalidStrata,
		},
		{
			name:    "negative id",
			configs: []domain.StratumConfig{{ID: -1, Axes: []domain.AxisConfig{none}}},
			wantErr: m.ErrInvalidStrata,
		},
		{
			name:    "duplicate id",
			configs: []domain.StratumConfig{{ID: 1, Axes: []domain.AxisConfig{none}}, {ID: 1, Axes: []domain.AxisConfig{none}}},
			wantErr: m.ErrInvalidStrata,
		},
		{
			name:    "unknown axis",
			configs: []domain.StratumConfig{{ID: 0, Axes: []domain.AxisConfig{{Axis: "colour", Intensity: "few"}}}},
			wantErr: m.ErrUnknownAxis,
		},
		{
			name:    "unknown intensity",
			configs: []domain.StratumConfig{{ID: 0, Axes: []domain.AxisConfig{{Axis: "tabs", Intensity: "some"}}}},
			wantErr: m.ErrUnknownIntensity,
		},
		{
			name:    "missing intensity on a multi-intensity axis",
			configs: []domain.StratumConfig{{ID: 0, Axes: []domain.AxisConfig{{Axis: "spaces"}}}},
			wantErr: m.ErrUnknownIntensity,
		},
		{
			name: "whitespace axis in base",
			configs: []domain.StratumConfig{{
				ID: 0, Base: []domain.AxisConfig{{Axis: "spaces", Intensity: "few"}}, Axes: []domain.AxisConfig{none},
			}},
			wantErr: m.ErrInvalidStrata,
		},
		{
			name: "base axis twice",
			configs: []domain.StratumConfig{{
				ID:   0,
				Base: []domain.AxisConfig{{Axis: "comments", Intensity: "docs"}, {Axis: "comments", Intensity: "remove"}},
				Axes: []domain.AxisConfig{none},
			}},
			wantErr: m.ErrInvalidStrata,
		},
		{
			name:    "duplicate variant",
			configs: []domain.StratumConfig{{ID: 0, Axes: []domain.AxisConfig{none, {Axis: "NONE"}}}},
			wantErr: m.ErrInvalidStrata,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.ParseStrata(tt.configs)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseStrata_SortsAndResolvesAliases(t *testing.T) {
	strata, err := domain.ParseStrata([]domain.StratumConfig{
		{ID: 2, Name: " late ", Axes: []domain.AxisConfig{{Axis: "whitespace", Intensity: "MANY"}}},
		{ID: 0, Axes: []domain.AxisConfig{{Axis: "indent"}}},
	})
	require.NoError(t, err)

	require.Len(t, strata, 2)
	assert.Equal(t, 0, strata[0].ID)
	assert.Equal(t, "stratum0", strata[0].Label())
	assert.Equal(t, m.AxisSpec{Axis: m.AxisIndentation, Intensity: m.IntensityStrip}, strata[0].Axes[0])
	assert.Equal(t, "late", strata[1].Label())
	assert.Equal(t, m.AxisSpec{Axis: m.AxisSpaces, Intensity: m.IntensityMany}, strata[1].Axes[0])
}

func TestParseSymbolTable(t *testing.T) {
	tests := []struct {
		name    string
		cfg     domain.SymbolTableConfig
		wantErr bool
	}{
		{"empty", domain.SymbolTableConfig{}, false},
		{"valid", domain.SymbolTableConfig{
			Rename:  map[string]string{"count": "total"},
			Qualify: map[string]string{"List": "java.util.List"},
		}, false},
		{"rename to itself", domain.SymbolTableConfig{Rename: map[string]string{"x": "x"}}, false},
		{"invalid identifier", domain.SymbolTableConfig{Rename: map[string]string{"1x": "y"}}, true},
		{"chained rename", domain.SymbolTableConfig{Rename: map[string]string{"a": "b", "b": "c"}}, true},
		{"invalid qualified name", domain.SymbolTableConfig{Qualify: map[string]string{"List": "java..List"}}, true},
		{"qualified root is qualified again", domain.SymbolTableConfig{Qualify: map[string]string{"List": "util.List", "util": "java.util"}}, true},
		{"package name cannot be qualified", domain.SymbolTableConfig{Qualify: map[string]string{"java": "org.java"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := domain.ParseSymbolTable(tt.cfg)
			if tt.wantErr {
				require.ErrorIs(t, err, m.ErrInvalidSymbolTable)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.cfg.Rename, table.Rename)
			assert.Equal(t, tt.cfg.Qualify, table.Qualify)
		})
	}
}
