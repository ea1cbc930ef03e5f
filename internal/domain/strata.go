package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"strata.dev/pkg/strata/internal/domain/lexer"
	"strata.dev/pkg/strata/internal/domain/perturbations"
	m "strata.dev/pkg/strata/internal/model"
)

// AxisConfig is one axis entry as written in the configuration file.
type AxisConfig struct {
	Axis      string `mapstructure:"axis" yaml:"axis" validate:"required"`
	Intensity string `mapstructure:"intensity" yaml:"intensity,omitempty"`
}

// StratumConfig is one stratum as written in the configuration file.
type StratumConfig struct {
	ID   int          `mapstructure:"id" yaml:"id" validate:"gte=0"`
	Name string       `mapstructure:"name" yaml:"name,omitempty"`
	Base []AxisConfig `mapstructure:"base" yaml:"base,omitempty" validate:"dive"`
	Axes []AxisConfig `mapstructure:"axes" yaml:"axes" validate:"required,min=1,dive"`
}

// SymbolTableConfig is the configuration form of the symbol table.
type SymbolTableConfig struct {
	Rename  map[string]string `mapstructure:"rename" yaml:"rename,omitempty" validate:"dive,keys,identifier,endkeys,identifier"`
	Qualify map[string]string `mapstructure:"qualify" yaml:"qualify,omitempty" validate:"dive,keys,identifier,endkeys,qualified"`
}

type strataConfig struct {
	Strata []StratumConfig `validate:"required,min=1,dive"`
}

var configValidate *validator.Validate

func init() {
	configValidate = validator.New(validator.WithRequiredStructEnabled())

	_ = configValidate.RegisterValidation("identifier", func(fl validator.FieldLevel) bool {
		return isIdentifier(fl.Field().String())
	})
	_ = configValidate.RegisterValidation("qualified", func(fl validator.FieldLevel) bool {
		return isQualifiedName(fl.Field().String())
	})
}

// DefaultStrataConfig returns strata 0 to 3: each stratum strips more of the
// original presentation in its base and offers the whitespace, comment and
// identifier variants on top.
func DefaultStrataConfig() []StratumConfig {
	layout := []AxisConfig{
		{Axis: "none"},
		{Axis: "comments", Intensity: "remove"},
		{Axis: "newlines", Intensity: "few"},
		{Axis: "newlines", Intensity: "many"},
		{Axis: "spaces", Intensity: "few"},
		{Axis: "spaces", Intensity: "many"},
		{Axis: "tabs", Intensity: "few"},
		{Axis: "tabs", Intensity: "many"},
	}

	with := func(extra ...AxisConfig) []AxisConfig {
		return append(append([]AxisConfig{}, layout...), extra...)
	}

	strip := AxisConfig{Axis: "indentation", Intensity: "strip"}

	return []StratumConfig{
		{ID: 0, Name: "original", Axes: with()},
		{ID: 1, Name: "unindented", Base: []AxisConfig{strip}, Axes: with(AxisConfig{Axis: "rename", Intensity: "few"})},
		{
			ID:   2,
			Name: "undocumented",
			Base: []AxisConfig{strip, {Axis: "comments", Intensity: "docs"}},
			Axes: with(AxisConfig{Axis: "rename", Intensity: "many"}, AxisConfig{Axis: "qualify", Intensity: "few"}),
		},
		{
			ID:   3,
			Name: "anonymous",
			Base: []AxisConfig{strip, {Axis: "comments", Intensity: "remove"}, {Axis: "rename", Intensity: "few"}},
			Axes: []AxisConfig{
				{Axis: "none"},
				{Axis: "spaces", Intensity: "many"},
				{Axis: "tabs", Intensity: "many"},
				{Axis: "layout", Intensity: "single-line"},
				{Axis: "layout", Intensity: "token-per-line"},
				{Axis: "qualify", Intensity: "many"},
			},
		},
	}
}

// ParseStrata validates the configured strata and converts them into the
// closed model types, ordered by stratum ID.
func ParseStrata(configs []StratumConfig) (m.Strata, error) {
	if err := configValidate.Struct(strataConfig{Strata: configs}); err != nil {
		return nil, fmt.Errorf("%w: %s", m.ErrInvalidStrata, validationMessage(err))
	}

	strata := make(m.Strata, 0, len(configs))
	seen := make(map[int]bool, len(configs))

	for _, cfg := range configs {
		if seen[cfg.ID] {
			return nil, fmt.Errorf("%w: duplicate stratum %d", m.ErrInvalidStrata, cfg.ID)
		}

		seen[cfg.ID] = true

		stratum, err := parseStratum(cfg)
		if err != nil {
			return nil, fmt.Errorf("stratum %d: %w", cfg.ID, err)
		}

		strata = append(strata, stratum)
	}

	sort.SliceStable(strata, func(i, j int) bool { return strata[i].ID < strata[j].ID })

	return strata, nil
}

func parseStratum(cfg StratumConfig) (m.Stratum, error) {
	stratum := m.Stratum{ID: cfg.ID, Name: strings.TrimSpace(cfg.Name)}

	for _, axis := range cfg.Base {
		spec, err := m.ParseAxisSpec(axis.Axis, axis.Intensity)
		if err != nil {
			return m.Stratum{}, err
		}

		if !spec.Axis.Content() && spec.Axis != m.AxisIndentation {
			return m.Stratum{}, fmt.Errorf("%w: %s cannot be a base axis", m.ErrInvalidStrata, spec)
		}

		for _, existing := range stratum.Base {
			if existing.Axis == spec.Axis {
				return m.Stratum{}, fmt.Errorf("%w: base axis %s listed twice", m.ErrInvalidStrata, spec.Axis)
			}
		}

		stratum.Base = append(stratum.Base, spec)
	}

	seen := make(map[m.AxisSpec]bool, len(cfg.Axes))

	for _, axis := range cfg.Axes {
		spec, err := m.ParseAxisSpec(axis.Axis, axis.Intensity)
		if err != nil {
			return m.Stratum{}, err
		}

		if seen[spec] {
			return m.Stratum{}, fmt.Errorf("%w: variant %s listed twice", m.ErrInvalidStrata, spec)
		}

		seen[spec] = true
		stratum.Axes = append(stratum.Axes, spec)
	}

	return stratum, nil
}

// ParseSymbolTable validates the configured symbol table. Rename targets may
// not themselves be renamed and qualified names may not start with a name
// that is qualified again, otherwise a second pass would rewrite the first
// pass's output.
func ParseSymbolTable(cfg SymbolTableConfig) (m.SymbolTable, error) {
	if err := configValidate.Struct(cfg); err != nil {
		return m.SymbolTable{}, fmt.Errorf("%w: %s", m.ErrInvalidSymbolTable, validationMessage(err))
	}

	for _, key := range sortedKeys(cfg.Rename) {
		target := cfg.Rename[key]
		if _, ok := cfg.Rename[target]; ok && target != key {
			return m.SymbolTable{}, fmt.Errorf("%w: rename target %q is also renamed", m.ErrInvalidSymbolTable, target)
		}
	}

	implicitRoots := make(map[string]bool)
	for _, root := range perturbations.ImplicitPackages() {
		implicitRoots[root] = true
	}

	for _, key := range sortedKeys(cfg.Qualify) {
		if implicitRoots[key] {
			return m.SymbolTable{}, fmt.Errorf("%w: %q is a package name and cannot be qualified", m.ErrInvalidSymbolTable, key)
		}

		root, _, _ := strings.Cut(cfg.Qualify[key], m.EnclosingSeparator)
		if _, ok := cfg.Qualify[root]; ok {
			return m.SymbolTable{}, fmt.Errorf("%w: qualified name %q starts with qualified type %q", m.ErrInvalidSymbolTable, cfg.Qualify[key], root)
		}
	}

	return m.SymbolTable{Rename: cfg.Rename, Qualify: cfg.Qualify}, nil
}

func validationMessage(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err.Error()
	}

	parts := make([]string, 0, len(errs))
	for _, fe := range errs {
		parts = append(parts, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}

	return strings.Join(parts, "; ")
}

func isIdentifier(s string) bool {
	if s == "" || !lexer.IsIdentStart(s, 0) {
		return false
	}

	for i := 1; i < len(s); i++ {
		if !lexer.IsIdentPart(s, i) {
			return false
		}
	}

	return true
}

func isQualifiedName(s string) bool {
	for _, part := range strings.Split(s, m.EnclosingSeparator) {
		if !isIdentifier(part) {
			return false
		}
	}

	return true
}

func sortedKeys(table map[string]string) []string {
	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
