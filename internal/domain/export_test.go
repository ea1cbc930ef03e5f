package domain

import (
	"strata.dev/pkg/strata/internal/domain/perturbations"
	m "strata.dev/pkg/strata/internal/model"
)

// WithTransform returns a copy of e whose spec step runs transform.
func WithTransform(e Engine, spec m.AxisSpec, transform perturbations.Transform) Engine {
	base := e.(*engine)

	transforms := make(map[m.AxisSpec]perturbations.Transform, len(base.transforms))
	for s, t := range base.transforms {
		transforms[s] = t
	}

	transforms[spec] = transform

	return &engine{symbols: base.symbols, scans: base.scans, transforms: transforms}
}
