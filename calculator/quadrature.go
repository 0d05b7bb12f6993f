package calculator

import (
	"errors"
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/integrate/quad"
)

var (
	ErrNonFinite    = errors.New("积分结果不是有限数")
	ErrNotConverged = errors.New("积分未收敛")
)

// 单次积分最多细分的区间数
const maxPanels = 1 << 15

// 数值积分
type integrator interface {
	integrate(f func(float64) float64, a, b float64) (float64, error)
}

func newIntegrator(cfg Config) integrator {
	if cfg.Method == MethodLegendre {
		return &legendreIntegrator{points: cfg.Points}
	}
	return &adaptiveIntegrator{
		points:   cfg.Points,
		absTol:   cfg.AbsTolerance,
		relTol:   cfg.RelTolerance,
		maxDepth: cfg.MaxDepth,
	}
}

// 固定节点
type legendreIntegrator struct {
	points int
}

func (l *legendreIntegrator) integrate(f func(float64) float64, a, b float64) (float64, error) {
	v := quad.Fixed(f, a, b, l.points, quad.Legendre{}, 0)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v, fmt.Errorf("[%g, %g]: %w", a, b, ErrNonFinite)
	}
	return v, nil
}

// 自适应：每个区间分别用 n 点和 2n 点 Gauss-Legendre 计算，
// 两者之差超过容差时二分区间
type adaptiveIntegrator struct {
	points   int
	absTol   float64
	relTol   float64
	maxDepth int
}

type panel struct {
	a, b  float64
	depth int
}

func (ai *adaptiveIntegrator) integrate(f func(float64) float64, a, b float64) (float64, error) {
	stack := []panel{{a: a, b: b}}
	accepted := make([]float64, 0, 8)
	count := 0
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++

		coarse := quad.Fixed(f, p.a, p.b, ai.points, quad.Legendre{}, 0)
		fine := quad.Fixed(f, p.a, p.b, 2*ai.points, quad.Legendre{}, 0)
		if math.IsNaN(fine) || math.IsInf(fine, 0) {
			return fine, fmt.Errorf("[%g, %g]: %w", p.a, p.b, ErrNonFinite)
		}

		// 绝对容差随细分深度减半，保证总误差不超过 absTol
		if scalar.EqualWithinAbsOrRel(fine, coarse, math.Ldexp(ai.absTol, -p.depth), ai.relTol) {
			accepted = append(accepted, fine)
			continue
		}
		if p.depth >= ai.maxDepth || count >= maxPanels {
			return floats.Sum(accepted) + fine, fmt.Errorf("[%g, %g] depth %d: %w", p.a, p.b, p.depth, ErrNotConverged)
		}

		m := p.a + (p.b-p.a)/2
		log.WithFields(log.Fields{
			"a":     p.a,
			"b":     p.b,
			"depth": p.depth,
			"error": math.Abs(fine - coarse),
		}).Debug("区间细分")
		stack = append(stack, panel{a: m, b: p.b, depth: p.depth + 1}, panel{a: p.a, b: m, depth: p.depth + 1})
	}
	return floats.Sum(accepted), nil
}
