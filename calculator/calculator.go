package calculator

import (
	"fmt"
	"math"
)

// calculator 的接口定义

type Calculator interface {
	// 相位函数在 cosθ ∈ [-1, 1] 上的积分 S
	ScatteringIntegral(g float64) (float64, error)

	// 计算经过一层组织后的辐照度
	Attenuate(i0, muA, muS, d, g float64) (float64, error)
}

type calculator struct {
	integrator integrator

	// 同一个 g 的积分只计算一次
	scattering map[float64]float64
}

func NewCalculator(cfg Config) *calculator {
	return &calculator{
		integrator: newIntegrator(cfg),
		scattering: make(map[float64]float64),
	}
}

func (c *calculator) ScatteringIntegral(g float64) (float64, error) {
	if s, ok := c.scattering[g]; ok {
		return s, nil
	}
	s, err := c.integrator.integrate(func(cosTheta float64) float64 {
		return Phase(cosTheta, g)
	}, -1, 1)
	if err != nil {
		return s, fmt.Errorf("相位函数积分 g=%g: %w", g, err)
	}
	c.scattering[g] = s
	return s, nil
}

// 一阶近似：Beer-Lambert 衰减加上散射修正项
// I_d = I0·exp(-(μa+μs)·d) + μs/(4π)·S·I0·d
func (c *calculator) Attenuate(i0, muA, muS, d, g float64) (float64, error) {
	s, err := c.ScatteringIntegral(g)
	if err != nil {
		return 0, err
	}
	return i0*math.Exp(-(muA+muS)*d) + (muS/(4*math.Pi))*s*i0*d, nil
}
