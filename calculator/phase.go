package calculator

import "math"

// Henyey-Greenstein 相位函数
// p(cosθ) = (1 - g²) / (4π (1 + g² - 2g·cosθ)^1.5)
// g = ±1 且 cosθ = ±1 时分母为 0，结果为 NaN 或 Inf
func Phase(cosTheta, g float64) float64 {
	return (1 - g*g) / (4 * math.Pi * math.Pow(1+g*g-2*g*cosTheta, 1.5))
}
