// internal/utils/math.go
package utils

import "math"

// PingPong переводит время в долю [0,1], которая растёт первую половину
// периода и убывает вторую.
func PingPong(elapsed, period float64) float64 {
	pct := math.Mod(elapsed, period) / period * 2
	if pct > 1 {
		pct = 2 - pct
	}
	return pct
}

// AngleBetween возвращает неориентированный угол между векторами (0..π).
func AngleBetween(ax, ay, bx, by float64) float64 {
	la := math.Hypot(ax, ay)
	lb := math.Hypot(bx, by)
	if la == 0 || lb == 0 {
		return 0
	}
	cos := (ax*bx + ay*by) / (la * lb)
	// Погрешность округления может вывести косинус за [-1, 1]
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos)
}
