package easing

import "math"

const (
	halfPi = math.Pi / 2

	backOvershoot = 1.70158

	elasticAmplitude = 1.0
	elasticPeriod    = 0.3

	bounceA = 7.5625
	bounceD = 2.75
)

// Linear is the identity curve.
var Linear = register("Linear", func(t float64) float64 { return t })

var (
	SineIn    = register("SineIn", sineIn)
	SineOut   = register("SineOut", sineOut)
	SineInOut = register("SineInOut", inOut(sineIn, sineOut))
	SineOutIn = register("SineOutIn", inOut(sineOut, sineIn))

	QuadIn    = register("QuadIn", quadIn)
	QuadOut   = register("QuadOut", quadOut)
	QuadInOut = register("QuadInOut", inOut(quadIn, quadOut))
	QuadOutIn = register("QuadOutIn", inOut(quadOut, quadIn))

	CubicIn    = register("CubicIn", cubicIn)
	CubicOut   = register("CubicOut", cubicOut)
	CubicInOut = register("CubicInOut", inOut(cubicIn, cubicOut))
	CubicOutIn = register("CubicOutIn", inOut(cubicOut, cubicIn))

	QuartIn    = register("QuartIn", quartIn)
	QuartOut   = register("QuartOut", quartOut)
	QuartInOut = register("QuartInOut", inOut(quartIn, quartOut))
	QuartOutIn = register("QuartOutIn", inOut(quartOut, quartIn))

	QuintIn    = register("QuintIn", quintIn)
	QuintOut   = register("QuintOut", quintOut)
	QuintInOut = register("QuintInOut", inOut(quintIn, quintOut))
	QuintOutIn = register("QuintOutIn", inOut(quintOut, quintIn))

	ExpoIn    = register("ExpoIn", expoIn)
	ExpoOut   = register("ExpoOut", expoOut)
	ExpoInOut = register("ExpoInOut", inOut(expoIn, expoOut))
	ExpoOutIn = register("ExpoOutIn", inOut(expoOut, expoIn))

	CircIn    = register("CircIn", circIn)
	CircOut   = register("CircOut", circOut)
	CircInOut = register("CircInOut", inOut(circIn, circOut))
	CircOutIn = register("CircOutIn", inOut(circOut, circIn))

	BackIn    = register("BackIn", backIn)
	BackOut   = register("BackOut", backOut)
	BackInOut = register("BackInOut", inOut(backIn, backOut))
	BackOutIn = register("BackOutIn", inOut(backOut, backIn))

	ElasticIn    = register("ElasticIn", elasticIn)
	ElasticOut   = register("ElasticOut", elasticOut)
	ElasticInOut = register("ElasticInOut", inOut(elasticIn, elasticOut))
	ElasticOutIn = register("ElasticOutIn", inOut(elasticOut, elasticIn))

	BounceIn    = register("BounceIn", bounceIn)
	BounceOut   = register("BounceOut", bounceOut)
	BounceInOut = register("BounceInOut", inOut(bounceIn, bounceOut))
	BounceOutIn = register("BounceOutIn", inOut(bounceOut, bounceIn))
)

// inOut runs first over [0, 0.5) and second over [0.5, 1), each compressed
// into half the time and half the range.
func inOut(first, second func(float64) float64) func(float64) float64 {
	return func(t float64) float64 {
		if t < 0.5 {
			return first(t*2) / 2
		}
		return second(t*2-1)/2 + 0.5
	}
}

func sineIn(t float64) float64  { return 1 - math.Cos(halfPi*t) }
func sineOut(t float64) float64 { return math.Sin(halfPi * t) }

func quadIn(t float64) float64  { return t * t }
func quadOut(t float64) float64 { return -t * (t - 2) }

func cubicIn(t float64) float64 { return t * t * t }
func cubicOut(t float64) float64 {
	t--
	return t*t*t + 1
}

func quartIn(t float64) float64 { return t * t * t * t }
func quartOut(t float64) float64 {
	t--
	return 1 - t*t*t*t
}

func quintIn(t float64) float64 { return t * t * t * t * t }
func quintOut(t float64) float64 {
	t--
	return t*t*t*t*t + 1
}

func expoIn(t float64) float64  { return math.Pow(2, 10*(t-1)) }
func expoOut(t float64) float64 { return 1 - math.Pow(2, -10*t) }

func circIn(t float64) float64 { return 1 - math.Sqrt(1-t*t) }
func circOut(t float64) float64 {
	t--
	return math.Sqrt(1 - t*t)
}

func backIn(t float64) float64 {
	return t * t * ((backOvershoot+1)*t - backOvershoot)
}

func backOut(t float64) float64 {
	t--
	return t*t*((backOvershoot+1)*t+backOvershoot) + 1
}

func elasticIn(t float64) float64 {
	t--
	return -(elasticAmplitude * math.Pow(2, 10*t) * math.Sin((t-elasticPeriod/4)*(2*math.Pi)/elasticPeriod))
}

func elasticOut(t float64) float64 {
	return elasticAmplitude*math.Pow(2, -10*t)*math.Sin((t-elasticPeriod/4)*(2*math.Pi)/elasticPeriod) + 1
}

func bounceIn(t float64) float64 { return 1 - bounceOut(1-t) }

func bounceOut(t float64) float64 {
	switch {
	case t < 1/bounceD:
		return bounceA * t * t
	case t < 2/bounceD:
		t -= 1.5 / bounceD
		return bounceA*t*t + 0.75
	case t < 2.5/bounceD:
		t -= 2.25 / bounceD
		return bounceA*t*t + 0.9375
	default:
		t -= 2.625 / bounceD
		return bounceA*t*t + 0.984375
	}
}
